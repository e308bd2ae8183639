package boolean

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkBoolean(b *testing.B) {

	var err error

	paramsLiteral := ExampleParameters

	if *flagParamString != "" {
		if err = json.Unmarshal([]byte(*flagParamString), &paramsLiteral); err != nil {
			b.Fatal(err)
		}
	}

	params, err := NewParametersFromLiteral(paramsLiteral)
	require.NoError(b, err)

	tc := newTestContext(b, params)

	benchGenKeys(tc, b)
	benchGates(tc, b)
}

func benchGenKeys(tc *testContext, b *testing.B) {

	b.Run(testString(tc.params, "GenKeys"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, _, err := GenKeys(tc.params, tc.eng); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(testString(tc.params, "NewEvaluator"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := NewEvaluator(tc.sk, tc.eng); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func benchGates(tc *testContext, b *testing.B) {

	ct0, err := tc.ck.Encrypt(true)
	require.NoError(b, err)

	ct1, err := tc.ck.Encrypt(false)
	require.NoError(b, err)

	b.Run(testString(tc.params, "Encrypt"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := tc.ck.Encrypt(true); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(testString(tc.params, "NOT"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := tc.eval.NOT(ct0); err != nil {
				b.Fatal(err)
			}
		}
	})

	// All binary gates cost a single programmable bootstrapping.
	b.Run(testString(tc.params, "NAND"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := tc.eval.NAND(ct0, ct1); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(testString(tc.params, "MUX"), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := tc.eval.MUX(ct0, ct1, ct0); err != nil {
				b.Fatal(err)
			}
		}
	})
}
