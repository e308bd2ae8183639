package boolean

import (
	"fmt"

	"github.com/tuneinsight/lattigo-boolean/core/engine"
	"github.com/tuneinsight/lattigo-boolean/core/lwe"
)

// NewClientKey samples a new [ClientKey]: a binary flat key of dimension n and a
// binary ring key of k polynomials of degree N. The engine is kept by the client
// key for its encryptions.
func NewClientKey(params Parameters, eng engine.Engine) (ck *ClientKey, err error) {

	ck = &ClientKey{params: params, eng: eng}

	if ck.lweKey, err = eng.GenerateLWESecretKey(lwe.Binary, params.LWEDimension()); err != nil {
		return nil, fmt.Errorf("cannot NewClientKey: %w", err)
	}

	if ck.glweKey, err = eng.GenerateGLWESecretKey(lwe.Binary, params.GLWEDimension(), params.PolynomialSize()); err != nil {
		return nil, fmt.Errorf("cannot NewClientKey: %w", err)
	}

	return
}

// NewServerKey derives the [ServerKey] of ck.
func NewServerKey(ck *ClientKey) (sk *ServerKey, err error) {

	params := ck.params

	sk = &ServerKey{Parameters: params}

	if sk.BootstrapKey, err = ck.eng.GenerateBootstrapKey(ck.lweKey, ck.glweKey, params.PBSDecomposition(), params.GLWEVariance()); err != nil {
		return nil, fmt.Errorf("cannot NewServerKey: %w", err)
	}

	if sk.KeySwitchKey, err = ck.eng.GenerateKeySwitchKey(ck.glweKey.LWEKey(), ck.lweKey, params.KSDecomposition(), params.LWEVariance()); err != nil {
		return nil, fmt.Errorf("cannot NewServerKey: %w", err)
	}

	return
}

// GenKeys generates a new client key and its server key.
func GenKeys(params Parameters, eng engine.Engine) (ck *ClientKey, sk *ServerKey, err error) {

	if ck, err = NewClientKey(params, eng); err != nil {
		return nil, nil, err
	}

	if sk, err = NewServerKey(ck); err != nil {
		return nil, nil, err
	}

	return
}
