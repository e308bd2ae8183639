package boolean

var (
	// ExampleParameters is an example parameters set with n=586, k=2, N=512 and
	// the default log-scale. It is not a vetted parameters set and comes with no
	// security claim.
	ExampleParameters = ParametersLiteral{
		LWEDimension:   586,
		GLWEDimension:  2,
		PolynomialSize: 512,
		LWEVariance:    8.976167396834998e-5 * 8.976167396834998e-5,
		GLWEVariance:   2.989040792967434e-8 * 2.989040792967434e-8,
		PBSBaseLog:     8,
		PBSLevel:       2,
		KSBaseLog:      2,
		KSLevel:        5,
		LogScale:       3,
	}
)
