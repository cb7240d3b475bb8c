package radspec

var (
	Debug = false // set to true for verbose debug output
	PNG   = false // set to true to save the sample density preview PNG
	// Compile time checks to ensure that all samplers implement the Sampler interface
	_ Sampler = (*IndependentSampler)(nil)
	_ Sampler = (*StratifiedSampler)(nil)
)
