package env

import "go.uber.org/zap"

// SampleContext draws one simulated user as a feature vector in schema
// order. A latent segment is chosen uniformly, Gaussian noise (sd 0.2) is
// added to the segment's mean interests, and a standardized age sampled from
// N(40, 12^2) clamped to [18, 80] is appended.
//
// The returned slice is freshly allocated and owned by the caller; the
// environment keeps no reference to it.
func (e *ContextualEnv) SampleContext() []float64 {
	seg := e.rng.IntN(len(segmentMeans))

	x := make([]float64, numFeatures)
	for i, m := range segmentMeans[seg] {
		x[i] = m + e.noise.Rand()
	}
	x[numFeatures-1] = e.sampleAgeZ()

	e.metrics.IncrementContextsSampled()
	e.logger.Debug("sampled context", zap.Float64s("features", x))
	return x
}

// sampleAgeZ samples an age in years and standardizes it:
// age_z = (age - 40) / 15.
func (e *ContextualEnv) sampleAgeZ() float64 {
	age := e.age.Rand()
	if age < ageMin {
		age = ageMin
	} else if age > ageMax {
		age = ageMax
	}
	return (age - ageMean) / ageScale
}
