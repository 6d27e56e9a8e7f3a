// Package env implements a synthetic contextual-bandit environment for
// evaluating bandit algorithms against a known reward-generating process.
//
// The environment models a simple news-recommendation setting: each sampled
// context is an interpretable user feature vector, each arm is a content
// category, and rewards are Bernoulli clicks drawn from a fixed per-arm
// logistic model. Given the same seed and call sequence, an environment
// reproduces the exact same stream of contexts and rewards.
package env

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/patrickwarner/banditsim/observability"
)

// DefaultSeed is used by NewDefault.
const DefaultSeed int64 = 0

const (
	numArms     = 4
	numFeatures = 6

	featureNoiseSigma = 0.2

	ageMean  = 40.0
	ageSigma = 12.0
	ageMin   = 18.0
	ageMax   = 80.0
	ageScale = 15.0
)

// featureNames are the schema dimensions in vector index order. The last
// dimension is standardized age: 0 ≈ 40y, +1 ≈ 55y, -1 ≈ 25y.
var featureNames = []string{
	"likes_politics",
	"sports_fan",
	"techie",
	"mobile_user",
	"morning_reader",
	"age_z",
}

// armNames are the selectable content categories in weight-matrix row order.
var armNames = []string{"Politics", "Sports", "Tech", "Lifestyle"}

// trueWeights holds the ground-truth logistic coefficients, rows=arms,
// cols=features. Politics prefers older, morning readers; Sports and Tech
// skew younger; Lifestyle is mostly device/time driven.
var trueWeights = []float64{
	1.6, 0.2, 0.1, 0.2, 0.7, 0.4,
	0.1, 1.8, 0.1, 0.7, 0.2, -0.1,
	0.0, 0.1, 1.9, -0.1, -0.2, -0.2,
	0.3, 0.2, 0.2, 1.0, 0.8, 0.0,
}

// segmentMeans are the latent user archetypes contexts cluster around.
// Segments are a sampling aid only and never appear in emitted contexts.
var segmentMeans = [][]float64{
	{1.6, 0.2, 0.2, 0.3, 0.9}, // politics
	{0.2, 1.8, 0.2, 1.0, 0.3}, // sports
	{0.2, 0.2, 1.9, 0.3, 0.2}, // tech
	{0.4, 0.9, 0.5, 1.8, 0.7}, // on_the_go
	{0.8, 0.3, 0.2, 0.6, 1.9}, // morning_person
}

// ContextualEnv generates user contexts and Bernoulli click rewards from a
// fixed linear-logistic model.
//
// An instance owns a single seeded random source whose state advances with
// every sampling or reward-drawing call; instances are not safe for
// concurrent use. Run one instance per worker, each with its own seed, to
// get independent reproducible streams.
type ContextualEnv struct {
	theta *mat.Dense

	rng   *rand.Rand
	noise distuv.Normal
	age   distuv.Normal

	logger  *zap.Logger
	metrics observability.MetricsRegistry
}

// New creates an environment seeded with the given value. A nil logger or
// metrics registry is replaced with a no-op implementation.
func New(seed int64, logger *zap.Logger, metrics observability.MetricsRegistry) *ContextualEnv {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = observability.NewNoOpRegistry()
	}

	// One PCG source feeds every distribution so the stream is a pure
	// function of seed and call order.
	src := rand.NewPCG(uint64(seed), uint64(seed))

	e := &ContextualEnv{
		theta: mat.NewDense(numArms, numFeatures, append([]float64(nil), trueWeights...)),
		rng:   rand.New(src),
		noise: distuv.Normal{Mu: 0, Sigma: featureNoiseSigma, Src: src},
		age:   distuv.Normal{Mu: ageMean, Sigma: ageSigma, Src: src},
		logger: logger.With(
			zap.String("env_id", uuid.NewString()),
			zap.Int64("seed", seed),
		),
		metrics: metrics,
	}

	e.logger.Info("contextual environment initialized",
		zap.Int("arms", numArms),
		zap.Int("features", numFeatures),
	)
	return e
}

// NewDefault creates an environment with DefaultSeed and no-op observability.
func NewDefault() *ContextualEnv {
	return New(DefaultSeed, nil, nil)
}

// ArmNames returns the arm labels in weight-matrix row order.
func (e *ContextualEnv) ArmNames() []string {
	return append([]string(nil), armNames...)
}

// FeatureNames returns the feature labels in context vector index order.
func (e *ContextualEnv) FeatureNames() []string {
	return append([]string(nil), featureNames...)
}

// ArmIndex resolves an arm label to its index. Unknown labels return
// ErrInvalidArm.
func (e *ContextualEnv) ArmIndex(name string) (int, error) {
	for i, n := range armNames {
		if n == name {
			return i, nil
		}
	}
	return 0, invalidArmName(name)
}

// Weights returns a copy of the arm's true coefficient row. Intended for
// diagnostics only; a learner under test must not observe it.
func (e *ContextualEnv) Weights(arm int) ([]float64, error) {
	if err := e.checkArm(arm); err != nil {
		return nil, err
	}
	return mat.Row(nil, arm, e.theta), nil
}
