package env

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// ClickProbability returns the ground-truth Bernoulli parameter for showing
// the arm to a user: sigmoid(theta[arm] . x). Pure; does not touch random
// state. The result is strictly inside (0, 1) for any finite context.
func (e *ContextualEnv) ClickProbability(arm int, x []float64) (float64, error) {
	if err := e.checkArm(arm); err != nil {
		return 0, err
	}
	if err := e.checkContext(x); err != nil {
		return 0, err
	}
	z := mat.Dot(e.theta.RowView(arm), mat.NewVecDense(len(x), x))
	return sigmoid(z), nil
}

// DrawReward draws a Bernoulli click for the (arm, context) pair. It returns
// the binary reward together with the true click probability behind it; the
// probability is ground truth for evaluation and must not be fed to a
// learner under test.
//
// Exactly one uniform draw is consumed per successful call; contract
// violations surface before any random state is touched.
func (e *ContextualEnv) DrawReward(arm int, x []float64) (int, float64, error) {
	p, err := e.ClickProbability(arm, x)
	if err != nil {
		e.logger.Warn("rejected reward draw", zap.Error(err))
		return 0, 0, err
	}

	reward := 0
	if e.rng.Float64() < p {
		reward = 1
	}

	e.metrics.IncrementRewardDraws(armNames[arm], reward)
	e.metrics.RecordClickProbability(p)
	e.logger.Debug("drew reward",
		zap.String("arm", armNames[arm]),
		zap.Int("reward", reward),
		zap.Float64("click_prob", p),
	)
	return reward, p, nil
}

// OracleBest returns the arm with the highest true click probability for the
// context, and that probability. Pure; intended for regret computation by
// experiment drivers.
func (e *ContextualEnv) OracleBest(x []float64) (int, float64, error) {
	if err := e.checkContext(x); err != nil {
		return 0, 0, err
	}

	xv := mat.NewVecDense(len(x), x)
	best, bestP := 0, 0.0
	for arm := 0; arm < numArms; arm++ {
		p := sigmoid(mat.Dot(e.theta.RowView(arm), xv))
		if p > bestP {
			best, bestP = arm, p
		}
	}
	return best, bestP, nil
}

func (e *ContextualEnv) checkArm(arm int) error {
	if arm < 0 || arm >= numArms {
		return invalidArmIndex(arm)
	}
	return nil
}

func (e *ContextualEnv) checkContext(x []float64) error {
	if len(x) != numFeatures {
		return dimensionMismatch(len(x))
	}
	return nil
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
