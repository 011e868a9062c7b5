// Package train runs the gradient-descent loop for an MLP on a small dataset.
//
// Each step follows the same contract:
//
//	mark arena → forward → loss → ZeroGrad → Backward → Step → rewind arena
//
// Parameters live below the mark and survive every rewind with their updated
// data; every per-step node is discarded, so memory stays flat across steps.
package train

import (
	"math"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// ErrDiverged is returned when the loss stops being a finite number.
var ErrDiverged = errors.New("loss diverged")

// Defaults applied to zero Config fields.
const (
	DefaultLearningRate = 0.05
	DefaultSteps        = 20
)

// Config controls a training run. Zero values use the defaults.
type Config struct {
	LearningRate float64 // Step size (default: 0.05)
	Steps        int     // Number of updates (default: 20)
	VerboseEvery int     // Log every N steps; 0 disables progress lines

	// Logf receives progress lines such as "step 10 | loss 0.031250".
	// Nil disables logging.
	Logf func(format string, args ...any)

	// SkipZeroGrad leaves gradients from previous steps in place, so they
	// accumulate across steps.
	SkipZeroGrad bool
}

func (c Config) withDefaults() (Config, error) {
	if c.LearningRate == 0 {
		c.LearningRate = DefaultLearningRate
	}
	if c.Steps == 0 {
		c.Steps = DefaultSteps
	}
	if c.LearningRate < 0 || math.IsNaN(c.LearningRate) {
		return c, errors.Errorf("invalid learning rate %g", c.LearningRate)
	}
	if c.Steps < 0 {
		return c, errors.Errorf("invalid number of steps %d", c.Steps)
	}
	if c.VerboseEvery < 0 {
		return c, errors.Errorf("invalid verbose interval %d", c.VerboseEvery)
	}
	return c, nil
}

// Result records the outcome of a training run.
type Result struct {
	Losses []float64 // Loss before each update
	Final  float64   // Loss after the last update
}

// Best returns the step with the lowest recorded loss.
func (r *Result) Best() (step int, loss float64) {
	if len(r.Losses) == 0 {
		return -1, r.Final
	}
	step = floats.MinIdx(r.Losses)
	return step, r.Losses[step]
}

// Run trains model on (xs, ys) with plain gradient descent.
//
// The model must have a single output; ys[i] is the target for xs[i]. The
// model's graph is returned to the length it had on entry. If the loss
// becomes NaN or infinite, Run stops and returns the losses recorded so far
// together with ErrDiverged.
//
// Example:
//
//	g := autodiff.NewGraph()
//	model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.WithSeed(42))
//	res, err := train.Run(model, xs, ys, train.Config{LearningRate: 0.1, Steps: 50})
func Run(model *nn.MLP, xs [][]float64, ys []float64, cfg Config) (*Result, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}
	if err := checkDataset(model, xs, ys); err != nil {
		return nil, err
	}

	g := model.Graph()
	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: cfg.LearningRate})
	res := &Result{Losses: make([]float64, 0, cfg.Steps)}

	for step := 1; step <= cfg.Steps; step++ {
		mark := g.Mark()

		loss, err := Loss(model, xs, ys)
		if err != nil {
			g.Rewind(mark)
			return nil, errors.Wrapf(err, "step %d", step)
		}
		value := loss.Data()
		if math.IsNaN(value) || math.IsInf(value, 0) {
			g.Rewind(mark)
			return res, errors.Wrapf(ErrDiverged, "step %d", step)
		}

		if !cfg.SkipZeroGrad {
			sgd.ZeroGrad()
		}
		loss.Backward()
		sgd.Step()

		res.Losses = append(res.Losses, value)
		if cfg.Logf != nil && cfg.VerboseEvery > 0 && step%cfg.VerboseEvery == 0 {
			cfg.Logf("step %d | loss %.6f", step, value)
		}

		g.Rewind(mark)
	}

	mark := g.Mark()
	defer g.Rewind(mark)
	loss, err := Loss(model, xs, ys)
	if err != nil {
		return nil, errors.Wrap(err, "final loss")
	}
	res.Final = loss.Data()
	return res, nil
}

// Loss builds the MSE loss of model over the dataset in the model's graph.
//
// Predictions are labelled "yp". The caller owns the nodes and should rewind
// the graph once it is done with the result.
func Loss(model *nn.MLP, xs [][]float64, ys []float64) (autodiff.Value, error) {
	if err := checkDataset(model, xs, ys); err != nil {
		return autodiff.Value{}, err
	}

	outs, err := model.PredictBatch(xs)
	if err != nil {
		return autodiff.Value{}, err
	}
	preds := make([]autodiff.Value, len(outs))
	for i, out := range outs {
		preds[i] = out[0].SetLabel("yp")
	}
	return nn.MSEFloats(ys, preds)
}

func checkDataset(model *nn.MLP, xs [][]float64, ys []float64) error {
	if n := model.NumOutputs(); n != 1 {
		return errors.WithStack(&nn.ShapeError{Op: "model outputs", Want: 1, Got: n})
	}
	if len(xs) != len(ys) {
		return errors.WithStack(&nn.ShapeError{Op: "dataset", Want: len(xs), Got: len(ys)})
	}
	if len(xs) == 0 {
		return errors.WithStack(nn.ErrEmptyBatch)
	}
	return nil
}
