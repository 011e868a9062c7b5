package train

import (
	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/parallel"
	"github.com/pkg/errors"
)

// Outcome is the result of one run of a Sweep.
type Outcome struct {
	Seed   int64
	Model  *nn.MLP
	Result *Result
}

// Sweep trains one model per seed and returns the outcomes in seed order.
//
// build must place every model in a fresh Graph: runs execute concurrently
// according to pcfg, and a graph shared between runs is rejected. cfg.Logf,
// if set, is called from several goroutines with lines prefixed by the seed.
//
// Example:
//
//	build := func(seed int64) *nn.MLP {
//	    return nn.NewMLP(autodiff.NewGraph(), 3, []int{4, 4, 1}, nn.WithSeed(seed))
//	}
//	outs, err := train.Sweep([]int64{1, 2, 3}, build, xs, ys, cfg, parallel.DefaultConfig())
//	best := train.BestOutcome(outs)
func Sweep(seeds []int64, build func(seed int64) *nn.MLP, xs [][]float64, ys []float64, cfg Config, pcfg parallel.Config) ([]Outcome, error) {
	if len(seeds) == 0 {
		return nil, errors.New("sweep needs at least one seed")
	}

	outs := make([]Outcome, len(seeds))
	graphs := make(map[*autodiff.Graph]int64, len(seeds))
	for i, seed := range seeds {
		model := build(seed)
		if other, dup := graphs[model.Graph()]; dup {
			return nil, errors.Errorf("seeds %d and %d share a graph", other, seed)
		}
		graphs[model.Graph()] = seed
		outs[i] = Outcome{Seed: seed, Model: model}
	}

	i, err := parallel.ForErr(len(outs), func(i int) error {
		runCfg := cfg
		if cfg.Logf != nil {
			seed := outs[i].Seed
			runCfg.Logf = func(format string, args ...any) {
				cfg.Logf("seed %d | "+format, append([]any{seed}, args...)...)
			}
		}
		res, err := Run(outs[i].Model, xs, ys, runCfg)
		outs[i].Result = res
		return err
	}, pcfg)
	if err != nil {
		return outs, errors.Wrapf(err, "seed %d", outs[i].Seed)
	}
	return outs, nil
}

// BestOutcome returns the outcome with the lowest final loss.
//
// Panics if outs is empty.
func BestOutcome(outs []Outcome) Outcome {
	best := outs[0]
	for _, o := range outs[1:] {
		if o.Result != nil && (best.Result == nil || o.Result.Final < best.Result.Final) {
			best = o
		}
	}
	return best
}
