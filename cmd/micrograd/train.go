package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/parallel"
	"github.com/born-ml/micrograd/internal/train"
	"github.com/pkg/errors"
)

// The four-sample dataset trained when -data is not given.
var (
	defaultXs = [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	defaultYs = []float64{1.0, -1.0, -1.0, 1.0}
)

type trainFlags struct {
	lr       float64
	steps    int
	seed     int64
	every    int
	layers   []int
	act      nn.Activation
	data     string
	quiet    bool
	restarts int
}

func parseTrainFlags(args []string, w io.Writer) (*trainFlags, error) {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(w)

	lr := fs.Float64("lr", 0.1, "Learning rate")
	steps := fs.Int("steps", 50, "Number of gradient-descent steps")
	seed := fs.Int64("seed", 0, "Weight initialization seed (0 = time based)")
	every := fs.Int("every", 10, "Log the loss every N steps (0 = never)")
	layers := fs.String("layers", "4,4,1", "Comma-separated layer sizes")
	act := fs.String("act", "tanh", "Activation: tanh, relu, lrelu or linear")
	data := fs.String("data", "", "CSV file with one sample per row, target last (default: built-in dataset)")
	quiet := fs.Bool("quiet", false, "Do not print predictions")
	restarts := fs.Int("restarts", 1, "Train this many seeds concurrently and keep the best")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	sizes, err := parseLayers(*layers)
	if err != nil {
		return nil, err
	}
	activation, err := nn.ParseActivation(*act)
	if err != nil {
		return nil, err
	}
	if *restarts < 1 {
		return nil, errors.Errorf("restarts must be at least 1, got %d", *restarts)
	}

	return &trainFlags{
		lr:       *lr,
		steps:    *steps,
		seed:     *seed,
		every:    *every,
		layers:   sizes,
		act:      activation,
		data:     *data,
		quiet:    *quiet,
		restarts: *restarts,
	}, nil
}

// parseLayers turns "4,4,1" into []int{4, 4, 1}.
func parseLayers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid layer size %q", p)
		}
		if n <= 0 {
			return nil, errors.Errorf("layer size must be positive, got %d", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func runTrain(args []string, w io.Writer) error {
	opts, err := parseTrainFlags(args, w)
	if err != nil {
		return err
	}

	xs, ys := defaultXs, defaultYs
	if opts.data != "" {
		xs, ys, err = loadCSV(opts.data)
		if err != nil {
			return err
		}
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	build := func(seed int64) *nn.MLP {
		return nn.NewMLP(autodiff.NewGraph(), len(xs[0]), opts.layers,
			nn.WithSeed(seed), nn.WithActivation(opts.act))
	}
	seeds := make([]int64, opts.restarts)
	for i := range seeds {
		seeds[i] = seed + int64(i)
	}
	fmt.Fprintf(w, "Model: %d -> %v (%s), %d parameters, seed %d\n",
		len(xs[0]), opts.layers, opts.act, len(build(seed).Parameters()), seed)

	logger := log.New(w, "", 0)
	cfg := train.Config{
		LearningRate: opts.lr,
		Steps:        opts.steps,
		VerboseEvery: opts.every,
		Logf:         logger.Printf,
	}
	outs, err := train.Sweep(seeds, build, xs, ys, cfg, parallel.DefaultConfig())
	if err != nil {
		return errors.Wrap(err, "training failed")
	}

	if len(outs) > 1 {
		for _, o := range outs {
			fmt.Fprintf(w, "  seed %d: final loss %.6f\n", o.Seed, o.Result.Final)
		}
	}
	chosen := train.BestOutcome(outs)
	model, res := chosen.Model, chosen.Result
	g := model.Graph()

	best, bestLoss := res.Best()
	fmt.Fprintf(w, "Final loss: %.6f (seed %d, best %.6f at step %d)\n", res.Final, chosen.Seed, bestLoss, best+1)
	if opts.quiet {
		return nil
	}

	mark := g.Mark()
	defer g.Rewind(mark)
	preds, err := model.PredictBatch(xs)
	if err != nil {
		return err
	}
	for i, p := range preds {
		fmt.Fprintf(w, "  target % .3f  pred % .6f\n", ys[i], p[0].Data())
	}
	return nil
}
