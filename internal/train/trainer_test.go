package train_test

import (
	"fmt"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/train"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	xs = [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	ys = []float64{1.0, -1.0, -1.0, 1.0}
)

// TestRun_Smoke tests that training lowers the loss.
func TestRun_Smoke(t *testing.T) {
	g := autodiff.NewGraph()
	model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.WithSeed(42))
	params := g.Len()

	res, err := train.Run(model, xs, ys, train.Config{LearningRate: 0.1, Steps: 50})
	require.NoError(t, err)

	require.Len(t, res.Losses, 50)
	assert.Less(t, res.Final, res.Losses[0])
	assert.Equal(t, params, g.Len(), "per-step nodes are discarded")

	step, best := res.Best()
	assert.GreaterOrEqual(t, step, 0)
	assert.LessOrEqual(t, best, res.Losses[0])
}

func TestRun_Deterministic(t *testing.T) {
	run := func() *train.Result {
		g := autodiff.NewGraph()
		model := nn.NewMLP(g, 3, []int{4, 4, 1}, nn.WithSeed(7))
		res, err := train.Run(model, xs, ys, train.Config{LearningRate: 0.1, Steps: 10})
		require.NoError(t, err)
		return res
	}

	assert.Equal(t, run(), run())
}

// TestRun_MatchesManualLoop tests Run against the loop written out by hand.
func TestRun_MatchesManualLoop(t *testing.T) {
	g1 := autodiff.NewGraph()
	m1 := nn.NewMLP(g1, 3, []int{4, 1}, nn.WithSeed(3))
	res, err := train.Run(m1, xs, ys, train.Config{LearningRate: 0.05, Steps: 5})
	require.NoError(t, err)

	g2 := autodiff.NewGraph()
	m2 := nn.NewMLP(g2, 3, []int{4, 1}, nn.WithSeed(3))
	mark := g2.Mark()
	for step := range 5 {
		loss, err := train.Loss(m2, xs, ys)
		require.NoError(t, err)
		assert.Equal(t, res.Losses[step], loss.Data())

		m2.ZeroGrad()
		loss.Backward()
		m2.Update(0.05)
		g2.Rewind(mark)
	}

	assert.Equal(t, autodiff.DataOf(m1.Parameters()), autodiff.DataOf(m2.Parameters()))
}

func TestRun_SkipZeroGrad(t *testing.T) {
	run := func(skip bool) *train.Result {
		g := autodiff.NewGraph()
		model := nn.NewMLP(g, 3, []int{4, 1}, nn.WithSeed(11))
		res, err := train.Run(model, xs, ys, train.Config{LearningRate: 0.01, Steps: 3, SkipZeroGrad: skip})
		require.NoError(t, err)
		return res
	}

	clean, accumulated := run(false), run(true)
	assert.Equal(t, clean.Losses[:2], accumulated.Losses[:2], "first step is identical")
	assert.NotEqual(t, clean.Losses[2], accumulated.Losses[2])
}

func TestRun_Logging(t *testing.T) {
	g := autodiff.NewGraph()
	model := nn.NewMLP(g, 3, []int{2, 1}, nn.WithSeed(1))

	var lines []string
	cfg := train.Config{
		LearningRate: 0.1,
		Steps:        10,
		VerboseEvery: 5,
		Logf: func(format string, args ...any) {
			lines = append(lines, fmt.Sprintf(format, args...))
		},
	}
	res, err := train.Run(model, xs, ys, cfg)
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, fmt.Sprintf("step 5 | loss %.6f", res.Losses[4]), lines[0])
	assert.Equal(t, fmt.Sprintf("step 10 | loss %.6f", res.Losses[9]), lines[1])
}

func TestRun_Defaults(t *testing.T) {
	g := autodiff.NewGraph()
	model := nn.NewMLP(g, 3, []int{1}, nn.WithSeed(1))

	res, err := train.Run(model, xs, ys, train.Config{})
	require.NoError(t, err)
	assert.Len(t, res.Losses, train.DefaultSteps)
}

func TestRun_Errors(t *testing.T) {
	g := autodiff.NewGraph()
	model := nn.NewMLP(g, 3, []int{2, 1}, nn.WithSeed(1))
	before := g.Len()

	_, err := train.Run(model, xs, ys[:3], train.Config{})
	assert.True(t, errors.Is(err, nn.ErrShapeMismatch))

	_, err = train.Run(model, nil, nil, train.Config{})
	assert.True(t, errors.Is(err, nn.ErrEmptyBatch))

	_, err = train.Run(model, [][]float64{{1, 2}}, []float64{1}, train.Config{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, nn.ErrShapeMismatch))
	assert.Contains(t, err.Error(), "step 1")

	_, err = train.Run(model, xs, ys, train.Config{LearningRate: -1})
	assert.Error(t, err)
	_, err = train.Run(model, xs, ys, train.Config{Steps: -1})
	assert.Error(t, err)

	wide := nn.NewMLP(g, 3, []int{2}, nn.WithSeed(1))
	_, err = train.Run(wide, xs, ys, train.Config{})
	var shapeErr *nn.ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, 2, shapeErr.Got)

	assert.Equal(t, before+len(wide.Parameters()), g.Len(), "failed runs leave no nodes behind")
}

func TestRun_Diverged(t *testing.T) {
	g := autodiff.NewGraph()
	model := nn.NewMLP(g, 1, []int{1}, nn.WithSeed(1), nn.WithActivation(nn.Linear))

	res, err := train.Run(model, [][]float64{{3}}, []float64{1}, train.Config{LearningRate: 100, Steps: 1000})
	require.Error(t, err)
	assert.True(t, errors.Is(err, train.ErrDiverged))
	require.NotNil(t, res)
	assert.NotEmpty(t, res.Losses)
	assert.Less(t, len(res.Losses), 1000)
}
