package ops_test

import (
	"math"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

// TestKind_Tags checks the op tags exposed to visualizers.
func TestKind_Tags(t *testing.T) {
	tests := []struct {
		kind  ops.Kind
		tag   string
		arity int
	}{
		{ops.Leaf, "", 0},
		{ops.Add, "+", 2},
		{ops.Mul, "*", 2},
		{ops.Pow, "**", 1},
		{ops.Tanh, "tanh", 1},
		{ops.Exp, "exp", 1},
		{ops.ReLU, "relu", 1},
		{ops.LeakyReLU, "lrelu", 1},
	}

	for _, tt := range tests {
		assert.True(t, tt.kind.Valid())
		assert.Equal(t, tt.tag, tt.kind.String())
		assert.Equal(t, tt.arity, tt.kind.Arity(), "arity of %q", tt.tag)
	}

	assert.Equal(t, "**2", ops.Tag(ops.Pow, 2))
	assert.Equal(t, "**-1", ops.Tag(ops.Pow, -1))
	assert.Equal(t, "**0.5", ops.Tag(ops.Pow, 0.5))
	assert.Equal(t, "tanh", ops.Tag(ops.Tanh, 0))
}

func TestKind_Unknown(t *testing.T) {
	k := ops.Kind(200)
	assert.False(t, k.Valid())
	assert.Equal(t, "Kind(200)", k.String())
	assert.Panics(t, func() { ops.RuleFor(k) })
}

func TestBinaryRules(t *testing.T) {
	add := ops.RuleFor(ops.Add)
	assert.Equal(t, 5.0, add.Forward(2, 3, 0))
	dx, dy := add.Partials(2, 3, 5, 0)
	assert.Equal(t, 1.0, dx)
	assert.Equal(t, 1.0, dy)

	mul := ops.RuleFor(ops.Mul)
	assert.Equal(t, 6.0, mul.Forward(2, 3, 0))
	dx, dy = mul.Partials(2, 3, 6, 0)
	assert.Equal(t, 3.0, dx)
	assert.Equal(t, 2.0, dy)
}

// TestUnaryRules_Numerical compares every unary rule with a central difference.
func TestUnaryRules_Numerical(t *testing.T) {
	tests := []struct {
		name string
		kind ops.Kind
		arg  float64
		at   []float64
	}{
		{"pow2", ops.Pow, 2, []float64{-1.5, 0.3, 2}},
		{"pow3", ops.Pow, 3, []float64{-2, 0.5, 1.7}},
		{"reciprocal", ops.Pow, -1, []float64{-3, 0.25, 4}},
		{"sqrt", ops.Pow, 0.5, []float64{0.2, 1, 9}},
		{"tanh", ops.Tanh, 0, []float64{-2, 0, 0.8813735870195432}},
		{"exp", ops.Exp, 0, []float64{-1, 0, 1.5}},
		{"relu", ops.ReLU, 0, []float64{-2, 0.5, 3}},
		{"lrelu", ops.LeakyReLU, ops.DefaultLeakySlope, []float64{-2, 0.5, 3}},
		{"lrelu-wide", ops.LeakyReLU, 0.2, []float64{-4, -0.1, 2}},
	}

	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := ops.RuleFor(tt.kind)
			f := func(x float64) float64 { return rule.Forward(x, 0, tt.arg) }

			for _, x := range tt.at {
				out := rule.Forward(x, 0, tt.arg)
				dx, dy := rule.Partials(x, 0, out, tt.arg)
				want := fd.Derivative(f, x, settings)

				assert.InDelta(t, want, dx, 1e-4, "d/dx at %v", x)
				assert.Zero(t, dy, "unary op must not produce a second partial")
			}
		})
	}
}

func TestActivationForward(t *testing.T) {
	relu := ops.RuleFor(ops.ReLU)
	assert.Equal(t, 0.0, relu.Forward(-3, 0, 0))
	assert.Equal(t, 3.0, relu.Forward(3, 0, 0))

	dx, _ := relu.Partials(0, 0, 0, 0)
	assert.Equal(t, 0.0, dx, "relu gradient at zero is zero")

	lrelu := ops.RuleFor(ops.LeakyReLU)
	assert.InDelta(t, -0.03, lrelu.Forward(-3, 0, ops.DefaultLeakySlope), 1e-12)

	tanh := ops.RuleFor(ops.Tanh)
	require.InDelta(t, math.Sqrt2/2, tanh.Forward(0.8813735870195432, 0, 0), 1e-12)

	leaf := ops.RuleFor(ops.Leaf)
	dx, dy := leaf.Partials(1, 2, 3, 4)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}
