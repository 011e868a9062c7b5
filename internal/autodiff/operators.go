package autodiff

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff/ops"
)

// sameGraph panics unless v and other live in the same arena.
func (v Value) sameGraph(other Value) {
	if v.g != other.g {
		panic(fmt.Sprintf("autodiff: operands %d and %d belong to different graphs", v.id, other.id))
	}
}

// Add returns v + other.
func (v Value) Add(other Value) Value {
	v.sameGraph(other)
	return v.g.binary(ops.Add, v, other)
}

// Mul returns v * other.
func (v Value) Mul(other Value) Value {
	v.sameGraph(other)
	return v.g.binary(ops.Mul, v, other)
}

// Pow returns v raised to the constant exponent.
//
// The exponent is not a graph node; no gradient flows to it.
func (v Value) Pow(exponent float64) Value {
	return v.g.unary(ops.Pow, v, exponent)
}

// Neg returns -v, recorded as v * -1.
func (v Value) Neg() Value {
	return v.MulScalar(-1)
}

// Sub returns v - other, recorded as v + (other * -1).
func (v Value) Sub(other Value) Value {
	return v.Add(other.Neg())
}

// Div returns v / other, recorded as v * other**-1.
func (v Value) Div(other Value) Value {
	return v.Mul(other.Pow(-1))
}

// AddScalar returns v + c, lifting c to a fresh leaf.
func (v Value) AddScalar(c float64) Value {
	return v.Add(v.g.Leaf(c))
}

// MulScalar returns v * c, lifting c to a fresh leaf.
func (v Value) MulScalar(c float64) Value {
	return v.Mul(v.g.Leaf(c))
}

// SubScalar returns v - c.
func (v Value) SubScalar(c float64) Value {
	return v.Sub(v.g.Leaf(c))
}

// DivScalar returns v / c.
func (v Value) DivScalar(c float64) Value {
	return v.Div(v.g.Leaf(c))
}

// Tanh returns tanh(v).
func (v Value) Tanh() Value {
	return v.g.unary(ops.Tanh, v, 0)
}

// Exp returns e^v.
func (v Value) Exp() Value {
	return v.g.unary(ops.Exp, v, 0)
}

// ReLU returns max(0, v).
func (v Value) ReLU() Value {
	return v.g.unary(ops.ReLU, v, 0)
}

// LeakyReLU returns v for positive v and 0.01*v otherwise.
func (v Value) LeakyReLU() Value {
	return v.LeakyReLUSlope(ops.DefaultLeakySlope)
}

// LeakyReLUSlope is LeakyReLU with a custom negative slope alpha > 0.
func (v Value) LeakyReLUSlope(alpha float64) Value {
	if alpha <= 0 {
		panic(fmt.Sprintf("autodiff: leaky relu slope must be positive, got %g", alpha))
	}
	return v.g.unary(ops.LeakyReLU, v, alpha)
}

// Sum adds vs left to right. It panics on an empty slice.
func Sum(vs []Value) Value {
	if len(vs) == 0 {
		panic("autodiff: sum of no values")
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = acc.Add(v)
	}
	return acc
}
