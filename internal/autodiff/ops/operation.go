// Package ops defines the operator tags and derivative rules of the scalar autodiff engine.
//
// Every node of a computation graph carries a Kind. The graph never stores
// closures: during the backward pass it looks up the Rule for the node's Kind
// and asks it for the local partial derivatives.
//
// Supported operations:
//   - Add: x + y (d/dx = 1, d/dy = 1)
//   - Mul: x * y (d/dx = y, d/dy = x)
//   - Pow: x ** c for a constant c (d/dx = c * x^(c-1))
//   - Tanh: tanh(x) (d/dx = 1 - out²)
//   - Exp: exp(x) (d/dx = out)
//   - ReLU: max(0, x) (d/dx = 1 if out > 0, else 0)
//   - LeakyReLU: x if x > 0, else alpha*x (d/dx = 1 if out > 0, else alpha)
package ops

import (
	"fmt"
	"strconv"
)

// Kind identifies the operation that produced a node.
type Kind uint8

// Operation kinds. Leaf marks nodes created directly from a number.
const (
	Leaf Kind = iota
	Add
	Mul
	Pow
	Tanh
	Exp
	ReLU
	LeakyReLU
)

// Rule is the forward formula and local derivative of one operation.
//
// x and y are the operand values (y is ignored by unary operations), out is
// the already computed output and arg is the node's constant argument (the
// exponent for Pow, the negative slope for LeakyReLU).
type Rule interface {
	// Forward computes the output value.
	Forward(x, y, arg float64) float64

	// Partials returns d(out)/dx and d(out)/dy evaluated at the forward values.
	Partials(x, y, out, arg float64) (dx, dy float64)
}

var rules = [...]Rule{
	Leaf:      leafRule{},
	Add:       AddRule{},
	Mul:       MulRule{},
	Pow:       PowRule{},
	Tanh:      TanhRule{},
	Exp:       ExpRule{},
	ReLU:      ReLURule{},
	LeakyReLU: LeakyReLURule{},
}

var names = [...]string{
	Leaf:      "",
	Add:       "+",
	Mul:       "*",
	Pow:       "**",
	Tanh:      "tanh",
	Exp:       "exp",
	ReLU:      "relu",
	LeakyReLU: "lrelu",
}

// RuleFor returns the rule registered for k.
func RuleFor(k Kind) Rule {
	if !k.Valid() {
		panic(fmt.Sprintf("ops: unknown kind %d", k))
	}
	return rules[k]
}

// Valid reports whether k is a known operation.
func (k Kind) Valid() bool {
	return int(k) < len(rules)
}

// String returns the op tag; leaves have an empty tag.
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return names[k]
}

// Arity returns the number of graph operands the operation consumes.
func (k Kind) Arity() int {
	switch k {
	case Leaf:
		return 0
	case Add, Mul:
		return 2
	default:
		return 1
	}
}

// Tag renders the op tag of a node, including its constant argument where
// the operation has one (Pow renders as "**2").
func Tag(k Kind, arg float64) string {
	if k == Pow {
		return names[Pow] + strconv.FormatFloat(arg, 'g', -1, 64)
	}
	return k.String()
}

// leafRule is used for nodes without operands; nothing flows through it.
type leafRule struct{}

func (leafRule) Forward(x, _, _ float64) float64 { return x }

func (leafRule) Partials(_, _, _, _ float64) (dx, dy float64) { return 0, 0 }
