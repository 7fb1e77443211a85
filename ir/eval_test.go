package ir

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/stretchr/testify/require"

	"github.com/zirclang/zirc/field"
)

func TestEval(t *testing.T) {
	e := field.GetFieldFromOrder(ecc.BN254.ScalarField())
	one := e.One()
	x := NewVariable(1)
	h := NewVariable(2)
	z := NewVariable(3)

	p := Prog{
		Arguments: []Parameter{NewParameter(x, false)},
		Statements: []Statement{
			// h = square(x), then constrain it, then define z = h*h
			NewDirectiveStatement(NewDirective(
				[]QuadComb{FromLinComb(e, NewLinComb(x, one))},
				[]Variable{h},
				squareHint,
			)),
			NewConstraint(
				NewQuadComb(NewLinComb(x, one), NewLinComb(x, one)),
				NewLinComb(h, one),
				"h = x*x",
			),
			NewConstraint(
				NewQuadComb(NewLinComb(h, one), NewLinComb(h, one)),
				NewLinComb(z, one),
				"",
			),
		},
		Returns: []Variable{z},
	}
	require.NoError(t, Validate(p))

	values, err := p.Eval(e, Assignment{x: e.FromInterface(3)})
	require.NoError(t, err)
	require.Equal(t, e.FromInterface(9), values[h])
	require.Equal(t, e.FromInterface(81), values[z])
	require.NoError(t, p.Satisfied(e, values))
}

func TestEvalUnsatisfied(t *testing.T) {
	e := field.GetFieldFromOrder(ecc.BN254.ScalarField())
	one := e.One()
	x := NewVariable(1)

	p := Prog{
		Arguments: []Parameter{NewParameter(x, false)},
		Statements: []Statement{
			// x*x == x only holds for 0 and 1
			NewConstraint(
				NewQuadComb(NewLinComb(x, one), NewLinComb(x, one)),
				NewLinComb(x, one),
				"x is a bit",
			),
		},
		Returns: []Variable{x},
	}

	_, err := p.Eval(e, Assignment{x: e.FromInterface(2)})
	require.ErrorContains(t, err, "x is a bit")

	_, err = p.Eval(e, Assignment{x: e.One()})
	require.NoError(t, err)
}

func TestEvalMissingArgument(t *testing.T) {
	e := field.GetFieldFromOrder(ecc.BN254.ScalarField())
	x := NewVariable(1)
	p := Prog{
		Arguments: []Parameter{NewParameter(x, false)},
		Returns:   []Variable{x},
	}
	_, err := p.Eval(e, Assignment{})
	require.Error(t, err)
}

func TestValidateRejectsUseBeforeDefinition(t *testing.T) {
	e := field.GetFieldFromOrder(ecc.BN254.ScalarField())
	one := e.One()
	x := NewVariable(1)
	y := NewVariable(2)
	z := NewVariable(3)

	p := Prog{
		Arguments: []Parameter{NewParameter(x, false)},
		Statements: []Statement{
			// two fresh wires in a single constraint
			NewConstraint(
				NewQuadComb(NewLinComb(y, one), NewLinComb(x, one)),
				NewLinComb(z, one),
				"",
			),
		},
		Returns: []Variable{z},
	}
	require.Error(t, Validate(p))
}
