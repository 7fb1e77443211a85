package ir

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint/solver"
	"github.com/stretchr/testify/require"

	"github.com/zirclang/zirc/field"
)

func init() {
	solver.RegisterHint(squareHint)
}

func TestSerializeRoundTrip(t *testing.T) {
	e := field.GetFieldFromOrder(ecc.BN254.ScalarField())
	one := e.One()
	x := NewVariable(1)
	h := NewVariable(2)

	p := Prog{
		Arguments: []Parameter{NewParameter(x, true)},
		Statements: []Statement{
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
		},
		Returns: []Variable{h},
	}

	q := DeserializeProg(p.Serialize())

	require.Equal(t, p.Format(e), q.Format(e))
	require.Equal(t,
		solver.GetHintID(p.Statements[0].Directive.Hint),
		solver.GetHintID(q.Statements[0].Directive.Hint))

	// the rebound hint still runs
	values, err := q.Eval(e, Assignment{x: e.FromInterface(5)})
	require.NoError(t, err)
	require.Equal(t, e.FromInterface(25), values[h])
}
