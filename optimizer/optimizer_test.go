package optimizer

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/stretchr/testify/require"

	"github.com/zirclang/zirc/field"
	"github.com/zirclang/zirc/ir"
)

func squareHint(field *big.Int, inputs, outputs []*big.Int) error {
	outputs[0].Mul(inputs[0], inputs[0])
	outputs[0].Mod(outputs[0], field)
	return nil
}

func bn254() field.Field {
	return field.GetFieldFromOrder(ecc.BN254.ScalarField())
}

func TestTautologyRemoved(t *testing.T) {
	e := bn254()
	one := e.One()
	x := ir.NewVariable(1)
	y := ir.NewVariable(2)

	p := ir.Prog{
		Arguments: []ir.Parameter{ir.NewParameter(x, false)},
		Statements: []ir.Statement{
			// x*1 == x holds for every assignment
			ir.NewConstraint(
				ir.NewQuadComb(ir.NewLinComb(x, one), ir.NewConstant(one)),
				ir.NewLinComb(x, one),
				"",
			),
			ir.NewConstraint(
				ir.NewQuadComb(ir.NewLinComb(x, one), ir.NewLinComb(x, one)),
				ir.NewLinComb(y, one),
				"",
			),
		},
		Returns: []ir.Variable{y},
	}
	require.NoError(t, ir.Validate(p))

	opt := Optimize(p, e)
	require.Len(t, opt.Statements, 1)
	require.Equal(t, ir.NewLinComb(y, one), opt.Statements[0].Lin)
	require.NoError(t, ir.Validate(opt))
}

func TestRedefinitionEliminated(t *testing.T) {
	e := bn254()
	one := e.One()
	x := ir.NewVariable(1)
	y := ir.NewVariable(2)
	z := ir.NewVariable(3)

	p := ir.Prog{
		Arguments: []ir.Parameter{ir.NewParameter(x, false)},
		Statements: []ir.Statement{
			// y := x
			ir.NewConstraint(
				ir.FromLinComb(e, ir.NewLinComb(x, one)),
				ir.NewLinComb(y, one),
				"",
			),
			// z = y*y
			ir.NewConstraint(
				ir.NewQuadComb(ir.NewLinComb(y, one), ir.NewLinComb(y, one)),
				ir.NewLinComb(z, one),
				"",
			),
		},
		Returns: []ir.Variable{z},
	}
	require.NoError(t, ir.Validate(p))

	opt := Optimize(p, e)
	require.Len(t, opt.Statements, 1)

	// every former reference to y now reads x
	s := opt.Statements[0]
	require.Equal(t, ir.NewLinComb(x, one), s.Quad.Left)
	require.Equal(t, ir.NewLinComb(x, one), s.Quad.Right)
	require.Equal(t, ir.NewLinComb(z, one), s.Lin)
	require.NoError(t, ir.Validate(opt))
}

func TestCheckOnExistingWireKept(t *testing.T) {
	e := bn254()
	one := e.One()
	x := ir.NewVariable(1)
	a := ir.NewVariable(2)
	z := ir.NewVariable(3)

	p := ir.Prog{
		Arguments: []ir.Parameter{
			ir.NewParameter(x, false),
			ir.NewParameter(a, false),
		},
		Statements: []ir.Statement{
			// z = x*x introduces z
			ir.NewConstraint(
				ir.NewQuadComb(ir.NewLinComb(x, one), ir.NewLinComb(x, one)),
				ir.NewLinComb(z, one),
				"",
			),
			// a == z is definition-shaped but z already exists: it is a
			// check, not a redefinition, and must survive
			ir.NewConstraint(
				ir.FromLinComb(e, ir.NewLinComb(a, one)),
				ir.NewLinComb(z, one),
				"",
			),
		},
		Returns: []ir.Variable{z},
	}
	require.NoError(t, ir.Validate(p))

	opt := Optimize(p, e)
	require.Len(t, opt.Statements, 2)

	// an assignment violating the check is rejected before and after
	bad := ir.Assignment{
		ir.One: one,
		x:      e.FromInterface(3),
		a:      e.FromInterface(5),
		z:      e.FromInterface(9),
	}
	require.Error(t, p.Satisfied(e, bad))
	require.Error(t, opt.Satisfied(e, bad))

	// a consistent assignment still goes through
	good, err := p.Eval(e, ir.Assignment{x: e.FromInterface(3), a: e.FromInterface(9)})
	require.NoError(t, err)
	require.NoError(t, opt.Satisfied(e, good))
}

func TestReturnWireRenamed(t *testing.T) {
	e := bn254()
	one := e.One()
	x := ir.NewVariable(1)
	y := ir.NewVariable(2)

	p := ir.Prog{
		Arguments: []ir.Parameter{ir.NewParameter(x, false)},
		Statements: []ir.Statement{
			ir.NewConstraint(
				ir.FromLinComb(e, ir.NewLinComb(x, one)),
				ir.NewLinComb(y, one),
				"",
			),
		},
		Returns: []ir.Variable{y},
	}

	opt := Optimize(p, e)
	require.Empty(t, opt.Statements)
	require.Equal(t, []ir.Variable{x}, opt.Returns)
	require.NoError(t, ir.Validate(opt))
}

func TestArgumentNotEliminated(t *testing.T) {
	e := bn254()
	one := e.One()
	x1 := ir.NewVariable(1)
	x2 := ir.NewVariable(2)

	p := ir.Prog{
		Arguments: []ir.Parameter{
			ir.NewParameter(x1, false),
			ir.NewParameter(x2, false),
		},
		Statements: []ir.Statement{
			// shaped like "x1 := x2", but x1 is an argument
			ir.NewConstraint(
				ir.FromLinComb(e, ir.NewLinComb(x2, one)),
				ir.NewLinComb(x1, one),
				"",
			),
		},
		Returns: []ir.Variable{x1},
	}

	opt := Optimize(p, e)
	require.Len(t, opt.Statements, 1)
	require.Equal(t, p.Arguments, opt.Arguments)
	require.Equal(t, p.Returns, opt.Returns)
}

func TestDirectiveOutputNotEliminated(t *testing.T) {
	e := bn254()
	one := e.One()
	x := ir.NewVariable(1)
	h := ir.NewVariable(2)

	p := ir.Prog{
		Arguments: []ir.Parameter{ir.NewParameter(x, false)},
		Statements: []ir.Statement{
			ir.NewDirectiveStatement(ir.NewDirective(
				[]ir.QuadComb{ir.FromLinComb(e, ir.NewLinComb(x, one))},
				[]ir.Variable{h},
				squareHint,
			)),
			// shaped like "h := x", but h is a directive output
			ir.NewConstraint(
				ir.FromLinComb(e, ir.NewLinComb(x, one)),
				ir.NewLinComb(h, one),
				"",
			),
		},
		Returns: []ir.Variable{h},
	}

	opt := Optimize(p, e)
	require.Len(t, opt.Statements, 2)
	require.Equal(t, ir.SDirective, opt.Statements[0].Type)
	require.Equal(t, ir.SConstraint, opt.Statements[1].Type)
	require.NoError(t, ir.Validate(opt))
}

func TestDuplicatesCollapsed(t *testing.T) {
	e := bn254()
	one := e.One()
	x := ir.NewVariable(1)
	w := ir.NewVariable(2)
	y := ir.NewVariable(3)

	p := ir.Prog{
		Arguments: []ir.Parameter{
			ir.NewParameter(x, false),
			ir.NewParameter(w, false),
		},
		Statements: []ir.Statement{
			// same constraint twice, with terms in different insertion
			// order and different diagnostic messages
			ir.NewConstraint(
				ir.NewQuadComb(
					ir.LinComb{{Variable: x, Coeff: one}, {Variable: w, Coeff: one}},
					ir.NewLinComb(x, one),
				),
				ir.NewLinComb(y, one),
				"first",
			),
			ir.NewConstraint(
				ir.NewQuadComb(
					ir.LinComb{{Variable: w, Coeff: one}, {Variable: x, Coeff: one}},
					ir.NewLinComb(x, one),
				),
				ir.NewLinComb(y, one),
				"second",
			),
		},
		Returns: []ir.Variable{y},
	}
	require.NoError(t, ir.Validate(p))

	opt := Optimize(p, e)
	require.Len(t, opt.Statements, 1)
	require.Equal(t, "first", opt.Statements[0].Message)
}

func TestDeadDirectiveRemoved(t *testing.T) {
	e := bn254()
	one := e.One()
	x := ir.NewVariable(1)
	h := ir.NewVariable(2)
	z := ir.NewVariable(3)

	p := ir.Prog{
		Arguments: []ir.Parameter{ir.NewParameter(x, false)},
		Statements: []ir.Statement{
			// h is consumed by nothing
			ir.NewDirectiveStatement(ir.NewDirective(
				[]ir.QuadComb{ir.FromLinComb(e, ir.NewLinComb(x, one))},
				[]ir.Variable{h},
				squareHint,
			)),
			ir.NewConstraint(
				ir.NewQuadComb(ir.NewLinComb(x, one), ir.NewLinComb(x, one)),
				ir.NewLinComb(z, one),
				"",
			),
		},
		Returns: []ir.Variable{z},
	}

	opt := Optimize(p, e)
	require.Len(t, opt.Statements, 1)
	require.Equal(t, ir.SConstraint, opt.Statements[0].Type)
	require.NoError(t, ir.Validate(opt))
}

func TestDirectiveKeptWhenReturned(t *testing.T) {
	e := bn254()
	one := e.One()
	x := ir.NewVariable(1)
	h := ir.NewVariable(2)

	p := ir.Prog{
		Arguments: []ir.Parameter{ir.NewParameter(x, false)},
		Statements: []ir.Statement{
			ir.NewDirectiveStatement(ir.NewDirective(
				[]ir.QuadComb{ir.FromLinComb(e, ir.NewLinComb(x, one))},
				[]ir.Variable{h},
				squareHint,
			)),
		},
		Returns: []ir.Variable{h},
	}

	opt := Optimize(p, e)
	require.Len(t, opt.Statements, 1)
	require.Equal(t, ir.SDirective, opt.Statements[0].Type)
	require.NoError(t, ir.Validate(opt))
}

// messyProg exercises all five passes at once: a redefinition feeding a
// directive, a tautology, and a duplicated constraint.
func messyProg(e field.Field) ir.Prog {
	one := e.One()
	x := ir.NewVariable(1)
	y := ir.NewVariable(2)
	h := ir.NewVariable(3)
	z := ir.NewVariable(4)

	return ir.Prog{
		Arguments: []ir.Parameter{ir.NewParameter(x, false)},
		Statements: []ir.Statement{
			// y := x
			ir.NewConstraint(
				ir.FromLinComb(e, ir.NewLinComb(x, one)),
				ir.NewLinComb(y, one),
				"",
			),
			// h = square(y)
			ir.NewDirectiveStatement(ir.NewDirective(
				[]ir.QuadComb{ir.FromLinComb(e, ir.NewLinComb(y, one))},
				[]ir.Variable{h},
				squareHint,
			)),
			// z = y*h
			ir.NewConstraint(
				ir.NewQuadComb(ir.NewLinComb(y, one), ir.NewLinComb(h, one)),
				ir.NewLinComb(z, one),
				"",
			),
			// tautology
			ir.NewConstraint(
				ir.NewQuadComb(ir.NewLinComb(x, one), ir.NewConstant(one)),
				ir.NewLinComb(x, one),
				"",
			),
			// duplicate of z = y*h
			ir.NewConstraint(
				ir.NewQuadComb(ir.NewLinComb(y, one), ir.NewLinComb(h, one)),
				ir.NewLinComb(z, one),
				"again",
			),
		},
		Returns: []ir.Variable{z},
	}
}

func TestOptimizeIdempotent(t *testing.T) {
	e := bn254()
	p := messyProg(e)
	require.NoError(t, ir.Validate(p))

	opt := Optimize(p, e)
	require.NoError(t, ir.Validate(opt))
	again := Optimize(opt, e)

	require.Equal(t, opt.Format(e), again.Format(e))
	require.Len(t, again.Statements, len(opt.Statements))
}

func TestOptimizePreservesSemantics(t *testing.T) {
	e := bn254()
	p := messyProg(e)
	x := ir.NewVariable(1)
	z := ir.NewVariable(4)

	inputs := ir.Assignment{x: e.FromInterface(3)}
	before, err := p.Eval(e, inputs)
	require.NoError(t, err)

	opt := Optimize(p, e)

	// the original witness satisfies the optimized program
	require.NoError(t, opt.Satisfied(e, before))

	// executing the optimized program computes the same outputs
	after, err := opt.Eval(e, inputs)
	require.NoError(t, err)
	require.Equal(t, before[z], after[z])
	require.Equal(t, e.FromInterface(27), after[z])

	// the external contract is unchanged
	require.Equal(t, p.Arguments, opt.Arguments)
	require.Equal(t, p.Returns, opt.Returns)
}
