package ir

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/stretchr/testify/require"

	"github.com/zirclang/zirc/field"
)

// identityFolder forwards every method to its default.
type identityFolder struct{}

func (f identityFolder) FoldProg(p Prog) Prog                  { return FoldProg(f, p) }
func (f identityFolder) FoldArgument(a Parameter) Parameter    { return FoldArgument(f, a) }
func (f identityFolder) FoldVariable(v Variable) Variable      { return FoldVariable(f, v) }
func (f identityFolder) FoldStatement(s Statement) []Statement { return FoldStatement(f, s) }
func (f identityFolder) FoldLinComb(l LinComb) LinComb         { return FoldLinComb(f, l) }
func (f identityFolder) FoldQuadComb(q QuadComb) QuadComb      { return FoldQuadComb(f, q) }
func (f identityFolder) FoldDirective(d Directive) Directive   { return FoldDirective(f, d) }

func squareHint(field *big.Int, inputs, outputs []*big.Int) error {
	outputs[0].Mul(inputs[0], inputs[0])
	outputs[0].Mod(outputs[0], field)
	return nil
}

func TestFolderIdentity(t *testing.T) {
	e := field.GetFieldFromOrder(ecc.BN254.ScalarField())
	one := e.One()
	x := NewVariable(1)
	y := NewVariable(2)

	p := Prog{
		Arguments: []Parameter{NewParameter(x, false)},
		Statements: []Statement{
			NewConstraint(
				NewQuadComb(NewLinComb(x, one), NewLinComb(x, one)),
				NewLinComb(y, one),
				"y = x*x",
			),
		},
		Returns: []Variable{y},
	}

	require.Equal(t, p, identityFolder{}.FoldProg(p))
}

func TestFolderIdentityWithDirective(t *testing.T) {
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
				"",
			),
		},
		Returns: []Variable{h},
	}

	// hint functions do not compare, so compare the rendering
	folded := identityFolder{}.FoldProg(p)
	require.Equal(t, p.Format(e), folded.Format(e))
	require.Len(t, folded.Statements, len(p.Statements))
}

// substitutionFolder renames one wire; everything else is default.
type substitutionFolder struct {
	from, to Variable
}

func (f substitutionFolder) FoldVariable(v Variable) Variable {
	if v == f.from {
		return f.to
	}
	return v
}

// the embedded defaults must dispatch through the outer folder
func (f substitutionFolder) FoldProg(p Prog) Prog                  { return FoldProg(f, p) }
func (f substitutionFolder) FoldArgument(a Parameter) Parameter    { return FoldArgument(f, a) }
func (f substitutionFolder) FoldStatement(s Statement) []Statement { return FoldStatement(f, s) }
func (f substitutionFolder) FoldLinComb(l LinComb) LinComb         { return FoldLinComb(f, l) }
func (f substitutionFolder) FoldQuadComb(q QuadComb) QuadComb      { return FoldQuadComb(f, q) }
func (f substitutionFolder) FoldDirective(d Directive) Directive   { return FoldDirective(f, d) }

func TestFolderVariableSubstitutionReachesAllSites(t *testing.T) {
	e := field.GetFieldFromOrder(ecc.BN254.ScalarField())
	one := e.One()
	x := NewVariable(1)
	y := NewVariable(2)
	z := NewVariable(3)

	p := Prog{
		Arguments: []Parameter{NewParameter(x, false)},
		Statements: []Statement{
			NewDirectiveStatement(NewDirective(
				[]QuadComb{FromLinComb(e, NewLinComb(x, one))},
				[]Variable{z},
				squareHint,
			)),
			NewConstraint(
				NewQuadComb(NewLinComb(x, one), NewLinComb(x, one)),
				NewLinComb(z, one),
				"",
			),
		},
		Returns: []Variable{x},
	}

	folded := substitutionFolder{from: x, to: y}.FoldProg(p)

	require.Equal(t, y, folded.Arguments[0].Variable)
	require.Equal(t, y, folded.Returns[0])
	require.Equal(t, y, folded.Statements[0].Directive.Inputs[0].Right[0].Variable)
	require.Equal(t, y, folded.Statements[1].Quad.Left[0].Variable)
	require.Equal(t, y, folded.Statements[1].Quad.Right[0].Variable)
	require.Equal(t, z, folded.Statements[1].Lin[0].Variable)
}
