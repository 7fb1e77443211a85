package optimizer

import (
	"github.com/consensys/gnark/constraint"

	"github.com/zirclang/zirc/ir"
)

// Canonicalizer rewrites every linear combination into canonical form:
// same-wire terms merged, zero coefficients dropped, terms sorted by wire.
// Equal linear forms become identical values, which is what allows the
// duplicate pass to rely on structural equality.
type Canonicalizer struct {
	engine constraint.Field
}

func NewCanonicalizer(engine constraint.Field) *Canonicalizer {
	return &Canonicalizer{engine: engine}
}

func (o *Canonicalizer) FoldLinComb(l ir.LinComb) ir.LinComb {
	return l.Reduce(o.engine)
}

func (o *Canonicalizer) FoldProg(p ir.Prog) ir.Prog { return ir.FoldProg(o, p) }

func (o *Canonicalizer) FoldArgument(a ir.Parameter) ir.Parameter {
	return ir.FoldArgument(o, a)
}

func (o *Canonicalizer) FoldVariable(v ir.Variable) ir.Variable {
	return ir.FoldVariable(o, v)
}

func (o *Canonicalizer) FoldStatement(s ir.Statement) []ir.Statement {
	return ir.FoldStatement(o, s)
}

func (o *Canonicalizer) FoldQuadComb(q ir.QuadComb) ir.QuadComb {
	return ir.FoldQuadComb(o, q)
}

func (o *Canonicalizer) FoldDirective(d ir.Directive) ir.Directive {
	return ir.FoldDirective(o, d)
}
