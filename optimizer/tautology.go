package optimizer

import (
	"github.com/consensys/gnark/constraint"

	"github.com/zirclang/zirc/ir"
)

// TautologyOptimizer drops constraints that hold for every assignment: the
// quadratic side degenerates to a linear form equal, as a linear form, to
// the result side. Such constraints add no information.
type TautologyOptimizer struct {
	engine constraint.Field
}

func NewTautologyOptimizer(engine constraint.Field) *TautologyOptimizer {
	return &TautologyOptimizer{engine: engine}
}

func (o *TautologyOptimizer) FoldStatement(s ir.Statement) []ir.Statement {
	if s.Type == ir.SConstraint {
		if form, ok := s.Quad.TryLinear(o.engine); ok && form.Equal(s.Lin.Reduce(o.engine)) {
			return nil
		}
	}
	return ir.FoldStatement(o, s)
}

func (o *TautologyOptimizer) FoldProg(p ir.Prog) ir.Prog { return ir.FoldProg(o, p) }

func (o *TautologyOptimizer) FoldArgument(a ir.Parameter) ir.Parameter {
	return ir.FoldArgument(o, a)
}

func (o *TautologyOptimizer) FoldVariable(v ir.Variable) ir.Variable {
	return ir.FoldVariable(o, v)
}

func (o *TautologyOptimizer) FoldLinComb(l ir.LinComb) ir.LinComb {
	return ir.FoldLinComb(o, l)
}

func (o *TautologyOptimizer) FoldQuadComb(q ir.QuadComb) ir.QuadComb {
	return ir.FoldQuadComb(o, q)
}

func (o *TautologyOptimizer) FoldDirective(d ir.Directive) ir.Directive {
	return ir.FoldDirective(o, d)
}
