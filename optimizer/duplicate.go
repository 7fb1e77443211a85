package optimizer

import (
	"github.com/zirclang/zirc/ir"
	"github.com/zirclang/zirc/utils"
)

// DuplicateOptimizer drops constraints whose canonical signature was already
// emitted, keeping the first occurrence. The signature covers the quadratic
// and linear sides only; diagnostic messages do not distinguish constraints.
// Must run last: it relies on the canonicalizer having made equal linear
// forms structurally identical.
type DuplicateOptimizer struct {
	seen utils.Map
}

func NewDuplicateOptimizer() *DuplicateOptimizer {
	return &DuplicateOptimizer{seen: make(utils.Map)}
}

type constraintSignature struct {
	quad ir.QuadComb
	lin  ir.LinComb
}

func (s constraintSignature) HashCode() uint64 {
	return s.quad.HashCode()*29 + s.lin.HashCode()
}

func (s constraintSignature) EqualI(o utils.Hashable) bool {
	t := o.(constraintSignature)
	return s.quad.Equal(t.quad) && s.lin.Equal(t.lin)
}

func (o *DuplicateOptimizer) FoldStatement(s ir.Statement) []ir.Statement {
	if s.Type == ir.SConstraint {
		if !o.seen.Add(constraintSignature{quad: s.Quad, lin: s.Lin}, nil) {
			return nil
		}
	}
	return ir.FoldStatement(o, s)
}

func (o *DuplicateOptimizer) FoldProg(p ir.Prog) ir.Prog { return ir.FoldProg(o, p) }

func (o *DuplicateOptimizer) FoldArgument(a ir.Parameter) ir.Parameter {
	return ir.FoldArgument(o, a)
}

func (o *DuplicateOptimizer) FoldVariable(v ir.Variable) ir.Variable {
	return ir.FoldVariable(o, v)
}

func (o *DuplicateOptimizer) FoldLinComb(l ir.LinComb) ir.LinComb {
	return ir.FoldLinComb(o, l)
}

func (o *DuplicateOptimizer) FoldQuadComb(q ir.QuadComb) ir.QuadComb {
	return ir.FoldQuadComb(o, q)
}

func (o *DuplicateOptimizer) FoldDirective(d ir.Directive) ir.Directive {
	return ir.FoldDirective(o, d)
}
