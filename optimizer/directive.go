package optimizer

import (
	"github.com/zirclang/zirc/ir"
)

// DirectiveOptimizer prunes directives whose outputs no surviving statement
// consumes. A directive is held back when it arrives and released, in
// original order and ahead of its first consumer, as soon as a surviving
// statement (or a program return, at Flush time) references one of its
// outputs. Releasing a directive first releases the pending directives its
// own inputs depend on. Anything still held at the end of the stream is
// dead and dropped.
//
// This pass must run after redefinition and tautology elimination: those
// passes remove the constraints that would otherwise keep a dead directive's
// outputs referenced.
type DirectiveOptimizer struct {
	pending  []pendingDirective
	producer map[ir.Variable]int
}

type pendingDirective struct {
	d        ir.Directive
	released bool
}

func NewDirectiveOptimizer() *DirectiveOptimizer {
	return &DirectiveOptimizer{
		producer: make(map[ir.Variable]int),
	}
}

func (o *DirectiveOptimizer) FoldStatement(s ir.Statement) []ir.Statement {
	switch s.Type {
	case ir.SDirective:
		idx := len(o.pending)
		o.pending = append(o.pending, pendingDirective{d: s.Directive})
		for _, out := range s.Directive.Outputs {
			o.producer[out] = idx
		}
		return nil
	case ir.SConstraint:
		var res []ir.Statement
		o.releaseLinComb(s.Quad.Left, &res)
		o.releaseLinComb(s.Quad.Right, &res)
		o.releaseLinComb(s.Lin, &res)
		return append(res, s)
	}
	panic("unknown statement type")
}

// Flush releases the directives the program returns depend on and drops the
// rest. The result belongs at the end of the statement sequence.
func (o *DirectiveOptimizer) Flush(returns []ir.Variable) []ir.Statement {
	var res []ir.Statement
	for _, r := range returns {
		if idx, ok := o.producer[r]; ok {
			o.release(idx, &res)
		}
	}
	o.pending = nil
	o.producer = make(map[ir.Variable]int)
	return res
}

func (o *DirectiveOptimizer) releaseLinComb(l ir.LinComb, res *[]ir.Statement) {
	for _, t := range l {
		if idx, ok := o.producer[t.Variable]; ok {
			o.release(idx, res)
		}
	}
}

// release emits pending directive idx, releasing its own pending inputs
// first so the emitted order respects data dependencies.
func (o *DirectiveOptimizer) release(idx int, res *[]ir.Statement) {
	if o.pending[idx].released {
		return
	}
	o.pending[idx].released = true
	for _, in := range o.pending[idx].d.Inputs {
		o.releaseLinComb(in.Left, res)
		o.releaseLinComb(in.Right, res)
	}
	*res = append(*res, ir.NewDirectiveStatement(o.pending[idx].d))
}

func (o *DirectiveOptimizer) FoldProg(p ir.Prog) ir.Prog { return ir.FoldProg(o, p) }

func (o *DirectiveOptimizer) FoldArgument(a ir.Parameter) ir.Parameter {
	return ir.FoldArgument(o, a)
}

func (o *DirectiveOptimizer) FoldVariable(v ir.Variable) ir.Variable {
	return ir.FoldVariable(o, v)
}

func (o *DirectiveOptimizer) FoldLinComb(l ir.LinComb) ir.LinComb {
	return ir.FoldLinComb(o, l)
}

func (o *DirectiveOptimizer) FoldQuadComb(q ir.QuadComb) ir.QuadComb {
	return ir.FoldQuadComb(o, q)
}

func (o *DirectiveOptimizer) FoldDirective(d ir.Directive) ir.Directive {
	return ir.FoldDirective(o, d)
}
