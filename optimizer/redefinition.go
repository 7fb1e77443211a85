package optimizer

import (
	"github.com/consensys/gnark/constraint"

	"github.com/zirclang/zirc/ir"
)

// RedefinitionOptimizer removes constraints whose only effect is to name an
// existing linear form under a new wire, recording a substitution from the
// wire to the form. Later occurrences of the wire are rewritten through the
// substitution, so the defining statement carries no information.
//
// Only a fresh wire can be defined away: if the wire is a program argument,
// a directive output, or was already introduced by an earlier surviving
// statement, a constraint of definition shape is really a check on an
// existing value and dropping it would enlarge the solution set. A return
// wire is eliminated only when its defining form is a single wire with
// coefficient one, since a return slot can name a wire but not a
// combination.
type RedefinitionOptimizer struct {
	engine constraint.Field

	// substitution maps an eliminated wire to its defining linear form,
	// already expressed in terms of surviving wires
	substitution map[ir.Variable]ir.LinComb

	// wires introduced by an argument or an earlier statement; a pure
	// definition may only name a wire not yet here
	defined map[ir.Variable]bool

	returns map[ir.Variable]bool
}

func NewRedefinitionOptimizer(engine constraint.Field, p ir.Prog) *RedefinitionOptimizer {
	defined := map[ir.Variable]bool{ir.One: true}
	for _, a := range p.Arguments {
		defined[a.Variable] = true
	}
	returns := make(map[ir.Variable]bool, len(p.Returns))
	for _, r := range p.Returns {
		returns[r] = true
	}
	return &RedefinitionOptimizer{
		engine:       engine,
		substitution: make(map[ir.Variable]ir.LinComb),
		defined:      defined,
		returns:      returns,
	}
}

func (o *RedefinitionOptimizer) FoldStatement(s ir.Statement) []ir.Statement {
	switch s.Type {
	case ir.SConstraint:
		quad := o.FoldQuadComb(s.Quad)
		lin := o.FoldLinComb(s.Lin)
		if sub, ok := o.tryRedefinition(quad, lin); ok {
			o.substitution[sub.wire] = sub.form
			o.defined[sub.wire] = true
			return nil
		}
		o.defineLinComb(quad.Left)
		o.defineLinComb(quad.Right)
		o.defineLinComb(lin)
		return []ir.Statement{ir.NewConstraint(quad, lin, s.Message)}
	case ir.SDirective:
		d := o.FoldDirective(s.Directive)
		for _, in := range d.Inputs {
			o.defineLinComb(in.Left)
			o.defineLinComb(in.Right)
		}
		for _, out := range d.Outputs {
			o.defined[out] = true
		}
		return []ir.Statement{ir.NewDirectiveStatement(d)}
	}
	panic("unknown statement type")
}

type redefinition struct {
	wire ir.Variable
	form ir.LinComb
}

// tryRedefinition decides whether the constraint quad == lin is a pure
// definition "wire := linear form" eligible for elimination. The shape is
// kept deliberately narrow: the result side must be a single fresh wire with
// coefficient one, and the quadratic side must degenerate to a linear form
// not referencing that wire.
func (o *RedefinitionOptimizer) tryRedefinition(quad ir.QuadComb, lin ir.LinComb) (redefinition, bool) {
	v, c, ok := lin.Reduce(o.engine).TrySummand()
	if !ok || !o.engine.IsOne(c) {
		return redefinition{}, false
	}
	if o.defined[v] {
		return redefinition{}, false
	}
	form, ok := quad.TryLinear(o.engine)
	if !ok {
		return redefinition{}, false
	}
	for _, t := range form {
		if t.Variable == v {
			// self-referencing, not a definition
			return redefinition{}, false
		}
	}
	if o.returns[v] {
		if _, cc, single := form.TrySummand(); !single || !o.engine.IsOne(cc) {
			return redefinition{}, false
		}
	}
	return redefinition{wire: v, form: form}, true
}

func (o *RedefinitionOptimizer) defineLinComb(l ir.LinComb) {
	for _, t := range l {
		o.defined[t.Variable] = true
	}
}

// FoldLinComb expands every substituted wire into its defining form, scaled
// by the occurrence's coefficient.
func (o *RedefinitionOptimizer) FoldLinComb(l ir.LinComb) ir.LinComb {
	res := make(ir.LinComb, 0, len(l))
	for _, t := range l {
		if form, ok := o.substitution[t.Variable]; ok {
			res = append(res, form.Scale(o.engine, t.Coeff)...)
		} else {
			res = append(res, t)
		}
	}
	return res
}

// FoldVariable renames a substituted wire when its defining form is a plain
// wire. Argument and directive-output wires never carry a substitution.
func (o *RedefinitionOptimizer) FoldVariable(v ir.Variable) ir.Variable {
	if form, ok := o.substitution[v]; ok {
		if w, c, single := form.TrySummand(); single && o.engine.IsOne(c) {
			return w
		}
	}
	return v
}

func (o *RedefinitionOptimizer) FoldProg(p ir.Prog) ir.Prog { return ir.FoldProg(o, p) }

func (o *RedefinitionOptimizer) FoldArgument(a ir.Parameter) ir.Parameter {
	return ir.FoldArgument(o, a)
}

func (o *RedefinitionOptimizer) FoldQuadComb(q ir.QuadComb) ir.QuadComb {
	return ir.FoldQuadComb(o, q)
}

func (o *RedefinitionOptimizer) FoldDirective(d ir.Directive) ir.Directive {
	return ir.FoldDirective(o, d)
}
