// Generic walk through a flattened program. Not mutating in place.

package ir

// Folder is the rewrite contract over flattened programs. Every method has a
// package-level default (FoldProg, FoldStatement, ...) that recurses
// structurally and dispatches child nodes back through the Folder, so a pass
// implements the node kinds it cares about and forwards every other method
// to its default:
//
//	func (o *myPass) FoldVariable(v ir.Variable) ir.Variable { ... }
//	func (o *myPass) FoldProg(p ir.Prog) ir.Prog { return ir.FoldProg(o, p) }
//	...
//
// Overriding one node kind never requires reimplementing traversal of any
// other. FoldStatement returns zero, one, or many statements, which is how
// passes delete or expand statements. The contract is infallible: by the
// time a Folder runs the program is fully type-checked and flattened.
type Folder interface {
	FoldProg(Prog) Prog
	FoldArgument(Parameter) Parameter
	FoldVariable(Variable) Variable
	FoldStatement(Statement) []Statement
	FoldLinComb(LinComb) LinComb
	FoldQuadComb(QuadComb) QuadComb
	FoldDirective(Directive) Directive
}

func FoldProg(f Folder, p Prog) Prog {
	arguments := make([]Parameter, len(p.Arguments))
	for i, a := range p.Arguments {
		arguments[i] = f.FoldArgument(a)
	}
	statements := make([]Statement, 0, len(p.Statements))
	for _, s := range p.Statements {
		statements = append(statements, f.FoldStatement(s)...)
	}
	returns := make([]Variable, len(p.Returns))
	for i, r := range p.Returns {
		returns[i] = f.FoldVariable(r)
	}
	return Prog{
		Arguments:  arguments,
		Statements: statements,
		Returns:    returns,
	}
}

func FoldArgument(f Folder, a Parameter) Parameter {
	return Parameter{
		Variable: f.FoldVariable(a.Variable),
		Public:   a.Public,
	}
}

func FoldVariable(f Folder, v Variable) Variable {
	return v
}

func FoldStatement(f Folder, s Statement) []Statement {
	switch s.Type {
	case SConstraint:
		return []Statement{NewConstraint(f.FoldQuadComb(s.Quad), f.FoldLinComb(s.Lin), s.Message)}
	case SDirective:
		return []Statement{NewDirectiveStatement(f.FoldDirective(s.Directive))}
	}
	panic("unknown statement type")
}

func FoldLinComb(f Folder, l LinComb) LinComb {
	res := make(LinComb, len(l))
	for i, t := range l {
		res[i] = LinTerm{Variable: f.FoldVariable(t.Variable), Coeff: t.Coeff}
	}
	return res
}

func FoldQuadComb(f Folder, q QuadComb) QuadComb {
	return QuadComb{
		Left:  f.FoldLinComb(q.Left),
		Right: f.FoldLinComb(q.Right),
	}
}

func FoldDirective(f Folder, d Directive) Directive {
	inputs := make([]QuadComb, len(d.Inputs))
	for i, in := range d.Inputs {
		inputs[i] = f.FoldQuadComb(in)
	}
	outputs := make([]Variable, len(d.Outputs))
	for i, o := range d.Outputs {
		outputs[i] = f.FoldVariable(o)
	}
	return Directive{
		Inputs:  inputs,
		Outputs: outputs,
		Hint:    d.Hint,
	}
}
