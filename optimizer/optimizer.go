// Package optimizer shrinks a flattened program without changing its
// solution set. Five passes built on the ir.Folder contract run as one
// streaming transformation, in fixed order: redefinition elimination,
// tautology elimination, canonicalization, directive pruning, duplicate
// elimination.
package optimizer

import (
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/logger"

	"github.com/zirclang/zirc/ir"
)

// Optimize returns an equivalent program with the same argument and return
// contract and a reduced, canonicalized statement sequence. Each input
// statement flows through all five passes before the next one is read, so no
// intermediate program is materialized.
func Optimize(p ir.Prog, engine constraint.Field) ir.Prog {
	log := logger.Logger()
	log.Debug().Msg("optimizer: remove redefinitions, tautologies, dead directives and duplicates")

	redefinition := NewRedefinitionOptimizer(engine, p)
	tautology := NewTautologyOptimizer(engine)
	canonicalizer := NewCanonicalizer(engine)
	directive := NewDirectiveOptimizer()
	duplicate := NewDuplicateOptimizer()

	passes := []ir.Folder{redefinition, tautology, canonicalizer, directive, duplicate}

	arguments := make([]ir.Parameter, len(p.Arguments))
	for i, a := range p.Arguments {
		for _, pass := range passes {
			a = pass.FoldArgument(a)
		}
		arguments[i] = a
	}

	statements := make([]ir.Statement, 0, len(p.Statements))
	for _, s := range p.Statements {
		statements = append(statements, foldThrough(passes, s)...)
	}

	// returns are folded once the substitution state is complete, so
	// eliminated wires are rewritten at the program boundary too
	returns := make([]ir.Variable, len(p.Returns))
	for i, r := range p.Returns {
		v := r
		for _, pass := range passes {
			v = pass.FoldVariable(v)
		}
		returns[i] = v
	}

	// directives still pending are live only if a return consumes them;
	// everything else is dropped here
	for _, s := range directive.Flush(returns) {
		statements = append(statements, duplicate.FoldStatement(s)...)
	}

	log.Debug().
		Int("nbStatementsIn", len(p.Statements)).
		Int("nbStatementsOut", len(statements)).
		Msg("optimized")

	return ir.Prog{
		Arguments:  arguments,
		Statements: statements,
		Returns:    returns,
	}
}

// foldThrough feeds one statement through the pass chain, expanding the
// zero-or-many output of each pass into the next one.
func foldThrough(passes []ir.Folder, s ir.Statement) []ir.Statement {
	in := []ir.Statement{s}
	for _, pass := range passes {
		out := make([]ir.Statement, 0, len(in))
		for _, t := range in {
			out = append(out, pass.FoldStatement(t)...)
		}
		in = out
	}
	return in
}
