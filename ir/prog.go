package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/gnark/constraint"
)

// Prog is a whole flattened program: its external interface (arguments and
// returns) and an ordered statement sequence. Statement order is semantically
// significant; a directive must appear before the statements consuming its
// outputs. A Prog is never mutated in place: every transformation rebuilds
// the statement sequence.
type Prog struct {
	Arguments  []Parameter
	Statements []Statement
	Returns    []Variable
}

// Validate runs internal consistency checks over the program: every wire must
// be introduced (argument, directive output, or single fresh wire of a
// defining constraint) before it is consumed, and directive outputs must be
// fresh. The optimizer assumes these invariants instead of re-checking them.
func Validate(p Prog) error {
	defined := map[Variable]bool{One: true}
	for _, a := range p.Arguments {
		defined[a.Variable] = true
	}

	undefinedIn := func(l LinComb) []Variable {
		var missing []Variable
		for _, t := range l {
			if !defined[t.Variable] {
				missing = append(missing, t.Variable)
			}
		}
		return missing
	}

	for i, s := range p.Statements {
		switch s.Type {
		case SConstraint:
			missing := undefinedIn(s.Quad.Left)
			missing = append(missing, undefinedIn(s.Quad.Right)...)
			missing = append(missing, undefinedIn(s.Lin)...)
			// a constraint may introduce at most one fresh wire
			seen := map[Variable]bool{}
			for _, v := range missing {
				seen[v] = true
			}
			if len(seen) > 1 {
				return fmt.Errorf("statement %d references %d undefined variables", i, len(seen))
			}
			for v := range seen {
				defined[v] = true
			}
		case SDirective:
			for ii, in := range s.Directive.Inputs {
				if m := append(undefinedIn(in.Left), undefinedIn(in.Right)...); len(m) > 0 {
					return fmt.Errorf("statement %d directive input %d references undefined variable v%d", i, ii, m[0].ID)
				}
			}
			for _, o := range s.Directive.Outputs {
				if defined[o] {
					return fmt.Errorf("statement %d directive output v%d is already defined", i, o.ID)
				}
				defined[o] = true
			}
		default:
			return fmt.Errorf("statement %d has unknown type %d", i, s.Type)
		}
	}

	for _, r := range p.Returns {
		if !defined[r] {
			return fmt.Errorf("return variable v%d is undefined", r.ID)
		}
	}
	return nil
}

// Format renders the whole program for debugging.
func (p Prog) Format(engine constraint.Field) string {
	var b strings.Builder
	args := make([]string, len(p.Arguments))
	for i, a := range p.Arguments {
		vis := "private"
		if a.Public {
			vis = "public"
		}
		args[i] = vis + " v" + strconv.Itoa(a.Variable.ID)
	}
	fmt.Fprintf(&b, "def main(%s):\n", strings.Join(args, ","))
	for _, s := range p.Statements {
		fmt.Fprintf(&b, "\t%s\n", s.Format(engine))
	}
	rets := make([]string, len(p.Returns))
	for i, r := range p.Returns {
		rets[i] = "v" + strconv.Itoa(r.ID)
	}
	fmt.Fprintf(&b, "\treturn %s\n", strings.Join(rets, ","))
	return b.String()
}

func (p Prog) Print(engine constraint.Field) {
	fmt.Print(p.Format(engine))
}
