package ir

import (
	"strconv"
	"strings"

	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/constraint/solver"
)

// StatementType enumerates the statement kinds of the flattened program.
type StatementType int

const (
	_                          = 0
	SConstraint StatementType = iota
	SDirective
)

// Directive computes values for its output wires by running an out-of-circuit
// solver function over its inputs. It is not a constraint: the equation it
// hints at is not enforced unless separate constraints are emitted, so a
// directive must stay before the statements that consume its outputs.
type Directive struct {
	Inputs  []QuadComb
	Outputs []Variable
	Hint    solver.Hint
}

func NewDirective(inputs []QuadComb, outputs []Variable, hint solver.Hint) Directive {
	return Directive{Inputs: inputs, Outputs: outputs, Hint: hint}
}

// Statement is either a constraint asserting Quad = Lin, with an optional
// diagnostic message, or a directive.
type Statement struct {
	Type StatementType

	// constraint fields
	Quad    QuadComb
	Lin     LinComb
	Message string

	// directive fields
	Directive Directive
}

func NewConstraint(quad QuadComb, lin LinComb, message string) Statement {
	return Statement{
		Type:    SConstraint,
		Quad:    quad,
		Lin:     lin,
		Message: message,
	}
}

func NewDirectiveStatement(d Directive) Statement {
	return Statement{
		Type:      SDirective,
		Directive: d,
	}
}

// Format renders the statement for debugging.
func (s Statement) Format(engine constraint.Field) string {
	switch s.Type {
	case SConstraint:
		r := s.Quad.Format(engine) + " == " + s.Lin.Format(engine)
		if s.Message != "" {
			r += " // " + s.Message
		}
		return r
	case SDirective:
		outs := make([]string, len(s.Directive.Outputs))
		for i, o := range s.Directive.Outputs {
			outs[i] = "v" + strconv.Itoa(o.ID)
		}
		ins := make([]string, len(s.Directive.Inputs))
		for i, in := range s.Directive.Inputs {
			ins[i] = in.Format(engine)
		}
		return strings.Join(outs, ",") + " = " + solver.GetHintName(s.Directive.Hint) + "(" + strings.Join(ins, ",") + ")"
	}
	panic("unknown statement type")
}
