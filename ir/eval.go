package ir

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/zirclang/zirc/field"
)

// Assignment maps wires to field elements.
type Assignment map[Variable]constraint.Element

func (a Assignment) Clone() Assignment {
	res := make(Assignment, len(a))
	for k, v := range a {
		res[k] = v
	}
	return res
}

// value evaluates the combination under a. unknown collects the wires that
// have no value yet; known is the value of the remaining terms.
func (l LinComb) value(engine constraint.Field, a Assignment) (known constraint.Element, unknown []LinTerm) {
	for _, t := range l {
		v, ok := a[t.Variable]
		if !ok {
			unknown = append(unknown, t)
			continue
		}
		known = engine.Add(known, engine.Mul(t.Coeff, v))
	}
	return known, unknown
}

func (q QuadComb) value(engine constraint.Field, a Assignment) (constraint.Element, error) {
	lv, lu := q.Left.value(engine, a)
	if len(lu) > 0 {
		return constraint.Element{}, fmt.Errorf("variable v%d has no value", lu[0].Variable.ID)
	}
	rv, ru := q.Right.value(engine, a)
	if len(ru) > 0 {
		return constraint.Element{}, fmt.Errorf("variable v%d has no value", ru[0].Variable.ID)
	}
	return engine.Mul(lv, rv), nil
}

// Eval executes the program over the given argument values: directives run
// their hint functions, defining constraints solve their single fresh wire,
// and fully determined constraints are checked. It returns the resulting
// assignment of every wire, which satisfies the program's constraints.
func (p Prog) Eval(engine field.Field, inputs Assignment) (Assignment, error) {
	values := Assignment{One: engine.One()}
	for _, arg := range p.Arguments {
		v, ok := inputs[arg.Variable]
		if !ok {
			return nil, fmt.Errorf("argument v%d has no value", arg.Variable.ID)
		}
		values[arg.Variable] = v
	}

	for i, s := range p.Statements {
		switch s.Type {
		case SDirective:
			in := make([]*big.Int, len(s.Directive.Inputs))
			for j, q := range s.Directive.Inputs {
				qv, err := q.value(engine, values)
				if err != nil {
					return nil, fmt.Errorf("statement %d: %v", i, err)
				}
				in[j] = engine.ToBigInt(qv)
			}
			out := make([]*big.Int, len(s.Directive.Outputs))
			for j := range out {
				out[j] = big.NewInt(0)
			}
			if err := s.Directive.Hint(engine.Field(), in, out); err != nil {
				return nil, fmt.Errorf("statement %d: hint: %v", i, err)
			}
			for j, o := range s.Directive.Outputs {
				if _, ok := values[o]; ok {
					return nil, fmt.Errorf("statement %d: directive output v%d assigned twice", i, o.ID)
				}
				values[o] = engine.FromInterface(out[j])
			}
		case SConstraint:
			qv, err := s.Quad.value(engine, values)
			if err != nil {
				return nil, fmt.Errorf("statement %d: %v", i, err)
			}
			lv, lu := s.Lin.value(engine, values)
			switch {
			case len(lu) == 0:
				if qv != lv {
					return nil, unsatisfiedError(i, s)
				}
			case len(lu) == 1:
				// defining constraint: solve c*v = qv - known
				ci, ok := engine.Inverse(lu[0].Coeff)
				if !ok {
					return nil, fmt.Errorf("statement %d: zero coefficient on v%d", i, lu[0].Variable.ID)
				}
				values[lu[0].Variable] = engine.Mul(engine.Sub(qv, lv), ci)
			default:
				return nil, fmt.Errorf("statement %d: %d undetermined variables", i, len(lu))
			}
		default:
			return nil, fmt.Errorf("statement %d has unknown type %d", i, s.Type)
		}
	}

	for _, r := range p.Returns {
		if _, ok := values[r]; !ok {
			return nil, fmt.Errorf("return variable v%d has no value", r.ID)
		}
	}
	return values, nil
}

// Satisfied checks every constraint of the program under a full assignment.
func (p Prog) Satisfied(engine constraint.Field, a Assignment) error {
	for i, s := range p.Statements {
		if s.Type != SConstraint {
			continue
		}
		qv, err := s.Quad.value(engine, a)
		if err != nil {
			return fmt.Errorf("statement %d: %v", i, err)
		}
		lv, lu := s.Lin.value(engine, a)
		if len(lu) > 0 {
			return fmt.Errorf("statement %d: variable v%d has no value", i, lu[0].Variable.ID)
		}
		if qv != lv {
			return unsatisfiedError(i, s)
		}
	}
	return nil
}

func unsatisfiedError(i int, s Statement) error {
	if s.Message != "" {
		return fmt.Errorf("statement %d unsatisfied: %s", i, s.Message)
	}
	return fmt.Errorf("statement %d unsatisfied", i)
}
