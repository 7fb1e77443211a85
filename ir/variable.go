// Package ir defines the flattened constraint representation produced by the
// flattener and consumed by the constraint-system encoder: linear and
// quadratic combinations of wires, constraint and directive statements, and
// the Folder framework used to rewrite whole programs.
package ir

// Variable is the identity of a wire in the constraint system. ID 0 is
// reserved for the constant-one wire.
type Variable struct {
	ID int
}

// One is the constant-one wire.
var One = Variable{ID: 0}

func NewVariable(id int) Variable {
	return Variable{ID: id}
}

func (v Variable) IsOne() bool {
	return v.ID == 0
}

// Parameter is an external input wire of the program together with its
// visibility. Parameters are part of the program's interface and are never
// eliminated by optimization.
type Parameter struct {
	Variable Variable
	Public   bool
}

func NewParameter(v Variable, public bool) Parameter {
	return Parameter{Variable: v, Public: public}
}
