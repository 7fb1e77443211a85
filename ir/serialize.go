package ir

import (
	"bytes"
	"encoding/gob"

	"github.com/consensys/gnark/constraint/solver"
)

// Hint functions are not serializable, so statements travel with the
// registered solver.HintID instead and are rebound on load.
type progForSerialization struct {
	Arguments  []Parameter
	Statements []statementForSerialization
	Returns    []Variable
}

type statementForSerialization struct {
	Type    StatementType
	Quad    QuadComb
	Lin     LinComb
	Message string
	Inputs  []QuadComb
	Outputs []Variable
	HintID  solver.HintID
}

func (p Prog) Serialize() []byte {
	pfs := &progForSerialization{
		Arguments:  p.Arguments,
		Statements: make([]statementForSerialization, len(p.Statements)),
		Returns:    p.Returns,
	}
	for i, s := range p.Statements {
		pfs.Statements[i] = statementForSerialization{
			Type:    s.Type,
			Quad:    s.Quad,
			Lin:     s.Lin,
			Message: s.Message,
			Inputs:  s.Directive.Inputs,
			Outputs: s.Directive.Outputs,
		}
		if s.Type == SDirective {
			pfs.Statements[i].HintID = solver.GetHintID(s.Directive.Hint)
		}
	}
	buf := new(bytes.Buffer)
	encoder := gob.NewEncoder(buf)
	if err := encoder.Encode(pfs); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func DeserializeProg(data []byte) Prog {
	decoder := gob.NewDecoder(bytes.NewBuffer(data))
	pfs := &progForSerialization{}
	if err := decoder.Decode(pfs); err != nil {
		panic(err)
	}
	p := Prog{
		Arguments:  pfs.Arguments,
		Statements: make([]Statement, len(pfs.Statements)),
		Returns:    pfs.Returns,
	}
	for i, s := range pfs.Statements {
		p.Statements[i] = Statement{
			Type:    s.Type,
			Quad:    s.Quad,
			Lin:     s.Lin,
			Message: s.Message,
			Directive: Directive{
				Inputs:  s.Inputs,
				Outputs: s.Outputs,
			},
		}
		if s.Type == SDirective {
			p.Statements[i].Directive.Hint = solver.GetRegisteredHint(s.HintID)
			if p.Statements[i].Directive.Hint == nil {
				panic("hint not registered")
			}
		}
	}
	return p
}
