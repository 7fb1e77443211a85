package ir

import (
	"sort"
	"strconv"
	"strings"

	"github.com/consensys/gnark/constraint"

	"github.com/zirclang/zirc/utils"
)

// LinTerm is one weighted wire of a linear combination.
type LinTerm struct {
	Variable Variable
	Coeff    constraint.Element
}

func (t LinTerm) HashCode() uint64 {
	x := t.Coeff[0] ^ t.Coeff[1] ^ t.Coeff[2] ^ t.Coeff[3] ^ t.Coeff[4] ^ t.Coeff[5]
	x ^= uint64(t.Variable.ID) * 998244353
	return x
}

// LinComb is a weighted sum of wires. Term order carries no meaning until
// Reduce puts the combination in canonical form.
type LinComb []LinTerm

// NewLinComb returns coeff * v.
func NewLinComb(v Variable, coeff constraint.Element) LinComb {
	return LinComb{{Variable: v, Coeff: coeff}}
}

// NewConstant returns the combination c * one.
func NewConstant(c constraint.Element) LinComb {
	return LinComb{{Variable: One, Coeff: c}}
}

func (l LinComb) Clone() LinComb {
	res := make(LinComb, len(l))
	copy(res, l)
	return res
}

// Len, Swap, Less implement sort.Interface; the total order is by wire ID.
func (l LinComb) Len() int { return len(l) }

func (l LinComb) Swap(i, j int) { l[i], l[j] = l[j], l[i] }

func (l LinComb) Less(i, j int) bool { return l[i].Variable.ID < l[j].Variable.ID }

// Equal returns true if both combinations are the same term for term.
// Compare reduced forms to compare as linear forms.
func (l LinComb) Equal(o LinComb) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if l[i] != o[i] {
			return false
		}
	}
	return true
}

func (l LinComb) EqualI(o utils.Hashable) bool {
	return l.Equal(o.(LinComb))
}

// HashCode returns a fast, non collision resistant hash of the combination.
// Meaningful on reduced forms only.
func (l LinComb) HashCode() uint64 {
	h := uint64(17)
	for _, t := range l {
		h = h*23 + t.HashCode()
	}
	return h
}

// Reduce returns the canonical form of l: same-wire terms merged by field
// addition, zero coefficients dropped, terms sorted by wire ID. Two
// combinations equal as linear forms reduce to identical representations.
// The receiver is left untouched.
func (l LinComb) Reduce(engine constraint.Field) LinComb {
	merged := l.Clone()
	sort.Sort(merged)
	res := make(LinComb, 0, len(merged))
	for _, t := range merged {
		if n := len(res); n > 0 && res[n-1].Variable == t.Variable {
			res[n-1].Coeff = engine.Add(res[n-1].Coeff, t.Coeff)
		} else {
			res = append(res, t)
		}
	}
	out := res[:0]
	for _, t := range res {
		if !t.Coeff.IsZero() {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Scale returns c * l.
func (l LinComb) Scale(engine constraint.Field, c constraint.Element) LinComb {
	if c.IsZero() {
		return nil
	}
	res := make(LinComb, len(l))
	for i, t := range l {
		res[i] = LinTerm{Variable: t.Variable, Coeff: engine.Mul(t.Coeff, c)}
	}
	return res
}

// TryConstant reports whether the reduced combination is a constant and
// returns its value. The zero combination is the constant 0.
func (l LinComb) TryConstant() (constraint.Element, bool) {
	if len(l) == 0 {
		return constraint.Element{}, true
	}
	if len(l) == 1 && l[0].Variable.IsOne() {
		return l[0].Coeff, true
	}
	return constraint.Element{}, false
}

// TrySummand reports whether the combination is a single non-constant term.
func (l LinComb) TrySummand() (Variable, constraint.Element, bool) {
	if len(l) == 1 && !l[0].Variable.IsOne() {
		return l[0].Variable, l[0].Coeff, true
	}
	return Variable{}, constraint.Element{}, false
}

// Format renders the combination for debugging, in the form "v2*3+1".
func (l LinComb) Format(engine constraint.Field) string {
	if len(l) == 0 {
		return "0"
	}
	s := make([]string, len(l))
	for i, t := range l {
		coeff := engine.ToBigInt(t.Coeff).String()
		if t.Variable.IsOne() {
			s[i] = coeff
		} else {
			s[i] = "v" + strconv.Itoa(t.Variable.ID) + "*" + coeff
		}
	}
	return strings.Join(s, "+")
}
