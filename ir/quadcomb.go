package ir

import (
	"github.com/consensys/gnark/constraint"

	"github.com/zirclang/zirc/utils"
)

// QuadComb is the product of two linear combinations. The fundamental
// constraint shape is Left * Right = result.
type QuadComb struct {
	Left  LinComb
	Right LinComb
}

func NewQuadComb(left, right LinComb) QuadComb {
	return QuadComb{Left: left, Right: right}
}

// FromLinComb lifts a linear combination to the product form 1 * l.
func FromLinComb(engine constraint.Field, l LinComb) QuadComb {
	return QuadComb{Left: NewConstant(engine.One()), Right: l}
}

func (q QuadComb) Clone() QuadComb {
	return QuadComb{Left: q.Left.Clone(), Right: q.Right.Clone()}
}

func (q QuadComb) Equal(o QuadComb) bool {
	return q.Left.Equal(o.Left) && q.Right.Equal(o.Right)
}

func (q QuadComb) EqualI(o utils.Hashable) bool {
	return q.Equal(o.(QuadComb))
}

func (q QuadComb) HashCode() uint64 {
	return q.Left.HashCode()*1000000007 + q.Right.HashCode()
}

// Reduce returns the quadratic combination with both sides in canonical form.
func (q QuadComb) Reduce(engine constraint.Field) QuadComb {
	return QuadComb{Left: q.Left.Reduce(engine), Right: q.Right.Reduce(engine)}
}

// TryLinear reports whether the product degenerates to a linear form, which
// happens when either side reduces to a constant, and returns that form in
// canonical shape.
func (q QuadComb) TryLinear(engine constraint.Field) (LinComb, bool) {
	left := q.Left.Reduce(engine)
	right := q.Right.Reduce(engine)
	if c, ok := left.TryConstant(); ok {
		return right.Scale(engine, c), true
	}
	if c, ok := right.TryConstant(); ok {
		return left.Scale(engine, c), true
	}
	return nil, false
}

// Format renders the combination for debugging, in the form "(v1*1)*(v2*1+3)".
func (q QuadComb) Format(engine constraint.Field) string {
	return "(" + q.Left.Format(engine) + ")*(" + q.Right.Format(engine) + ")"
}
