package typed

import "math/big"

// Expression is any typed expression. The concrete families are field
// element, boolean, uint, array, struct, and the transient untyped integer
// literal, which must not survive literal-type resolution.
type Expression interface {
	isExpression()
}

// FieldExpression is an expression of type field element.
type FieldExpression interface {
	Expression
	isFieldExpression()
}

type FieldNumber struct {
	Value *big.Int
}

type FieldIdentifier struct {
	ID Identifier
}

type FieldAdd struct {
	Left, Right FieldExpression
}

type FieldSub struct {
	Left, Right FieldExpression
}

type FieldMult struct {
	Left, Right FieldExpression
}

type FieldDiv struct {
	Left, Right FieldExpression
}

type FieldPow struct {
	Base     FieldExpression
	Exponent UintExpression
}

type FieldIfElse struct {
	Condition                BooleanExpression
	Consequence, Alternative FieldExpression
}

type FieldFunctionCall struct {
	Key       FunctionKey
	Generics  []*UintExpression
	Arguments []Expression
}

type FieldMember struct {
	Struct StructExpression
	ID     string
}

type FieldSelect struct {
	Array ArrayExpression
	Index UintExpression
}

func (FieldNumber) isExpression()       {}
func (FieldIdentifier) isExpression()   {}
func (FieldAdd) isExpression()          {}
func (FieldSub) isExpression()          {}
func (FieldMult) isExpression()         {}
func (FieldDiv) isExpression()          {}
func (FieldPow) isExpression()          {}
func (FieldIfElse) isExpression()       {}
func (FieldFunctionCall) isExpression() {}
func (FieldMember) isExpression()       {}
func (FieldSelect) isExpression()       {}

func (FieldNumber) isFieldExpression()       {}
func (FieldIdentifier) isFieldExpression()   {}
func (FieldAdd) isFieldExpression()          {}
func (FieldSub) isFieldExpression()          {}
func (FieldMult) isFieldExpression()         {}
func (FieldDiv) isFieldExpression()          {}
func (FieldPow) isFieldExpression()          {}
func (FieldIfElse) isFieldExpression()       {}
func (FieldFunctionCall) isFieldExpression() {}
func (FieldMember) isFieldExpression()       {}
func (FieldSelect) isFieldExpression()       {}

// BooleanExpression is an expression of type bool.
type BooleanExpression interface {
	Expression
	isBooleanExpression()
}

type BoolValue struct {
	Value bool
}

type BoolIdentifier struct {
	ID Identifier
}

type FieldEq struct {
	Left, Right FieldExpression
}

type FieldLt struct {
	Left, Right FieldExpression
}

type FieldLe struct {
	Left, Right FieldExpression
}

type FieldGt struct {
	Left, Right FieldExpression
}

type FieldGe struct {
	Left, Right FieldExpression
}

type BoolEq struct {
	Left, Right BooleanExpression
}

type ArrayEq struct {
	Left, Right ArrayExpression
}

type StructEq struct {
	Left, Right StructExpression
}

type UintEq struct {
	Left, Right UintExpression
}

type UintLt struct {
	Left, Right UintExpression
}

type UintLe struct {
	Left, Right UintExpression
}

type UintGt struct {
	Left, Right UintExpression
}

type UintGe struct {
	Left, Right UintExpression
}

type BoolAnd struct {
	Left, Right BooleanExpression
}

type BoolOr struct {
	Left, Right BooleanExpression
}

type BoolNot struct {
	Inner BooleanExpression
}

type BoolFunctionCall struct {
	Key       FunctionKey
	Generics  []*UintExpression
	Arguments []Expression
}

type BoolIfElse struct {
	Condition                BooleanExpression
	Consequence, Alternative BooleanExpression
}

type BoolMember struct {
	Struct StructExpression
	ID     string
}

type BoolSelect struct {
	Array ArrayExpression
	Index UintExpression
}

func (BoolValue) isExpression()        {}
func (BoolIdentifier) isExpression()   {}
func (FieldEq) isExpression()          {}
func (FieldLt) isExpression()          {}
func (FieldLe) isExpression()          {}
func (FieldGt) isExpression()          {}
func (FieldGe) isExpression()          {}
func (BoolEq) isExpression()           {}
func (ArrayEq) isExpression()          {}
func (StructEq) isExpression()         {}
func (UintEq) isExpression()           {}
func (UintLt) isExpression()           {}
func (UintLe) isExpression()           {}
func (UintGt) isExpression()           {}
func (UintGe) isExpression()           {}
func (BoolAnd) isExpression()          {}
func (BoolOr) isExpression()           {}
func (BoolNot) isExpression()          {}
func (BoolFunctionCall) isExpression() {}
func (BoolIfElse) isExpression()       {}
func (BoolMember) isExpression()       {}
func (BoolSelect) isExpression()       {}

func (BoolValue) isBooleanExpression()        {}
func (BoolIdentifier) isBooleanExpression()   {}
func (FieldEq) isBooleanExpression()          {}
func (FieldLt) isBooleanExpression()          {}
func (FieldLe) isBooleanExpression()          {}
func (FieldGt) isBooleanExpression()          {}
func (FieldGe) isBooleanExpression()          {}
func (BoolEq) isBooleanExpression()           {}
func (ArrayEq) isBooleanExpression()          {}
func (StructEq) isBooleanExpression()         {}
func (UintEq) isBooleanExpression()           {}
func (UintLt) isBooleanExpression()           {}
func (UintLe) isBooleanExpression()           {}
func (UintGt) isBooleanExpression()           {}
func (UintGe) isBooleanExpression()           {}
func (BoolAnd) isBooleanExpression()          {}
func (BoolOr) isBooleanExpression()           {}
func (BoolNot) isBooleanExpression()          {}
func (BoolFunctionCall) isBooleanExpression() {}
func (BoolIfElse) isBooleanExpression()       {}
func (BoolMember) isBooleanExpression()       {}
func (BoolSelect) isBooleanExpression()       {}

// UintExpression is an expression of a fixed-width unsigned integer type.
// The bitwidth lives on the wrapper; the inner node carries the shape.
type UintExpression struct {
	Bitwidth UintBitwidth
	Inner    UintExpressionInner
}

func (UintExpression) isExpression() {}

type UintExpressionInner interface {
	isUintExpressionInner()
}

type UintValue struct {
	Value uint64
}

type UintIdentifier struct {
	ID Identifier
}

type UintAdd struct {
	Left, Right UintExpression
}

type UintSub struct {
	Left, Right UintExpression
}

// UintFloorSub saturates at zero instead of wrapping.
type UintFloorSub struct {
	Left, Right UintExpression
}

type UintMult struct {
	Left, Right UintExpression
}

type UintDiv struct {
	Left, Right UintExpression
}

type UintRem struct {
	Left, Right UintExpression
}

type UintXor struct {
	Left, Right UintExpression
}

type UintAnd struct {
	Left, Right UintExpression
}

type UintOr struct {
	Left, Right UintExpression
}

type UintLeftShift struct {
	Expression UintExpression
	By         FieldExpression
}

type UintRightShift struct {
	Expression UintExpression
	By         FieldExpression
}

type UintNot struct {
	Inner UintExpression
}

type UintFunctionCall struct {
	Key       FunctionKey
	Generics  []*UintExpression
	Arguments []Expression
}

type UintSelect struct {
	Array ArrayExpression
	Index UintExpression
}

type UintIfElse struct {
	Condition                BooleanExpression
	Consequence, Alternative UintExpression
}

type UintMember struct {
	Struct StructExpression
	ID     string
}

func (UintValue) isUintExpressionInner()        {}
func (UintIdentifier) isUintExpressionInner()   {}
func (UintAdd) isUintExpressionInner()          {}
func (UintSub) isUintExpressionInner()          {}
func (UintFloorSub) isUintExpressionInner()     {}
func (UintMult) isUintExpressionInner()         {}
func (UintDiv) isUintExpressionInner()          {}
func (UintRem) isUintExpressionInner()          {}
func (UintXor) isUintExpressionInner()          {}
func (UintAnd) isUintExpressionInner()          {}
func (UintOr) isUintExpressionInner()           {}
func (UintLeftShift) isUintExpressionInner()    {}
func (UintRightShift) isUintExpressionInner()   {}
func (UintNot) isUintExpressionInner()          {}
func (UintFunctionCall) isUintExpressionInner() {}
func (UintSelect) isUintExpressionInner()       {}
func (UintIfElse) isUintExpressionInner()       {}
func (UintMember) isUintExpressionInner()       {}

// ArrayExpression carries its element type and size so folds can thread the
// up-to-date type into the inner expression.
type ArrayExpression struct {
	Type  ArrayType
	Inner ArrayExpressionInner
}

func (ArrayExpression) isExpression() {}

type ArrayExpressionInner interface {
	isArrayExpressionInner()
}

type ArrayIdentifier struct {
	ID Identifier
}

// ExpressionOrSpread is one element of an array literal: either a single
// expression or a spread of another array. Exactly one field is set.
type ExpressionOrSpread struct {
	Expression Expression
	Spread     *Spread
}

type Spread struct {
	Array ArrayExpression
}

type ArrayValue struct {
	Items []ExpressionOrSpread
}

type ArrayFunctionCall struct {
	Key       FunctionKey
	Generics  []*UintExpression
	Arguments []Expression
}

type ArrayIfElse struct {
	Condition                BooleanExpression
	Consequence, Alternative ArrayExpression
}

type ArrayMember struct {
	Struct StructExpression
	ID     string
}

type ArraySelect struct {
	Array ArrayExpression
	Index UintExpression
}

type ArraySlice struct {
	Array    ArrayExpression
	From, To UintExpression
}

type ArrayRepeat struct {
	Item  Expression
	Count UintExpression
}

func (ArrayIdentifier) isArrayExpressionInner()   {}
func (ArrayValue) isArrayExpressionInner()        {}
func (ArrayFunctionCall) isArrayExpressionInner() {}
func (ArrayIfElse) isArrayExpressionInner()       {}
func (ArrayMember) isArrayExpressionInner()       {}
func (ArraySelect) isArrayExpressionInner()       {}
func (ArraySlice) isArrayExpressionInner()        {}
func (ArrayRepeat) isArrayExpressionInner()       {}

// StructExpression carries its member schema alongside the inner expression.
type StructExpression struct {
	Type  StructType
	Inner StructExpressionInner
}

func (StructExpression) isExpression() {}

type StructExpressionInner interface {
	isStructExpressionInner()
}

type StructIdentifier struct {
	ID Identifier
}

type StructValue struct {
	Values []Expression
}

type StructFunctionCall struct {
	Key       FunctionKey
	Generics  []*UintExpression
	Arguments []Expression
}

type StructIfElse struct {
	Condition                BooleanExpression
	Consequence, Alternative StructExpression
}

type StructMemberExpression struct {
	Struct StructExpression
	ID     string
}

type StructSelect struct {
	Array ArrayExpression
	Index UintExpression
}

func (StructIdentifier) isStructExpressionInner()       {}
func (StructValue) isStructExpressionInner()            {}
func (StructFunctionCall) isStructExpressionInner()     {}
func (StructIfElse) isStructExpressionInner()           {}
func (StructMemberExpression) isStructExpressionInner() {}
func (StructSelect) isStructExpressionInner()           {}

// IntExpression is an untyped integer literal. It only exists between
// parsing and literal-type resolution; reaching the folder with one is an
// internal invariant violation.
type IntExpression struct {
	Value *big.Int
}

func (IntExpression) isExpression() {}
