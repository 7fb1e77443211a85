package typed

// DefaultFolder implements every ResultFolder method by calling the
// package-level default with Self, so child nodes dispatch back through the
// outer pass. Embed it, set Self to the pass, and override only the methods
// the pass rewrites.
type DefaultFolder struct {
	Self ResultFolder
}

func (d DefaultFolder) FoldProgram(p Program) (Program, error) {
	return FoldProgram(d.Self, p)
}

func (d DefaultFolder) FoldModule(m Module) (Module, error) {
	return FoldModule(d.Self, m)
}

func (d DefaultFolder) FoldFunctionSymbol(s FunctionSymbol) (FunctionSymbol, error) {
	return FoldFunctionSymbol(d.Self, s)
}

func (d DefaultFolder) FoldFunction(fn Function) (Function, error) {
	return FoldFunction(d.Self, fn)
}

func (d DefaultFolder) FoldDeclarationParameter(p DeclarationParameter) (DeclarationParameter, error) {
	return FoldDeclarationParameter(d.Self, p)
}

func (d DefaultFolder) FoldDeclarationVariable(v DeclarationVariable) (DeclarationVariable, error) {
	return FoldDeclarationVariable(d.Self, v)
}

func (d DefaultFolder) FoldDeclarationType(t DeclarationType) (DeclarationType, error) {
	return FoldDeclarationType(d.Self, t)
}

func (d DefaultFolder) FoldDeclarationConstant(c DeclarationConstant) (DeclarationConstant, error) {
	return FoldDeclarationConstant(d.Self, c)
}

func (d DefaultFolder) FoldVariable(v Variable) (Variable, error) {
	return FoldVariable(d.Self, v)
}

func (d DefaultFolder) FoldName(n Identifier) (Identifier, error) {
	return FoldName(d.Self, n)
}

func (d DefaultFolder) FoldType(t Type) (Type, error) {
	return FoldType(d.Self, t)
}

func (d DefaultFolder) FoldArrayType(t ArrayType) (ArrayType, error) {
	return FoldArrayType(d.Self, t)
}

func (d DefaultFolder) FoldStructType(t StructType) (StructType, error) {
	return FoldStructType(d.Self, t)
}

func (d DefaultFolder) FoldStatement(s Statement) ([]Statement, error) {
	return FoldStatement(d.Self, s)
}

func (d DefaultFolder) FoldAssignee(a Assignee) (Assignee, error) {
	return FoldAssignee(d.Self, a)
}

func (d DefaultFolder) FoldExpressionList(l ExpressionList) (ExpressionList, error) {
	return FoldExpressionList(d.Self, l)
}

func (d DefaultFolder) FoldExpression(e Expression) (Expression, error) {
	return FoldExpression(d.Self, e)
}

func (d DefaultFolder) FoldFieldExpression(e FieldExpression) (FieldExpression, error) {
	return FoldFieldExpression(d.Self, e)
}

func (d DefaultFolder) FoldBooleanExpression(e BooleanExpression) (BooleanExpression, error) {
	return FoldBooleanExpression(d.Self, e)
}

func (d DefaultFolder) FoldUintExpression(e UintExpression) (UintExpression, error) {
	return FoldUintExpression(d.Self, e)
}

func (d DefaultFolder) FoldUintExpressionInner(bitwidth UintBitwidth, e UintExpressionInner) (UintExpressionInner, error) {
	return FoldUintExpressionInner(d.Self, bitwidth, e)
}

func (d DefaultFolder) FoldArrayExpression(e ArrayExpression) (ArrayExpression, error) {
	return FoldArrayExpression(d.Self, e)
}

func (d DefaultFolder) FoldArrayExpressionInner(ty ArrayType, e ArrayExpressionInner) (ArrayExpressionInner, error) {
	return FoldArrayExpressionInner(d.Self, ty, e)
}

func (d DefaultFolder) FoldStructExpression(e StructExpression) (StructExpression, error) {
	return FoldStructExpression(d.Self, e)
}

func (d DefaultFolder) FoldStructExpressionInner(ty StructType, e StructExpressionInner) (StructExpressionInner, error) {
	return FoldStructExpressionInner(d.Self, ty, e)
}

func (d DefaultFolder) FoldIntExpression(e IntExpression) (Expression, error) {
	return FoldIntExpression(d.Self, e)
}

func (d DefaultFolder) FoldExpressionOrSpread(e ExpressionOrSpread) (ExpressionOrSpread, error) {
	return FoldExpressionOrSpread(d.Self, e)
}
