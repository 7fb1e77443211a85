// Generic fallible walk through a typed program. Not mutating in place.

package typed

// ResultFolder is the rewrite contract over typed programs. It follows the
// same open-recursion design as ir.Folder: every method has a package-level
// default that recurses structurally and dispatches child nodes back through
// the ResultFolder, so a pass overrides only the node kinds it rewrites.
// Unlike ir.Folder the contract is fallible: any method may return a
// *CompileError, and the first error aborts the whole fold with no partial
// output and no later sibling visited.
//
// Folding an array or struct expression folds the carried type first and
// threads the folded type into the inner-expression fold, so rewrites that
// change a size or member schema see the up-to-date shape when they
// reconstruct the node.
//
// Passes embed DefaultFolder with Self pointing at themselves instead of
// spelling out the delegation one-liners by hand:
//
//	type myPass struct{ typed.DefaultFolder }
//
//	func newMyPass() *myPass {
//		p := &myPass{}
//		p.Self = p
//		return p
//	}
//
//	func (p *myPass) FoldName(n typed.Identifier) (typed.Identifier, error) { ... }
type ResultFolder interface {
	FoldProgram(Program) (Program, error)
	FoldModule(Module) (Module, error)
	FoldFunctionSymbol(FunctionSymbol) (FunctionSymbol, error)
	FoldFunction(Function) (Function, error)
	FoldDeclarationParameter(DeclarationParameter) (DeclarationParameter, error)
	FoldDeclarationVariable(DeclarationVariable) (DeclarationVariable, error)
	FoldDeclarationType(DeclarationType) (DeclarationType, error)
	FoldDeclarationConstant(DeclarationConstant) (DeclarationConstant, error)
	FoldVariable(Variable) (Variable, error)
	FoldName(Identifier) (Identifier, error)
	FoldType(Type) (Type, error)
	FoldArrayType(ArrayType) (ArrayType, error)
	FoldStructType(StructType) (StructType, error)
	FoldStatement(Statement) ([]Statement, error)
	FoldAssignee(Assignee) (Assignee, error)
	FoldExpressionList(ExpressionList) (ExpressionList, error)
	FoldExpression(Expression) (Expression, error)
	FoldFieldExpression(FieldExpression) (FieldExpression, error)
	FoldBooleanExpression(BooleanExpression) (BooleanExpression, error)
	FoldUintExpression(UintExpression) (UintExpression, error)
	FoldUintExpressionInner(UintBitwidth, UintExpressionInner) (UintExpressionInner, error)
	FoldArrayExpression(ArrayExpression) (ArrayExpression, error)
	FoldArrayExpressionInner(ArrayType, ArrayExpressionInner) (ArrayExpressionInner, error)
	FoldStructExpression(StructExpression) (StructExpression, error)
	FoldStructExpressionInner(StructType, StructExpressionInner) (StructExpressionInner, error)
	FoldIntExpression(IntExpression) (Expression, error)
	FoldExpressionOrSpread(ExpressionOrSpread) (ExpressionOrSpread, error)
}

func FoldProgram(f ResultFolder, p Program) (Program, error) {
	modules := make(map[ModuleID]Module, len(p.Modules))
	for id, m := range p.Modules {
		folded, err := f.FoldModule(m)
		if err != nil {
			return Program{}, err
		}
		modules[id] = folded
	}
	return Program{Modules: modules, Main: p.Main}, nil
}

func FoldModule(f ResultFolder, m Module) (Module, error) {
	functions := make(map[FunctionKey]FunctionSymbol, len(m.Functions))
	for key, symbol := range m.Functions {
		folded, err := f.FoldFunctionSymbol(symbol)
		if err != nil {
			return Module{}, err
		}
		functions[key] = folded
	}
	return Module{Functions: functions}, nil
}

// FoldFunctionSymbol leaves imported symbols untouched: each body is folded
// exactly once, in the module that defines it.
func FoldFunctionSymbol(f ResultFolder, s FunctionSymbol) (FunctionSymbol, error) {
	switch s := s.(type) {
	case LocalFunction:
		fn, err := f.FoldFunction(s.Function)
		if err != nil {
			return nil, err
		}
		return LocalFunction{Function: fn}, nil
	case ImportedFunction:
		return s, nil
	}
	panic("unknown function symbol")
}

func FoldFunction(f ResultFolder, fn Function) (Function, error) {
	generics := make([]Identifier, len(fn.Generics))
	for i, g := range fn.Generics {
		folded, err := f.FoldName(g)
		if err != nil {
			return Function{}, err
		}
		generics[i] = folded
	}
	parameters := make([]DeclarationParameter, len(fn.Parameters))
	for i, p := range fn.Parameters {
		folded, err := f.FoldDeclarationParameter(p)
		if err != nil {
			return Function{}, err
		}
		parameters[i] = folded
	}
	statements := make([]Statement, 0, len(fn.Statements))
	for _, s := range fn.Statements {
		folded, err := f.FoldStatement(s)
		if err != nil {
			return Function{}, err
		}
		statements = append(statements, folded...)
	}
	returns := make([]Type, len(fn.Returns))
	for i, t := range fn.Returns {
		folded, err := f.FoldType(t)
		if err != nil {
			return Function{}, err
		}
		returns[i] = folded
	}
	return Function{
		Generics:   generics,
		Parameters: parameters,
		Statements: statements,
		Returns:    returns,
	}, nil
}

func FoldDeclarationParameter(f ResultFolder, p DeclarationParameter) (DeclarationParameter, error) {
	id, err := f.FoldDeclarationVariable(p.ID)
	if err != nil {
		return DeclarationParameter{}, err
	}
	return DeclarationParameter{ID: id, Private: p.Private}, nil
}

func FoldDeclarationVariable(f ResultFolder, v DeclarationVariable) (DeclarationVariable, error) {
	id, err := f.FoldName(v.ID)
	if err != nil {
		return DeclarationVariable{}, err
	}
	ty, err := f.FoldDeclarationType(v.Type)
	if err != nil {
		return DeclarationVariable{}, err
	}
	return DeclarationVariable{ID: id, Type: ty}, nil
}

func FoldDeclarationType(f ResultFolder, t DeclarationType) (DeclarationType, error) {
	switch t := t.(type) {
	case DeclarationFieldElementType, DeclarationBooleanType, DeclarationUintType:
		return t, nil
	case DeclarationArrayType:
		elem, err := f.FoldDeclarationType(t.Elem)
		if err != nil {
			return nil, err
		}
		size, err := f.FoldDeclarationConstant(t.Size)
		if err != nil {
			return nil, err
		}
		return DeclarationArrayType{Elem: elem, Size: size}, nil
	case DeclarationStructType:
		members := make([]DeclarationStructMember, len(t.Members))
		for i, m := range t.Members {
			ty, err := f.FoldDeclarationType(m.Type)
			if err != nil {
				return nil, err
			}
			members[i] = DeclarationStructMember{ID: m.ID, Type: ty}
		}
		return DeclarationStructType{Name: t.Name, Members: members}, nil
	}
	panic("unknown declaration type")
}

func FoldDeclarationConstant(f ResultFolder, c DeclarationConstant) (DeclarationConstant, error) {
	switch c := c.(type) {
	case ConcreteConstant:
		return c, nil
	case GenericConstant:
		name, err := f.FoldName(c.Name)
		if err != nil {
			return nil, err
		}
		return GenericConstant{Name: name}, nil
	}
	panic("unknown declaration constant")
}

func FoldVariable(f ResultFolder, v Variable) (Variable, error) {
	id, err := f.FoldName(v.ID)
	if err != nil {
		return Variable{}, err
	}
	ty, err := f.FoldType(v.Type)
	if err != nil {
		return Variable{}, err
	}
	return Variable{ID: id, Type: ty}, nil
}

func FoldName(f ResultFolder, n Identifier) (Identifier, error) {
	return n, nil
}

func FoldType(f ResultFolder, t Type) (Type, error) {
	switch t := t.(type) {
	case FieldElementType, BooleanType, UintType:
		return t, nil
	case ArrayType:
		return f.FoldArrayType(t)
	case StructType:
		return f.FoldStructType(t)
	}
	panic("unknown type")
}

func FoldArrayType(f ResultFolder, t ArrayType) (ArrayType, error) {
	elem, err := f.FoldType(t.Elem)
	if err != nil {
		return ArrayType{}, err
	}
	size, err := f.FoldUintExpression(t.Size)
	if err != nil {
		return ArrayType{}, err
	}
	return ArrayType{Elem: elem, Size: size}, nil
}

func FoldStructType(f ResultFolder, t StructType) (StructType, error) {
	members := make([]StructMember, len(t.Members))
	for i, m := range t.Members {
		ty, err := f.FoldType(m.Type)
		if err != nil {
			return StructType{}, err
		}
		members[i] = StructMember{ID: m.ID, Type: ty}
	}
	return StructType{Name: t.Name, Members: members}, nil
}

func FoldStatement(f ResultFolder, s Statement) ([]Statement, error) {
	switch s := s.(type) {
	case ReturnStatement:
		expressions := make([]Expression, len(s.Expressions))
		for i, e := range s.Expressions {
			folded, err := f.FoldExpression(e)
			if err != nil {
				return nil, err
			}
			expressions[i] = folded
		}
		return []Statement{ReturnStatement{Expressions: expressions}}, nil
	case DefinitionStatement:
		assignee, err := f.FoldAssignee(s.Assignee)
		if err != nil {
			return nil, err
		}
		expression, err := f.FoldExpression(s.Expression)
		if err != nil {
			return nil, err
		}
		return []Statement{DefinitionStatement{Assignee: assignee, Expression: expression}}, nil
	case DeclarationStatement:
		variable, err := f.FoldVariable(s.Variable)
		if err != nil {
			return nil, err
		}
		return []Statement{DeclarationStatement{Variable: variable}}, nil
	case AssertionStatement:
		expression, err := f.FoldBooleanExpression(s.Expression)
		if err != nil {
			return nil, err
		}
		return []Statement{AssertionStatement{Expression: expression}}, nil
	case ForStatement:
		variable, err := f.FoldVariable(s.Variable)
		if err != nil {
			return nil, err
		}
		from, err := f.FoldUintExpression(s.From)
		if err != nil {
			return nil, err
		}
		to, err := f.FoldUintExpression(s.To)
		if err != nil {
			return nil, err
		}
		statements := make([]Statement, 0, len(s.Statements))
		for _, inner := range s.Statements {
			folded, err := f.FoldStatement(inner)
			if err != nil {
				return nil, err
			}
			statements = append(statements, folded...)
		}
		return []Statement{ForStatement{
			Variable:   variable,
			From:       from,
			To:         to,
			Statements: statements,
		}}, nil
	case MultipleDefinitionStatement:
		assignees := make([]Assignee, len(s.Assignees))
		for i, a := range s.Assignees {
			folded, err := f.FoldAssignee(a)
			if err != nil {
				return nil, err
			}
			assignees[i] = folded
		}
		expressions, err := f.FoldExpressionList(s.Expressions)
		if err != nil {
			return nil, err
		}
		return []Statement{MultipleDefinitionStatement{
			Assignees:   assignees,
			Expressions: expressions,
		}}, nil
	}
	panic("unknown statement")
}

func FoldAssignee(f ResultFolder, a Assignee) (Assignee, error) {
	switch a := a.(type) {
	case IdentifierAssignee:
		variable, err := f.FoldVariable(a.Variable)
		if err != nil {
			return nil, err
		}
		return IdentifierAssignee{Variable: variable}, nil
	case SelectAssignee:
		assignee, err := f.FoldAssignee(a.Assignee)
		if err != nil {
			return nil, err
		}
		index, err := f.FoldUintExpression(a.Index)
		if err != nil {
			return nil, err
		}
		return SelectAssignee{Assignee: assignee, Index: index}, nil
	case MemberAssignee:
		assignee, err := f.FoldAssignee(a.Assignee)
		if err != nil {
			return nil, err
		}
		return MemberAssignee{Assignee: assignee, ID: a.ID}, nil
	}
	panic("unknown assignee")
}

func FoldExpressionList(f ResultFolder, l ExpressionList) (ExpressionList, error) {
	generics, arguments, err := foldCall(f, l.Generics, l.Arguments)
	if err != nil {
		return ExpressionList{}, err
	}
	types := make([]Type, len(l.Types))
	for i, t := range l.Types {
		folded, err := f.FoldType(t)
		if err != nil {
			return ExpressionList{}, err
		}
		types[i] = folded
	}
	return ExpressionList{
		Key:       l.Key,
		Generics:  generics,
		Arguments: arguments,
		Types:     types,
	}, nil
}

// FoldExpression dispatches to the family-specific fold. Untyped integer
// literals route through FoldIntExpression, whose default panics.
func FoldExpression(f ResultFolder, e Expression) (Expression, error) {
	switch e := e.(type) {
	case FieldExpression:
		return f.FoldFieldExpression(e)
	case BooleanExpression:
		return f.FoldBooleanExpression(e)
	case UintExpression:
		return f.FoldUintExpression(e)
	case ArrayExpression:
		return f.FoldArrayExpression(e)
	case StructExpression:
		return f.FoldStructExpression(e)
	case IntExpression:
		return f.FoldIntExpression(e)
	}
	panic("unknown expression")
}

func FoldFieldExpression(f ResultFolder, e FieldExpression) (FieldExpression, error) {
	switch e := e.(type) {
	case FieldNumber:
		return e, nil
	case FieldIdentifier:
		id, err := f.FoldName(e.ID)
		if err != nil {
			return nil, err
		}
		return FieldIdentifier{ID: id}, nil
	case FieldAdd:
		left, right, err := foldFieldPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return FieldAdd{Left: left, Right: right}, nil
	case FieldSub:
		left, right, err := foldFieldPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return FieldSub{Left: left, Right: right}, nil
	case FieldMult:
		left, right, err := foldFieldPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return FieldMult{Left: left, Right: right}, nil
	case FieldDiv:
		left, right, err := foldFieldPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return FieldDiv{Left: left, Right: right}, nil
	case FieldPow:
		base, err := f.FoldFieldExpression(e.Base)
		if err != nil {
			return nil, err
		}
		exponent, err := f.FoldUintExpression(e.Exponent)
		if err != nil {
			return nil, err
		}
		return FieldPow{Base: base, Exponent: exponent}, nil
	case FieldIfElse:
		condition, err := f.FoldBooleanExpression(e.Condition)
		if err != nil {
			return nil, err
		}
		consequence, alternative, err := foldFieldPair(f, e.Consequence, e.Alternative)
		if err != nil {
			return nil, err
		}
		return FieldIfElse{
			Condition:   condition,
			Consequence: consequence,
			Alternative: alternative,
		}, nil
	case FieldFunctionCall:
		generics, arguments, err := foldCall(f, e.Generics, e.Arguments)
		if err != nil {
			return nil, err
		}
		return FieldFunctionCall{Key: e.Key, Generics: generics, Arguments: arguments}, nil
	case FieldMember:
		s, err := f.FoldStructExpression(e.Struct)
		if err != nil {
			return nil, err
		}
		return FieldMember{Struct: s, ID: e.ID}, nil
	case FieldSelect:
		array, index, err := foldSelect(f, e.Array, e.Index)
		if err != nil {
			return nil, err
		}
		return FieldSelect{Array: array, Index: index}, nil
	}
	panic("unknown field expression")
}

func FoldBooleanExpression(f ResultFolder, e BooleanExpression) (BooleanExpression, error) {
	switch e := e.(type) {
	case BoolValue:
		return e, nil
	case BoolIdentifier:
		id, err := f.FoldName(e.ID)
		if err != nil {
			return nil, err
		}
		return BoolIdentifier{ID: id}, nil
	case FieldEq:
		left, right, err := foldFieldPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return FieldEq{Left: left, Right: right}, nil
	case FieldLt:
		left, right, err := foldFieldPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return FieldLt{Left: left, Right: right}, nil
	case FieldLe:
		left, right, err := foldFieldPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return FieldLe{Left: left, Right: right}, nil
	case FieldGt:
		left, right, err := foldFieldPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return FieldGt{Left: left, Right: right}, nil
	case FieldGe:
		left, right, err := foldFieldPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return FieldGe{Left: left, Right: right}, nil
	case BoolEq:
		left, right, err := foldBoolPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return BoolEq{Left: left, Right: right}, nil
	case ArrayEq:
		left, err := f.FoldArrayExpression(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := f.FoldArrayExpression(e.Right)
		if err != nil {
			return nil, err
		}
		return ArrayEq{Left: left, Right: right}, nil
	case StructEq:
		left, err := f.FoldStructExpression(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := f.FoldStructExpression(e.Right)
		if err != nil {
			return nil, err
		}
		return StructEq{Left: left, Right: right}, nil
	case UintEq:
		left, right, err := foldUintPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return UintEq{Left: left, Right: right}, nil
	case UintLt:
		left, right, err := foldUintPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return UintLt{Left: left, Right: right}, nil
	case UintLe:
		left, right, err := foldUintPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return UintLe{Left: left, Right: right}, nil
	case UintGt:
		left, right, err := foldUintPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return UintGt{Left: left, Right: right}, nil
	case UintGe:
		left, right, err := foldUintPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return UintGe{Left: left, Right: right}, nil
	case BoolAnd:
		left, right, err := foldBoolPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return BoolAnd{Left: left, Right: right}, nil
	case BoolOr:
		left, right, err := foldBoolPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return BoolOr{Left: left, Right: right}, nil
	case BoolNot:
		inner, err := f.FoldBooleanExpression(e.Inner)
		if err != nil {
			return nil, err
		}
		return BoolNot{Inner: inner}, nil
	case BoolFunctionCall:
		generics, arguments, err := foldCall(f, e.Generics, e.Arguments)
		if err != nil {
			return nil, err
		}
		return BoolFunctionCall{Key: e.Key, Generics: generics, Arguments: arguments}, nil
	case BoolIfElse:
		condition, err := f.FoldBooleanExpression(e.Condition)
		if err != nil {
			return nil, err
		}
		consequence, alternative, err := foldBoolPair(f, e.Consequence, e.Alternative)
		if err != nil {
			return nil, err
		}
		return BoolIfElse{
			Condition:   condition,
			Consequence: consequence,
			Alternative: alternative,
		}, nil
	case BoolMember:
		s, err := f.FoldStructExpression(e.Struct)
		if err != nil {
			return nil, err
		}
		return BoolMember{Struct: s, ID: e.ID}, nil
	case BoolSelect:
		array, index, err := foldSelect(f, e.Array, e.Index)
		if err != nil {
			return nil, err
		}
		return BoolSelect{Array: array, Index: index}, nil
	}
	panic("unknown boolean expression")
}

func FoldUintExpression(f ResultFolder, e UintExpression) (UintExpression, error) {
	inner, err := f.FoldUintExpressionInner(e.Bitwidth, e.Inner)
	if err != nil {
		return UintExpression{}, err
	}
	return UintExpression{Bitwidth: e.Bitwidth, Inner: inner}, nil
}

func FoldUintExpressionInner(f ResultFolder, bitwidth UintBitwidth, e UintExpressionInner) (UintExpressionInner, error) {
	switch e := e.(type) {
	case UintValue:
		return e, nil
	case UintIdentifier:
		id, err := f.FoldName(e.ID)
		if err != nil {
			return nil, err
		}
		return UintIdentifier{ID: id}, nil
	case UintAdd:
		left, right, err := foldUintPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return UintAdd{Left: left, Right: right}, nil
	case UintSub:
		left, right, err := foldUintPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return UintSub{Left: left, Right: right}, nil
	case UintFloorSub:
		left, right, err := foldUintPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return UintFloorSub{Left: left, Right: right}, nil
	case UintMult:
		left, right, err := foldUintPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return UintMult{Left: left, Right: right}, nil
	case UintDiv:
		left, right, err := foldUintPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return UintDiv{Left: left, Right: right}, nil
	case UintRem:
		left, right, err := foldUintPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return UintRem{Left: left, Right: right}, nil
	case UintXor:
		left, right, err := foldUintPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return UintXor{Left: left, Right: right}, nil
	case UintAnd:
		left, right, err := foldUintPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return UintAnd{Left: left, Right: right}, nil
	case UintOr:
		left, right, err := foldUintPair(f, e.Left, e.Right)
		if err != nil {
			return nil, err
		}
		return UintOr{Left: left, Right: right}, nil
	case UintLeftShift:
		expression, err := f.FoldUintExpression(e.Expression)
		if err != nil {
			return nil, err
		}
		by, err := f.FoldFieldExpression(e.By)
		if err != nil {
			return nil, err
		}
		return UintLeftShift{Expression: expression, By: by}, nil
	case UintRightShift:
		expression, err := f.FoldUintExpression(e.Expression)
		if err != nil {
			return nil, err
		}
		by, err := f.FoldFieldExpression(e.By)
		if err != nil {
			return nil, err
		}
		return UintRightShift{Expression: expression, By: by}, nil
	case UintNot:
		inner, err := f.FoldUintExpression(e.Inner)
		if err != nil {
			return nil, err
		}
		return UintNot{Inner: inner}, nil
	case UintFunctionCall:
		generics, arguments, err := foldCall(f, e.Generics, e.Arguments)
		if err != nil {
			return nil, err
		}
		return UintFunctionCall{Key: e.Key, Generics: generics, Arguments: arguments}, nil
	case UintSelect:
		array, index, err := foldSelect(f, e.Array, e.Index)
		if err != nil {
			return nil, err
		}
		return UintSelect{Array: array, Index: index}, nil
	case UintIfElse:
		condition, err := f.FoldBooleanExpression(e.Condition)
		if err != nil {
			return nil, err
		}
		consequence, alternative, err := foldUintPair(f, e.Consequence, e.Alternative)
		if err != nil {
			return nil, err
		}
		return UintIfElse{
			Condition:   condition,
			Consequence: consequence,
			Alternative: alternative,
		}, nil
	case UintMember:
		s, err := f.FoldStructExpression(e.Struct)
		if err != nil {
			return nil, err
		}
		return UintMember{Struct: s, ID: e.ID}, nil
	}
	panic("unknown uint expression")
}

// FoldArrayExpression folds the carried array type first so the inner fold
// sees the rewritten element type and size.
func FoldArrayExpression(f ResultFolder, e ArrayExpression) (ArrayExpression, error) {
	ty, err := f.FoldArrayType(e.Type)
	if err != nil {
		return ArrayExpression{}, err
	}
	inner, err := f.FoldArrayExpressionInner(ty, e.Inner)
	if err != nil {
		return ArrayExpression{}, err
	}
	return ArrayExpression{Type: ty, Inner: inner}, nil
}

func FoldArrayExpressionInner(f ResultFolder, ty ArrayType, e ArrayExpressionInner) (ArrayExpressionInner, error) {
	switch e := e.(type) {
	case ArrayIdentifier:
		id, err := f.FoldName(e.ID)
		if err != nil {
			return nil, err
		}
		return ArrayIdentifier{ID: id}, nil
	case ArrayValue:
		items := make([]ExpressionOrSpread, len(e.Items))
		for i, item := range e.Items {
			folded, err := f.FoldExpressionOrSpread(item)
			if err != nil {
				return nil, err
			}
			items[i] = folded
		}
		return ArrayValue{Items: items}, nil
	case ArrayFunctionCall:
		generics, arguments, err := foldCall(f, e.Generics, e.Arguments)
		if err != nil {
			return nil, err
		}
		return ArrayFunctionCall{Key: e.Key, Generics: generics, Arguments: arguments}, nil
	case ArrayIfElse:
		condition, err := f.FoldBooleanExpression(e.Condition)
		if err != nil {
			return nil, err
		}
		consequence, err := f.FoldArrayExpression(e.Consequence)
		if err != nil {
			return nil, err
		}
		alternative, err := f.FoldArrayExpression(e.Alternative)
		if err != nil {
			return nil, err
		}
		return ArrayIfElse{
			Condition:   condition,
			Consequence: consequence,
			Alternative: alternative,
		}, nil
	case ArrayMember:
		s, err := f.FoldStructExpression(e.Struct)
		if err != nil {
			return nil, err
		}
		return ArrayMember{Struct: s, ID: e.ID}, nil
	case ArraySelect:
		array, index, err := foldSelect(f, e.Array, e.Index)
		if err != nil {
			return nil, err
		}
		return ArraySelect{Array: array, Index: index}, nil
	case ArraySlice:
		array, err := f.FoldArrayExpression(e.Array)
		if err != nil {
			return nil, err
		}
		from, err := f.FoldUintExpression(e.From)
		if err != nil {
			return nil, err
		}
		to, err := f.FoldUintExpression(e.To)
		if err != nil {
			return nil, err
		}
		return ArraySlice{Array: array, From: from, To: to}, nil
	case ArrayRepeat:
		item, err := f.FoldExpression(e.Item)
		if err != nil {
			return nil, err
		}
		count, err := f.FoldUintExpression(e.Count)
		if err != nil {
			return nil, err
		}
		return ArrayRepeat{Item: item, Count: count}, nil
	}
	panic("unknown array expression")
}

// FoldStructExpression folds the member schema first so the inner fold sees
// the rewritten member types.
func FoldStructExpression(f ResultFolder, e StructExpression) (StructExpression, error) {
	ty, err := f.FoldStructType(e.Type)
	if err != nil {
		return StructExpression{}, err
	}
	inner, err := f.FoldStructExpressionInner(ty, e.Inner)
	if err != nil {
		return StructExpression{}, err
	}
	return StructExpression{Type: ty, Inner: inner}, nil
}

func FoldStructExpressionInner(f ResultFolder, ty StructType, e StructExpressionInner) (StructExpressionInner, error) {
	switch e := e.(type) {
	case StructIdentifier:
		id, err := f.FoldName(e.ID)
		if err != nil {
			return nil, err
		}
		return StructIdentifier{ID: id}, nil
	case StructValue:
		values := make([]Expression, len(e.Values))
		for i, v := range e.Values {
			folded, err := f.FoldExpression(v)
			if err != nil {
				return nil, err
			}
			values[i] = folded
		}
		return StructValue{Values: values}, nil
	case StructFunctionCall:
		generics, arguments, err := foldCall(f, e.Generics, e.Arguments)
		if err != nil {
			return nil, err
		}
		return StructFunctionCall{Key: e.Key, Generics: generics, Arguments: arguments}, nil
	case StructIfElse:
		condition, err := f.FoldBooleanExpression(e.Condition)
		if err != nil {
			return nil, err
		}
		consequence, err := f.FoldStructExpression(e.Consequence)
		if err != nil {
			return nil, err
		}
		alternative, err := f.FoldStructExpression(e.Alternative)
		if err != nil {
			return nil, err
		}
		return StructIfElse{
			Condition:   condition,
			Consequence: consequence,
			Alternative: alternative,
		}, nil
	case StructMemberExpression:
		s, err := f.FoldStructExpression(e.Struct)
		if err != nil {
			return nil, err
		}
		return StructMemberExpression{Struct: s, ID: e.ID}, nil
	case StructSelect:
		array, index, err := foldSelect(f, e.Array, e.Index)
		if err != nil {
			return nil, err
		}
		return StructSelect{Array: array, Index: index}, nil
	}
	panic("unknown struct expression")
}

// FoldIntExpression is the one fold with no structural default: an untyped
// integer literal here means literal-type resolution upstream is broken, so
// this is an invariant violation rather than a compile error.
func FoldIntExpression(f ResultFolder, e IntExpression) (Expression, error) {
	panic("untyped integer literal reached the folder")
}

func FoldExpressionOrSpread(f ResultFolder, e ExpressionOrSpread) (ExpressionOrSpread, error) {
	if e.Spread != nil {
		array, err := f.FoldArrayExpression(e.Spread.Array)
		if err != nil {
			return ExpressionOrSpread{}, err
		}
		return ExpressionOrSpread{Spread: &Spread{Array: array}}, nil
	}
	expression, err := f.FoldExpression(e.Expression)
	if err != nil {
		return ExpressionOrSpread{}, err
	}
	return ExpressionOrSpread{Expression: expression}, nil
}

func foldCall(f ResultFolder, generics []*UintExpression, arguments []Expression) ([]*UintExpression, []Expression, error) {
	foldedGenerics := make([]*UintExpression, len(generics))
	for i, g := range generics {
		if g == nil {
			// inferred generic, nothing to fold yet
			continue
		}
		folded, err := f.FoldUintExpression(*g)
		if err != nil {
			return nil, nil, err
		}
		foldedGenerics[i] = &folded
	}
	foldedArguments := make([]Expression, len(arguments))
	for i, a := range arguments {
		folded, err := f.FoldExpression(a)
		if err != nil {
			return nil, nil, err
		}
		foldedArguments[i] = folded
	}
	return foldedGenerics, foldedArguments, nil
}

func foldFieldPair(f ResultFolder, left, right FieldExpression) (FieldExpression, FieldExpression, error) {
	l, err := f.FoldFieldExpression(left)
	if err != nil {
		return nil, nil, err
	}
	r, err := f.FoldFieldExpression(right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func foldBoolPair(f ResultFolder, left, right BooleanExpression) (BooleanExpression, BooleanExpression, error) {
	l, err := f.FoldBooleanExpression(left)
	if err != nil {
		return nil, nil, err
	}
	r, err := f.FoldBooleanExpression(right)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

func foldUintPair(f ResultFolder, left, right UintExpression) (UintExpression, UintExpression, error) {
	l, err := f.FoldUintExpression(left)
	if err != nil {
		return UintExpression{}, UintExpression{}, err
	}
	r, err := f.FoldUintExpression(right)
	if err != nil {
		return UintExpression{}, UintExpression{}, err
	}
	return l, r, nil
}

func foldSelect(f ResultFolder, array ArrayExpression, index UintExpression) (ArrayExpression, UintExpression, error) {
	a, err := f.FoldArrayExpression(array)
	if err != nil {
		return ArrayExpression{}, UintExpression{}, err
	}
	i, err := f.FoldUintExpression(index)
	if err != nil {
		return ArrayExpression{}, UintExpression{}, err
	}
	return a, i, nil
}
