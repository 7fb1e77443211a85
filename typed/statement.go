package typed

// Statement is one statement of a function body.
type Statement interface {
	isStatement()
}

type ReturnStatement struct {
	Expressions []Expression
}

type DefinitionStatement struct {
	Assignee   Assignee
	Expression Expression
}

type DeclarationStatement struct {
	Variable Variable
}

type AssertionStatement struct {
	Expression BooleanExpression
}

// ForStatement is a statically bounded loop, unrolled at flattening time.
type ForStatement struct {
	Variable   Variable
	From       UintExpression
	To         UintExpression
	Statements []Statement
}

// MultipleDefinitionStatement destructures a multi-value function call.
type MultipleDefinitionStatement struct {
	Assignees   []Assignee
	Expressions ExpressionList
}

func (ReturnStatement) isStatement()             {}
func (DefinitionStatement) isStatement()         {}
func (DeclarationStatement) isStatement()        {}
func (AssertionStatement) isStatement()          {}
func (ForStatement) isStatement()                {}
func (MultipleDefinitionStatement) isStatement() {}

// Assignee is the left-hand side of a definition.
type Assignee interface {
	isAssignee()
}

type IdentifierAssignee struct {
	Variable Variable
}

type SelectAssignee struct {
	Assignee Assignee
	Index    UintExpression
}

type MemberAssignee struct {
	Assignee Assignee
	ID       string
}

func (IdentifierAssignee) isAssignee() {}
func (SelectAssignee) isAssignee()     {}
func (MemberAssignee) isAssignee()     {}

// ExpressionList is the right-hand side of a multiple definition. Its only
// shape is a call to a function returning several values.
type ExpressionList struct {
	Key       FunctionKey
	Generics  []*UintExpression
	Arguments []Expression
	Types     []Type
}
