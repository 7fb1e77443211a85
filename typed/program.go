package typed

// Identifier names a variable or const-generic parameter.
type Identifier = string

// ModuleID names a module within a program.
type ModuleID = string

// FunctionKey identifies a function within a module by name and signature.
type FunctionKey struct {
	Name      string
	Signature string
}

// Program is a collection of named modules with a distinguished main module.
// It is produced by the type checker and is assumed free of residual untyped
// integer literals.
type Program struct {
	Modules map[ModuleID]Module
	Main    ModuleID
}

type Module struct {
	Functions map[FunctionKey]FunctionSymbol
}

// FunctionSymbol binds a function key to either a local definition or an
// opaque reference to a function defined in another module. References are
// not re-walked when a module is folded, so each body is folded exactly once
// no matter how many modules import it.
type FunctionSymbol interface {
	isFunctionSymbol()
}

// LocalFunction is a function defined in the enclosing module.
type LocalFunction struct {
	Function Function
}

// ImportedFunction is a stable reference to a function defined elsewhere.
type ImportedFunction struct {
	Module ModuleID
	Key    FunctionKey
}

func (LocalFunction) isFunctionSymbol()    {}
func (ImportedFunction) isFunctionSymbol() {}

// Function is a function body: const-generic parameters, typed parameters,
// statements and return types.
type Function struct {
	Generics   []Identifier
	Parameters []DeclarationParameter
	Statements []Statement
	Returns    []Type
}

// Variable is a typed name.
type Variable struct {
	ID   Identifier
	Type Type
}

// DeclarationVariable is a name typed at declaration level.
type DeclarationVariable struct {
	ID   Identifier
	Type DeclarationType
}

// DeclarationParameter is a function parameter with its visibility.
type DeclarationParameter struct {
	ID      DeclarationVariable
	Private bool
}
