package typed

// UintBitwidth is the fixed width of an unsigned integer type.
type UintBitwidth int

const (
	B8  UintBitwidth = 8
	B16 UintBitwidth = 16
	B32 UintBitwidth = 32
	B64 UintBitwidth = 64
)

// Type is a fully resolved runtime type. Array sizes are uint expressions,
// which keeps generic, parameter-dependent lengths representable until
// const-generic substitution pins them down.
type Type interface {
	isType()
}

type FieldElementType struct{}

type BooleanType struct{}

type UintType struct {
	Bitwidth UintBitwidth
}

type ArrayType struct {
	Elem Type
	Size UintExpression
}

type StructMember struct {
	ID   string
	Type Type
}

type StructType struct {
	Name    string
	Members []StructMember
}

func (FieldElementType) isType() {}
func (BooleanType) isType()      {}
func (UintType) isType()         {}
func (ArrayType) isType()        {}
func (StructType) isType()       {}

// DeclarationConstant is an array size at declaration level: either a
// concrete value or a const-generic parameter to be substituted later.
type DeclarationConstant interface {
	isDeclarationConstant()
}

type ConcreteConstant struct {
	Value uint32
}

type GenericConstant struct {
	Name Identifier
}

func (ConcreteConstant) isDeclarationConstant() {}
func (GenericConstant) isDeclarationConstant()  {}

// DeclarationType is the type attached to a function parameter declaration.
// It mirrors Type, with declaration constants for array sizes.
type DeclarationType interface {
	isDeclarationType()
}

type DeclarationFieldElementType struct{}

type DeclarationBooleanType struct{}

type DeclarationUintType struct {
	Bitwidth UintBitwidth
}

type DeclarationArrayType struct {
	Elem DeclarationType
	Size DeclarationConstant
}

type DeclarationStructMember struct {
	ID   string
	Type DeclarationType
}

type DeclarationStructType struct {
	Name    string
	Members []DeclarationStructMember
}

func (DeclarationFieldElementType) isDeclarationType() {}
func (DeclarationBooleanType) isDeclarationType()      {}
func (DeclarationUintType) isDeclarationType()         {}
func (DeclarationArrayType) isDeclarationType()        {}
func (DeclarationStructType) isDeclarationType()       {}
