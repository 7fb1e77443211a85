// Package field defines the coefficient arithmetic engine used by the IR and
// the optimizer. Coefficients are constraint.Element values; an engine gives
// them meaning over a concrete prime field.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/zirclang/zirc/field/bn254"
	"github.com/zirclang/zirc/field/m31"
)

type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
}

func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	if x.Cmp(m31.ScalarField) == 0 {
		return &m31.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
