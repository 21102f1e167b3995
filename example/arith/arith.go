package arith

import (
	"github.com/pkg/errors"
)

// ErrDivisionByZero is returned by Divide when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Add returns a + b.
func Add(a int, b int) int { return a + b }

// Divide returns a / b.
func Divide(a int, b int) (int, error) {

	if b == 0 {
		return 0, ErrDivisionByZero
	}

	return a / b, nil
}
