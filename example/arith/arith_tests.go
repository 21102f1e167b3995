package arith

import (
	inlinetest "github.com/piotrostr/inline-test"
	"github.com/smartystreets/goconvey/convey"
)

var calls int

func init() { inlinetest.Register(declare) }

func declare(u *inlinetest.Unit) error {

	u.BeforeEach("count calls", func() error {
		calls++
		return nil
	})

	u.Test("addition", func() error {
		inlinetest.Assert("1 + 2 is 3", Add(1, 2), convey.ShouldEqual, 3)
		return nil
	}, inlinetest.Tag("smoke"))

	u.Test("division", func() error {

		q, err := Divide(9, 3)
		if err != nil {
			return err
		}

		return inlinetest.Check("9 / 3 is 3", q, convey.ShouldEqual, 3)
	})

	u.Test("division by zero", func() error {

		if _, err := Divide(1, 0); err != ErrDivisionByZero {
			return inlinetest.Failf("expected %s, got %v", ErrDivisionByZero, err)
		}

		return nil
	}, inlinetest.Tag("smoke"))

	return nil
}
