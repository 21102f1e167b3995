package inlinetest

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAssert(t *testing.T) {

	Convey("Given I use Assert with a goconvey assertion", t, func() {

		Convey("When the assertion holds", func() {

			Convey("Then it should not panic", func() {
				So(func() { Assert("sum", 1+2, ShouldEqual, 3) }, ShouldNotPanic)
			})
		})

		Convey("When the assertion does not hold", func() {

			var recovered interface{}
			func() {
				defer func() { recovered = recover() }()
				Assert("sum", 1+1, ShouldEqual, 3)
			}()

			Convey("Then it should panic with an assertion error", func() {
				So(recovered, ShouldHaveSameTypeAs, &AssertionError{})

				err := recovered.(*AssertionError)
				So(err.Message, ShouldStartWith, "sum")
				So(err.Error(), ShouldStartWith, "sum: ")
				So(err.Error(), ShouldContainSubstring, "3")
				So(err.Error(), ShouldContainSubstring, "2")
			})

			Convey("Then a running test should be reported as an assertion failure", func() {
				o := classifyPanic(recovered)
				So(o.Kind, ShouldEqual, AssertionFailed)
				So(o.Stack, ShouldBeNil)
			})
		})
	})
}

func TestCheck(t *testing.T) {

	Convey("Given I use Check", t, func() {

		Convey("When the assertion holds", func() {

			Convey("Then it should return nil", func() {
				So(Check("empty", "", ShouldBeEmpty), ShouldBeNil)
			})
		})

		Convey("When a plain text assertion does not hold", func() {

			plain := func(actual interface{}, expected ...interface{}) string { return "values differ" }

			err := Check("compare", 1, plain, 2)

			Convey("Then the message should carry the assertion text", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldEqual, "compare: values differ")
				So(classify(err).Kind, ShouldEqual, AssertionFailed)
			})
		})

		Convey("When a plain text assertion without message does not hold", func() {

			plain := func(actual interface{}, expected ...interface{}) string { return "values differ" }

			err := Check("", 1, plain, 2)

			Convey("Then the message should be the assertion text", func() {
				So(err.Error(), ShouldEqual, "values differ")
			})
		})
	})
}

func TestFail(t *testing.T) {

	Convey("Given I create assertion errors", t, func() {

		So(Fail("x != y").Error(), ShouldEqual, "x != y")
		So(Failf("%s != %s", "x", "y").Error(), ShouldEqual, "x != y")
		So((&AssertionError{Message: "m", Expected: "1", Actual: "2"}).Error(), ShouldEqual, "m: expected: '1', actual: '2'")
	})
}
