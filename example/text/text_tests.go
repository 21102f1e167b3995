package text

import (
	"os"

	inlinetest "github.com/piotrostr/inline-test"
	"github.com/smartystreets/goconvey/convey"
)

var scratch *os.File

func init() { inlinetest.Register(declare) }

func declare(u *inlinetest.Unit) error {

	u.BeforeEach("open scratch file", func() (err error) {
		scratch, err = os.CreateTemp("", "inlinetest-text-*")
		return err
	})

	u.AfterEach("remove scratch file", func() error {

		if scratch == nil {
			return nil
		}

		defer func() { scratch = nil }()

		scratch.Close() // nolint
		return os.Remove(scratch.Name())
	})

	u.Test("title", func() error {
		inlinetest.Assert("words are capitalized", Title("hello inline tests"), convey.ShouldEqual, "Hello Inline Tests")
		return nil
	}, inlinetest.Tag("smoke"))

	u.Test("title of empty string", func() error {
		inlinetest.Assert("empty stays empty", Title(""), convey.ShouldBeEmpty)
		return nil
	})

	u.Test("title from env", func() error {

		// Set INLINETEST_TITLE with --env-file to run this one.
		in := os.Getenv("INLINETEST_TITLE")
		if in == "" {
			return nil
		}

		_, err := scratch.WriteString(Title(in))
		return err
	})

	return nil
}
