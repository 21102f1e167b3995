package inlinetest

// A Kind is the kind of an Outcome.
type Kind int

// Various values for Kind.
const (
	Passed Kind = iota
	AssertionFailed
	UnexpectedError
)

func (k Kind) String() string {

	switch k {
	case Passed:
		return "passed"
	case AssertionFailed:
		return "assertion failed"
	default:
		return "unexpected error"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// An Outcome is the result of one test invocation.
type Outcome struct {
	Kind    Kind
	Message string
	Stack   []byte
}

// Failed returns true if the outcome is a failure.
func (o Outcome) Failed() bool { return o.Kind != Passed }

// A Failure records a failed test.
type Failure struct {
	File    string `json:"file"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
	Stack   []byte `json:"-"`
}

// A RunResult aggregates the outcomes of a run. The same type is used
// for the result of one unit and for the total over all units.
type RunResult struct {
	Passed   int       `json:"passed"`
	Failed   int       `json:"failed"`
	Failures []Failure `json:"failures"`
}

// Total returns the number of executed tests.
func (r RunResult) Total() int { return r.Passed + r.Failed }

// Add adds the counts of o and appends its failures.
func (r *RunResult) Add(o RunResult) {

	r.Passed += o.Passed
	r.Failed += o.Failed
	r.Failures = append(r.Failures, o.Failures...)
}

func (r *RunResult) record(file string, name string, o Outcome) {

	if !o.Failed() {
		r.Passed++
		return
	}

	r.Failed++
	r.Failures = append(r.Failures, Failure{
		File:    file,
		Name:    name,
		Message: o.Message,
		Kind:    o.Kind,
		Stack:   o.Stack,
	})
}
