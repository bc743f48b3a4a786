package harness

import "fmt"

// Failure records one round that did not round-trip cleanly.
type Failure struct {
	// Round is the zero-based iteration that failed.
	Round int
	// Stage names the step that failed: "encode", "transport", "decode",
	// or "equal".
	Stage string
	// Err is the underlying error, nil when Stage is "equal" (a value
	// mismatch, not a failure to produce a value at all).
	Err error
	// Detail is a human-readable description of what differed, set only
	// when Stage is "equal".
	Detail string
}

func (f Failure) String() string {
	if f.Err != nil {
		return fmt.Sprintf("round %d: %s: %v", f.Round, f.Stage, f.Err)
	}
	return fmt.Sprintf("round %d: %s: %s", f.Round, f.Stage, f.Detail)
}

// Result is the outcome of round-tripping one registered message type.
type Result struct {
	Name     string
	TypeID   uint16
	Rounds   int
	Failures []Failure
}

// OK reports whether every round for this message type round-tripped
// cleanly.
func (r Result) OK() bool { return len(r.Failures) == 0 }

// Report is the outcome of round-tripping every message type a registry
// declares.
type Report struct {
	Results []Result
}

// OK reports whether every message type's every round round-tripped
// cleanly.
func (r *Report) OK() bool {
	for _, res := range r.Results {
		if !res.OK() {
			return false
		}
	}
	return true
}

// String renders a one-line summary per message type, failures expanded.
func (r *Report) String() string {
	s := ""
	for _, res := range r.Results {
		status := "ok"
		if !res.OK() {
			status = fmt.Sprintf("%d/%d failed", len(res.Failures), res.Rounds)
		}
		s += fmt.Sprintf("%s (type %d): %d rounds, %s\n", res.Name, res.TypeID, res.Rounds, status)
		for _, f := range res.Failures {
			s += fmt.Sprintf("  %s\n", f.String())
		}
	}
	return s
}
