package derivation

import (
	"fmt"
	"strings"

	"github.com/npillmayer/chartparse"
	"github.com/npillmayer/chartparse/cfg"
)

// Application is a rule application, anchored at a span of the input.
type Application struct {
	Begin, End int
	Rule       int // rule index
}

// A creates an application. It is a shortcut for tests and examples.
func A(begin, end, rule int) Application {
	return Application{Begin: begin, End: end, Rule: rule}
}

// Span returns the span covered by an application.
func (a Application) Span() chartparse.Span {
	return chartparse.MakeSpan(a.Begin, a.End)
}

func (a Application) String() string {
	return fmt.Sprintf("(%d,%d,%d)", a.Begin, a.End, a.Rule)
}

// Trace is a derivation represented as the list of its rule applications in
// pre-order: the application deriving the whole span comes first, followed
// by the traces of its sub-derivations, left to right. Anchors do not
// contribute to a trace.
type Trace []Application

// PopulateTrace is a population hook creating traces.
func PopulateTrace(begin, end int, rule *cfg.Rule, subs []Trace) ([]Trace, error) {
	size := 1
	for _, sub := range subs {
		size += len(sub)
	}
	t := make(Trace, 0, size)
	t = append(t, Application{Begin: begin, End: end, Rule: rule.Index()})
	for _, sub := range subs {
		t = append(t, sub...)
	}
	return []Trace{t}, nil
}

// AnchorTrace is an anchor hook for traces. Anchors are represented by an empty trace.
func AnchorTrace(pos int, nt int) Trace {
	return nil
}

// Equal is a predicate: are two traces identical?
func (t Trace) Equal(other Trace) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

func (t Trace) String() string {
	s := make([]string, len(t))
	for i, a := range t {
		s[i] = a.String()
	}
	return "[" + strings.Join(s, " ") + "]"
}
