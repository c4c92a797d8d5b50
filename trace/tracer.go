package trace

import (
	"path"

	"github.com/rs/zerolog"

	"trigger/types"
)

// Tracer records evaluation steps to a structured logger. A nil *Tracer is
// valid and records nothing, so callers never need to check.
type Tracer struct {
	enabled bool
	filters []string
	log     zerolog.Logger
}

// New creates an enabled tracer writing to log. Filters are glob patterns
// (path.Match syntax) matched against the node text; none means everything.
func New(log zerolog.Logger, filters []string) *Tracer {
	return &Tracer{
		enabled: true,
		filters: filters,
		log:     log,
	}
}

// Disabled returns a tracer that records nothing
func Disabled() *Tracer {
	return &Tracer{log: zerolog.Nop()}
}

// IsEnabled returns whether tracing is enabled
func (t *Tracer) IsEnabled() bool {
	return t != nil && t.enabled
}

// matchesFilter checks if node text matches any of the filter patterns
func (t *Tracer) matchesFilter(text string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := path.Match(pattern, text); matched {
			return true
		}
	}
	return false
}

func (t *Tracer) active(text string) bool {
	return t.IsEnabled() && t.matchesFilter(text)
}

// Expression logs entry into an operator node
func (t *Tracer) Expression(kind, text string) {
	if !t.active(text) {
		return
	}
	t.log.Debug().Str("kind", kind).Str("expr", text).Msg("evaluate expression")
}

// Lookup logs resolution of an identifier, keyword or function name
func (t *Tracer) Lookup(kind, name string) {
	if !t.active(name) {
		return
	}
	t.log.Trace().Str("kind", kind).Str("name", name).Msg("lookup")
}

// Result logs the value a node produced
func (t *Tracer) Result(text string, v types.Value) {
	if !t.active(text) {
		return
	}
	t.log.Trace().Str("expr", text).Stringer("kind", types.KindOf(v)).Str("value", display(v)).Msg("result")
}

// Failure logs an evaluation error
func (t *Tracer) Failure(text string, err error) {
	if !t.active(text) {
		return
	}
	t.log.Debug().Str("expr", text).Stringer("code", types.CodeOf(err)).Err(err).Msg("evaluation failed")
}

func display(v types.Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}
