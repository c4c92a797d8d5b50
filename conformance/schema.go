package conformance

import "gopkg.in/yaml.v3"

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Character   yaml.Node  `yaml:"character,omitempty"` // snapshot shared by every test; Kind 0 when absent
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single test within a suite
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool or string
	Expr        string      `yaml:"expr"`
	Character   yaml.Node   `yaml:"character,omitempty"` // fields overriding the suite snapshot; Kind 0 when absent
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what result is expected from a test
type Expectation struct {
	Value    interface{} `yaml:"value,omitempty"`    // exact match
	Type     string      `yaml:"type,omitempty"`     // double, bool, string, list of string, range
	Error    string      `yaml:"error,omitempty"`    // E_TYPE, E_NAME, E_INVALID or "parse"
	Contains string      `yaml:"contains,omitempty"` // substring of the error message or rendered value
}

// ParseError is the Expectation.Error value for input that must not parse
const ParseError = "parse"

// HasCharacter reports whether the test overrides any snapshot fields
func (tc *TestCase) HasCharacter() bool {
	return tc.Character.Kind != 0
}

// IsEmpty reports whether nothing is expected at all
func (e Expectation) IsEmpty() bool {
	return e.Value == nil && e.Type == "" && e.Error == "" && e.Contains == ""
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
