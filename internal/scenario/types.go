package scenario

// SuiteSpec is the yaml representation of a test suite file.
type SuiteSpec struct {
	Suite  string      `yaml:"suite"`
	Tests  []TestSpec  `yaml:"tests,omitempty"`
	Suites []SuiteSpec `yaml:"suites,omitempty"`
}

// TestSpec is one declarative test.
type TestSpec struct {
	// Name is the test method name.
	Name string `yaml:"name"`
	// Class overrides the owning class name; defaults to the suite name.
	Class string `yaml:"class,omitempty"`
	// Skip, when set, skips the test with this reason.
	Skip string `yaml:"skip,omitempty"`
	// Data declares static data sets; one test run per set.
	Data []DataSpec `yaml:"data,omitempty"`
	// Doubles configures the test doubles created for each run.
	Doubles []DoubleSpec `yaml:"doubles,omitempty"`
	// Steps is the executable test body.
	Steps []StepSpec `yaml:"steps,omitempty"`
}

// DataSpec is one static declarative data set.
type DataSpec struct {
	Key  string        `yaml:"key,omitempty"`
	Args []interface{} `yaml:"args"`
}

// DoubleSpec configures one test double and its expectations.
type DoubleSpec struct {
	Name   string            `yaml:"name"`
	Expect []ExpectationSpec `yaml:"expect,omitempty"`
}

// ExpectationSpec configures one expectation on a double.
type ExpectationSpec struct {
	Method  string        `yaml:"method"`
	Calls   *CallsSpec    `yaml:"calls,omitempty"`
	Args    []interface{} `yaml:"args,omitempty"`
	Returns []interface{} `yaml:"returns,omitempty"`
	Fails   string        `yaml:"fails,omitempty"`
}

// CallsSpec selects a cardinality. Exactly one field may be set; an
// omitted CallsSpec means any number of calls.
type CallsSpec struct {
	Exactly *int `yaml:"exactly,omitempty"`
	AtLeast *int `yaml:"atLeast,omitempty"`
	AtMost  *int `yaml:"atMost,omitempty"`
	Never   bool `yaml:"never,omitempty"`
}

// StepSpec is one step of a test body. Exactly one field is set per step.
type StepSpec struct {
	// Call invokes a method on a configured double.
	Call *CallStep `yaml:"call,omitempty"`
	// AssertEqual compares two values.
	AssertEqual *AssertEqualStep `yaml:"assertEqual,omitempty"`
	// Warn triggers a warning with the given message.
	Warn string `yaml:"warn,omitempty"`
	// Notice triggers a notice with the given message.
	Notice string `yaml:"notice,omitempty"`
	// Deprecation triggers a deprecation with the given message.
	Deprecation string `yaml:"deprecation,omitempty"`
	// Fail fails the test with the given message.
	Fail string `yaml:"fail,omitempty"`
	// Sleep pauses the body, e.g. "50ms". Used to exercise time limits.
	Sleep string `yaml:"sleep,omitempty"`
}

// CallStep invokes a double method and optionally asserts its returns.
type CallStep struct {
	Double string        `yaml:"double"`
	Method string        `yaml:"method"`
	Args   []interface{} `yaml:"args,omitempty"`
	// Expect, when set, asserts the stubbed return values.
	Expect []interface{} `yaml:"expect,omitempty"`
	// ExpectError, when set, asserts that the call fails with exactly
	// this message.
	ExpectError string `yaml:"expectError,omitempty"`
}

// AssertEqualStep compares actual with expected. Values of the form "$N"
// reference the N-th data set argument of a parameterized run.
type AssertEqualStep struct {
	Expected interface{} `yaml:"expected"`
	Actual   interface{} `yaml:"actual"`
}
