package scenario

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"witness/internal/config"
	"witness/internal/events"
	"witness/internal/metadata"
	"witness/internal/run"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runSuite(t *testing.T, spec *SuiteSpec) (*run.Result, *events.Collector) {
	t.Helper()
	registry := metadata.NewRegistry()
	suite, err := spec.Build(registry)
	require.NoError(t, err)

	facade := events.NewFacade()
	collector := events.NewCollector()
	require.NoError(t, facade.RegisterSubscriber(collector))

	runner := run.NewRunner(facade)
	require.NoError(t, runner.Configure(config.Default()))
	require.NoError(t, runner.Load(suite, registry))
	require.NoError(t, runner.Seal())

	result, err := runner.Run(context.Background())
	require.NoError(t, err)
	return result, collector
}

func TestLoadFile_ValidSuite(t *testing.T) {
	path := writeScenario(t, `
suite: calculator
tests:
  - name: testAdd
    steps:
      - assertEqual: {expected: 3, actual: 3}
`)
	spec, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "calculator", spec.Suite)
	require.Len(t, spec.Tests, 1)
	assert.Equal(t, "testAdd", spec.Tests[0].Name)
}

func TestLoadFile_SchemaViolation(t *testing.T) {
	path := writeScenario(t, `
suite: calculator
tests:
  - steps: []
`)
	_, err := LoadFile(path)
	var invalid *InvalidScenarioError
	require.ErrorAs(t, err, &invalid)
}

func TestLoadFile_UnknownFieldRejected(t *testing.T) {
	path := writeScenario(t, `
suite: calculator
bogus: true
`)
	_, err := LoadFile(path)
	var invalid *InvalidScenarioError
	require.ErrorAs(t, err, &invalid)
}

func TestLoadFile_MalformedYaml(t *testing.T) {
	path := writeScenario(t, "suite: [unclosed")
	_, err := LoadFile(path)
	var invalid *InvalidScenarioError
	require.ErrorAs(t, err, &invalid)
}

func TestLoadPath_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("suite: alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("suite: beta"), 0o644))

	spec, err := LoadPath(dir)
	require.NoError(t, err)
	require.Len(t, spec.Suites, 2)
	assert.Equal(t, "alpha", spec.Suites[0].Suite)
	assert.Equal(t, "beta", spec.Suites[1].Suite)
}

func TestLoadPath_EmptyDirectory(t *testing.T) {
	_, err := LoadPath(t.TempDir())
	var invalid *InvalidScenarioError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Error(), "no suite files")
}

func TestBuild_DoubleExpectationsSatisfied(t *testing.T) {
	path := writeScenario(t, `
suite: mailer
tests:
  - name: testSendsTwice
    doubles:
      - name: smtp
        expect:
          - method: Send
            calls: {exactly: 2}
            returns: [true]
    steps:
      - call: {double: smtp, method: Send, expect: [true]}
      - call: {double: smtp, method: Send, expect: [true]}
`)
	spec, err := LoadFile(path)
	require.NoError(t, err)

	result, _ := runSuite(t, spec)
	assert.Equal(t, 1, result.Passed)
	assert.True(t, result.Successful())
}

func TestBuild_UndercalledExpectationFails(t *testing.T) {
	path := writeScenario(t, `
suite: mailer
tests:
  - name: testForgetsToSend
    doubles:
      - name: smtp
        expect:
          - method: Send
            calls: {exactly: 1}
    steps: []
`)
	spec, err := LoadFile(path)
	require.NoError(t, err)

	result, _ := runSuite(t, spec)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, result.TestResults[0].Message, "exactly 1 time(s)")
}

func TestBuild_DataSetsParameterizeRuns(t *testing.T) {
	path := writeScenario(t, `
suite: math
tests:
  - name: testIdentity
    data:
      - args: [1, 1]
      - key: zero
        args: [0, 0]
    steps:
      - assertEqual: {expected: "$0", actual: "$1"}
`)
	spec, err := LoadFile(path)
	require.NoError(t, err)

	result, _ := runSuite(t, spec)
	assert.Equal(t, 2, result.TotalTests)
	assert.Equal(t, 2, result.Passed)
	assert.Equal(t, "math::testIdentity with data set #0", result.TestResults[0].Name)
	assert.Equal(t, `math::testIdentity with data set "zero"`, result.TestResults[1].Name)
}

func TestBuild_SkipStep(t *testing.T) {
	path := writeScenario(t, `
suite: flaky
tests:
  - name: testNotToday
    skip: requires network
    steps:
      - fail: should never run
`)
	spec, err := LoadFile(path)
	require.NoError(t, err)

	result, _ := runSuite(t, spec)
	assert.Equal(t, 1, result.Skipped)
}

func TestBuild_WarnStepEmitsEventAndPasses(t *testing.T) {
	path := writeScenario(t, `
suite: warning
tests:
  - name: testWarns
    steps:
      - warn: message
      - assertEqual: {expected: 1, actual: 1}
`)
	spec, err := LoadFile(path)
	require.NoError(t, err)

	result, collector := runSuite(t, spec)
	assert.Equal(t, 1, result.Passed)
	assert.Contains(t, collector.Kinds(), events.KindTestTriggeredWarning)
}

func TestBuild_StubFailureErrorsTest(t *testing.T) {
	path := writeScenario(t, `
suite: faulty
tests:
  - name: testStubFails
    doubles:
      - name: db
        expect:
          - method: Query
            fails: connection refused
    steps:
      - call: {double: db, method: Query}
`)
	spec, err := LoadFile(path)
	require.NoError(t, err)

	result, _ := runSuite(t, spec)
	assert.Equal(t, 1, result.Errored)
	assert.Contains(t, result.TestResults[0].Message, "connection refused")
}

func TestBuild_UnknownDoubleInStep(t *testing.T) {
	path := writeScenario(t, `
suite: oops
tests:
  - name: testTypo
    steps:
      - call: {double: nope, method: X}
`)
	spec, err := LoadFile(path)
	require.NoError(t, err)

	result, _ := runSuite(t, spec)
	assert.Equal(t, 1, result.Errored)
	assert.Contains(t, result.TestResults[0].Message, `unknown double "nope"`)
}

func TestBuild_ExpectErrorMatchesStubbedFailure(t *testing.T) {
	path := writeScenario(t, `
suite: mailer
tests:
  - name: testRejectsBadAddress
    doubles:
      - name: smtp
        expect:
          - method: Send
            fails: address rejected
    steps:
      - call: {double: smtp, method: Send, expectError: address rejected}
`)
	spec, err := LoadFile(path)
	require.NoError(t, err)

	result, _ := runSuite(t, spec)
	assert.Equal(t, 1, result.Passed)
}

func TestBuild_ExpectErrorOnSuccessFails(t *testing.T) {
	path := writeScenario(t, `
suite: mailer
tests:
  - name: testExpectsRejection
    doubles:
      - name: smtp
        expect:
          - method: Send
            returns: [true]
    steps:
      - call: {double: smtp, method: Send, expectError: address rejected}
`)
	spec, err := LoadFile(path)
	require.NoError(t, err)

	result, _ := runSuite(t, spec)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, result.TestResults[0].Message, "succeeded, expected error")
}
