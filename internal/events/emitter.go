package events

import "fmt"

// Emitter exposes one method per event kind. Emission is fire-and-forget;
// ordering is the caller's responsibility.
type Emitter struct {
	facade *Facade
}

func (e *Emitter) TestRunnerStarted() {
	e.facade.emit(KindTestRunnerStarted, "")
}

func (e *Emitter) TestRunnerFinished() {
	e.facade.emit(KindTestRunnerFinished, "")
}

func (e *Emitter) TestRunnerTriggeredWarning(message string) {
	e.facade.emit(KindTestRunnerTriggeredWarning, message)
}

func (e *Emitter) ExecutionStarted() {
	e.facade.emit(KindExecutionStarted, "")
}

func (e *Emitter) ExecutionFinished() {
	e.facade.emit(KindExecutionFinished, "")
}

func (e *Emitter) TestSuiteStarted(suite string) {
	e.facade.emit(KindTestSuiteStarted, suite)
}

func (e *Emitter) TestSuiteFinished(suite string) {
	e.facade.emit(KindTestSuiteFinished, suite)
}

func (e *Emitter) TestPreparationStarted(test string) {
	e.facade.emit(KindTestPreparationStarted, test)
}

func (e *Emitter) TestPrepared(test string) {
	e.facade.emit(KindTestPrepared, test)
}

func (e *Emitter) TestTriggeredWarning(test, message string) {
	e.facade.emit(KindTestTriggeredWarning, withMessage(test, message))
}

func (e *Emitter) TestTriggeredNotice(test, message string) {
	e.facade.emit(KindTestTriggeredNotice, withMessage(test, message))
}

func (e *Emitter) TestTriggeredDeprecation(test, message string) {
	e.facade.emit(KindTestTriggeredDeprecation, withMessage(test, message))
}

func (e *Emitter) TestPassed(test string) {
	e.facade.emit(KindTestPassed, test)
}

func (e *Emitter) TestFailed(test, reason string) {
	e.facade.emit(KindTestFailed, withMessage(test, reason))
}

func (e *Emitter) TestErrored(test, reason string) {
	e.facade.emit(KindTestErrored, withMessage(test, reason))
}

func (e *Emitter) TestSkipped(test, reason string) {
	e.facade.emit(KindTestSkipped, withMessage(test, reason))
}

func (e *Emitter) TestFinished(test string) {
	e.facade.emit(KindTestFinished, test)
}

func (e *Emitter) DataProviderMethodCalled(provider string) {
	e.facade.emit(KindDataProviderMethodCalled, provider)
}

func (e *Emitter) DataProviderMethodFinished(provider string) {
	e.facade.emit(KindDataProviderMethodFinished, provider)
}

func withMessage(subject, message string) string {
	if message == "" {
		return subject
	}
	return fmt.Sprintf("%s: %s", subject, message)
}
