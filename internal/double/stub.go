package double

// StubAction decides what a matched expectation does at call time.
// Immutable after configuration.
type StubAction interface {
	// Apply produces the stubbed return values, or an error when the stub
	// is configured to fail the call.
	Apply(inv Invocation) ([]interface{}, error)
}

type returnValues []interface{}

func (r returnValues) Apply(Invocation) ([]interface{}, error) {
	return r, nil
}

type returnCallback func(Invocation) []interface{}

func (f returnCallback) Apply(inv Invocation) ([]interface{}, error) {
	return f(inv), nil
}

type failAction struct {
	err error
}

func (a failAction) Apply(Invocation) ([]interface{}, error) {
	return nil, a.err
}

type forwardAction func(method string, args []interface{}) ([]interface{}, error)

func (f forwardAction) Apply(inv Invocation) ([]interface{}, error) {
	return f(inv.Method, inv.Args)
}

// Return builds a stub action yielding fixed values on every call.
func Return(values ...interface{}) StubAction {
	return returnValues(values)
}

// ReturnFunc builds a stub action computing return values per call.
func ReturnFunc(fn func(Invocation) []interface{}) StubAction {
	return returnCallback(fn)
}

// Fail builds a stub action that fails the call with err.
func Fail(err error) StubAction {
	return failAction{err: err}
}

// Forward builds a stub action delegating to a substitute implementation.
func Forward(fn func(method string, args []interface{}) ([]interface{}, error)) StubAction {
	return forwardAction(fn)
}
