package metadata

import "fmt"

// MethodRef identifies a test or provider method by class and method name.
type MethodRef struct {
	Class  string
	Method string
}

func (r MethodRef) String() string {
	return fmt.Sprintf("%s::%s", r.Class, r.Method)
}

// DataSet is one argument tuple contributed to a test method, either by a
// provider method or declared statically on the method itself. An empty
// Key means the set is positional and gets an index assigned at
// resolution time.
type DataSet struct {
	Key  string
	Args []interface{}
}

// ProviderFunc produces the data sets of a provider method.
type ProviderFunc func() ([]DataSet, error)

// Descriptor is the narrow reflection surface over a provider method:
// visibility, static-ness and arity are supplied at registration time, so
// resolution can validate the method without runtime reflection.
type Descriptor struct {
	Ref    MethodRef
	Public bool
	Static bool
	Arity  int
	Call   ProviderFunc
}

// MethodMetadata is what the metadata registry knows about one test
// method: its provider methods and its static declarative data sets.
type MethodMetadata struct {
	providers []Descriptor
	dataSets  []DataSet
}

// Providers returns the provider methods declared on the test method, in
// declaration order.
func (m MethodMetadata) Providers() []Descriptor {
	return m.providers
}

// DataSets returns the static declarative data sets, in declaration order.
func (m MethodMetadata) DataSets() []DataSet {
	return m.dataSets
}

// HasDataSources reports whether the method declares any data source at
// all. A method without data sources runs once, unparameterized.
func (m MethodMetadata) HasDataSources() bool {
	return len(m.providers) > 0 || len(m.dataSets) > 0
}

// Registry holds method metadata, populated during suite registration.
type Registry struct {
	methods map[MethodRef]*MethodMetadata
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		methods: make(map[MethodRef]*MethodMetadata),
	}
}

// RegisterProvider attaches a provider method descriptor to a test method.
func (r *Registry) RegisterProvider(test MethodRef, d Descriptor) {
	m := r.methodEntry(test)
	m.providers = append(m.providers, d)
}

// RegisterDataSet attaches a static declarative data set to a test method.
func (r *Registry) RegisterDataSet(test MethodRef, ds DataSet) {
	m := r.methodEntry(test)
	m.dataSets = append(m.dataSets, ds)
}

// ForMethod returns the metadata for a test method. Methods never
// registered yield empty metadata, not an error.
func (r *Registry) ForMethod(class, method string) MethodMetadata {
	if m, ok := r.methods[MethodRef{Class: class, Method: method}]; ok {
		return *m
	}
	return MethodMetadata{}
}

func (r *Registry) methodEntry(ref MethodRef) *MethodMetadata {
	m, ok := r.methods[ref]
	if !ok {
		m = &MethodMetadata{}
		r.methods[ref] = m
	}
	return m
}
