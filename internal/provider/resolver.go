package provider

import (
	"fmt"

	"witness/internal/events"
	"witness/internal/metadata"
	"witness/pkg/logging"
)

// Entry is one resolved data set: a key and the argument tuple fed to one
// parameterized run of the test method.
type Entry struct {
	Key   string
	Named bool
	Args  []interface{}
}

// Label renders the key the way child tests are named: #0 for positional
// sets, "name" for named ones.
func (e Entry) Label() string {
	if e.Named {
		return fmt.Sprintf("%q", e.Key)
	}
	return "#" + e.Key
}

// Set is the ordered mapping of keys to argument tuples produced by
// resolution.
type Set struct {
	entries []Entry
}

// Entries returns the data sets in contribution order.
func (s *Set) Entries() []Entry {
	return s.entries
}

// Len returns the number of data sets.
func (s *Set) Len() int {
	return len(s.entries)
}

// Resolver expands a test method's declared data sources into concrete
// argument sets. Provider methods are validated against their descriptors
// before they are ever invoked.
type Resolver struct {
	registry *metadata.Registry
	emitter  *events.Emitter
}

// NewResolver creates a resolver over the given metadata registry,
// emitting provider lifecycle events through emitter.
func NewResolver(registry *metadata.Registry, emitter *events.Emitter) *Resolver {
	return &Resolver{
		registry: registry,
		emitter:  emitter,
	}
}

// Resolve returns the merged data sets for a test method, or nil when the
// method declares no data source. Key collisions, invalid provider
// methods, empty providers and non-tuple data sets all fail with
// InvalidDataProviderError; the caller marks the affected test errored
// and continues the suite.
func (r *Resolver) Resolve(class, method string) (*Set, error) {
	md := r.registry.ForMethod(class, method)
	if !md.HasDataSources() {
		return nil, nil
	}

	test := metadata.MethodRef{Class: class, Method: method}
	set := &Set{}
	index := 0
	named := make(map[string]bool)

	// Static declarative sets are checked for collisions independently of
	// method-sourced ones, with their own message.
	staticNamed := make(map[string]bool)
	for _, ds := range md.DataSets() {
		if ds.Key != "" {
			if staticNamed[ds.Key] {
				return nil, &InvalidDataProviderError{
					Test:    test,
					Message: fmt.Sprintf("multiple static data sets define key %q", ds.Key),
				}
			}
			staticNamed[ds.Key] = true
		}
		if _, err := appendEntry(set, ds, &index, named, test); err != nil {
			return nil, err
		}
	}

	for _, descriptor := range md.Providers() {
		sets, err := r.invokeProvider(descriptor, test)
		if err != nil {
			return nil, err
		}
		for _, ds := range sets {
			if _, err := appendEntry(set, ds, &index, named, test); err != nil {
				return nil, err
			}
		}
	}

	logging.Debug("Provider", "Resolved %d data set(s) for %s", set.Len(), test)
	return set, nil
}

// invokeProvider validates the descriptor, then calls the provider method
// bracketed by Data Provider Method Called/Finished events. The Finished
// event is emitted even when the provider fails, preserving event
// ordering on the failure path.
func (r *Resolver) invokeProvider(d metadata.Descriptor, test metadata.MethodRef) (sets []metadata.DataSet, err error) {
	switch {
	case !d.Public:
		return nil, &InvalidDataProviderError{
			Test:    test,
			Message: fmt.Sprintf("data provider method %s is not public", d.Ref),
		}
	case !d.Static:
		return nil, &InvalidDataProviderError{
			Test:    test,
			Message: fmt.Sprintf("data provider method %s is not static", d.Ref),
		}
	case d.Arity > 0:
		return nil, &InvalidDataProviderError{
			Test:    test,
			Message: fmt.Sprintf("data provider method %s expects %d parameter(s)", d.Ref, d.Arity),
		}
	}

	r.emitter.DataProviderMethodCalled(d.Ref.String())
	defer r.emitter.DataProviderMethodFinished(d.Ref.String())

	func() {
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("panicked: %v", p)
			}
		}()
		sets, err = d.Call()
	}()
	if err != nil {
		return nil, &InvalidDataProviderError{
			Test:    test,
			Message: fmt.Sprintf("data provider method %s failed: %v", d.Ref, err),
		}
	}
	if len(sets) == 0 {
		return nil, &InvalidDataProviderError{
			Test:    test,
			Message: fmt.Sprintf("data provider method %s returned an empty collection", d.Ref),
		}
	}
	return sets, nil
}

func appendEntry(set *Set, ds metadata.DataSet, index *int, named map[string]bool, test metadata.MethodRef) (Entry, error) {
	if ds.Args == nil {
		return Entry{}, &InvalidDataProviderError{
			Test:    test,
			Message: fmt.Sprintf("data set %s is not an argument tuple", keyLabel(ds, *index)),
		}
	}

	entry := Entry{Args: ds.Args}
	if ds.Key != "" {
		if named[ds.Key] {
			return Entry{}, &InvalidDataProviderError{
				Test:    test,
				Message: fmt.Sprintf("multiple data providers define a data set with key %q", ds.Key),
			}
		}
		named[ds.Key] = true
		entry.Key = ds.Key
		entry.Named = true
	} else {
		entry.Key = fmt.Sprintf("%d", *index)
		*index++
	}
	set.entries = append(set.entries, entry)
	return entry, nil
}

func keyLabel(ds metadata.DataSet, index int) string {
	if ds.Key != "" {
		return fmt.Sprintf("%q", ds.Key)
	}
	return fmt.Sprintf("#%d", index)
}
