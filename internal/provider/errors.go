package provider

import (
	"fmt"

	"witness/internal/metadata"
)

// InvalidDataProviderError reports a configuration-time data provider
// failure. It is fatal to the single test it belongs to; the runner marks
// that test errored and continues the suite.
type InvalidDataProviderError struct {
	Test    metadata.MethodRef
	Message string
}

func (e *InvalidDataProviderError) Error() string {
	return fmt.Sprintf("invalid data provider for %s: %s", e.Test, e.Message)
}
