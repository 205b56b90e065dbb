// Package provider resolves a test method's declared data sources into
// concrete argument sets, one parameterized test run per set.
//
// Data comes from two source kinds: provider methods, validated against
// their registration-time descriptors before they are invoked, and static
// declarative data sets attached directly to the test method. Named keys
// must be unique across all contributing sources; a collision fails
// resolution, not the test run that would have used the data.
//
// Provider method invocations are bracketed by Data Provider Method
// Called/Finished events, and the Finished event is emitted even when the
// provider fails or panics.
package provider
