// Package scenario loads declarative test suites from yaml files,
// validates them against a JSON schema, and compiles them into runnable
// suites.
//
// A suite file names its suite, its tests, and nested suites. Each test
// can declare static data sets (one run per set), configure test doubles
// with expectations, and list body steps: double calls, assertions,
// triggered warnings, explicit failures and sleeps. Step values of the
// form "$N" reference the N-th data set argument of a parameterized run.
package scenario
