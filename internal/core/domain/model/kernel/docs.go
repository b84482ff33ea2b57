// Package kernel provides core domain primitives shared by the order model.
//
// The package includes:
//   - ID: a value object for store-assigned integer identifiers
//   - Clock: the injected time source for lifecycle transitions, with a
//     system implementation and a fixed one for tests
//   - WholeSeconds: the duration truncation rule used by all time accounting
//
// These primitives are immutable (except the test clock, which is guarded by a
// mutex) and safe for concurrent use.
package kernel
