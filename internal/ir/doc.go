// Package ir provides the intermediate representation of a native library's
// public surface: the types, aggregates, enums, typedefs, opaque handles,
// functions and constants a language backend turns into binding source text.
//
// This package contains type definitions only. All other internal packages
// import ir; ir imports nothing internal. The tree is built once by a loader,
// is fully resolved (all Path references valid by name), and is never mutated
// during emission.
package ir
