// Package harness randomizes and round-trips every message type a compiled
// schema declares, the way the original implementation's rng-keyed
// constexpr test suite exercises each generated type: for every registered
// message, synthesize N random field assignments, serialize, pass the
// encoded packets through the packet transport exactly as two live peers
// would, decode back into a fresh instance, and assert the result is equal
// to what went in.
//
// harness never validates schema compilation itself (schema.Compile and its
// tests own that) - it assumes a *runtime.Registry already exists and
// stresses the codec/transport path underneath it with data no handwritten
// table of examples would think to include.
package harness
