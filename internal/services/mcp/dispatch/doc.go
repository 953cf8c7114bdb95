// Package dispatch is the tool-dispatch core: the operation registry, the
// generic lookup-validate-invoke-normalize sequence, and the translation of
// handler results and failures into protocol response envelopes.
//
// Every operation flows through the same path; there is no per-operation
// branching outside handler bodies.
package dispatch
