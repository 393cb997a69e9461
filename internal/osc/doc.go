// Package osc owns the wire codec for typed control messages.
//
// Ownership boundary:
// - message view and cursor invariants
// - header parse and per-tag argument extraction
// - argument serialization into caller-provided buffers
package osc
