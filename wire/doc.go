// Package wire implements the two external operation encodings of spec.md
// §6: a JSON-lines codec and a length-prefixed binary codec, both required
// to round-trip an op.Operation exactly (numeric types and list structure
// preserved). Neither codec has a teacher analog (lvlath never serializes
// anything); both are built on stdlib packages only, which DESIGN.md
// records as stdlib-by-necessity: no ecosystem JSON replacement or
// protobuf/msgpack schema for this ad hoc shape appears anywhere in the
// retrieval pack, and fabricating a generated-code schema without a
// toolchain is disallowed.
package wire
