// Package document provides the ordered document model that flows through
// the codec pipeline.
//
// An OpenAPI document is an ordered tree: mapping key order carries meaning
// (parameter order, path order) and must survive every transformation from
// the schema generator down to the serialized bytes. Go's built-in maps do
// not preserve insertion order, so this package provides [Map], an ordered
// string-keyed mapping used uniformly by the validation and serialization
// layers.
//
// Values stored in a Map are restricted to JSON-compatible kinds: scalars
// (string, bool, nil, and the numeric types), []any sequences, and nested
// *Map mappings.
//
// # Order as value identity
//
// For this type, key order is part of value identity, not incidental:
// [Map.Equal] reports two maps with the same entries in different orders as
// unequal, and [Map.DeepCopy] reproduces order exactly. No consumer of a
// Map may reorder its keys.
package document
