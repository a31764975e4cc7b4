// Package saneyaml writes and reads YAML with a fixed policy suited to
// OpenAPI documents.
//
// Import path: github.com/erraggy/oascodec/saneyaml
//
// # Writing
//
// [Marshal] emits block-style YAML with a non-negotiable policy:
//
//   - anchors and aliases are never emitted; structurally identical
//     sub-objects (two empty response bodies, say) are written out in full
//     at every occurrence instead of being collapsed into back-references
//   - sequence items are indented under their parent mapping key
//   - ordered mappings serialize as plain YAML mappings, preserving key
//     order without any custom tag
//   - strings containing a newline use literal block style (|)
//   - unicode is emitted literally, never escaped
//
// # Reading
//
// [Unmarshal] is the inverse: it parses a YAML mapping, flattens merge
// keys (<<) into the target mapping, and rebuilds a [document.Map] whose
// key order matches the textual order of the source.
package saneyaml
