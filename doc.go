// Package oascodec provides a validated, order-preserving codec for
// OpenAPI specification documents.
//
// oascodec turns an in-memory specification object graph into JSON or YAML
// bytes, running any number of pluggable validators over the document
// first, and parses block-style YAML back into an order-preserving
// document model.
//
// # Overview
//
// The library consists of five packages:
//
//   - document: the ordered document model that flows through the pipeline
//   - codec: the JSON and YAML encoders and their validation pipeline
//   - validation: the validator registry and failure aggregation
//   - engines: built-in black-box validation engines
//   - saneyaml: the fixed-policy YAML writer and order-preserving parser
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/oascodec
//
// # Quick Start
//
// Encode a specification object as pretty JSON:
//
//	import "github.com/erraggy/oascodec/codec"
//
//	c, err := codec.NewJSON(codec.WithPretty(true))
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, err := c.Encode(spec)
//
// Encode as YAML with both built-in validators:
//
//	import (
//		"github.com/erraggy/oascodec/codec"
//		_ "github.com/erraggy/oascodec/engines"
//	)
//
//	c, err := codec.NewYAML(codec.WithValidators("kin", "libopenapi"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, err := c.Encode(spec)
//
// Parse YAML while preserving mapping key order:
//
//	import "github.com/erraggy/oascodec/saneyaml"
//
//	doc, err := saneyaml.Unmarshal(data)
//
// # Guarantees
//
// Mapping key order is preserved end to end: the order the producing layer
// emitted is the order the bytes carry, at every nesting level. Validators
// only ever see deep copies of the document, so a validator that annotates
// its input can never alter what gets serialized. When validation fails,
// the returned error enumerates every failing validator, not just the
// first.
package oascodec
