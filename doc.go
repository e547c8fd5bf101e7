// Package laxml is a permissive, incremental XML reader.
// It recognizes tags with a chunk-driven state machine, builds an in-memory
// element tree, and answers slash-separated path queries with optional
// ?key=value attribute predicates.
//
// The reader is intentionally not a validating XML processor: it does not
// resolve entities, namespaces, or character references, and it accepts
// loose input such as unquoted attribute values, bare attributes, and
// mismatched close tags. Input may be fed in arbitrary byte chunks; chunk
// boundaries may fall anywhere, including inside tag delimiters.
package laxml
