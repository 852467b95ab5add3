// Package document holds the structured-document tree the JSON and YAML
// merge strategies work on.
//
// Objects are insertion-ordered maps, arrays are []any and scalars keep the
// value their codec produced (json.Number for JSON numbers, native Go values
// for YAML). Merges never sort keys: the output order is the local document's
// keys followed by any keys only the remote document has.
package document
