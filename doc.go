// Package govsn converts LED display programs between the editing document
// authored in the UI and the flat, fully stringified wire document ("VSN")
// consumed by playback devices, and certifies wire documents before they ship.
//
// The root package holds the shared vocabulary:
//
// - The closed item type tag set (ItemType) and its property families (Variant)
// - A stable diagnostics model (Diagnostic, Result) with dotted field paths
// - Sentinel errors and ConversionError
//
// Components live in subpackages:
//
// - codec: scalar conversions (colors, numbers, flags)
// - editing, wire: the two document models
// - validate, rules: the validation engine and its scalar rules
// - convert: forward (ToVSN) and reverse (FromVSN) converters
// - i18n: diagnostic message catalogs (en, ja, zh)
// - jsonschema: a JSON Schema description of the wire document
//
// cmd/govsn wraps the components in a CLI and an HTTP service.
//
// Typical usage:
//
//	conv, err := convert.ToVSN(doc, materials)
//	if err != nil { ... }                    // unsupported item type
//	if !conv.Validation.IsValid { ... }      // block export
//	data, _ := wire.Marshal(conv.Document, wire.FormatJSON)
//
// Every function in the core is pure and safe for concurrent use.
package govsn
