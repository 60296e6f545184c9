// Package jsonschema exports the wire document as a JSON Schema so device
// tooling and editors can check VSN files without this module.
package jsonschema

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	// Core
	Schema      string   `json:"$schema,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type,omitempty"`
	Format      string   `json:"format,omitempty"`
	Default     any      `json:"default,omitempty"`
	Pattern     string   `json:"pattern,omitempty"`
	Enum        []string `json:"enum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Draft is the dialect of exported schemas.
const Draft = "https://json-schema.org/draft/2020-12/schema"
