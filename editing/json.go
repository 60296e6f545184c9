package editing

import (
	"fmt"

	"github.com/goccy/go-json"

	govsn "github.com/reoring/govsn"
)

// UnmarshalJSON decodes an item and its properties, choosing the property
// shape from the type code. Unknown codes leave Properties nil.
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          string             `json:"id"`
		Type        govsn.ItemType     `json:"type"`
		Name        string             `json:"name"`
		Position    Position           `json:"position"`
		Size        Size               `json:"size"`
		Properties  json.RawMessage    `json:"properties"`
		MaterialRef *MaterialReference `json:"materialRef"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*it = Item{
		ID:          raw.ID,
		Type:        raw.Type,
		Name:        raw.Name,
		Position:    raw.Position,
		Size:        raw.Size,
		MaterialRef: raw.MaterialRef,
	}
	props := NewProperties(raw.Type.Variant())
	if props == nil {
		return nil
	}
	if len(raw.Properties) > 0 && string(raw.Properties) != "null" {
		if err := json.Unmarshal(raw.Properties, props); err != nil {
			return fmt.Errorf("editing: item %q properties: %w", raw.ID, err)
		}
	}
	it.Properties = props
	return nil
}

// Unmarshal decodes an editing document from JSON.
func Unmarshal(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("editing: decode document: %w", err)
	}
	return &doc, nil
}

// UnmarshalMaterials decodes a JSON array of material references.
func UnmarshalMaterials(data []byte) ([]MaterialReference, error) {
	var refs []MaterialReference
	if err := json.Unmarshal(data, &refs); err != nil {
		return nil, fmt.Errorf("editing: decode materials: %w", err)
	}
	return refs, nil
}

// Marshal encodes an editing document as indented JSON.
func Marshal(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
