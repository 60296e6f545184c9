package wire

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	govsn "github.com/reoring/govsn"
	"github.com/reoring/govsn/internal/engine"
)

// Format is a serialisation of the wire document. JSON is what devices read;
// YAML and MessagePack are for inspection and compact archival.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat accepts a format name or a common file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "json", "vsn":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "msgpack", "mpk", "mp":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("wire: unknown format %q", s)
	}
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatMsgpack:
		return "application/msgpack"
	default:
		return "application/json"
	}
}

// Marshal serialises doc in format f.
func Marshal(doc *Document, f Format) ([]byte, error) {
	switch f {
	case FormatJSON, "":
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatMsgpack:
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("wire: encode msgpack: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("wire: unknown format %q", f)
	}
}

// Unmarshal parses a document in format f. Unknown fields are ignored so newer
// firmware fields do not break import.
func Unmarshal(data []byte, f Format) (*Document, error) {
	var doc Document
	switch f {
	case FormatJSON, "":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("wire: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("wire: decode yaml: %w", err)
		}
	case FormatMsgpack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.SetCustomStructTag("json")
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("wire: decode msgpack: %w", err)
		}
	default:
		return nil, fmt.Errorf("wire: unknown format %q", f)
	}
	return &doc, nil
}

// MaxDepth bounds nesting in imported JSON. A well-formed document nests six
// levels deep.
const MaxDepth = 16

// Inspect scans raw JSON before typed decoding and reports duplicate keys as
// warnings. It fails on malformed JSON or excessive nesting.
func Inspect(data []byte) ([]govsn.Diagnostic, error) {
	found, err := engine.ScanBytes(data, engine.Options{MaxDepth: MaxDepth, MaxIssues: 100})
	if err != nil {
		return nil, fmt.Errorf("wire: %w", err)
	}
	var out []govsn.Diagnostic
	for _, f := range found {
		out = append(out, govsn.ParsePath(f.Path).Warning(govsn.CodeDuplicateKey, "key", f.Key))
	}
	return out, nil
}
