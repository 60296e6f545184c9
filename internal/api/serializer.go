package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// jsonSerializer swaps echo's encoding/json for goccy/go-json.
type jsonSerializer struct{}

// Serialize indents after encoding: the goccy indenting encoder does not
// terminate on self-referencing types such as jsonschema.Schema.
func (jsonSerializer) Serialize(c echo.Context, i any, indent string) error {
	data, err := json.Marshal(i)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if indent == "" {
		buf.Write(data)
	} else if err := json.Indent(&buf, data, "", indent); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = c.Response().Write(buf.Bytes())
	return err
}

func (jsonSerializer) Deserialize(c echo.Context, i any) error {
	err := json.NewDecoder(c.Request().Body).Decode(i)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err)).SetInternal(err)
	}
	return nil
}
