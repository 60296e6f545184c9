package api

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	govsn "github.com/reoring/govsn"
	"github.com/reoring/govsn/convert"
	"github.com/reoring/govsn/editing"
	"github.com/reoring/govsn/i18n"
	xlog "github.com/reoring/govsn/internal/log"
	"github.com/reoring/govsn/internal/metrics"
	"github.com/reoring/govsn/jsonschema"
	"github.com/reoring/govsn/validate"
	"github.com/reoring/govsn/wire"
)

// EncodeRequest is the body of POST /api/v1/vsn/encode.
type EncodeRequest struct {
	Document  *editing.Document           `json:"document"`
	Materials []editing.MaterialReference `json:"materials,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: s.version})
}

func (s *Server) handleSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, jsonschema.WireDocument())
}

func (s *Server) handleEncode(c echo.Context) error {
	var req EncodeRequest
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid encode request", err)
	}
	if req.Document == nil {
		return NewBadRequestError("document is required", nil)
	}
	start := time.Now()
	opts := append(s.cfg.ConvertOptions(), convert.WithTranslator(s.translator(c)))
	conv, err := convert.ToVSN(req.Document, req.Materials, opts...)
	if err != nil {
		s.metrics.ObserveError(metrics.OpEncode, time.Since(start))
		return NewConversionError(err)
	}
	s.metrics.ObserveResult(metrics.OpEncode, conv.Validation, time.Since(start))
	xlog.FromContext(c.Request().Context()).Info().
		Int("pages", len(conv.Document.Pages)).
		Bool("valid", conv.Validation.IsValid).
		Int("errors", len(conv.Validation.Errors)).
		Msg("encoded document")
	return respond(c, http.StatusOK, conv)
}

func (s *Server) handleDecode(c echo.Context) error {
	doc, _, err := readWire(c)
	if err != nil {
		return err
	}
	start := time.Now()
	out, err := convert.FromVSN(doc)
	if err != nil {
		s.metrics.ObserveError(metrics.OpDecode, time.Since(start))
		return NewConversionError(err)
	}
	s.metrics.ObserveResult(metrics.OpDecode, govsn.NewResult(), time.Since(start))
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleValidate(c echo.Context) error {
	doc, raw, err := readWire(c)
	if err != nil {
		return err
	}
	start := time.Now()
	tr := s.translator(c)
	res := validate.Run(doc, validate.Options{Translator: tr})
	if raw != nil {
		dups, err := wire.Inspect(raw)
		if err != nil {
			return NewBadRequestError("invalid JSON", err)
		}
		res = res.Merge(dups...).Localize(tr)
	}
	s.metrics.ObserveResult(metrics.OpValidate, res, time.Since(start))
	return respond(c, http.StatusOK, res)
}

// translator picks the request's Accept-Language, falling back to the
// configured language, and reports the choice in Content-Language.
func (s *Server) translator(c echo.Context) govsn.Translator {
	tr := i18n.New(s.cfg.Validation.Language)
	if al := c.Request().Header.Get("Accept-Language"); al != "" {
		tr = i18n.Match(al)
	}
	if lang := i18n.Lang(tr); lang != "" {
		c.Response().Header().Set("Content-Language", lang)
	}
	return tr
}

// readWire decodes the body as a wire document in the format named by
// Content-Type. raw is the body when it was JSON, for duplicate-key checks.
func readWire(c echo.Context) (doc *wire.Document, raw []byte, err error) {
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, nil, NewBadRequestError("read body", err)
	}
	f := formatOf(c.Request().Header.Get(echo.HeaderContentType))
	doc, err = wire.Unmarshal(data, f)
	if err != nil {
		return nil, nil, NewBadRequestError("invalid wire document", err)
	}
	if f == wire.FormatJSON {
		raw = data
	}
	return doc, raw, nil
}

func formatOf(contentType string) wire.Format {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return wire.FormatJSON
	}
	switch {
	case strings.HasSuffix(mt, "msgpack"):
		return wire.FormatMsgpack
	case strings.HasSuffix(mt, "yaml"):
		return wire.FormatYAML
	default:
		return wire.FormatJSON
	}
}

// respond writes v as MessagePack or YAML when the client asks for it, and
// as JSON otherwise.
func respond(c echo.Context, status int, v any) error {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	switch {
	case strings.Contains(accept, "msgpack"):
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(v); err != nil {
			return NewInternalError("encode msgpack", err)
		}
		return c.Blob(status, wire.FormatMsgpack.ContentType(), buf.Bytes())
	case strings.Contains(accept, "yaml"):
		data, err := yaml.Marshal(v)
		if err != nil {
			return NewInternalError("encode yaml", err)
		}
		return c.Blob(status, wire.FormatYAML.ContentType(), data)
	default:
		return c.JSON(status, v)
	}
}
