// Package engine scans raw JSON token streams for problems that typed decoding
// hides: duplicate object keys (the last one silently wins) and runaway
// nesting.
package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
)

// ErrTooDeep is returned when nesting exceeds Options.MaxDepth.
var ErrTooDeep = errors.New("engine: max depth exceeded")

// Options bounds a scan. Zero values disable the corresponding limit.
type Options struct {
	MaxDepth  int
	MaxIssues int
}

// Finding is one duplicate key, located by the dotted path of the duplicated
// member.
type Finding struct {
	Path string
	Key  string
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	path         string
	keys         map[string]struct{}
	expectingKey bool
	key          string
	index        int
}

// ScanBytes scans data and reports duplicate keys. Syntax errors and depth
// violations are returned as errors together with the findings so far.
func ScanBytes(data []byte, opt Options) ([]Finding, error) {
	return Scan(bytes.NewReader(data), opt)
}

// Scan consumes r fully.
func Scan(r io.Reader, opt Options) ([]Finding, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var (
		stack []frame
		out   []Finding
	)
	// next returns the path of the value about to be read and advances the
	// enclosing container.
	next := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		if top.kind == kindArray {
			p := top.path + "[" + strconv.Itoa(top.index) + "]"
			top.index++
			return p
		}
		top.expectingKey = true
		return join(top.path, top.key)
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if len(stack) > 0 {
				return out, fmt.Errorf("engine: %w", io.ErrUnexpectedEOF)
			}
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("engine: %w", err)
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				p := next()
				if opt.MaxDepth > 0 && len(stack)+1 > opt.MaxDepth {
					return out, fmt.Errorf("%w at %q (limit %d)", ErrTooDeep, p, opt.MaxDepth)
				}
				f := frame{kind: kindArray, path: p}
				if d == '{' {
					f = frame{kind: kindObject, path: p, keys: map[string]struct{}{}, expectingKey: true}
				}
				stack = append(stack, f)
			case '}', ']':
				if n := len(stack); n > 0 {
					stack = stack[:n-1]
				}
			}
			continue
		}
		if n := len(stack); n > 0 {
			top := &stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				key, _ := tok.(string)
				if _, dup := top.keys[key]; dup {
					out = append(out, Finding{Path: join(top.path, key), Key: key})
					if opt.MaxIssues > 0 && len(out) >= opt.MaxIssues {
						return out, nil
					}
				}
				top.keys[key] = struct{}{}
				top.key = key
				top.expectingKey = false
				continue
			}
		}
		next()
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
