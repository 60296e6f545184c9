// Command govsn converts and validates LED display programs.
//
//	govsn encode   -in program.json [-materials refs.json] [-format json|yaml|msgpack] [-o out]
//	govsn decode   -in program.vsn [-o out]
//	govsn validate [-lang en] file.vsn...
//	govsn schema   [-o out]
//	govsn serve    [-config govsn.yaml]
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"slices"
	"syscall"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	govsn "github.com/reoring/govsn"
	"github.com/reoring/govsn/convert"
	"github.com/reoring/govsn/editing"
	"github.com/reoring/govsn/i18n"
	"github.com/reoring/govsn/internal/api"
	"github.com/reoring/govsn/internal/config"
	xlog "github.com/reoring/govsn/internal/log"
	"github.com/reoring/govsn/jsonschema"
	"github.com/reoring/govsn/validate"
	"github.com/reoring/govsn/wire"
)

var version = "dev"

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1 // document failed validation
	exitUsage   = 2
	exitFailure = 3 // I/O or conversion error
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type cli struct {
	stdin          io.Reader
	stdout, stderr io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	c := cli{stdin: stdin, stdout: stdout, stderr: stderr}
	switch args[0] {
	case "encode":
		return c.encode(args[1:])
	case "decode":
		return c.decode(args[1:])
	case "validate":
		return c.validate(args[1:])
	case "schema":
		return c.schema(args[1:])
	case "serve":
		return c.serve(args[1:])
	case "version":
		fmt.Fprintln(stdout, version)
		return exitOK
	default:
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "govsn CLI\n\nUsage:\n  govsn encode -in program.json [-materials refs.json] [-format json|yaml|msgpack] [-o out]\n  govsn decode -in program.vsn [-o out]\n  govsn validate [-lang en] file.vsn...\n  govsn schema [-o out]\n  govsn serve [-config govsn.yaml]")
}

func (c cli) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

func (c cli) fail(format string, args ...any) int {
	fmt.Fprintf(c.stderr, "govsn: "+format+"\n", args...)
	return exitFailure
}

// read returns the contents of path, or stdin for "" and "-".
func (c cli) read(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(c.stdin)
	}
	return os.ReadFile(path)
}

func (c cli) write(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := c.stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path, nil)
	if err != nil {
		return config.Config{}, err
	}
	xlog.Configure(xlog.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	return cfg, nil
}

// report prints diagnostics and maps them to an exit code.
func (c cli) report(name string, res govsn.Result, failOnWarnings bool) int {
	for _, d := range res.Errors {
		fmt.Fprintf(c.stderr, "%s: error %s %s: %s\n", name, d.Code, d.Field, d.Message)
	}
	for _, d := range res.Warnings {
		fmt.Fprintf(c.stderr, "%s: warning %s %s: %s\n", name, d.Code, d.Field, d.Message)
	}
	if !res.IsValid || (failOnWarnings && len(res.Warnings) > 0) {
		return exitInvalid
	}
	return exitOK
}

func (c cli) encode(args []string) int {
	fs := c.flags("encode")
	in := fs.String("in", "-", "editing document JSON")
	mats := fs.String("materials", "", "material references JSON array")
	out := fs.String("o", "-", "output file")
	format := fs.String("format", "", "json, yaml or msgpack (default from -o extension)")
	cfgPath := fs.String("config", "", "configuration file")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return c.fail("%v", err)
	}
	f, err := outputFormat(*format, *out)
	if err != nil {
		return c.fail("%v", err)
	}
	data, err := c.read(*in)
	if err != nil {
		return c.fail("read %s: %v", *in, err)
	}
	doc, err := editing.Unmarshal(data)
	if err != nil {
		return c.fail("%v", err)
	}
	var refs []editing.MaterialReference
	if *mats != "" {
		raw, err := os.ReadFile(*mats)
		if err != nil {
			return c.fail("read %s: %v", *mats, err)
		}
		if refs, err = editing.UnmarshalMaterials(raw); err != nil {
			return c.fail("%v", err)
		}
	}
	conv, err := convert.ToVSN(doc, refs, cfg.ConvertOptions()...)
	if err != nil {
		return c.fail("%v", err)
	}
	code := c.report(*in, conv.Validation, cfg.Validation.FailOnWarnings)
	if code != exitOK {
		return code
	}
	encoded, err := wire.Marshal(conv.Document, f)
	if err != nil {
		return c.fail("%v", err)
	}
	if err := c.write(*out, encoded); err != nil {
		return c.fail("write %s: %v", *out, err)
	}
	return exitOK
}

func outputFormat(flagValue, out string) (wire.Format, error) {
	if flagValue != "" {
		return wire.ParseFormat(flagValue)
	}
	if out == "" || out == "-" {
		return wire.FormatJSON, nil
	}
	return wire.ParseFormat(filepath.Ext(out))
}

func (c cli) decode(args []string) int {
	fs := c.flags("decode")
	in := fs.String("in", "-", "wire document")
	out := fs.String("o", "-", "output file")
	format := fs.String("format", "", "input format (default from -in extension)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	f, err := outputFormat(*format, *in)
	if err != nil {
		return c.fail("%v", err)
	}
	data, err := c.read(*in)
	if err != nil {
		return c.fail("read %s: %v", *in, err)
	}
	wd, err := wire.Unmarshal(data, f)
	if err != nil {
		return c.fail("%v", err)
	}
	doc, err := convert.FromVSN(wd)
	if err != nil {
		return c.fail("%v", err)
	}
	encoded, err := editing.Marshal(doc)
	if err != nil {
		return c.fail("%v", err)
	}
	if err := c.write(*out, append(encoded, '\n')); err != nil {
		return c.fail("write %s: %v", *out, err)
	}
	return exitOK
}

type fileResult struct {
	Path   string       `json:"path"`
	Result govsn.Result `json:"result"`
}

// validate checks every file concurrently and prints one JSON result per file
// in argument order.
func (c cli) validate(args []string) int {
	fs := c.flags("validate")
	lang := fs.String("lang", "", "message language (en, ja, zh)")
	strict := fs.Bool("strict", false, "treat warnings as failures")
	cfgPath := fs.String("config", "", "configuration file")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return c.fail("%v", err)
	}
	if *lang != "" {
		cfg.Validation.Language = *lang
	}
	failOnWarnings := *strict || cfg.Validation.FailOnWarnings
	tr := i18n.New(cfg.Validation.Language)

	files := fs.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	var stdin []byte
	if slices.Contains(files, "-") {
		if stdin, err = io.ReadAll(c.stdin); err != nil {
			return c.fail("read stdin: %v", err)
		}
	}
	results := make([]fileResult, len(files))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			data := stdin
			if path != "-" {
				var err error
				if data, err = os.ReadFile(path); err != nil {
					return err
				}
			}
			res, err := c.validateFile(path, data, tr)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = fileResult{Path: path, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return c.fail("%v", err)
	}

	code := exitOK
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return c.fail("%v", err)
		}
		if c.report(r.Path, r.Result, failOnWarnings) != exitOK {
			code = exitInvalid
		}
	}
	return code
}

func (c cli) validateFile(path string, data []byte, tr govsn.Translator) (govsn.Result, error) {
	f := wire.FormatJSON
	if path != "-" {
		var err error
		if f, err = wire.ParseFormat(filepath.Ext(path)); err != nil {
			f = wire.FormatJSON
		}
	}
	doc, err := wire.Unmarshal(data, f)
	if err != nil {
		return govsn.Result{}, err
	}
	res := validate.Run(doc, validate.Options{Translator: tr})
	if f == wire.FormatJSON {
		dups, err := wire.Inspect(data)
		if err != nil {
			return govsn.Result{}, err
		}
		res = res.Merge(dups...).Localize(tr)
	}
	return res, nil
}

func (c cli) schema(args []string) int {
	fs := c.flags("schema")
	out := fs.String("o", "-", "output file")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	data, err := json.Marshal(jsonschema.WireDocument())
	if err != nil {
		return c.fail("%v", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return c.fail("%v", err)
	}
	buf.WriteByte('\n')
	if err := c.write(*out, buf.Bytes()); err != nil {
		return c.fail("write %s: %v", *out, err)
	}
	return exitOK
}

func (c cli) serve(args []string) int {
	fs := c.flags("serve")
	cfgPath := fs.String("config", "", "configuration file")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		return c.fail("%v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := xlog.WithComponent("serve")
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return api.New(cfg, version).Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("stop requested")
		return nil
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("server stopped")
		return exitFailure
	}
	return exitOK
}
