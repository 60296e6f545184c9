// Package validate certifies that a wire document is safe to send to a player.
//
// Document walks root, information, pages, regions and items in order and
// reports every finding with a dotted field path. It never panics and always
// returns a Result; a nil or empty document is reported as missing pages.
package validate

import (
	"strconv"

	govsn "github.com/reoring/govsn"
	"github.com/reoring/govsn/codec"
	"github.com/reoring/govsn/i18n"
	"github.com/reoring/govsn/rules"
	"github.com/reoring/govsn/wire"
)

// MaxCanvas is the largest canvas edge a player accepts.
const MaxCanvas = 65535

// Options tunes a validation run. The zero value renders English messages and
// collects every finding.
type Options struct {
	// Translator renders messages. nil selects i18n.Default().
	Translator govsn.Translator
	// FailFast stops the walk after the first error.
	FailFast bool
}

// Document validates doc with default options.
func Document(doc *wire.Document) govsn.Result {
	return Run(doc, Options{})
}

// Run validates doc.
func Run(doc *wire.Document, opt Options) govsn.Result {
	tr := opt.Translator
	if tr == nil {
		tr = i18n.Default()
	}
	w := &walker{failFast: opt.FailFast}
	w.document(doc)
	return govsn.NewResult(w.diags...).Localize(tr)
}

type walker struct {
	diags    []govsn.Diagnostic
	failFast bool
	stopped  bool

	// Canvas size from information; zero when unknown.
	canvasW, canvasH int64
}

func (w *walker) add(ds ...govsn.Diagnostic) {
	if w.stopped {
		return
	}
	for _, d := range ds {
		w.diags = append(w.diags, d)
		if w.failFast && d.Level == govsn.LevelError {
			w.stopped = true
			return
		}
	}
}

func (w *walker) check(p govsn.Path, v string, rs ...rules.Rule) {
	w.add(rules.Check(p, v, rs...)...)
}

func (w *walker) required(p govsn.Path) {
	w.add(p.Error(govsn.CodeRequiredFieldMissing))
}

func (w *walker) document(doc *wire.Document) {
	root := govsn.Root()
	if doc == nil {
		w.required(root.Field("pages"))
		return
	}
	w.information(root.Field("information"), doc.Information)
	if len(doc.Pages) == 0 {
		w.required(root.Field("pages"))
		return
	}
	for i := range doc.Pages {
		if w.stopped {
			return
		}
		w.page(root.Field("pages").Index(i), &doc.Pages[i])
	}
}

func (w *walker) information(p govsn.Path, info *wire.Information) {
	if info == nil {
		w.required(p)
		return
	}
	w.check(p.Field("width"), info.Width, rules.Required(), rules.Integer(1, MaxCanvas))
	w.check(p.Field("height"), info.Height, rules.Required(), rules.Integer(1, MaxCanvas))
	wd, errW := codec.ParseWireInt(info.Width)
	ht, errH := codec.ParseWireInt(info.Height)
	if errW == nil && errH == nil && wd >= 1 && ht >= 1 {
		w.canvasW, w.canvasH = wd, ht
	}
}

func (w *walker) page(p govsn.Path, pg *wire.Page) {
	w.check(p.Field("loopType"), pg.LoopType, rules.Required(), rules.Flag())
	w.appointDuration(p.Field("appointDuration"), pg.LoopType, pg.AppointDuration)
	w.check(p.Field("bgColor"), pg.BgColor, rules.Required(), rules.Color())
	if pg.BgFile != nil {
		w.fileSource(p.Field("bgFile"), pg.BgFile)
	}
	for i := range pg.BgAudios {
		w.fileSource(p.Field("bgAudios").Index(i), &pg.BgAudios[i])
	}
	if pg.Regions == nil {
		w.required(p.Field("regions"))
		return
	}
	for j := range pg.Regions {
		if w.stopped {
			return
		}
		w.region(p.Field("regions").Index(j), &pg.Regions[j])
	}
}

// appointDuration is authoritative only for fixed-duration pages, where it
// must be present and at least the minimum page time.
func (w *walker) appointDuration(p govsn.Path, loopType, v string) {
	if loopType != "0" {
		w.check(p, v, rules.Integer(0, rules.NoMax))
		return
	}
	minimum := strconv.Itoa(minFixedDuration)
	if v == "" {
		w.add(p.Error(govsn.CodeInvalidLoopTypeDuration, "got", v, "min", minimum))
		return
	}
	n, err := codec.ParseWireInt(v)
	if err != nil {
		w.add(p.Error(govsn.CodeInvalidNumberFormat, "got", v))
		return
	}
	if n < minFixedDuration {
		w.add(p.Error(govsn.CodeInvalidLoopTypeDuration, "got", v, "min", minimum))
	}
}

// minFixedDuration matches editing.MinFixedDuration; validate does not import
// the editing model.
const minFixedDuration = 100

func (w *walker) region(p govsn.Path, rg *wire.Region) {
	if rg.Rect == nil {
		w.required(p.Field("rect"))
	} else {
		w.rect(p.Field("rect"), rg.Rect)
	}
	w.check(p.Field("isScheduleRegion"), rg.IsScheduleRegion, rules.Flag())
	w.check(p.Field("layer"), rg.Layer, rules.Integer(0, rules.NoMax))
	if rg.Items == nil {
		w.required(p.Field("items"))
		return
	}
	sync := rg.Name == govsn.SyncRegionName
	for k := range rg.Items {
		if w.stopped {
			return
		}
		w.item(p.Field("items").Index(k), &rg.Items[k], sync)
	}
}

func (w *walker) rect(p govsn.Path, r *wire.Rect) {
	offset := []rules.Rule{rules.Required(), rules.Integer(0, rules.NoMax)}
	extent := []rules.Rule{rules.Required(), rules.Dimension()}
	w.check(p.Field("x"), r.X, offset...)
	w.check(p.Field("y"), r.Y, offset...)
	w.check(p.Field("width"), r.Width, extent...)
	w.check(p.Field("height"), r.Height, extent...)
	w.check(p.Field("borderWidth"), r.BorderWidth, offset...)
	w.check(p.Field("borderColor"), r.BorderColor, rules.Color())
	w.bounds(p, r)
}

// bounds warns when a well-formed rect reaches past the canvas.
func (w *walker) bounds(p govsn.Path, r *wire.Rect) {
	if w.canvasW == 0 {
		return
	}
	var v [4]int64
	for i, s := range []string{r.X, r.Y, r.Width, r.Height} {
		n, err := codec.ParseWireInt(s)
		if err != nil || n < 0 {
			return
		}
		v[i] = n
	}
	if v[0]+v[2] > w.canvasW || v[1]+v[3] > w.canvasH {
		w.add(p.Warning(govsn.CodeRegionOutOfBounds,
			"width", strconv.FormatInt(w.canvasW, 10), "height", strconv.FormatInt(w.canvasH, 10)))
	}
}

func (w *walker) fileSource(p govsn.Path, fs *wire.FileSource) {
	w.check(p.Field("isRelative"), fs.IsRelative, rules.Required(), rules.Flag())
	w.check(p.Field("filePath"), fs.FilePath, rules.Required(), rules.FilePath())
}
