package convert

import (
	"errors"
	"fmt"

	govsn "github.com/reoring/govsn"
	"github.com/reoring/govsn/codec"
	"github.com/reoring/govsn/editing"
	"github.com/reoring/govsn/validate"
	"github.com/reoring/govsn/wire"
)

// Conversion is the result of ToVSN.
type Conversion struct {
	Document   *wire.Document `json:"wireDocument" yaml:"wireDocument"`
	Validation govsn.Result   `json:"validation" yaml:"validation"`
}

// ToVSN converts doc into a wire document and validates it. refs supplies the
// current material references; an entry whose materialId matches an item's
// materialRef replaces the embedded copy.
//
// The returned error is non-nil only for an item type outside the closed tag
// set (errors.Is(err, govsn.ErrUnsupportedItemType)). Any other failure yields
// an empty wire document and a single CONVERSION_ERROR diagnostic.
func ToVSN(doc *editing.Document, refs []editing.MaterialReference, opts ...Option) (Conversion, error) {
	o := newOptions(opts)
	f := &forward{opts: o, materials: editing.IndexMaterials(refs)}
	wd, err := f.run(doc)
	if errors.Is(err, govsn.ErrUnsupportedItemType) {
		return Conversion{}, err
	}
	if err != nil {
		return failed(err, o.translator), nil
	}
	res := validate.Run(wd, validate.Options{Translator: o.translator})
	if len(f.skipped) > 0 {
		res = res.Merge(f.skipped...).Localize(o.translator)
	}
	return Conversion{Document: wd, Validation: res}, nil
}

func failed(err error, tr govsn.Translator) Conversion {
	d := govsn.Root().Error(govsn.CodeConversionError, "cause", err.Error())
	return Conversion{
		Document:   &wire.Document{Pages: []wire.Page{}},
		Validation: govsn.NewResult(d).Localize(tr),
	}
}

type forward struct {
	opts      *options
	materials editing.MaterialIndex
	// UNKNOWN_ITEM_TYPE warnings for items dropped under SkipUnsupported.
	skipped []govsn.Diagnostic
}

func (f *forward) run(doc *editing.Document) (wd *wire.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			wd, err = nil, govsn.Errorf(govsn.Root(), "unexpected failure: %v", r)
		}
	}()
	if doc == nil {
		return nil, govsn.Errorf(govsn.Root(), "nil editing document")
	}
	out := &wire.Document{
		Information: &wire.Information{
			Width:  codec.IntToWireString(doc.Program.Width),
			Height: codec.IntToWireString(doc.Program.Height),
		},
		Pages: make([]wire.Page, 0, len(doc.Pages)),
	}
	root := govsn.Root()
	for i := range doc.Pages {
		pg, err := f.page(root.Field("pages").Index(i), &doc.Pages[i])
		if err != nil {
			return nil, err
		}
		out.Pages = append(out.Pages, pg)
	}
	return out, nil
}

// encodeAt runs c.Encode and tags a failure with the field path.
func encodeAt[W, U any](p govsn.Path, c codec.Codec[W, U], v U) (W, error) {
	w, err := c.Encode(v)
	if err != nil {
		var zero W
		return zero, &govsn.ConversionError{Path: p.String(), Err: err}
	}
	return w, nil
}

// color encodes hex, or returns def when hex is empty.
func color(p govsn.Path, hex, def string) (string, error) {
	if hex == "" {
		return def, nil
	}
	return encodeAt(p, codec.Color(true), hex)
}

const (
	wireOpaqueBlack = "4278190080"
	wireTransparent = "0"
)

func (f *forward) page(p govsn.Path, pg *editing.Page) (wire.Page, error) {
	bg, err := color(p.Field("bgColor"), pg.BgColor, wireOpaqueBlack)
	if err != nil {
		return wire.Page{}, err
	}
	out := wire.Page{
		Name:     pg.Name,
		LoopType: codec.IntToWireString(int(pg.LoopType)),
		BgColor:  bg,
		Regions:  make([]wire.Region, 0, len(pg.Regions)),
	}
	if pg.LoopType == editing.LoopFixedDuration {
		out.AppointDuration = codec.IntToWireString(pg.Duration)
	}
	if ref, ok := f.materials.Resolve(pg.BgFile); ok {
		fs := fileSource(ref)
		out.BgFile = &fs
	}
	for i := range pg.BgAudios {
		ref, _ := f.materials.Resolve(&pg.BgAudios[i])
		out.BgAudios = append(out.BgAudios, fileSource(ref))
	}
	for j := range pg.Regions {
		rg, err := f.region(p.Field("regions").Index(j), &pg.Regions[j])
		if err != nil {
			return wire.Page{}, err
		}
		out.Regions = append(out.Regions, rg)
	}
	return out, nil
}

func (f *forward) region(p govsn.Path, rg *editing.Region) (wire.Region, error) {
	border, err := color(p.Field("rect").Field("borderColor"), rg.Rect.BorderColor, "")
	if err != nil {
		return wire.Region{}, err
	}
	out := wire.Region{
		Name: rg.Name,
		Rect: &wire.Rect{
			X:           codec.IntToWireString(rg.Rect.X),
			Y:           codec.IntToWireString(rg.Rect.Y),
			Width:       codec.IntToWireString(rg.Rect.Width),
			Height:      codec.IntToWireString(rg.Rect.Height),
			BorderWidth: codec.IntToWireString(rg.Rect.BorderWidth),
			BorderColor: border,
		},
		IsScheduleRegion: codec.BoolToWireFlag(rg.IsScheduleRegion),
		Items:            make([]wire.Item, 0, len(rg.Items)),
	}
	if rg.Layer != nil {
		out.Layer = codec.IntToWireString(*rg.Layer)
	}
	for k := range rg.Items {
		ip := p.Field("items").Index(k)
		it, err := f.item(ip, &rg.Items[k])
		if errors.Is(err, govsn.ErrUnsupportedItemType) && f.opts.unsupported == SkipUnsupported {
			f.skipped = append(f.skipped, ip.Field("type").Warning(govsn.CodeUnknownItemType,
				"type", rg.Items[k].Type.Wire()))
			continue
		}
		if err != nil {
			return wire.Region{}, err
		}
		out.Items = append(out.Items, it)
	}
	return out, nil
}

func fileSource(ref editing.MaterialReference) wire.FileSource {
	path := ref.FilePath
	if path == "" && !ref.IsRelative {
		path = ref.AccessURL
	}
	return wire.FileSource{
		IsRelative: codec.BoolToWireFlag(ref.IsRelative),
		FilePath:   path,
		MD5:        ref.MD5Hash,
	}
}

// item dispatches on the variant of it.Type. Each builder fills only the
// fields of its own variant.
func (f *forward) item(p govsn.Path, it *editing.Item) (wire.Item, error) {
	v := it.Type.Variant()
	if v == govsn.VariantUnknown {
		return wire.Item{}, &govsn.ConversionError{
			Path: p.Field("type").String(),
			Err:  fmt.Errorf("%w: %s", govsn.ErrUnsupportedItemType, it.Type),
		}
	}
	props := it.Properties
	if props == nil {
		props = editing.NewProperties(v)
	}
	if props.Variant() != v {
		return wire.Item{}, govsn.Errorf(p.Field("properties"),
			"%s properties on a %s item", props.Variant(), v)
	}
	out := wire.Item{Type: it.Type.Wire(), Name: it.Name}
	b := itemBuilder{f: f, p: p.Field("properties"), it: it, out: &out}
	var err error
	switch pr := props.(type) {
	case *editing.ImageProperties:
		err = b.image(pr)
	case *editing.VideoProperties:
		err = b.video(pr)
	case *editing.GIFProperties:
		err = b.gif(pr)
	case *editing.TextProperties:
		err = b.text(pr)
	case *editing.WebProperties:
		err = b.web(pr)
	case *editing.ClockProperties:
		err = b.clock(pr)
	case *editing.WeatherProperties:
		err = b.weather(pr)
	case *editing.SensorProperties:
		err = b.sensor(pr)
	case *editing.TimerProperties:
		err = b.timer(pr)
	case *editing.DocumentProperties:
		err = b.document(pr)
	case *editing.TVCardProperties:
		err = b.tvCard(pr)
	}
	if err != nil {
		return wire.Item{}, err
	}
	return out, nil
}
