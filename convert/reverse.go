package convert

import (
	govsn "github.com/reoring/govsn"
	"github.com/reoring/govsn/codec"
	"github.com/reoring/govsn/editing"
	"github.com/reoring/govsn/wire"
)

// Geometry given to every item FromVSN reconstructs. The wire format only
// carries region rects.
var (
	PlaceholderPosition = editing.Position{X: 0, Y: 0}
	PlaceholderSize     = editing.Size{Width: 200, Height: 50}
)

// FromVSN rebuilds an editing document from doc. Only text items recover
// their properties; other variants keep type and name with zero-value
// properties. Any malformed input aborts with a *govsn.ConversionError and no
// partial document.
func FromVSN(doc *wire.Document, opts ...Option) (*editing.Document, error) {
	o := newOptions(opts)
	r := reverse{opts: o}
	root := govsn.Root()
	if doc == nil {
		return nil, govsn.Errorf(root, "nil wire document")
	}
	if doc.Information == nil {
		return nil, govsn.Errorf(root.Field("information"), "missing")
	}
	out := &editing.Document{
		Program: editing.Program{
			ID:     o.newID(),
			Width:  wireInt(doc.Information.Width),
			Height: wireInt(doc.Information.Height),
		},
		Pages: make([]editing.Page, 0, len(doc.Pages)),
	}
	for i := range doc.Pages {
		pg, err := r.page(root.Field("pages").Index(i), &doc.Pages[i])
		if err != nil {
			return nil, err
		}
		out.Pages = append(out.Pages, pg)
	}
	return out, nil
}

type reverse struct{ opts *options }

// decodeAt runs c.Decode and tags a failure with the field path.
func decodeAt[W, U any](p govsn.Path, c codec.Codec[W, U], w W) (U, error) {
	u, err := c.Decode(w)
	if err != nil {
		var zero U
		return zero, &govsn.ConversionError{Path: p.String(), Err: err}
	}
	return u, nil
}

// Numbers and flags decode leniently; malformed values become zero.
var (
	numbers = codec.Number()
	flags   = codec.Flag()
)

func wireInt(s string) int {
	n, _ := numbers.Decode(s)
	return int(n)
}

func wireFlag(s string) bool {
	b, _ := flags.Decode(s)
	return b
}

func hex(p govsn.Path, w, def string) (string, error) {
	if w == "" {
		return def, nil
	}
	return decodeAt(p, codec.Color(false), w)
}

func (r reverse) page(p govsn.Path, pg *wire.Page) (editing.Page, error) {
	var lt editing.LoopType
	switch pg.LoopType {
	case "0":
		lt = editing.LoopFixedDuration
	case "1":
		lt = editing.LoopAutoCompute
	default:
		return editing.Page{}, govsn.Errorf(p.Field("loopType"), "loopType %q is not 0 or 1", pg.LoopType)
	}
	bg, err := hex(p.Field("bgColor"), pg.BgColor, "#000000")
	if err != nil {
		return editing.Page{}, err
	}
	out := editing.Page{
		ID:       r.opts.newID(),
		Name:     pg.Name,
		Duration: wireInt(pg.AppointDuration),
		LoopType: lt,
		BgColor:  bg,
		Regions:  make([]editing.Region, 0, len(pg.Regions)),
	}
	if pg.BgFile != nil {
		ref := materialRef(*pg.BgFile)
		out.BgFile = &ref
	}
	for _, a := range pg.BgAudios {
		out.BgAudios = append(out.BgAudios, materialRef(a))
	}
	for j := range pg.Regions {
		rg, err := r.region(p.Field("regions").Index(j), &pg.Regions[j])
		if err != nil {
			return editing.Page{}, err
		}
		out.Regions = append(out.Regions, rg)
	}
	return out, nil
}

func materialRef(fs wire.FileSource) editing.MaterialReference {
	return editing.MaterialReference{
		FilePath:   fs.FilePath,
		MD5Hash:    fs.MD5,
		IsRelative: wireFlag(fs.IsRelative),
	}
}

func (r reverse) region(p govsn.Path, rg *wire.Region) (editing.Region, error) {
	out := editing.Region{
		ID:               r.opts.newID(),
		Name:             rg.Name,
		IsScheduleRegion: wireFlag(rg.IsScheduleRegion),
		Items:            make([]editing.Item, 0, len(rg.Items)),
	}
	if rc := rg.Rect; rc != nil {
		border, err := hex(p.Field("rect").Field("borderColor"), rc.BorderColor, "")
		if err != nil {
			return editing.Region{}, err
		}
		out.Rect = editing.Rect{
			X:           wireInt(rc.X),
			Y:           wireInt(rc.Y),
			Width:       wireInt(rc.Width),
			Height:      wireInt(rc.Height),
			BorderWidth: wireInt(rc.BorderWidth),
			BorderColor: border,
		}
	}
	if rg.Layer != "" {
		out.Layer = editing.Int(wireInt(rg.Layer))
	}
	for k := range rg.Items {
		it, err := r.item(p.Field("items").Index(k), &rg.Items[k])
		if err != nil {
			return editing.Region{}, err
		}
		out.Items = append(out.Items, it)
	}
	return out, nil
}

func (r reverse) item(p govsn.Path, it *wire.Item) (editing.Item, error) {
	t, ok := it.ItemType()
	if !ok {
		return editing.Item{}, govsn.Errorf(p.Field("type"), "item type %q is not numeric", it.Type)
	}
	if !t.Known() {
		return editing.Item{}, govsn.Errorf(p.Field("type"), "%w: %s", govsn.ErrUnsupportedItemType, it.Type)
	}
	out := editing.Item{
		ID:         r.opts.newID(),
		Type:       t,
		Name:       it.Name,
		Position:   PlaceholderPosition,
		Size:       PlaceholderSize,
		Properties: editing.NewProperties(t.Variant()),
	}
	if tp, ok := out.Properties.(*editing.TextProperties); ok {
		if err := textProperties(p.Field("properties"), it, tp); err != nil {
			return editing.Item{}, err
		}
	}
	return out, nil
}

func textProperties(p govsn.Path, it *wire.Item, tp *editing.TextProperties) error {
	fg, err := hex(p.Field("textColor"), it.TextColor, "")
	if err != nil {
		return err
	}
	bg, err := hex(p.Field("backColor"), it.BackColor, "")
	if err != nil {
		return err
	}
	tp.Text = it.Text
	tp.TextColor = fg
	tp.BackColor = bg
	tp.IsScroll = wireFlag(it.IsScroll)
	tp.Speed = wireInt(it.Speed)
	tp.Duration = wireInt(it.Duration)
	if lf := it.LogFont; lf != nil {
		tp.Font = editing.Font{
			Family:    lf.LfFaceName,
			Size:      wireInt(lf.LfHeight),
			Bold:      wireInt(lf.LfWeight) >= 700,
			Italic:    wireFlag(lf.LfItalic),
			Underline: wireFlag(lf.LfUnderline),
		}
	}
	return nil
}
