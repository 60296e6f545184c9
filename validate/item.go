package validate

import (
	govsn "github.com/reoring/govsn"
	"github.com/reoring/govsn/codec"
	"github.com/reoring/govsn/rules"
	"github.com/reoring/govsn/wire"
)

// item checks the discriminator, the sync-region restriction, then the fields
// of the item's variant. Everything but type and name is reported under
// properties.
func (w *walker) item(p govsn.Path, it *wire.Item, sync bool) {
	tp := p.Field("type")
	if it.Type == "" {
		w.required(tp)
		return
	}
	t, ok := it.ItemType()
	if !ok {
		w.add(tp.Error(govsn.CodeInvalidNumberFormat, "got", it.Type))
		return
	}
	if sync && !govsn.AllowedInSyncRegion(t) {
		w.add(tp.Error(govsn.CodeInvalidSyncRegionItemType, "type", it.Type))
	}
	props := p.Field("properties")
	switch t.Variant() {
	case govsn.VariantImage, govsn.VariantVideo, govsn.VariantGIF:
		w.media(props, it)
	case govsn.VariantText:
		w.text(props, it)
	case govsn.VariantWeb:
		w.web(props, it)
	case govsn.VariantClock:
		w.clock(props, it)
	case govsn.VariantWeather:
		w.weather(props, it)
	case govsn.VariantSensor:
		w.sensor(props, it)
	case govsn.VariantTimer:
		w.timer(props, it)
	case govsn.VariantDocument:
		w.documentItem(props, it)
	case govsn.VariantTVCard:
		w.tvCard(props, it)
	default:
		w.add(tp.Warning(govsn.CodeUnknownItemType, "type", it.Type))
	}
}

var (
	duration   = rules.Integer(0, rules.NoMax)
	alpha      = rules.Number(0, 1)
	weight     = rules.Integer(0, 1000)
	nonNegInt  = rules.Integer(0, rules.NoMax)
	required   = rules.Required()
	color      = rules.Color()
	flag       = rules.Flag()
	httpURL    = rules.HTTPURL()
	fontHeight = rules.Integer(1, rules.NoMax)
)

func (w *walker) media(p govsn.Path, it *wire.Item) {
	w.requiredFileSource(p, it.FileSource)
	w.check(p.Field("duration"), it.Duration, duration)
	w.check(p.Field("alpha"), it.Alpha, alpha)
	w.check(p.Field("reserveAS"), it.ReserveAS, flag)
}

func (w *walker) requiredFileSource(p govsn.Path, fs *wire.FileSource) {
	if fs == nil {
		w.required(p.Field("fileSource"))
		return
	}
	w.fileSource(p.Field("fileSource"), fs)
}

func (w *walker) text(p govsn.Path, it *wire.Item) {
	w.check(p.Field("text"), it.Text, required)
	w.check(p.Field("textColor"), it.TextColor, required, color)
	w.check(p.Field("backColor"), it.BackColor, color)
	if it.LogFont == nil {
		w.required(p.Field("logFont"))
	} else {
		w.textFont(p.Field("logFont"), it.LogFont)
	}
	w.check(p.Field("isScroll"), it.IsScroll, flag)
	w.check(p.Field("speed"), it.Speed, nonNegInt)
	w.check(p.Field("duration"), it.Duration, duration)
}

// textFont requires a positive lfHeight; players render nothing without one.
func (w *walker) textFont(p govsn.Path, lf *wire.LogFont) {
	hp := p.Field("lfHeight")
	n, err := codec.ParseWireInt(lf.LfHeight)
	switch {
	case lf.LfHeight == "":
		w.add(hp.Error(govsn.CodeMissingLogFontHeight, "got", lf.LfHeight))
	case err != nil:
		w.add(hp.Error(govsn.CodeInvalidNumberFormat, "got", lf.LfHeight))
	case n < 1:
		w.add(hp.Error(govsn.CodeMissingLogFontHeight, "got", lf.LfHeight))
	}
	w.fontFlags(p, lf)
}

// font checks an optional logFont.
func (w *walker) font(p govsn.Path, lf *wire.LogFont) {
	if lf == nil {
		return
	}
	w.check(p.Field("lfHeight"), lf.LfHeight, fontHeight)
	w.fontFlags(p, lf)
}

func (w *walker) fontFlags(p govsn.Path, lf *wire.LogFont) {
	w.check(p.Field("lfWeight"), lf.LfWeight, weight)
	w.check(p.Field("lfItalic"), lf.LfItalic, flag)
	w.check(p.Field("lfUnderline"), lf.LfUnderline, flag)
}

func (w *walker) web(p govsn.Path, it *wire.Item) {
	w.check(p.Field("url"), it.URL, required, httpURL)
	w.check(p.Field("duration"), it.Duration, required, duration)
	w.check(p.Field("alpha"), it.Alpha, required, alpha)
	w.check(p.Field("backColor"), it.BackColor, required, color)
}

func (w *walker) clock(p govsn.Path, it *wire.Item) {
	w.check(p.Field("duration"), it.Duration, required, duration)
	w.check(p.Field("isAnalog"), it.IsAnalog, required, flag)
	w.check(p.Field("timezone"), it.Timezone, required)
	w.check(p.Field("textColor"), it.TextColor, color)
	w.check(p.Field("showDate"), it.ShowDate, flag)
	w.check(p.Field("showWeek"), it.ShowWeek, flag)
	w.font(p.Field("logFont"), it.LogFont)
}

func (w *walker) weather(p govsn.Path, it *wire.Item) {
	w.check(p.Field("duration"), it.Duration, required, duration)
	w.check(p.Field("city"), it.City, required)
	w.check(p.Field("textColor"), it.TextColor, color)
	w.font(p.Field("logFont"), it.LogFont)
}

func (w *walker) sensor(p govsn.Path, it *wire.Item) {
	if it.LogFont == nil {
		w.required(p.Field("logFont"))
	} else {
		w.font(p.Field("logFont"), it.LogFont)
	}
	w.check(p.Field("textColor"), it.TextColor, required, color)
	w.check(p.Field("duration"), it.Duration, duration)
}

func (w *walker) timer(p govsn.Path, it *wire.Item) {
	w.check(p.Field("duration"), it.Duration, required, duration)
	w.check(p.Field("targetTime"), it.TargetTime, required)
	w.check(p.Field("isCountDown"), it.IsCountDown, flag)
	w.check(p.Field("textColor"), it.TextColor, color)
	w.font(p.Field("logFont"), it.LogFont)
}

func (w *walker) documentItem(p govsn.Path, it *wire.Item) {
	w.requiredFileSource(p, it.FileSource)
	w.check(p.Field("duration"), it.Duration, duration)
	w.check(p.Field("alpha"), it.Alpha, alpha)
}

func (w *walker) tvCard(p govsn.Path, it *wire.Item) {
	w.check(p.Field("duration"), it.Duration, required, duration)
	w.check(p.Field("alpha"), it.Alpha, alpha)
}
