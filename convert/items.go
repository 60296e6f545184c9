package convert

import (
	govsn "github.com/reoring/govsn"
	"github.com/reoring/govsn/codec"
	"github.com/reoring/govsn/editing"
	"github.com/reoring/govsn/wire"
)

// DefaultFontFace is written when a font has no family.
const DefaultFontFace = "Arial"

type itemBuilder struct {
	f   *forward
	p   govsn.Path // properties of the item
	it  *editing.Item
	out *wire.Item
}

func (b itemBuilder) duration(ms int) string {
	if ms <= 0 {
		ms = b.f.opts.itemDuration
	}
	return codec.IntToWireString(ms)
}

func alpha(a *float64) string {
	if a == nil {
		return "1"
	}
	return codec.NumberToWireString(*a)
}

func flagPtr(v *bool) string {
	if v == nil {
		return ""
	}
	return codec.BoolToWireFlag(*v)
}

// material resolves the item's file. Without a reference the fileSource is
// left out and validation reports it.
func (b itemBuilder) material() (editing.MaterialReference, bool) {
	ref, ok := b.f.materials.Resolve(b.it.MaterialRef)
	if ok {
		fs := fileSource(ref)
		b.out.FileSource = &fs
	}
	return ref, ok
}

func (b itemBuilder) logFont(font editing.Font) *wire.LogFont {
	face := font.Family
	if face == "" {
		face = DefaultFontFace
	}
	weight := 400
	if font.Bold {
		weight = 700
	}
	return &wire.LogFont{
		LfHeight:    codec.IntToWireString(font.Size),
		LfWeight:    codec.IntToWireString(weight),
		LfItalic:    codec.BoolToWireFlag(font.Italic),
		LfUnderline: codec.BoolToWireFlag(font.Underline),
		LfFaceName:  face,
	}
}

func (b itemBuilder) image(pr *editing.ImageProperties) error {
	b.material()
	b.out.Duration = b.duration(pr.Duration)
	b.out.Alpha = alpha(pr.Alpha)
	b.out.ReserveAS = flagPtr(pr.ReserveAS)
	return nil
}

// video plays for its own length unless a duration is set.
func (b itemBuilder) video(pr *editing.VideoProperties) error {
	ref, ok := b.material()
	ms := pr.Duration
	if ms <= 0 && ok && ref.Duration != nil {
		ms = *ref.Duration
	}
	b.out.Duration = b.duration(ms)
	b.out.Alpha = alpha(pr.Alpha)
	b.out.ReserveAS = flagPtr(pr.ReserveAS)
	return nil
}

func (b itemBuilder) gif(pr *editing.GIFProperties) error {
	b.material()
	b.out.Duration = b.duration(pr.Duration)
	b.out.Alpha = alpha(pr.Alpha)
	b.out.ReserveAS = flagPtr(pr.ReserveAS)
	return nil
}

func (b itemBuilder) text(pr *editing.TextProperties) error {
	fg, err := color(b.p.Field("textColor"), pr.TextColor, "")
	if err != nil {
		return err
	}
	bg, err := color(b.p.Field("backColor"), pr.BackColor, wireTransparent)
	if err != nil {
		return err
	}
	b.out.Text = pr.Text
	b.out.TextColor = fg
	b.out.BackColor = bg
	b.out.LogFont = b.logFont(pr.Font)
	b.out.IsScroll = codec.BoolToWireFlag(pr.IsScroll)
	if pr.IsScroll {
		b.out.Speed = codec.IntToWireString(pr.Speed)
	}
	b.out.Duration = b.duration(pr.Duration)
	return nil
}

func (b itemBuilder) web(pr *editing.WebProperties) error {
	bg, err := color(b.p.Field("backColor"), pr.BackColor, wireOpaqueBlack)
	if err != nil {
		return err
	}
	b.out.URL = pr.URL
	b.out.Duration = b.duration(pr.Duration)
	b.out.Alpha = alpha(pr.Alpha)
	b.out.BackColor = bg
	return nil
}

func (b itemBuilder) clock(pr *editing.ClockProperties) error {
	fg, err := color(b.p.Field("textColor"), pr.TextColor, "")
	if err != nil {
		return err
	}
	b.out.IsAnalog = codec.BoolToWireFlag(pr.IsAnalog)
	b.out.Timezone = pr.Timezone
	b.out.Duration = b.duration(pr.Duration)
	b.out.TextColor = fg
	b.out.ShowDate = codec.BoolToWireFlag(pr.ShowDate)
	b.out.ShowWeek = codec.BoolToWireFlag(pr.ShowWeek)
	if pr.Font.Size > 0 {
		b.out.LogFont = b.logFont(pr.Font)
	}
	return nil
}

func (b itemBuilder) weather(pr *editing.WeatherProperties) error {
	fg, err := color(b.p.Field("textColor"), pr.TextColor, "")
	if err != nil {
		return err
	}
	b.out.City = pr.City
	b.out.Duration = b.duration(pr.Duration)
	b.out.TextColor = fg
	if pr.Font.Size > 0 {
		b.out.LogFont = b.logFont(pr.Font)
	}
	return nil
}

func (b itemBuilder) sensor(pr *editing.SensorProperties) error {
	fg, err := color(b.p.Field("textColor"), pr.TextColor, "")
	if err != nil {
		return err
	}
	b.out.LogFont = b.logFont(pr.LogFont)
	b.out.TextColor = fg
	b.out.Prefix = pr.Prefix
	b.out.Suffix = pr.Suffix
	b.out.Unit = pr.Unit
	b.out.Duration = b.duration(pr.Duration)
	return nil
}

func (b itemBuilder) timer(pr *editing.TimerProperties) error {
	target, err := encodeAt(b.p.Field("targetTime"), codec.Time(b.f.opts.loc), pr.Target)
	if err != nil {
		return err
	}
	fg, err := color(b.p.Field("textColor"), pr.TextColor, "")
	if err != nil {
		return err
	}
	b.out.TargetTime = target
	b.out.IsCountDown = codec.BoolToWireFlag(pr.CountDown)
	b.out.TextColor = fg
	b.out.Duration = b.duration(pr.Duration)
	if pr.Font.Size > 0 {
		b.out.LogFont = b.logFont(pr.Font)
	}
	return nil
}

func (b itemBuilder) document(pr *editing.DocumentProperties) error {
	b.material()
	b.out.Duration = b.duration(pr.Duration)
	b.out.Alpha = alpha(pr.Alpha)
	return nil
}

func (b itemBuilder) tvCard(pr *editing.TVCardProperties) error {
	b.out.Channel = pr.Channel
	b.out.Duration = b.duration(pr.Duration)
	b.out.Alpha = alpha(pr.Alpha)
	return nil
}
