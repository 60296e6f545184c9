package editing

import (
	"time"

	govsn "github.com/reoring/govsn"
)

// Properties is the closed set of variant-specific item shapes. Only types in
// this package implement it.
type Properties interface {
	Variant() govsn.Variant
	isProperties()
}

// Font is the editor's font description; it becomes a wire logFont.
type Font struct {
	Family    string `json:"family,omitempty"`
	Size      int    `json:"size"`
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
}

// ImageProperties configures a still image.
type ImageProperties struct {
	Alpha     *float64 `json:"alpha,omitempty"` // 0..1, unset means opaque
	ReserveAS *bool    `json:"reserveAS,omitempty"`
	Duration  int      `json:"duration,omitempty"`
}

// VideoProperties configures a video clip.
type VideoProperties struct {
	Alpha     *float64 `json:"alpha,omitempty"`
	ReserveAS *bool    `json:"reserveAS,omitempty"`
	Duration  int      `json:"duration,omitempty"`
}

// GIFProperties configures an animated GIF.
type GIFProperties struct {
	Alpha     *float64 `json:"alpha,omitempty"`
	ReserveAS *bool    `json:"reserveAS,omitempty"`
	Duration  int      `json:"duration,omitempty"`
}

// TextProperties configures single-line, multi-line and column text.
type TextProperties struct {
	Text      string `json:"text"`
	TextColor string `json:"textColor"`
	BackColor string `json:"backColor,omitempty"`
	Font      Font   `json:"font"`
	IsScroll  bool   `json:"isScroll,omitempty"`
	Speed     int    `json:"speed,omitempty"`
	Duration  int    `json:"duration,omitempty"`
}

// WebProperties configures a web page or stream.
type WebProperties struct {
	URL       string   `json:"url"`
	Duration  int      `json:"duration,omitempty"`
	Alpha     *float64 `json:"alpha,omitempty"`
	BackColor string   `json:"backColor,omitempty"`
}

// ClockProperties configures analog, digital and exquisite clocks.
type ClockProperties struct {
	IsAnalog  bool   `json:"isAnalog"`
	Timezone  string `json:"timezone"`
	Duration  int    `json:"duration,omitempty"`
	TextColor string `json:"textColor,omitempty"`
	Font      Font   `json:"font"`
	ShowDate  bool   `json:"showDate,omitempty"`
	ShowWeek  bool   `json:"showWeek,omitempty"`
}

// WeatherProperties configures a weather panel.
type WeatherProperties struct {
	City      string `json:"city"`
	Duration  int    `json:"duration,omitempty"`
	TextColor string `json:"textColor,omitempty"`
	Font      Font   `json:"font"`
}

// SensorProperties configures every environmental sensor readout.
type SensorProperties struct {
	LogFont   Font   `json:"logFont"`
	TextColor string `json:"textColor"`
	Prefix    string `json:"prefix,omitempty"`
	Suffix    string `json:"suffix,omitempty"`
	Unit      string `json:"unit,omitempty"`
	Duration  int    `json:"duration,omitempty"`
}

// TimerProperties configures a count-up or count-down timer.
type TimerProperties struct {
	Target    time.Time `json:"target"`
	CountDown bool      `json:"countDown,omitempty"`
	TextColor string    `json:"textColor,omitempty"`
	Font      Font      `json:"font"`
	Duration  int       `json:"duration,omitempty"`
}

// DocumentProperties configures doc, excel and ppt playback.
type DocumentProperties struct {
	Duration int      `json:"duration,omitempty"`
	Alpha    *float64 `json:"alpha,omitempty"`
}

// TVCardProperties configures a capture card input.
type TVCardProperties struct {
	Channel  string   `json:"channel,omitempty"`
	Duration int      `json:"duration,omitempty"`
	Alpha    *float64 `json:"alpha,omitempty"`
}

func (*ImageProperties) Variant() govsn.Variant    { return govsn.VariantImage }
func (*VideoProperties) Variant() govsn.Variant    { return govsn.VariantVideo }
func (*GIFProperties) Variant() govsn.Variant      { return govsn.VariantGIF }
func (*TextProperties) Variant() govsn.Variant     { return govsn.VariantText }
func (*WebProperties) Variant() govsn.Variant      { return govsn.VariantWeb }
func (*ClockProperties) Variant() govsn.Variant    { return govsn.VariantClock }
func (*WeatherProperties) Variant() govsn.Variant  { return govsn.VariantWeather }
func (*SensorProperties) Variant() govsn.Variant   { return govsn.VariantSensor }
func (*TimerProperties) Variant() govsn.Variant    { return govsn.VariantTimer }
func (*DocumentProperties) Variant() govsn.Variant { return govsn.VariantDocument }
func (*TVCardProperties) Variant() govsn.Variant   { return govsn.VariantTVCard }

func (*ImageProperties) isProperties()    {}
func (*VideoProperties) isProperties()    {}
func (*GIFProperties) isProperties()      {}
func (*TextProperties) isProperties()     {}
func (*WebProperties) isProperties()      {}
func (*ClockProperties) isProperties()    {}
func (*WeatherProperties) isProperties()  {}
func (*SensorProperties) isProperties()   {}
func (*TimerProperties) isProperties()    {}
func (*DocumentProperties) isProperties() {}
func (*TVCardProperties) isProperties()   {}

// NewProperties returns the zero-value properties for v, or nil for
// VariantUnknown.
func NewProperties(v govsn.Variant) Properties {
	switch v {
	case govsn.VariantImage:
		return &ImageProperties{}
	case govsn.VariantVideo:
		return &VideoProperties{}
	case govsn.VariantGIF:
		return &GIFProperties{}
	case govsn.VariantText:
		return &TextProperties{}
	case govsn.VariantWeb:
		return &WebProperties{}
	case govsn.VariantClock:
		return &ClockProperties{}
	case govsn.VariantWeather:
		return &WeatherProperties{}
	case govsn.VariantSensor:
		return &SensorProperties{}
	case govsn.VariantTimer:
		return &TimerProperties{}
	case govsn.VariantDocument:
		return &DocumentProperties{}
	case govsn.VariantTVCard:
		return &TVCardProperties{}
	default:
		return nil
	}
}

// Float returns a pointer to f, for optional numeric properties.
func Float(f float64) *float64 { return &f }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n.
func Int(n int) *int { return &n }
