// Package wire models the device document ("VSN"). Every scalar is a string,
// items are flat records discriminated by type, and only regions carry
// geometry. An empty string means the field is absent.
package wire

import govsn "github.com/reoring/govsn"

// Document is the root of a wire document.
type Document struct {
	Information *Information `json:"information,omitempty" yaml:"information,omitempty"`
	Pages       []Page       `json:"pages" yaml:"pages"`
}

// Information carries the canvas size.
type Information struct {
	Width  string `json:"width,omitempty" yaml:"width,omitempty"`
	Height string `json:"height,omitempty" yaml:"height,omitempty"`
}

// Page is one screen.
type Page struct {
	Name            string       `json:"name,omitempty" yaml:"name,omitempty"`
	LoopType        string       `json:"loopType,omitempty" yaml:"loopType,omitempty"`
	AppointDuration string       `json:"appointDuration,omitempty" yaml:"appointDuration,omitempty"`
	BgColor         string       `json:"bgColor,omitempty" yaml:"bgColor,omitempty"`
	BgFile          *FileSource  `json:"bgFile,omitempty" yaml:"bgFile,omitempty"`
	BgAudios        []FileSource `json:"bgAudios,omitempty" yaml:"bgAudios,omitempty"`
	Regions         []Region     `json:"regions" yaml:"regions"`
}

// Region is a scheduled area of a page.
type Region struct {
	Name             string `json:"name,omitempty" yaml:"name,omitempty"`
	Rect             *Rect  `json:"rect,omitempty" yaml:"rect,omitempty"`
	IsScheduleRegion string `json:"isScheduleRegion,omitempty" yaml:"isScheduleRegion,omitempty"`
	Layer            string `json:"layer,omitempty" yaml:"layer,omitempty"`
	Items            []Item `json:"items" yaml:"items"`
}

// Rect is the only geometry in a wire document.
type Rect struct {
	X           string `json:"x,omitempty" yaml:"x,omitempty"`
	Y           string `json:"y,omitempty" yaml:"y,omitempty"`
	Width       string `json:"width,omitempty" yaml:"width,omitempty"`
	Height      string `json:"height,omitempty" yaml:"height,omitempty"`
	BorderWidth string `json:"borderWidth,omitempty" yaml:"borderWidth,omitempty"`
	BorderColor string `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
}

// FileSource locates a media file on the device.
type FileSource struct {
	IsRelative string `json:"isRelative,omitempty" yaml:"isRelative,omitempty"`
	FilePath   string `json:"filePath,omitempty" yaml:"filePath,omitempty"`
	MD5        string `json:"md5,omitempty" yaml:"md5,omitempty"`
}

// LogFont is the device font record.
type LogFont struct {
	LfHeight    string `json:"lfHeight,omitempty" yaml:"lfHeight,omitempty"`
	LfWeight    string `json:"lfWeight,omitempty" yaml:"lfWeight,omitempty"`
	LfItalic    string `json:"lfItalic,omitempty" yaml:"lfItalic,omitempty"`
	LfUnderline string `json:"lfUnderline,omitempty" yaml:"lfUnderline,omitempty"`
	LfFaceName  string `json:"lfFaceName,omitempty" yaml:"lfFaceName,omitempty"`
}

// Item is the flat union of every variant's fields. Only the fields of the
// variant named by Type are populated.
type Item struct {
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	Duration   string      `json:"duration,omitempty" yaml:"duration,omitempty"`
	Alpha      string      `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	ReserveAS  string      `json:"reserveAS,omitempty" yaml:"reserveAS,omitempty"`
	FileSource *FileSource `json:"fileSource,omitempty" yaml:"fileSource,omitempty"`

	Text      string   `json:"text,omitempty" yaml:"text,omitempty"`
	TextColor string   `json:"textColor,omitempty" yaml:"textColor,omitempty"`
	BackColor string   `json:"backColor,omitempty" yaml:"backColor,omitempty"`
	LogFont   *LogFont `json:"logFont,omitempty" yaml:"logFont,omitempty"`
	IsScroll  string   `json:"isScroll,omitempty" yaml:"isScroll,omitempty"`
	Speed     string   `json:"speed,omitempty" yaml:"speed,omitempty"`

	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	IsAnalog string `json:"isAnalog,omitempty" yaml:"isAnalog,omitempty"`
	Timezone string `json:"timezone,omitempty" yaml:"timezone,omitempty"`
	ShowDate string `json:"showDate,omitempty" yaml:"showDate,omitempty"`
	ShowWeek string `json:"showWeek,omitempty" yaml:"showWeek,omitempty"`

	City   string `json:"city,omitempty" yaml:"city,omitempty"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Unit   string `json:"unit,omitempty" yaml:"unit,omitempty"`

	TargetTime  string `json:"targetTime,omitempty" yaml:"targetTime,omitempty"`
	IsCountDown string `json:"isCountDown,omitempty" yaml:"isCountDown,omitempty"`

	Channel string `json:"channel,omitempty" yaml:"channel,omitempty"`
}

// ItemType parses the discriminator. ok is false when Type is not an integer.
func (it Item) ItemType() (govsn.ItemType, bool) { return govsn.ParseItemType(it.Type) }
