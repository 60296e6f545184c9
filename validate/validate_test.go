package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	govsn "github.com/reoring/govsn"
	"github.com/reoring/govsn/i18n"
	"github.com/reoring/govsn/validate"
	"github.com/reoring/govsn/wire"
)

func textItem() wire.Item {
	return wire.Item{
		Type:      "4",
		Text:      "Hello",
		TextColor: "4294967295",
		BackColor: "0",
		LogFont:   &wire.LogFont{LfHeight: "24", LfWeight: "400", LfFaceName: "Arial"},
		Duration:  "10000",
	}
}

func imageItem() wire.Item {
	return wire.Item{
		Type:       "2",
		Alpha:      "1",
		Duration:   "10000",
		FileSource: &wire.FileSource{IsRelative: "1", FilePath: "media/a.png"},
	}
}

func validDoc(items ...wire.Item) *wire.Document {
	if len(items) == 0 {
		items = []wire.Item{textItem()}
	}
	return &wire.Document{
		Information: &wire.Information{Width: "1920", Height: "1080"},
		Pages: []wire.Page{{
			Name:            "page 1",
			LoopType:        "0",
			AppointDuration: "5000",
			BgColor:         "4278190080",
			Regions: []wire.Region{{
				Name:             "region 1",
				Rect:             &wire.Rect{X: "0", Y: "0", Width: "1920", Height: "1080", BorderWidth: "0"},
				IsScheduleRegion: "0",
				Items:            items,
			}},
		}},
	}
}

func TestDocument_Valid(t *testing.T) {
	res := validate.Document(validDoc())
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestDocument_NilAndEmpty(t *testing.T) {
	for name, doc := range map[string]*wire.Document{
		"nil":   nil,
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			res := validate.Document(doc)
			assert.False(t, res.IsValid)
			_, ok := res.Find(govsn.CodeRequiredFieldMissing, "pages")
			assert.True(t, ok, "pages must be reported missing: %+v", res.Errors)
		})
	}
}

func TestLoopTypeDuration(t *testing.T) {
	doc := validDoc()
	doc.Pages[0].AppointDuration = ""
	res := validate.Document(doc)
	assert.Equal(t, 1, res.Count(govsn.CodeInvalidLoopTypeDuration))
	assert.Equal(t, 0, res.Count(govsn.CodeRequiredFieldMissing))
	d, ok := res.Find(govsn.CodeInvalidLoopTypeDuration, "pages[0].appointDuration")
	require.True(t, ok)
	assert.Equal(t, govsn.LevelError, d.Level)

	doc.Pages[0].AppointDuration = "5000"
	assert.Zero(t, validate.Document(doc).Count(govsn.CodeInvalidLoopTypeDuration))

	doc.Pages[0].AppointDuration = "99"
	assert.Equal(t, 1, validate.Document(doc).Count(govsn.CodeInvalidLoopTypeDuration))

	doc.Pages[0].LoopType = "1"
	doc.Pages[0].AppointDuration = ""
	assert.True(t, validate.Document(doc).IsValid)
}

func TestSignedNumbersRejected(t *testing.T) {
	doc := validDoc()
	doc.Information.Width = "+1920"
	doc.Pages[0].AppointDuration = "+5000"
	doc.Pages[0].BgColor = "+4278190080"
	doc.Pages[0].Regions[0].Items[0].LogFont.LfHeight = "+24"
	res := validate.Document(doc)
	assert.False(t, res.IsValid)
	for field, code := range map[string]string{
		"information.width":        govsn.CodeInvalidNumberFormat,
		"pages[0].appointDuration": govsn.CodeInvalidNumberFormat,
		"pages[0].bgColor":         govsn.CodeInvalidColorFormat,
		"pages[0].regions[0].items[0].properties.logFont.lfHeight": govsn.CodeInvalidNumberFormat,
	} {
		_, ok := res.Find(code, field)
		assert.True(t, ok, "%s at %s missing: %+v", code, field, res.Errors)
	}
}

func TestSyncRegion(t *testing.T) {
	doc := validDoc()
	doc.Pages[0].Regions[0].Name = govsn.SyncRegionName
	res := validate.Document(doc)
	_, ok := res.Find(govsn.CodeInvalidSyncRegionItemType, "pages[0].regions[0].items[0].type")
	assert.True(t, ok)

	doc = validDoc(imageItem())
	doc.Pages[0].Regions[0].Name = govsn.SyncRegionName
	res = validate.Document(doc)
	assert.Zero(t, res.Count(govsn.CodeInvalidSyncRegionItemType))
	assert.True(t, res.IsValid)
}

func TestRectCompleteness(t *testing.T) {
	doc := validDoc()
	doc.Pages[0].Regions[0].Rect = &wire.Rect{X: "0", Y: "0", Width: "1920", Height: "1080"}
	res := validate.Document(doc)
	_, ok := res.Find(govsn.CodeRequiredFieldMissing, "pages[0].regions[0].rect.borderWidth")
	assert.True(t, ok)
}

func TestRectDimensions(t *testing.T) {
	doc := validDoc()
	doc.Pages[0].Regions[0].Rect.Width = "0"
	doc.Pages[0].Regions[0].Rect.X = "-1"
	res := validate.Document(doc)
	_, ok := res.Find(govsn.CodeInvalidRectDimensions, "pages[0].regions[0].rect.width")
	assert.True(t, ok)
	_, ok = res.Find(govsn.CodeValueOutOfRange, "pages[0].regions[0].rect.x")
	assert.True(t, ok)
}

func TestRegionOutOfBounds(t *testing.T) {
	doc := validDoc()
	doc.Pages[0].Regions[0].Rect.X = "100"
	res := validate.Document(doc)
	assert.True(t, res.IsValid)
	d, ok := res.Find(govsn.CodeRegionOutOfBounds, "pages[0].regions[0].rect")
	require.True(t, ok)
	assert.Equal(t, govsn.LevelWarning, d.Level)
	assert.Contains(t, d.Message, "1920x1080")
}

func TestUnknownItemType(t *testing.T) {
	res := validate.Document(validDoc(wire.Item{Type: "99"}))
	assert.True(t, res.IsValid)
	d, ok := res.Find(govsn.CodeUnknownItemType, "pages[0].regions[0].items[0].type")
	require.True(t, ok)
	assert.Equal(t, govsn.LevelWarning, d.Level)

	res = validate.Document(validDoc(wire.Item{Type: "text"}))
	_, ok = res.Find(govsn.CodeInvalidNumberFormat, "pages[0].regions[0].items[0].type")
	assert.True(t, ok)
}

func TestTextItem(t *testing.T) {
	it := textItem()
	it.Text = ""
	it.TextColor = "#FFFFFF"
	it.LogFont.LfHeight = "0"
	res := validate.Document(validDoc(it))
	base := "pages[0].regions[0].items[0].properties."
	_, ok := res.Find(govsn.CodeRequiredFieldMissing, base+"text")
	assert.True(t, ok)
	_, ok = res.Find(govsn.CodeInvalidColorFormat, base+"textColor")
	assert.True(t, ok)
	_, ok = res.Find(govsn.CodeMissingLogFontHeight, base+"logFont.lfHeight")
	assert.True(t, ok)

	it = textItem()
	it.LogFont = nil
	res = validate.Document(validDoc(it))
	_, ok = res.Find(govsn.CodeRequiredFieldMissing, base+"logFont")
	assert.True(t, ok)
}

func TestWebItem(t *testing.T) {
	web := wire.Item{Type: "27", URL: "rtsp://camera/1", Duration: "10000", Alpha: "1", BackColor: "4278190080"}
	res := validate.Document(validDoc(web))
	assert.True(t, res.IsValid)
	d, ok := res.Find(govsn.CodeNonHTTPURL, "pages[0].regions[0].items[0].properties.url")
	require.True(t, ok)
	assert.Equal(t, govsn.LevelWarning, d.Level)

	res = validate.Document(validDoc(wire.Item{Type: "27"}))
	assert.Equal(t, 4, res.Count(govsn.CodeRequiredFieldMissing))
}

func TestClockAndMediaItems(t *testing.T) {
	res := validate.Document(validDoc(wire.Item{Type: "8"}))
	assert.Equal(t, 3, res.Count(govsn.CodeRequiredFieldMissing))

	res = validate.Document(validDoc(wire.Item{Type: "3"}))
	_, ok := res.Find(govsn.CodeRequiredFieldMissing, "pages[0].regions[0].items[0].properties.fileSource")
	assert.True(t, ok)

	img := imageItem()
	img.FileSource.FilePath = `C:\media\a.png`
	img.Alpha = "2"
	res = validate.Document(validDoc(img))
	assert.Equal(t, 1, res.Count(govsn.CodeSuspiciousFilePath))
	assert.Equal(t, 1, res.Count(govsn.CodeValueOutOfRange))
}

func TestFlagsAndColors(t *testing.T) {
	doc := validDoc()
	doc.Pages[0].LoopType = "2"
	doc.Pages[0].BgColor = "4294967296"
	res := validate.Document(doc)
	_, ok := res.Find(govsn.CodeInvalidDataType, "pages[0].loopType")
	assert.True(t, ok)
	_, ok = res.Find(govsn.CodeInvalidColorFormat, "pages[0].bgColor")
	assert.True(t, ok)
}

func TestRun_FailFast(t *testing.T) {
	doc := validDoc(wire.Item{Type: "27"})
	doc.Information = nil
	res := validate.Run(doc, validate.Options{FailFast: true})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "information", res.Errors[0].Field)
}

func TestRun_Translator(t *testing.T) {
	doc := validDoc()
	doc.Pages[0].BgColor = ""
	en := validate.Document(doc)
	ja := validate.Run(doc, validate.Options{Translator: i18n.New("ja")})
	require.Len(t, en.Errors, 1)
	require.Len(t, ja.Errors, 1)
	assert.Equal(t, "pages[0].bgColor is required", en.Errors[0].Message)
	assert.NotEqual(t, en.Errors[0].Message, ja.Errors[0].Message)
	assert.Equal(t, en.Errors[0].Code, ja.Errors[0].Code)
}
