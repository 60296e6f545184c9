package convert_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	govsn "github.com/reoring/govsn"
	"github.com/reoring/govsn/convert"
	"github.com/reoring/govsn/editing"
	"github.com/reoring/govsn/wire"
)

func helloDoc() *editing.Document {
	return &editing.Document{
		Program: editing.Program{Name: "lobby", Width: 1920, Height: 1080},
		Pages: []editing.Page{{
			ID:       "p1",
			Name:     "page 1",
			Duration: 5000,
			LoopType: editing.LoopFixedDuration,
			BgColor:  "#000000",
			Regions: []editing.Region{{
				ID:   "r1",
				Name: "main",
				Rect: editing.Rect{X: 0, Y: 0, Width: 1920, Height: 1080, BorderWidth: 0},
				Items: []editing.Item{{
					ID:       "i1",
					Type:     govsn.ItemSingleLineText,
					Position: editing.Position{X: 40, Y: 30},
					Size:     editing.Size{Width: 640, Height: 120},
					Properties: &editing.TextProperties{
						Text:      "Hello",
						TextColor: "#FFFFFF",
						Font:      editing.Font{Size: 24},
					},
				}},
			}},
		}},
	}
}

func counter() func() string {
	n := 0
	return func() string {
		n++
		return "id-" + strconv.Itoa(n)
	}
}

func TestToVSN_EndToEnd(t *testing.T) {
	conv, err := convert.ToVSN(helloDoc(), nil)
	require.NoError(t, err)
	require.NotNil(t, conv.Document)

	assert.Equal(t, &wire.Information{Width: "1920", Height: "1080"}, conv.Document.Information)
	require.Len(t, conv.Document.Pages, 1)
	pg := conv.Document.Pages[0]
	assert.Equal(t, "4278190080", pg.BgColor)
	assert.Equal(t, "0", pg.LoopType)
	assert.Equal(t, "5000", pg.AppointDuration)

	assert.True(t, conv.Validation.IsValid)
	assert.Empty(t, conv.Validation.Errors)

	want := wire.Item{
		Type:      "4",
		Text:      "Hello",
		TextColor: "4294967295",
		BackColor: "0",
		LogFont:   &wire.LogFont{LfHeight: "24", LfWeight: "400", LfItalic: "0", LfUnderline: "0", LfFaceName: "Arial"},
		IsScroll:  "0",
		Duration:  "10000",
	}
	if diff := cmp.Diff(want, pg.Regions[0].Items[0]); diff != "" {
		t.Errorf("text item mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip_IsLossy(t *testing.T) {
	conv, err := convert.ToVSN(helloDoc(), nil)
	require.NoError(t, err)
	back, err := convert.FromVSN(conv.Document, convert.WithIDGenerator(counter()))
	require.NoError(t, err)

	it := back.Pages[0].Regions[0].Items[0]
	assert.Equal(t, editing.Position{X: 0, Y: 0}, it.Position)
	assert.Equal(t, editing.Size{Width: 200, Height: 50}, it.Size)
	assert.NotEqual(t, helloDoc().Pages[0].Regions[0].Items[0].Size, it.Size)

	// Apart from IDs and item geometry the text document survives.
	orig := helloDoc()
	ignore := cmp.Options{
		cmpopts.IgnoreFields(editing.Program{}, "ID", "Name"),
		cmpopts.IgnoreFields(editing.Page{}, "ID"),
		cmpopts.IgnoreFields(editing.Region{}, "ID"),
		cmpopts.IgnoreFields(editing.Item{}, "ID", "Position", "Size"),
		cmpopts.IgnoreFields(editing.TextProperties{}, "BackColor", "Duration"),
		cmpopts.IgnoreFields(editing.Font{}, "Family"),
		cmpopts.EquateEmpty(),
	}
	if diff := cmp.Diff(orig, back, ignore); diff != "" {
		t.Errorf("round trip mismatch (-orig +back):\n%s", diff)
	}
}

func TestToVSN_ValidationFailureStillConverts(t *testing.T) {
	doc := helloDoc()
	doc.Pages[0].Regions[0].Name = govsn.SyncRegionName
	conv, err := convert.ToVSN(doc, nil)
	require.NoError(t, err)
	require.Len(t, conv.Document.Pages, 1)
	assert.False(t, conv.Validation.IsValid)
	assert.Equal(t, 1, conv.Validation.Count(govsn.CodeInvalidSyncRegionItemType))
}

func TestToVSN_UnsupportedItemType(t *testing.T) {
	doc := helloDoc()
	doc.Pages[0].Regions[0].Items[0].Type = 42
	doc.Pages[0].Regions[0].Items[0].Properties = nil

	_, err := convert.ToVSN(doc, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, govsn.ErrUnsupportedItemType))
	var ce *govsn.ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "pages[0].regions[0].items[0].type", ce.Path)

	conv, err := convert.ToVSN(doc, nil, convert.WithUnsupportedItems(convert.SkipUnsupported))
	require.NoError(t, err)
	assert.Empty(t, conv.Document.Pages[0].Regions[0].Items)
	assert.True(t, conv.Validation.IsValid)
	d, ok := conv.Validation.Find(govsn.CodeUnknownItemType, "pages[0].regions[0].items[0].type")
	require.True(t, ok)
	assert.Equal(t, govsn.LevelWarning, d.Level)
	assert.Contains(t, d.Message, "42")
}

func TestToVSN_ConversionError(t *testing.T) {
	doc := helloDoc()
	doc.Pages[0].BgColor = "black"
	conv, err := convert.ToVSN(doc, nil)
	require.NoError(t, err)
	assert.Empty(t, conv.Document.Pages)
	assert.Nil(t, conv.Document.Information)
	require.Len(t, conv.Validation.Errors, 1)
	assert.Equal(t, govsn.CodeConversionError, conv.Validation.Errors[0].Code)
	assert.Contains(t, conv.Validation.Errors[0].Message, "pages[0].bgColor")

	conv, err = convert.ToVSN(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, conv.Validation.Count(govsn.CodeConversionError))
}

func TestToVSN_Materials(t *testing.T) {
	doc := helloDoc()
	doc.Pages[0].Regions[0].Items = []editing.Item{
		{
			ID:          "img",
			Type:        govsn.ItemImage,
			Properties:  &editing.ImageProperties{Alpha: editing.Float(0.5), ReserveAS: editing.Bool(true)},
			MaterialRef: &editing.MaterialReference{MaterialID: "m1", FilePath: "stale.png", IsRelative: true},
		},
		{
			ID:          "vid",
			Type:        govsn.ItemVideo,
			MaterialRef: &editing.MaterialReference{MaterialID: "m2"},
		},
	}
	refs := []editing.MaterialReference{
		{MaterialID: "m1", FilePath: "media/fresh.png", MD5Hash: "abc", IsRelative: true},
		{MaterialID: "m2", AccessURL: "https://cdn.example.com/v.mp4", Duration: editing.Int(42000)},
	}
	conv, err := convert.ToVSN(doc, refs)
	require.NoError(t, err)
	items := conv.Document.Pages[0].Regions[0].Items
	require.Len(t, items, 2)

	assert.Equal(t, &wire.FileSource{IsRelative: "1", FilePath: "media/fresh.png", MD5: "abc"}, items[0].FileSource)
	assert.Equal(t, "0.5", items[0].Alpha)
	assert.Equal(t, "1", items[0].ReserveAS)
	assert.Equal(t, "10000", items[0].Duration)

	assert.Equal(t, "https://cdn.example.com/v.mp4", items[1].FileSource.FilePath)
	assert.Equal(t, "42000", items[1].Duration)
	assert.Equal(t, "1", items[1].Alpha)
	assert.Empty(t, items[1].ReserveAS)
	assert.True(t, conv.Validation.IsValid, "%+v", conv.Validation.Errors)
}

func TestToVSN_VariantDefaults(t *testing.T) {
	target := time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)
	doc := helloDoc()
	doc.Pages[0].LoopType = editing.LoopAutoCompute
	doc.Pages[0].Regions[0].Items = []editing.Item{
		{Type: govsn.ItemWeb, Properties: &editing.WebProperties{URL: "https://example.com"}},
		{Type: govsn.ItemClock, Properties: &editing.ClockProperties{Timezone: "Asia/Tokyo", IsAnalog: true}},
		{Type: govsn.ItemTimer, Properties: &editing.TimerProperties{Target: target, CountDown: true}},
		{Type: govsn.ItemTemperature, Properties: &editing.SensorProperties{
			LogFont: editing.Font{Size: 18, Bold: true}, TextColor: "#80FF0000", Unit: "C"}},
	}
	conv, err := convert.ToVSN(doc, nil, convert.WithDefaultItemDuration(8000))
	require.NoError(t, err)
	pg := conv.Document.Pages[0]
	assert.Empty(t, pg.AppointDuration)
	items := pg.Regions[0].Items

	assert.Equal(t, "4278190080", items[0].BackColor)
	assert.Equal(t, "1", items[0].Alpha)
	assert.Equal(t, "8000", items[0].Duration)

	assert.Equal(t, "1", items[1].IsAnalog)
	assert.Nil(t, items[1].LogFont)

	assert.Equal(t, "2026-12-31 23:59:00", items[2].TargetTime)
	assert.Equal(t, "1", items[2].IsCountDown)

	assert.Equal(t, "700", items[3].LogFont.LfWeight)
	assert.Equal(t, "2164195328", items[3].TextColor)
	assert.True(t, conv.Validation.IsValid, "%+v", conv.Validation.Errors)
}

func TestFromVSN_Errors(t *testing.T) {
	valid := func() *wire.Document {
		conv, err := convert.ToVSN(helloDoc(), nil)
		require.NoError(t, err)
		return conv.Document
	}
	cases := map[string]struct {
		mutate func(*wire.Document) *wire.Document
		path   string
	}{
		"nil":         {func(*wire.Document) *wire.Document { return nil }, ""},
		"information": {func(d *wire.Document) *wire.Document { d.Information = nil; return d }, "information"},
		"loop type": {func(d *wire.Document) *wire.Document {
			d.Pages[0].LoopType = "2"
			return d
		}, "pages[0].loopType"},
		"bg color": {func(d *wire.Document) *wire.Document {
			d.Pages[0].BgColor = "#000000"
			return d
		}, "pages[0].bgColor"},
		"item type": {func(d *wire.Document) *wire.Document {
			d.Pages[0].Regions[0].Items[0].Type = "99"
			return d
		}, "pages[0].regions[0].items[0].type"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := convert.FromVSN(tc.mutate(valid()))
			assert.Nil(t, doc)
			require.ErrorIs(t, err, govsn.ErrConversion)
			var ce *govsn.ConversionError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tc.path, ce.Path)
		})
	}
}

func TestFromVSN_Defaults(t *testing.T) {
	doc := &wire.Document{
		Information: &wire.Information{Width: "640", Height: "480"},
		Pages: []wire.Page{{
			LoopType: "1",
			Regions: []wire.Region{{
				Rect:  &wire.Rect{X: "0", Y: "0", Width: "640", Height: "480", BorderWidth: "0", BorderColor: "2164195328"},
				Layer: "3",
				Items: []wire.Item{{Type: "2", Name: "logo"}},
			}},
		}},
	}
	got, err := convert.FromVSN(doc, convert.WithIDGenerator(counter()))
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.Program.ID)
	pg := got.Pages[0]
	assert.Equal(t, "#000000", pg.BgColor)
	assert.Equal(t, editing.LoopAutoCompute, pg.LoopType)
	rg := pg.Regions[0]
	assert.Equal(t, "#80FF0000", rg.Rect.BorderColor)
	require.NotNil(t, rg.Layer)
	assert.Equal(t, 3, *rg.Layer)
	it := rg.Items[0]
	assert.Equal(t, govsn.ItemImage, it.Type)
	assert.Equal(t, "logo", it.Name)
	assert.Equal(t, &editing.ImageProperties{}, it.Properties)
}
