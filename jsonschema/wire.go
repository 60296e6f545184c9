package jsonschema

import (
	"sort"

	govsn "github.com/reoring/govsn"
)

// String patterns of wire scalars.
const (
	PatternInteger  = `^-?[0-9]+$`
	PatternDecimal  = `^-?[0-9]+(\.[0-9]+)?$`
	PatternARGB     = `^[0-9]{1,10}$`
	PatternItemType = `^[0-9]+$`
)

func str(desc string) *Schema { return &Schema{Type: "string", Description: desc} }

func integer(desc string) *Schema {
	return &Schema{Type: "string", Pattern: PatternInteger, Description: desc}
}

func decimal(desc string) *Schema {
	return &Schema{Type: "string", Pattern: PatternDecimal, Description: desc}
}

func argb(desc string) *Schema {
	return &Schema{Type: "string", Pattern: PatternARGB, Description: desc}
}

func flag(desc string) *Schema {
	return &Schema{Type: "string", Enum: []string{"0", "1"}, Description: desc}
}

func object(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: "object", Properties: props, Required: required}
}

func array(items *Schema) *Schema { return &Schema{Type: "array", Items: items} }

func minItems(s *Schema, n int) *Schema {
	s.MinItems = &n
	return s
}

func fileSource() *Schema {
	return object(map[string]*Schema{
		"isRelative": flag("1 when filePath is relative to the program package"),
		"filePath":   str("media path or URL"),
		"md5":        str("hex digest of the file"),
	}, "isRelative", "filePath")
}

func logFont() *Schema {
	return object(map[string]*Schema{
		"lfHeight":    integer("font height in pixels"),
		"lfWeight":    integer("400 regular, 700 bold"),
		"lfItalic":    flag(""),
		"lfUnderline": flag(""),
		"lfFaceName":  str("font family"),
	})
}

// itemFields lists every flat item field.
func itemFields() map[string]*Schema {
	return map[string]*Schema{
		"type":        {Type: "string", Pattern: PatternItemType, Description: "item type code"},
		"name":        str(""),
		"duration":    integer("play time in milliseconds"),
		"alpha":       decimal("opacity 0..1"),
		"reserveAS":   flag("keep aspect ratio"),
		"fileSource":  fileSource(),
		"text":        str(""),
		"textColor":   argb("packed ARGB"),
		"backColor":   argb("packed ARGB"),
		"logFont":     logFont(),
		"isScroll":    flag(""),
		"speed":       integer("scroll speed"),
		"url":         str("page or stream URL"),
		"isAnalog":    flag(""),
		"timezone":    str("IANA zone name"),
		"showDate":    flag(""),
		"showWeek":    flag(""),
		"city":        str(""),
		"prefix":      str(""),
		"suffix":      str(""),
		"unit":        str(""),
		"targetTime":  {Type: "string", Format: "YYYY-MM-DD hh:mm:ss", Description: "timer target"},
		"isCountDown": flag(""),
		"channel":     str("capture channel"),
	}
}

// variantRequired lists the fields a player needs for each family.
var variantRequired = map[govsn.Variant][]string{
	govsn.VariantImage:    {"fileSource"},
	govsn.VariantVideo:    {"fileSource"},
	govsn.VariantGIF:      {"fileSource"},
	govsn.VariantText:     {"text", "textColor", "logFont"},
	govsn.VariantWeb:      {"url", "duration", "alpha", "backColor"},
	govsn.VariantClock:    {"duration", "isAnalog", "timezone"},
	govsn.VariantWeather:  {"duration", "city"},
	govsn.VariantSensor:   {"logFont", "textColor"},
	govsn.VariantTimer:    {"duration", "targetTime"},
	govsn.VariantDocument: {"fileSource"},
	govsn.VariantTVCard:   {"duration"},
}

// item is a oneOf over families, each pinning the type codes it accepts.
func item() *Schema {
	codes := map[govsn.Variant][]string{}
	for _, t := range govsn.AllItemTypes() {
		codes[t.Variant()] = append(codes[t.Variant()], t.Wire())
	}
	variants := make([]govsn.Variant, 0, len(codes))
	for v := range codes {
		variants = append(variants, v)
	}
	sort.Slice(variants, func(i, j int) bool { return variants[i] < variants[j] })

	s := &Schema{Type: "object", Properties: itemFields(), Required: []string{"type"}}
	for _, v := range variants {
		branch := object(map[string]*Schema{
			"type": {Type: "string", Enum: codes[v]},
		}, append([]string{"type"}, variantRequired[v]...)...)
		branch.Title = v.String()
		s.OneOf = append(s.OneOf, branch)
	}
	return s
}

// WireDocument returns the JSON Schema of a VSN document. Unknown item types
// fail the oneOf; the validation engine only warns about them.
func WireDocument() *Schema {
	rect := object(map[string]*Schema{
		"x":           integer(""),
		"y":           integer(""),
		"width":       integer(""),
		"height":      integer(""),
		"borderWidth": integer(""),
		"borderColor": argb("packed ARGB"),
	}, "x", "y", "width", "height", "borderWidth")

	region := object(map[string]*Schema{
		"name":             str(govsn.SyncRegionName + " restricts items to image, video and gif"),
		"rect":             rect,
		"isScheduleRegion": flag(""),
		"layer":            integer("stacking order"),
		"items":            array(item()),
	}, "rect", "items")

	page := object(map[string]*Schema{
		"name":            str(""),
		"loopType":        flag("0 fixed duration, 1 computed from regions"),
		"appointDuration": integer("page time in milliseconds, required when loopType is 0"),
		"bgColor":         argb("packed ARGB"),
		"bgFile":          fileSource(),
		"bgAudios":        array(fileSource()),
		"regions":         array(region),
	}, "loopType", "bgColor", "regions")

	root := object(map[string]*Schema{
		"information": object(map[string]*Schema{
			"width":  integer("canvas width"),
			"height": integer("canvas height"),
		}, "width", "height"),
		"pages": minItems(array(page), 1),
	}, "information", "pages")
	root.Schema = Draft
	root.Title = "VSN program"
	return root
}
