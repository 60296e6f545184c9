package govsn

import "strconv"

// ItemType is the numeric discriminator of a wire item. The set is closed: it
// mirrors what device firmware understands.
type ItemType int

const (
	ItemImage          ItemType = 2
	ItemVideo          ItemType = 3
	ItemSingleLineText ItemType = 4
	ItemMultiLineText  ItemType = 5
	ItemGIF            ItemType = 6
	ItemColumnText     ItemType = 7
	ItemClock          ItemType = 8
	ItemExquisiteClock ItemType = 9
	ItemWeather        ItemType = 14
	ItemTemperature    ItemType = 15
	ItemHumidity       ItemType = 16
	ItemNoise          ItemType = 17
	ItemAirQuality     ItemType = 18
	ItemSmoke          ItemType = 19
	ItemSensorTip      ItemType = 20
	ItemSensorInitial  ItemType = 21
	ItemTimer          ItemType = 22
	ItemWeb            ItemType = 27 // Also carries streams; the URL scheme decides.
	ItemTVCard         ItemType = 30
	ItemDoc            ItemType = 100
	ItemExcel          ItemType = 101
	ItemPPT            ItemType = 102
)

// Variant groups item types that share one property shape and one builder.
type Variant int

const (
	VariantUnknown Variant = iota
	VariantImage
	VariantVideo
	VariantText
	VariantGIF
	VariantWeb
	VariantClock
	VariantWeather
	VariantSensor
	VariantTimer
	VariantDocument
	VariantTVCard
)

var itemTypeNames = map[ItemType]string{
	ItemImage:          "image",
	ItemVideo:          "video",
	ItemSingleLineText: "single-line-text",
	ItemMultiLineText:  "multi-line-text",
	ItemGIF:            "gif",
	ItemColumnText:     "column-text",
	ItemClock:          "clock",
	ItemExquisiteClock: "exquisite-clock",
	ItemWeather:        "weather",
	ItemTemperature:    "temperature",
	ItemHumidity:       "humidity",
	ItemNoise:          "noise",
	ItemAirQuality:     "air-quality",
	ItemSmoke:          "smoke",
	ItemSensorTip:      "sensor-tip",
	ItemSensorInitial:  "sensor-initial",
	ItemTimer:          "timer",
	ItemWeb:            "web",
	ItemTVCard:         "tv-card",
	ItemDoc:            "doc",
	ItemExcel:          "excel",
	ItemPPT:            "ppt",
}

// AllItemTypes lists the closed tag set in ascending code order.
func AllItemTypes() []ItemType {
	return []ItemType{
		ItemImage, ItemVideo, ItemSingleLineText, ItemMultiLineText, ItemGIF,
		ItemColumnText, ItemClock, ItemExquisiteClock, ItemWeather,
		ItemTemperature, ItemHumidity, ItemNoise, ItemAirQuality, ItemSmoke,
		ItemSensorTip, ItemSensorInitial, ItemTimer, ItemWeb, ItemTVCard,
		ItemDoc, ItemExcel, ItemPPT,
	}
}

// Variant maps the type code to its property family. Unknown codes map to
// VariantUnknown.
func (t ItemType) Variant() Variant {
	switch t {
	case ItemImage:
		return VariantImage
	case ItemVideo:
		return VariantVideo
	case ItemSingleLineText, ItemMultiLineText, ItemColumnText:
		return VariantText
	case ItemGIF:
		return VariantGIF
	case ItemWeb:
		return VariantWeb
	case ItemClock, ItemExquisiteClock:
		return VariantClock
	case ItemWeather:
		return VariantWeather
	case ItemTemperature, ItemHumidity, ItemNoise, ItemAirQuality, ItemSmoke,
		ItemSensorTip, ItemSensorInitial:
		return VariantSensor
	case ItemTimer:
		return VariantTimer
	case ItemDoc, ItemExcel, ItemPPT:
		return VariantDocument
	case ItemTVCard:
		return VariantTVCard
	default:
		return VariantUnknown
	}
}

// Known reports whether t belongs to the closed tag set.
func (t ItemType) Known() bool { return t.Variant() != VariantUnknown }

// String returns the item type name, or the bare code when unknown.
func (t ItemType) String() string {
	if n, ok := itemTypeNames[t]; ok {
		return n
	}
	return strconv.Itoa(int(t))
}

// Wire returns the decimal string used as the wire discriminator.
func (t ItemType) Wire() string { return strconv.Itoa(int(t)) }

// ParseItemType parses a wire discriminator. ok is false when s is not a
// plain decimal integer; the result may still be unknown to this version.
func ParseItemType(s string) (t ItemType, ok bool) {
	if s == "" || s[0] == '+' {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return ItemType(n), true
}

// SyncRegionName is the region name reserved for cross-device synchronised
// playback.
const SyncRegionName = "sync_program"

// AllowedInSyncRegion reports whether t may be placed in a sync region.
func AllowedInSyncRegion(t ItemType) bool {
	return t == ItemImage || t == ItemVideo || t == ItemGIF
}

func (v Variant) String() string {
	switch v {
	case VariantImage:
		return "image"
	case VariantVideo:
		return "video"
	case VariantText:
		return "text"
	case VariantGIF:
		return "gif"
	case VariantWeb:
		return "web"
	case VariantClock:
		return "clock"
	case VariantWeather:
		return "weather"
	case VariantSensor:
		return "sensor"
	case VariantTimer:
		return "timer"
	case VariantDocument:
		return "document"
	case VariantTVCard:
		return "tv-card"
	default:
		return "unknown"
	}
}
