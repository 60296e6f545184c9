// Package editing holds the editing document: the nested, typed program model
// the authoring UI mutates. Values here use real numbers, booleans and hex
// colors; string encoding happens only in the wire package.
package editing

import govsn "github.com/reoring/govsn"

// Document is a full program as authored.
type Document struct {
	Program Program `json:"program"`
	Pages   []Page  `json:"pages"`
}

// Program carries the canvas size shared by every page.
type Program struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// LoopType selects how a page's play time is determined.
type LoopType int

const (
	LoopFixedDuration LoopType = 0 // Duration is authoritative.
	LoopAutoCompute   LoopType = 1 // Duration follows the longest region.
)

// MinFixedDuration is the shortest fixed page duration in milliseconds.
const MinFixedDuration = 100

// Page is one screen of the program.
type Page struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Duration int                 `json:"duration"` // milliseconds
	LoopType LoopType            `json:"loopType"`
	BgColor  string              `json:"bgColor"`
	BgFile   *MaterialReference  `json:"bgFile,omitempty"`
	BgAudios []MaterialReference `json:"bgAudios,omitempty"`
	Regions  []Region            `json:"regions"`
}

// Rect is a region's geometry in canvas pixels.
type Rect struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	BorderWidth int    `json:"borderWidth"`
	BorderColor string `json:"borderColor,omitempty"`
}

// Region is an independently scheduled area of a page whose items play in
// sequence.
type Region struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Rect             Rect   `json:"rect"`
	Items            []Item `json:"items"`
	IsScheduleRegion bool   `json:"isScheduleRegion"`
	Layer            *int   `json:"layer,omitempty"`
}

// IsSync reports whether the region is the synchronised-playback region.
func (r Region) IsSync() bool { return r.Name == govsn.SyncRegionName }

// Position is an item's offset inside its region.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is an item's authored size.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Item is one piece of content. Properties holds the variant-specific shape
// selected by Type; a nil Properties behaves like the variant's zero value.
type Item struct {
	ID          string             `json:"id"`
	Type        govsn.ItemType     `json:"type"`
	Name        string             `json:"name,omitempty"`
	Position    Position           `json:"position"`
	Size        Size               `json:"size"`
	Properties  Properties         `json:"properties,omitempty"`
	MaterialRef *MaterialReference `json:"materialRef,omitempty"`
}
