// Package convert maps editing documents to wire documents (ToVSN) and back
// (FromVSN).
//
// ToVSN always produces a structurally complete wire document together with
// its validation result; callers gate transmission on Validation.IsValid.
// FromVSN is lossy: the wire format carries no item geometry, so every
// reconstructed item gets PlaceholderPosition and PlaceholderSize.
package convert

import (
	"time"

	"github.com/google/uuid"

	govsn "github.com/reoring/govsn"
	"github.com/reoring/govsn/i18n"
)

// DefaultItemDuration is the play time, in milliseconds, given to items whose
// duration is unset.
const DefaultItemDuration = 10000

// UnsupportedPolicy decides what ToVSN does with an item type outside the
// closed tag set.
type UnsupportedPolicy int

const (
	// FailUnsupported aborts with ErrUnsupportedItemType.
	FailUnsupported UnsupportedPolicy = iota
	// SkipUnsupported drops the item and reports an UNKNOWN_ITEM_TYPE warning.
	SkipUnsupported
)

// ParseUnsupportedPolicy accepts "fail" or "skip".
func ParseUnsupportedPolicy(s string) (UnsupportedPolicy, bool) {
	switch s {
	case "", "fail":
		return FailUnsupported, true
	case "skip":
		return SkipUnsupported, true
	default:
		return FailUnsupported, false
	}
}

func (p UnsupportedPolicy) String() string {
	if p == SkipUnsupported {
		return "skip"
	}
	return "fail"
}

// Option configures a conversion.
type Option func(*options)

type options struct {
	itemDuration int
	unsupported  UnsupportedPolicy
	translator   govsn.Translator
	newID        func() string
	loc          *time.Location
}

func newOptions(opts []Option) *options {
	o := &options{
		itemDuration: DefaultItemDuration,
		translator:   i18n.Default(),
		newID:        uuid.NewString,
		loc:          time.UTC,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(o)
		}
	}
	return o
}

// WithDefaultItemDuration sets the duration used for items without one.
// Non-positive values are ignored.
func WithDefaultItemDuration(ms int) Option {
	return func(o *options) {
		if ms > 0 {
			o.itemDuration = ms
		}
	}
}

// WithUnsupportedItems selects how unknown item types are handled.
func WithUnsupportedItems(p UnsupportedPolicy) Option {
	return func(o *options) { o.unsupported = p }
}

// WithTranslator renders diagnostic messages with tr.
func WithTranslator(tr govsn.Translator) Option {
	return func(o *options) {
		if tr != nil {
			o.translator = tr
		}
	}
}

// WithIDGenerator replaces uuid.NewString for the IDs FromVSN mints.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithLocation sets the zone timer targets are written in. Players read
// them as local wall-clock time.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.loc = loc
		}
	}
}
