// Package querykey is the hierarchical naming scheme for cached result sets.
//
// A [Key] is an ordered tuple of segments. Invalidating a key invalidates
// every key that extends it, so the tuple layout defines invalidation scope:
//
//	daily                          all of a resource
//	daily/2026-10-16               resource by date
//	daily/2026-10-16/calories      resource by date and subresource
//	daily/range/2026-10-01/...     resource by range
//	subscriptions/category/<id>    resource by category
//
// Builders are pure; identical inputs always produce identical keys.
package querykey

import "strings"

// Key is an ordered tuple of key segments.
type Key []string

// New builds a key from segments.
func New(segments ...string) Key {
	k := make(Key, len(segments))
	copy(k, segments)
	return k
}

// Extends reports whether prefix is a prefix of k. Every key extends itself
// and the empty key.
func (k Key) Extends(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Append returns a new key with segments added after k.
func (k Key) Append(segments ...string) Key {
	out := make(Key, 0, len(k)+len(segments))
	out = append(out, k...)
	return append(out, segments...)
}

// Equal reports whether both keys have identical segments.
func (k Key) Equal(other Key) bool {
	return len(k) == len(other) && k.Extends(other)
}

// String returns the stable encoding of k. Segments are joined with "/";
// slashes and backslashes inside a segment are escaped so distinct keys never
// encode identically.
func (k Key) String() string {
	var b strings.Builder
	for i, s := range k {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(segmentEscaper.Replace(s))
	}
	return b.String()
}

var segmentEscaper = strings.NewReplacer(`\`, `\\`, `/`, `\/`)

// Subresources of a daily entry.
const (
	SubCalories   = "calories"
	SubExercise   = "exercise"
	SubInjections = "injections"
	SubMITs       = "mits"
	SubNirvana    = "nirvana"
	SubEntry      = "entry"
)

const rangeSegment = "range"

// ── Builders ────────────────────────────────────────────────────────────────

var (
	Profile       profileKeys
	Daily         dailyKeys
	Weekly        weeklyKeys
	Injections    injectionKeys
	Subscriptions subscriptionKeys
	WinnersBible  winnersBibleKeys
	Lookups       lookupKeys
	Settings      settingsKeys
)

type profileKeys struct{}

func (profileKeys) Current() Key { return Key{"profile"} }

type dailyKeys struct{}

func (dailyKeys) All() Key { return Key{"daily"} }

func (d dailyKeys) ByDate(date string) Key { return d.All().Append(date) }

func (d dailyKeys) Sub(date, sub string) Key { return d.ByDate(date).Append(sub) }

func (d dailyKeys) Ranges() Key { return d.All().Append(rangeSegment) }

func (d dailyKeys) Range(from, to string) Key { return d.Ranges().Append(from, to) }

type weeklyKeys struct{}

func (weeklyKeys) All() Key { return Key{"weekly"} }

func (w weeklyKeys) ByWeek(weekStart string) Key { return w.All().Append(weekStart) }

type injectionKeys struct{}

func (injectionKeys) All() Key { return Key{"injections"} }

func (i injectionKeys) ByDate(date string) Key { return i.All().Append(date) }

func (i injectionKeys) Ranges() Key { return i.All().Append(rangeSegment) }

func (i injectionKeys) Range(from, to string) Key { return i.Ranges().Append(from, to) }

type subscriptionKeys struct{}

func (subscriptionKeys) All() Key { return Key{"subscriptions"} }

func (s subscriptionKeys) List() Key { return s.All().Append("list") }

func (s subscriptionKeys) ByCategory(categoryID string) Key {
	return s.All().Append("category", categoryID)
}

func (s subscriptionKeys) Categories() Key { return s.All().Append("categories") }

func (s subscriptionKeys) Totals() Key { return s.All().Append("totals") }

type winnersBibleKeys struct{}

func (winnersBibleKeys) All() Key { return Key{"winners-bible"} }

type lookupKeys struct{}

func (lookupKeys) All() Key { return Key{"lookups"} }

func (l lookupKeys) Compounds() Key { return l.All().Append("compounds") }

func (l lookupKeys) FoodTemplates() Key { return l.All().Append("food-templates") }

func (l lookupKeys) NirvanaTypes() Key { return l.All().Append("nirvana-types") }

type settingsKeys struct{}

func (settingsKeys) Current() Key { return Key{"settings"} }
