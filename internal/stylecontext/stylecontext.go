// Package stylecontext holds a buyer's styling intent in two slots: the
// draft being edited and the applied context the recommender reads.
package stylecontext

// Occasion tags the event a buyer is dressing for.
type Occasion string

const (
	OccasionWedding Occasion = "wedding"
	OccasionParty   Occasion = "party"
	OccasionOffice  Occasion = "office"
	OccasionCasual  Occasion = "casual"
)

// Valid reports whether o is one of the known occasions. The empty value is
// "not set" and is also valid.
func (o Occasion) Valid() bool {
	switch o {
	case "", OccasionWedding, OccasionParty, OccasionOffice, OccasionCasual:
		return true
	}
	return false
}

// Style is a buyer's preferred look.
type Style string

const (
	StyleTraditional Style = "traditional"
	StyleClassic     Style = "classic"
	StyleStreetwear  Style = "streetwear"
)

func (s Style) Valid() bool {
	switch s {
	case "", StyleTraditional, StyleClassic, StyleStreetwear:
		return true
	}
	return false
}

// StyleContext is the buyer's styling intent. Every field is optional:
// empty enums and nil pointers mean "not set".
type StyleContext struct {
	Occasion         Occasion `json:"occasion,omitempty"`
	StyleOverride    Style    `json:"styleOverride,omitempty"`
	LocationOverride *string  `json:"locationOverride,omitempty"`
	Exploration      *bool    `json:"exploration,omitempty"`
}

// Partial is a StyleContext used as an update: set fields overwrite, unset
// fields leave the target untouched.
type Partial = StyleContext

// IsEmpty reports whether no field is set.
func (c StyleContext) IsEmpty() bool {
	return c.Occasion == "" && c.StyleOverride == "" && c.LocationOverride == nil && c.Exploration == nil
}

// Valid reports whether the enum fields hold known values.
func (c StyleContext) Valid() bool {
	return c.Occasion.Valid() && c.StyleOverride.Valid()
}

// Merge returns c with every field set in p copied over it.
func (c StyleContext) Merge(p Partial) StyleContext {
	out := c.Clone()
	if p.Occasion != "" {
		out.Occasion = p.Occasion
	}
	if p.StyleOverride != "" {
		out.StyleOverride = p.StyleOverride
	}
	if p.LocationOverride != nil {
		v := *p.LocationOverride
		out.LocationOverride = &v
	}
	if p.Exploration != nil {
		v := *p.Exploration
		out.Exploration = &v
	}
	return out
}

// Clone returns a copy that shares no pointers with c.
func (c StyleContext) Clone() StyleContext {
	out := StyleContext{Occasion: c.Occasion, StyleOverride: c.StyleOverride}
	if c.LocationOverride != nil {
		v := *c.LocationOverride
		out.LocationOverride = &v
	}
	if c.Exploration != nil {
		v := *c.Exploration
		out.Exploration = &v
	}
	return out
}

// Equal compares field values, not pointer identity.
func (c StyleContext) Equal(o StyleContext) bool {
	if c.Occasion != o.Occasion || c.StyleOverride != o.StyleOverride {
		return false
	}
	if !equalPtr(c.LocationOverride, o.LocationOverride) {
		return false
	}
	return equalPtr(c.Exploration, o.Exploration)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
