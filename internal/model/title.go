package model

// Tier groups titles by price segment.
type Tier string

const (
	TierAAA   Tier = "AAA"
	TierAA    Tier = "AA"
	TierIndie Tier = "Indie"
)

// Title is one game in a competitive set. Name is canonical across all
// markets and platforms. Scale rescales the title's observed prices toward
// the tier's baseline price point before conversion; Weight controls the
// title's influence on aggregate views only, never on its own per-market
// rows. Refs maps each platform to the store-specific product reference
// (Steam app id, Xbox big id, PlayStation product id).
type Title struct {
	Name        string
	Tier        Tier
	BaselineUSD float64
	Scale       float64
	Weight      float64
	Refs        map[Platform]string
}

// Ref returns the product reference for the given platform, if any.
func (t Title) Ref(p Platform) (string, bool) {
	ref, ok := t.Refs[p]
	return ref, ok && ref != ""
}
