package model

// Platform identifies a storefront. Each platform keeps its own market
// registry; market data is never shared across platforms.
type Platform string

const (
	PlatformSteam       Platform = "steam"
	PlatformXbox        Platform = "xbox"
	PlatformPlayStation Platform = "playstation"
)

// Platforms lists all supported storefronts in display order.
var Platforms = []Platform{PlatformSteam, PlatformXbox, PlatformPlayStation}

// Market describes one storefront country: the ISO country code, the
// storefront locale used to build localized requests, the currency prices
// are quoted in, and a human-readable name.
type Market struct {
	Code     string
	Locale   string
	Currency string
	Name     string
}
