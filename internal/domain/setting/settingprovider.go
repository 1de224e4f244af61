package setting

import "context"

const (
	CategoryDisplay = "display"
	KeyShowAds      = "show_ads"
)

// DisplayProvider answers presentation flags for each request.
type DisplayProvider interface {
	// ShowAds reports whether pages should carry ad slots.
	ShowAds(ctx context.Context) bool
}
