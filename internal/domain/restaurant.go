package domain

// RestaurantInfo is the static business information shown on the About
// and Contact pages. Reference data, defined once and never mutated.
type RestaurantInfo struct {
	Name         string            `json:"name"`
	Location     string            `json:"location"`
	Address      string            `json:"address"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email"`
	OpeningHours map[string]string `json:"opening_hours"`
	SocialLinks  map[string]string `json:"social_links"`
	MapsEmbedURL string            `json:"maps_embed_url"`
	HalalMessage string            `json:"halal_message"`
}

type InfoUsecase interface {
	Get() *RestaurantInfo
}
