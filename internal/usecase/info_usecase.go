package usecase

import "ahkii-burger-backend/internal/domain"

// restaurantInfo is the business information shown on the About and
// Contact pages. Reference data, never mutated at runtime.
var restaurantInfo = domain.RestaurantInfo{
	Name:     "Ahkii Burger",
	Location: "London, UK",
	Address:  "123 Old Street, Shoreditch, London EC1V 9HL (Limited Pop-Up)",
	Phone:    "+44 20 1234 5678",
	Email:    "hello@ahkiiburger.com",
	OpeningHours: map[string]string{
		"monday":    "11:00 AM - 10:00 PM",
		"tuesday":   "11:00 AM - 10:00 PM",
		"wednesday": "11:00 AM - 10:00 PM",
		"thursday":  "11:00 AM - 11:00 PM",
		"friday":    "11:00 AM - 12:00 AM",
		"saturday":  "12:00 PM - 12:00 AM",
		"sunday":    "12:00 PM - 10:00 PM",
	},
	SocialLinks: map[string]string{
		"instagram": "https://www.instagram.com/bolalogos/",
		"facebook":  "https://facebook.com",
		"twitter":   "https://twitter.com",
	},
	MapsEmbedURL: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d2482.6791471625403!2d-0.08396292346819132!3d51.52661577181169!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x48761ca5e91e57ad%3A0x40a6bb5fc30b860!2sOld%20Street%2C%20London%20EC1V%209HL!5e0!3m2!1sen!2suk!4v1234567890",
	HalalMessage: "All our burgers and food are 100% halal certified. We use only premium halal-certified beef and ingredients.",
}

type infoUsecase struct{}

func NewInfoUsecase() domain.InfoUsecase {
	return &infoUsecase{}
}

func (u *infoUsecase) Get() *domain.RestaurantInfo {
	info := restaurantInfo
	return &info
}
