package domain

import "time"

// Listing is a rentable property shown on the Properties tab.
type Listing struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	FeaturedImage string    `json:"featuredImage"`
	PricePerNight float64   `json:"pricePerNight"`
	MaxGuests     int       `json:"maxGuests"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	Address       string    `json:"address"`
	TypeOfPlace   string    `json:"typeOfPlace"`
	IsFeatured    bool      `json:"isFeatured"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListingUpdate carries the PATCH-able subset of listing fields. A nil field
// means "leave unchanged"; fields outside this set can never be updated
// through the API.
type ListingUpdate struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	PricePerNight *float64 `json:"pricePerNight"`
	MaxGuests     *int     `json:"maxGuests"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *int     `json:"bathrooms"`
	TypeOfPlace   *string  `json:"typeOfPlace"`
	IsFeatured    *bool    `json:"isFeatured"`
}

// Empty reports whether the update would change nothing.
func (u ListingUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.PricePerNight == nil &&
		u.MaxGuests == nil && u.Bedrooms == nil && u.Bathrooms == nil &&
		u.TypeOfPlace == nil && u.IsFeatured == nil
}
