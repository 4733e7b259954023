package venues

// CreateVenueRequest is the staff payload for adding a venue to the catalog.
type CreateVenueRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Area        string   `json:"area" validate:"required,min=2,max=100"`
	Address     string   `json:"address" validate:"required,min=5,max=300"`
	Lat         *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lng         *float64 `json:"lng" validate:"omitempty,min=-180,max=180"`
	PaxMin      int      `json:"pax_min" validate:"omitempty,min=0"`
	PaxMax      int      `json:"pax_max" validate:"omitempty,min=0"`
	PriceFrom   *float64 `json:"price_from" validate:"omitempty,min=0"`
	PriceTo     *float64 `json:"price_to" validate:"omitempty,min=0"`
	Rating      float64  `json:"rating" validate:"omitempty,min=0,max=5"`
	ReviewCount int      `json:"review_count" validate:"omitempty,min=0"`
	Confidence  string   `json:"confidence" validate:"omitempty,oneof=verified likely unverified"`
	Amenities   []string `json:"amenities"`
	EventTypes  []string `json:"event_types"`
}

// UpdateVenueRequest carries partial venue updates; nil fields are untouched.
type UpdateVenueRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=200"`
	Area        *string  `json:"area" validate:"omitempty,min=2,max=100"`
	Address     *string  `json:"address" validate:"omitempty,min=5,max=300"`
	Lat         *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lng         *float64 `json:"lng" validate:"omitempty,min=-180,max=180"`
	PaxMin      *int     `json:"pax_min" validate:"omitempty,min=0"`
	PaxMax      *int     `json:"pax_max" validate:"omitempty,min=0"`
	PriceFrom   *float64 `json:"price_from" validate:"omitempty,min=0"`
	PriceTo     *float64 `json:"price_to" validate:"omitempty,min=0"`
	Rating      *float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	ReviewCount *int     `json:"review_count" validate:"omitempty,min=0"`
	Amenities   []string `json:"amenities"`
	EventTypes  []string `json:"event_types"`
}

// ToUpdates converts the set fields into a gorm updates map.
func (r *UpdateVenueRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Area != nil {
		updates["area"] = *r.Area
	}
	if r.Address != nil {
		updates["address"] = *r.Address
	}
	if r.Lat != nil {
		updates["lat"] = *r.Lat
	}
	if r.Lng != nil {
		updates["lng"] = *r.Lng
	}
	if r.PaxMin != nil {
		updates["pax_min"] = *r.PaxMin
	}
	if r.PaxMax != nil {
		updates["pax_max"] = *r.PaxMax
	}
	if r.PriceFrom != nil {
		updates["price_from"] = *r.PriceFrom
	}
	if r.PriceTo != nil {
		updates["price_to"] = *r.PriceTo
	}
	if r.Rating != nil {
		updates["rating"] = *r.Rating
	}
	if r.ReviewCount != nil {
		updates["review_count"] = *r.ReviewCount
	}
	return updates
}

// SetConfidenceRequest updates a venue's trust tier.
type SetConfidenceRequest struct {
	Confidence string `json:"confidence" validate:"required,oneof=verified likely unverified"`
}
