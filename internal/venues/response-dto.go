package venues

// VenueDetailResponse is a venue with its joined catalog attributes.
type VenueDetailResponse struct {
	Venue      Venue    `json:"venue"`
	Confidence string   `json:"confidence"`
	Amenities  []string `json:"amenities"`
	EventTypes []string `json:"event_types"`
}
