package inquiries

// InquiryDetailResponse is an inquiry with its venue recipients.
type InquiryDetailResponse struct {
	Inquiry    Inquiry            `json:"inquiry"`
	Recipients []InquiryRecipient `json:"recipients"`
}

// CalendarEntry is one inquiry occupying a calendar day.
type CalendarEntry struct {
	InquiryID  string        `json:"inquiry_id"`
	ClientName string        `json:"client_name"`
	EventType  string        `json:"event_type"`
	Status     InquiryStatus `json:"status"`
}

// CalendarResponse buckets a month's actioned inquiries by day.
type CalendarResponse struct {
	Year  int                        `json:"year"`
	Month int                        `json:"month"`
	Days  map[string][]CalendarEntry `json:"days"`
}
