package inquiries

// InquiryStatus is the workflow state of an inquiry.
type InquiryStatus string

const (
	// StatusInquiry is a fresh request awaiting staff action
	StatusInquiry InquiryStatus = "inquiry"
	// StatusPencil is a soft reservation with an expiring hold
	StatusPencil InquiryStatus = "pencil"
	StatusConfirmed InquiryStatus = "confirmed"
	StatusCancelled InquiryStatus = "cancelled"
)

// PaymentStatus tracks how much of the booking has been paid.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentDeposit PaymentStatus = "deposit"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// IsValidStatus reports whether the given string is a known inquiry status.
func IsValidStatus(status string) bool {
	switch InquiryStatus(status) {
	case StatusInquiry, StatusPencil, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsValidPaymentStatus reports whether the given string is a known payment
// status.
func IsValidPaymentStatus(status string) bool {
	switch PaymentStatus(status) {
	case PaymentUnpaid, PaymentDeposit, PaymentPartial, PaymentPaid:
		return true
	default:
		return false
	}
}

// CanTransition reports whether an inquiry may move from one status to
// another. A pencil hold may lapse back to inquiry; cancelled is terminal.
func CanTransition(from, to InquiryStatus) bool {
	if from == to {
		return false
	}
	switch from {
	case StatusInquiry:
		return to == StatusPencil || to == StatusConfirmed || to == StatusCancelled
	case StatusPencil:
		return to == StatusInquiry || to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled
	default:
		return false
	}
}
