package inquiries

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionFromInquiry(t *testing.T) {
	assert.True(t, CanTransition(StatusInquiry, StatusPencil))
	assert.True(t, CanTransition(StatusInquiry, StatusConfirmed))
	assert.True(t, CanTransition(StatusInquiry, StatusCancelled))
}

func TestCanTransitionFromPencil(t *testing.T) {
	// A lapsed hold returns the inquiry to the inbox
	assert.True(t, CanTransition(StatusPencil, StatusInquiry))
	assert.True(t, CanTransition(StatusPencil, StatusConfirmed))
	assert.True(t, CanTransition(StatusPencil, StatusCancelled))
}

func TestCanTransitionFromConfirmed(t *testing.T) {
	assert.True(t, CanTransition(StatusConfirmed, StatusCancelled))
	assert.False(t, CanTransition(StatusConfirmed, StatusInquiry))
	assert.False(t, CanTransition(StatusConfirmed, StatusPencil))
}

func TestCancelledIsTerminal(t *testing.T) {
	assert.False(t, CanTransition(StatusCancelled, StatusInquiry))
	assert.False(t, CanTransition(StatusCancelled, StatusPencil))
	assert.False(t, CanTransition(StatusCancelled, StatusConfirmed))
}

func TestCanTransitionRejectsNoop(t *testing.T) {
	assert.False(t, CanTransition(StatusPencil, StatusPencil))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("inquiry"))
	assert.True(t, IsValidStatus("pencil"))
	assert.True(t, IsValidStatus("confirmed"))
	assert.True(t, IsValidStatus("cancelled"))
	assert.False(t, IsValidStatus("held"))
	assert.False(t, IsValidStatus(""))
}

func TestIsValidPaymentStatus(t *testing.T) {
	assert.True(t, IsValidPaymentStatus("unpaid"))
	assert.True(t, IsValidPaymentStatus("deposit"))
	assert.True(t, IsValidPaymentStatus("partial"))
	assert.True(t, IsValidPaymentStatus("paid"))
	assert.False(t, IsValidPaymentStatus("refunded"))
}
