package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

func TestBookingHistoryPDF(t *testing.T) {
	bookings := []models.Booking{
		{ID: 101, Customer: "John Doe", Provider: "Sparky Solutions", Service: "Electrician", Date: "2023-10-25", Amount: 1500, Status: models.BookingCompleted, PaymentStatus: models.PaymentPaid},
	}

	buf, err := BookingHistoryPDF("John Doe", "Provider", bookings, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestBookingHistoryPDFEmpty(t *testing.T) {
	buf, err := BookingHistoryPDF("Sparky Solutions", "Customer", nil, time.Now())

	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
}

func TestCounterpartyName(t *testing.T) {
	b := models.Booking{Customer: "Alice", Provider: "Cool Air Pros"}
	assert.Equal(t, "Alice", counterpartyName(b, "Customer"))
	assert.Equal(t, "Cool Air Pros", counterpartyName(b, "Provider"))
}
