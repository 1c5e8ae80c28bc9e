package dashboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/bookings"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

func TestCustomerName(t *testing.T) {
	assert.Equal(t, "John Doe", CustomerName(customer))
	assert.Equal(t, "Jane", CustomerName(models.Session{UserID: "u1", Name: "Jane", Role: models.RoleUser}))
}

func TestBuildUserStats(t *testing.T) {
	ledger := bookings.NewLedger(bookings.SeedBookings())

	stats := BuildUserStats(ledger.ForCustomer(CustomerName(customer)))

	assert.Equal(t, 2, stats.TotalBookings)
	assert.Equal(t, 1, stats.PendingBookings)
	require.Len(t, stats.BookingHistory, 2)
	assert.Equal(t, 102, stats.BookingHistory[0].ID)
	assert.Equal(t, 101, stats.BookingHistory[1].ID)
}

func TestBuildUserStatsEmpty(t *testing.T) {
	stats := BuildUserStats(nil)

	assert.Equal(t, 0, stats.TotalBookings)
	assert.Equal(t, []models.Booking{}, stats.BookingHistory)
}

func TestBuildProviderStats(t *testing.T) {
	ledger := bookings.NewLedger(bookings.SeedBookings())

	stats := BuildProviderStats(ledger.ForProvider(provider.Name), listings())

	assert.Equal(t, 1500.0, stats.Earnings)
	assert.Equal(t, 0, stats.ActiveJobs)
	assert.Equal(t, 2, stats.TotalClients)
	assert.InDelta(t, 4.6, stats.AvgRating, 1e-9)
	require.Len(t, stats.RecentOrders, 2)
	assert.Equal(t, 104, stats.RecentOrders[0].ID)
}

func TestBuildProviderStatsKeepsFiveMostRecent(t *testing.T) {
	var bs []models.Booking
	for i := 1; i <= 8; i++ {
		status := models.BookingCompleted
		if i%2 == 0 {
			status = models.BookingPending
		}
		bs = append(bs, models.Booking{ID: i, Customer: fmt.Sprint("c", i%3), Amount: 100, Status: status, PaymentStatus: models.PaymentPaid})
	}

	stats := BuildProviderStats(bs, nil)

	assert.Equal(t, 800.0, stats.Earnings)
	assert.Equal(t, 4, stats.ActiveJobs)
	assert.Equal(t, 3, stats.TotalClients)
	assert.Equal(t, DefaultProviderRating, stats.AvgRating)
	require.Len(t, stats.RecentOrders, RecentOrdersLimit)
	assert.Equal(t, []int{8, 7, 6, 5, 4}, bookingIDs(stats.RecentOrders))
}

func TestBuildProviderStatsEmpty(t *testing.T) {
	stats := BuildProviderStats(nil, nil)

	assert.Equal(t, 0.0, stats.Earnings)
	assert.Equal(t, []models.Booking{}, stats.RecentOrders)
}

func bookingIDs(bs []models.Booking) []int {
	out := make([]int, len(bs))
	for i, b := range bs {
		out[i] = b.ID
	}
	return out
}
