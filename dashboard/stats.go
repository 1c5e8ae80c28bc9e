package dashboard

import (
	"slices"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// DefaultProviderRating is reported for a provider with no rated listings.
const DefaultProviderRating = 4.9

// RecentOrdersLimit caps ProviderStats.RecentOrders.
const RecentOrdersLimit = 5

// demoCustomers maps the demo accounts onto the customers in the seeded ledger.
var demoCustomers = map[string]string{
	"mock-user": "John Doe",
}

// CustomerName is the ledger name of the session's customer.
func CustomerName(sess models.Session) string {
	if name, ok := demoCustomers[sess.UserID]; ok {
		return name
	}
	return sess.Name
}

type UserStats struct {
	TotalBookings   int              `json:"totalBookings"`
	PendingBookings int              `json:"pendingBookings"`
	BookingHistory  []models.Booking `json:"bookingHistory"`
}

type ProviderStats struct {
	Earnings     float64          `json:"earnings"`
	ActiveJobs   int              `json:"activeJobs"`
	TotalClients int              `json:"totalClients"`
	AvgRating    float64          `json:"avgRating"`
	RecentOrders []models.Booking `json:"recentOrders"`
}

// BuildUserStats summarises a customer's bookings, newest first.
func BuildUserStats(bookings []models.Booking) UserStats {
	history := slices.Clone(bookings)
	slices.Reverse(history)
	if history == nil {
		history = []models.Booking{}
	}
	return UserStats{
		TotalBookings:   len(bookings),
		PendingBookings: countStatus(bookings, models.BookingPending),
		BookingHistory:  history,
	}
}

// BuildProviderStats summarises a provider's bookings and listings.
// Earnings only count paid bookings; active jobs are pending bookings.
func BuildProviderStats(bookings []models.Booking, listings []models.Service) ProviderStats {
	var earnings float64
	clients := map[string]struct{}{}
	for _, b := range bookings {
		if b.PaymentStatus == models.PaymentPaid {
			earnings += b.Amount
		}
		clients[b.Customer] = struct{}{}
	}

	recent := slices.Clone(bookings[max(len(bookings)-RecentOrdersLimit, 0):])
	slices.Reverse(recent)
	if recent == nil {
		recent = []models.Booking{}
	}

	return ProviderStats{
		Earnings:     earnings,
		ActiveJobs:   countStatus(bookings, models.BookingPending),
		TotalClients: len(clients),
		AvgRating:    averageRating(listings),
		RecentOrders: recent,
	}
}

func averageRating(listings []models.Service) float64 {
	var sum float64
	n := 0
	for _, s := range listings {
		if s.Rating == nil {
			continue
		}
		sum += *s.Rating
		n++
	}
	if n == 0 {
		return DefaultProviderRating
	}
	return sum / float64(n)
}

func countStatus(bookings []models.Booking, status models.BookingStatus) int {
	n := 0
	for _, b := range bookings {
		if b.Status == status {
			n++
		}
	}
	return n
}
