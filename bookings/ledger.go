// Package bookings keeps the process-local booking ledger that backs the
// customer and provider dashboards.
package bookings

import (
	"slices"
	"sync"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// Ledger is an in-memory list of bookings, safe for concurrent use.
type Ledger struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

// NewLedger returns a ledger holding a copy of seed.
func NewLedger(seed []models.Booking) *Ledger {
	return &Ledger{bookings: slices.Clone(seed)}
}

// SeedBookings is the ledger content at process start.
func SeedBookings() []models.Booking {
	return []models.Booking{
		{ID: 101, Customer: "John Doe", Provider: "Sparky Solutions", Service: "Electrician", Date: "2023-10-25", Amount: 1500, Status: models.BookingCompleted, PaymentStatus: models.PaymentPaid},
		{ID: 102, Customer: "John Doe", Provider: "Clean & Clear", Service: "Home Cleaner", Date: "2023-11-02", Amount: 800, Status: models.BookingPending, PaymentStatus: models.PaymentUnpaid},
		{ID: 103, Customer: "Alice Smith", Provider: "Cool Air Pros", Service: "AC Technician", Date: "2023-12-10", Amount: 2000, Status: models.BookingCompleted, PaymentStatus: models.PaymentPaid},
		{ID: 104, Customer: "Alice Smith", Provider: "Sparky Solutions", Service: "Electrician", Date: "2023-12-12", Amount: 1500, Status: models.BookingCancelled, PaymentStatus: models.PaymentRefunded},
	}
}

// All returns a copy of every booking in insertion order.
func (l *Ledger) All() []models.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.bookings)
}

// Len returns the number of bookings.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings)
}

// ForCustomer returns the customer's bookings in insertion order.
func (l *Ledger) ForCustomer(customer string) []models.Booking {
	return l.where(func(b models.Booking) bool { return b.Customer == customer })
}

// ForProvider returns the provider's bookings in insertion order.
func (l *Ledger) ForProvider(provider string) []models.Booking {
	return l.where(func(b models.Booking) bool { return b.Provider == provider })
}

// Add appends a booking, assigning the next id when b.ID is zero.
func (l *Ledger) Add(b models.Booking) models.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	if b.ID == 0 {
		next := 1
		for _, existing := range l.bookings {
			next = max(next, existing.ID+1)
		}
		b.ID = next
	}
	l.bookings = append(l.bookings, b)
	return b
}

func (l *Ledger) where(keep func(models.Booking) bool) []models.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Booking, 0)
	for _, b := range l.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
