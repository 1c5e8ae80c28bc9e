package bookings

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

func TestLedgerQueries(t *testing.T) {
	l := NewLedger(SeedBookings())

	assert.Equal(t, 4, l.Len())

	john := l.ForCustomer("John Doe")
	require.Len(t, john, 2)
	assert.Equal(t, 101, john[0].ID)
	assert.Equal(t, 102, john[1].ID)

	sparky := l.ForProvider("Sparky Solutions")
	require.Len(t, sparky, 2)
	assert.Equal(t, 104, sparky[1].ID)

	assert.Empty(t, l.ForCustomer("Nobody"))
	assert.NotNil(t, l.ForCustomer("Nobody"))
}

func TestLedgerCopiesAreIsolated(t *testing.T) {
	seed := SeedBookings()
	l := NewLedger(seed)
	seed[0].Customer = "changed"

	all := l.All()
	all[1].Customer = "changed"

	assert.Equal(t, "John Doe", l.All()[0].Customer)
	assert.Equal(t, "John Doe", l.All()[1].Customer)
}

func TestLedgerAddAssignsIDs(t *testing.T) {
	l := NewLedger(SeedBookings())

	b := l.Add(models.Booking{Customer: "Bob", Provider: "Sparky Solutions", Amount: 100})
	assert.Equal(t, 105, b.ID)

	explicit := l.Add(models.Booking{ID: 500, Customer: "Bob"})
	assert.Equal(t, 500, explicit.ID)

	assert.Equal(t, 501, l.Add(models.Booking{Customer: "Bob"}).ID)
	assert.Equal(t, 1, NewLedger(nil).Add(models.Booking{}).ID)
}

func TestLedgerConcurrentAdds(t *testing.T) {
	l := NewLedger(nil)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.Add(models.Booking{Customer: "c"})
		}()
		go func() {
			defer wg.Done()
			_ = l.ForCustomer("c")
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, l.Len())
	seen := map[int]bool{}
	for _, b := range l.All() {
		assert.False(t, seen[b.ID], "duplicate id %d", b.ID)
		seen[b.ID] = true
	}
}
