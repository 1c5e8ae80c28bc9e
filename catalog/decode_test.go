package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeServicesDefaultsAndSkips(t *testing.T) {
	body := []byte(`[
		{"id": "1", "name": "Electrician", "description": "Wiring", "price": 1500, "rating": 4.5, "image": "x.jpg", "provider": "Sparky"},
		{"_id": "65a1f0", "name": "Cleaning", "description": "Rooms", "price": 800},
		{"id": 42, "name": "Numeric id", "price": 10, "rating": null},
		{"id": "bad-price", "name": "Broken", "price": "cheap"},
		{"id": "neg", "name": "Negative", "price": -5},
		{"id": "no-price", "name": "Free?"},
		{"id": "no-name", "price": 100},
		{"id": "blank", "name": "   ", "price": 100},
		{"name": "No id", "price": 100},
		{"id": "rating", "name": "Too good", "price": 100, "rating": 7},
		{"id": "type", "name": 12, "price": 100},
		"not an object"
	]`)

	services, skipped, err := DecodeServices(body)

	require.NoError(t, err)
	assert.Equal(t, 9, skipped)
	require.Len(t, services, 3)

	assert.Equal(t, "1", services[0].ID)
	assert.Equal(t, 4.5, services[0].EffectiveRating())
	assert.Equal(t, "Sparky", services[0].Provider)

	assert.Equal(t, "65a1f0", services[1].ID)
	assert.Nil(t, services[1].Rating)
	assert.Equal(t, 5.0, services[1].EffectiveRating())
	assert.Equal(t, "", services[1].Image)

	assert.Equal(t, "42", services[2].ID)
	assert.Equal(t, "", services[2].Description)
	assert.Nil(t, services[2].Rating)
}

func TestDecodeServicesRejectsNonArray(t *testing.T) {
	_, _, err := DecodeServices([]byte(`{"message":"boom"}`))
	assert.Error(t, err)
}

func TestDecodeServicesEmpty(t *testing.T) {
	services, skipped, err := DecodeServices([]byte(`[]`))

	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	assert.NotNil(t, services)
	assert.Empty(t, services)
}
