package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// wireService mirrors the JSON objects served by /services. Every field is
// optional at this level so that one bad record cannot fail the batch.
type wireService struct {
	ID          json.RawMessage `json:"id"`
	MongoID     json.RawMessage `json:"_id"`
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Price       *float64        `json:"price"`
	Rating      *float64        `json:"rating"`
	Image       *string         `json:"image"`
	Provider    *string         `json:"provider"`
}

// DecodeServices parses a JSON array of services. Records that cannot be
// used (no id, empty name, missing, non-numeric or negative price, rating
// outside [0, 5], wrong field types) are skipped and counted. Only a body
// that is not a JSON array is an error.
func DecodeServices(data []byte) ([]models.Service, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("decode services: %w", err)
	}

	services := make([]models.Service, 0, len(raw))
	skipped := 0
	for _, item := range raw {
		s, ok := decodeOne(item)
		if !ok {
			skipped++
			continue
		}
		services = append(services, s)
	}
	return services, skipped, nil
}

func decodeOne(item json.RawMessage) (models.Service, bool) {
	var w wireService
	if err := json.Unmarshal(item, &w); err != nil {
		return models.Service{}, false
	}

	id := decodeID(w.ID)
	if id == "" {
		id = decodeID(w.MongoID)
	}
	if id == "" || w.Name == nil || strings.TrimSpace(*w.Name) == "" {
		return models.Service{}, false
	}
	if w.Price == nil || *w.Price < 0 {
		return models.Service{}, false
	}
	if w.Rating != nil && (*w.Rating < 0 || *w.Rating > 5) {
		return models.Service{}, false
	}

	return models.Service{
		ID:          id,
		Name:        *w.Name,
		Description: deref(w.Description),
		Price:       *w.Price,
		Rating:      w.Rating,
		Image:       deref(w.Image),
		Provider:    deref(w.Provider),
	}, true
}

// decodeID accepts string and numeric ids.
func decodeID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
