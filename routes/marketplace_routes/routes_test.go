package marketplace_routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/bookings"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/catalog"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/controllers/auth_controller"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/controllers/dashboard_controller"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/controllers/service_controller"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memStore struct{ services []models.Service }

func (m *memStore) ListServices(ctx context.Context) ([]models.Service, error) {
	return append([]models.Service(nil), m.services...), nil
}

func (m *memStore) FindByID(ctx context.Context, id string) (*models.Service, error) {
	for _, s := range m.services {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (m *memStore) Create(ctx context.Context, s *models.Service) error {
	s.ID = fmt.Sprintf("svc-%d", len(m.services)+1)
	m.services = append(m.services, *s)
	return nil
}

func (m *memStore) Count(ctx context.Context) (int64, error) { return int64(len(m.services)), nil }

type memUsers map[string]*models.User

func (m memUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := m[email]; ok {
		return u, nil
	}
	return nil, services.ErrUserNotFound
}

func (m memUsers) Create(ctx context.Context, u *models.User) error {
	m[u.Email] = u
	return nil
}

type memRecorder struct{ entries []*models.ActivityLog }

func (r *memRecorder) Record(ctx context.Context, e *models.ActivityLog) error {
	r.entries = append(r.entries, e)
	return nil
}

type envelope struct {
	Data json.RawMessage    `json:"data"`
	Meta *models.Pagination `json:"meta"`
}

func newServer(t *testing.T) (*gin.Engine, *memRecorder) {
	t.Helper()
	sessions, err := services.NewSessionService("routes-secret", time.Hour)
	require.NoError(t, err)

	store := &memStore{}
	cached := catalog.NewCachedSource(catalog.WithDemoFallback(store), nil, time.Minute)
	service_controller.Init(service_controller.Deps{Catalog: cached, Store: store, Cache: cached})
	auth_controller.Init(auth_controller.Deps{Accounts: services.NewAuthService(memUsers{}), Sessions: sessions})
	dashboard_controller.Init(dashboard_controller.Deps{Catalog: cached, Store: store, Ledger: bookings.NewLedger(bookings.SeedBookings())})

	rec := &memRecorder{}
	guards := Guards{Sessions: sessions, Activity: rec}

	r := gin.New()
	api := r.Group("/api/v1")
	SetupServiceRoutes(api, guards)
	SetupAuthRoutes(api, guards)
	SetupDashboardRoutes(api, guards)
	return r, rec
}

func request(r *gin.Engine, method, target, token, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func login(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w, env := request(r, http.MethodPost, "/api/v1/auth/login", "", fmt.Sprintf(`{"email":%q,"password":"password123"}`, email))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	return resp.Token
}

func TestProviderListsServiceThenItIsDiscoverable(t *testing.T) {
	r, rec := newServer(t)

	_, env := request(r, http.MethodGet, "/api/v1/services", "", "")
	require.NotNil(t, env.Meta)
	assert.Equal(t, 3, env.Meta.Total, "empty store shows the demo catalog")

	token := login(t, r, "provider@gmail.com")
	w, _ := request(r, http.MethodPost, "/api/v1/services", token, `{"name":"Pipe Fixing","description":"Leak repair","price":700,"image":"https://example.com/pipe.jpg"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	require.Len(t, rec.entries, 1)
	assert.Equal(t, models.ActionCreateService, rec.entries[0].Action)
	assert.Equal(t, "svc-1", rec.entries[0].ResourceID)

	_, env = request(r, http.MethodGet, "/api/v1/services?q=leak", "", "")
	var found []models.Service
	require.NoError(t, json.Unmarshal(env.Data, &found))
	require.Len(t, found, 1)
	assert.Equal(t, "Sparky Solutions", found[0].Provider)

	w, env = request(r, http.MethodGet, "/api/v1/dashboard/services", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var views []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &views))
	assert.Len(t, views, 1)
}

func TestRoleGuardsOnRoutes(t *testing.T) {
	r, rec := newServer(t)
	user := login(t, r, "user@gmail.com")

	w, _ := request(r, http.MethodPost, "/api/v1/services", user, `{"name":"x","description":"y","price":1,"image":"https://example.com/x.jpg"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, rec.entries)

	w, _ = request(r, http.MethodGet, "/api/v1/provider/stats", user, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = request(r, http.MethodGet, "/api/v1/user/stats", user, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = request(r, http.MethodGet, "/api/v1/dashboard/activity", user, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = request(r, http.MethodGet, "/api/v1/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserBooksDemoService(t *testing.T) {
	r, _ := newServer(t)
	user := login(t, r, "user@gmail.com")

	w, _ := request(r, http.MethodPost, "/api/v1/bookings", user, `{"serviceId":"3","date":"2024-05-01"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	provider := login(t, r, "provider@gmail.com")
	w, _ = request(r, http.MethodGet, "/api/v1/provider/stats", provider, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
