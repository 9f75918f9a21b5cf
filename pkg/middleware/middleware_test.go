package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/mocks"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"github.com/vfg2006/marketing-dashboard-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

// okHandler responde 200 e guarda as claims recebidas
func okHandler(received **domain.Claims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if received != nil {
			*received, _ = r.Context().Value(ContextKeyUser).(*domain.Claims)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserID: 1, TenantID: "t1", UserRoleID: domain.RoleUser}

	tests := []struct {
		name     string
		path     string
		header   string
		setup    func(auth *mocks.MockAuthenticator)
		status   int
		hasClaim bool
	}{
		{
			name:   "Rota pública dispensa token",
			path:   "/healthcheck",
			setup:  func(auth *mocks.MockAuthenticator) {},
			status: http.StatusOK,
		},
		{
			name:   "Métricas dispensam token",
			path:   "/metrics",
			setup:  func(auth *mocks.MockAuthenticator) {},
			status: http.StatusOK,
		},
		{
			name:   "Sem cabeçalho Authorization",
			path:   "/v1/dashboard/overview",
			setup:  func(auth *mocks.MockAuthenticator) {},
			status: http.StatusUnauthorized,
		},
		{
			name:   "Cabeçalho sem Bearer",
			path:   "/v1/dashboard/overview",
			header: "Basic abc",
			setup:  func(auth *mocks.MockAuthenticator) {},
			status: http.StatusUnauthorized,
		},
		{
			name:   "Token inválido",
			path:   "/v1/dashboard/overview",
			header: "Bearer ruim",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("ruim").Return(nil, authenticating.ErrInvalidToken)
			},
			status: http.StatusUnauthorized,
		},
		{
			name:   "Token válido - claims no contexto",
			path:   "/v1/dashboard/overview",
			header: "Bearer bom",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("bom").Return(claims, nil)
			},
			status:   http.StatusOK,
			hasClaim: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			var received *domain.Claims
			handler := AuthMiddleware(auth)(okHandler(&received))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.hasClaim {
				assert.Equal(t, claims, received)
			} else {
				assert.Nil(t, received)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		claims     *domain.Claims
		status     int
	}{
		{name: "Sem claims", middleware: AllRoles(), claims: nil, status: http.StatusUnauthorized},
		{name: "Usuário comum em rota aberta", middleware: AllRoles(), claims: &domain.Claims{UserRoleID: domain.RoleUser}, status: http.StatusOK},
		{name: "Usuário comum em rota de admin", middleware: AdminOrAbove(), claims: &domain.Claims{UserRoleID: domain.RoleUser}, status: http.StatusForbidden},
		{name: "Admin em rota de admin", middleware: AdminOrAbove(), claims: &domain.Claims{UserRoleID: domain.RoleAdmin}, status: http.StatusOK},
		{name: "Admin em rota de super admin", middleware: SuperAdminOnly(), claims: &domain.Claims{UserRoleID: domain.RoleAdmin}, status: http.StatusForbidden},
		{name: "Super admin em rota de super admin", middleware: SuperAdminOnly(), claims: &domain.Claims{UserRoleID: domain.RoleSuperAdmin}, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/reports/periods", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler(nil)).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler(nil))

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/seo/summary", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/seo/summary", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight não chega ao handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/seo/summary", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestMetrics(t *testing.T) {
	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/v1/campaigns/:id", "404")
	before := counterValue(t, counter)

	handler := Metrics(http.MethodGet, "/v1/campaigns/:id")(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/campaigns/abc", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, before+1, counterValue(t, counter))
}

func counterValue(t *testing.T, counter interface{ Write(*dto.Metric) error }) float64 {
	var m dto.Metric
	require.NoError(t, counter.Write(&m))
	return m.GetCounter().GetValue()
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Propaga id recebido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/overview", nil)
		req.Header.Set(CorrelationIDHeader, "0b7c9a9e-3c55-4a5f-9b55-8c7c1f5e2a10")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "0b7c9a9e-3c55-4a5f-9b55-8c7c1f5e2a10", seen)
		assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))
	})

	t.Run("Gera id quando ausente", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/overview", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
	rec := httptest.NewRecorder()

	require.NotPanics(t, func() { handler.ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
