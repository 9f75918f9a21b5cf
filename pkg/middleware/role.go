package middleware

import (
	"net/http"
	"slices"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// RoleMiddleware restringe a rota aos perfis informados
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok || userClaims == nil {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("role: acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, userClaims.UserRoleID) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":    r.URL.Path,
					"user_id": userClaims.UserID,
					"role_id": userClaims.UserRoleID,
				}).Warn("role: acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SuperAdminOnly permite acesso apenas ao super administrador da plataforma
func SuperAdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleSuperAdmin})
}

// AdminOrAbove permite acesso a administradores do tenant e ao super administrador
func AdminOrAbove() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleSuperAdmin, domain.RoleAdmin})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleUser})
}
