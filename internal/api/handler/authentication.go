package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.ForContext(r.Context()).WithError(errors.Wrap(err, "decodificar login")).Warn("login: corpo inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, Response{Success: true, Data: LoginResponse{Token: token}})
	})
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims := claimsFromContext(r)
		if userClaims == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), userClaims.UserID)
		if err != nil {
			if errors.Is(err, authenticating.ErrUserNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
				return
			}
			writeFailure(w, r, "me", err)
			return
		}

		writeData(w, user, newMeta(userClaims.TenantID))
	})
}

// handleLoginError trata erros específicos de login. Usuário inexistente e senha errada
// recebem a mesma resposta.
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)
	if userID, ok := authenticating.UserIDFrom(err); ok {
		logger = logger.WithField("user_id", userID)
	}

	switch {
	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios", nil)

	case errors.Is(err, authenticating.ErrInvalidFormat):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Email inválido", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		logger.Warn("login: usuário desativado")
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)

	case authenticating.IsCredentialsError(err):
		logger.Warn("login: credenciais inválidas")
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	default:
		writeFailure(w, r, "login", err)
	}
}
