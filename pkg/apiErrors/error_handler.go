package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrForbiddenTenant       = "AUTH_011" // Consulta a outro tenant sem permissão

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidPeriod       = "VAL_004" // Período desconhecido
	ErrInvalidDateRange    = "VAL_005" // Intervalo de datas inválido
	ErrInvalidTenant       = "VAL_006" // tenantId fora do formato UUID

	// Recursos inexistentes
	ErrNotFound         = "NF_001" // Registro não encontrado
	ErrFeatureDisabled  = "NF_002" // Recurso desligado por configuração
	ErrMethodNotAllowed = "NF_003" // Rota existe com outro método

	// Conflitos
	ErrSyncRunning = "CFL_001" // Sincronização já em andamento

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrForbiddenTenant:       http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidPeriod:         http.StatusBadRequest,
	ErrInvalidDateRange:      http.StatusBadRequest,
	ErrInvalidTenant:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrFeatureDisabled:       http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrSyncRunning:           http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP do código, 500 para códigos desconhecidos
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromDomainError classifica os erros de domínio em código e mensagem pública.
// Falhas de dependência nunca expõem a causa original.
func FromDomainError(err error) APIError {
	switch {
	case err == nil:
		return APIError{Code: ErrInternalServer, Message: "Erro desconhecido"}
	case errors.Is(err, domain.ErrInvalidPeriod):
		return APIError{Code: ErrInvalidPeriod, Message: "Período inválido. Valores aceitos: 7d, 30d, this_month, last_month"}
	case errors.Is(err, domain.ErrInvalidDateRange):
		return APIError{Code: ErrInvalidDateRange, Message: "Intervalo inválido. Informe startDate e endDate no formato YYYY-MM-DD"}
	case errors.Is(err, domain.ErrInvalidTenant):
		return APIError{Code: ErrInvalidTenant, Message: "tenantId inválido"}
	case errors.Is(err, domain.ErrForbiddenTenantOverride):
		return APIError{Code: ErrForbiddenTenant, Message: "Você não tem permissão para consultar outro tenant"}
	case errors.Is(err, domain.ErrFeatureDisabled):
		return APIError{Code: ErrFeatureDisabled, Message: "Recurso não habilitado"}
	case errors.Is(err, domain.ErrNotFound):
		return APIError{Code: ErrNotFound, Message: err.Error()}
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return APIError{Code: ErrDatabaseOperation, Message: "Não foi possível consultar os dados no momento"}
	}

	return APIError{Code: ErrInternalServer, Message: "Erro interno do servidor"}
}

// WriteDomainError escreve a resposta correspondente a um erro de domínio
func WriteDomainError(w http.ResponseWriter, err error) {
	apiErr := FromDomainError(err)
	WriteError(w, apiErr.Code, apiErr.Message, nil)
}
