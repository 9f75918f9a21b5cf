package domain

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação, rejeitados antes de qualquer consulta
	ErrInvalidPeriod    = errors.New("período inválido")
	ErrInvalidDateRange = errors.New("intervalo de datas inválido")
	ErrInvalidTenant    = errors.New("tenant inválido")

	ErrNotFound         = errors.New("registro não encontrado")
	ErrCampaignNotFound = fmt.Errorf("campanha não encontrada: %w", ErrNotFound)
	ErrTenantNotFound   = fmt.Errorf("tenant não encontrado: %w", ErrNotFound)
	ErrSnapshotNotFound = fmt.Errorf("snapshot mensal não encontrado: %w", ErrNotFound)

	// ErrUpstreamUnavailable indica falha no banco de dados ou em outra dependência
	ErrUpstreamUnavailable = errors.New("serviço indisponível")

	ErrForbiddenTenantOverride = errors.New("usuário sem permissão para consultar outro tenant")

	// ErrFeatureDisabled indica um recurso desligado por configuração
	ErrFeatureDisabled = errors.New("recurso desabilitado")
)

// Upstream marca o erro como falha de dependência, preservando a causa original
func Upstream(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, op, err)
}
