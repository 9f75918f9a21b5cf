package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserDisabled       = errors.New("usuário desativado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrInvalidToken       = errors.New("token inválido")

	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidFormat       = errors.New("formato de dados inválido")
)

// AuthError anexa ao erro base o usuário envolvido, quando já identificado
type AuthError struct {
	Err     error
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Details)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError cobre senha errada e e-mail desconhecido, que recebem a mesma resposta.
// Usuário desativado fica de fora.
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUserNotFound)
}

// UserIDFrom devolve o usuário identificado antes da falha
func UserIDFrom(err error) (int, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.UserID > 0 {
		return authErr.UserID, true
	}
	return 0, false
}

func NewAuthError(baseErr error, details string) *AuthError {
	return &AuthError{Err: baseErr, Details: details}
}

func NewUserAuthError(baseErr error, userID int, details string) *AuthError {
	return &AuthError{Err: baseErr, UserID: userID, Details: details}
}
