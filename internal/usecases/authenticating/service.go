package authenticating

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenDuration = 24 * time.Hour

type Authenticator interface {
	LoginUser(ctx context.Context, email, password string) (string, error)
	GetUserProfile(ctx context.Context, userID int) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		now:      time.Now,
	}
}

// WithClock substitui o relógio usado na emissão e na validação do token
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)
	if !govalidator.IsEmail(email) {
		return "", NewAuthError(ErrInvalidFormat, "Email inválido")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"email": email,
			"error": err.Error(),
		}).Error("Erro ao consultar usuário no banco de dados")
		return "", domain.Upstream("consulta de usuário", err)
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar token de autenticação: %w", err)
	}

	return token, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.Upstream("consulta de usuário", err)
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, userID, "Usuário não encontrado")
	}
	return user, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, NewAuthError(ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.TenantID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	duration := s.cfg.Auth.TokenDuration
	if duration <= 0 {
		duration = defaultTokenDuration
	}

	now := s.now()
	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		TenantID:   user.TenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

// ResolveTenant decide o tenant da requisição. Somente SUPER_ADMIN pode informar outro tenant,
// que precisa ser um UUID; os demais perfis sempre usam o tenant do token.
func ResolveTenant(claims *domain.Claims, override string) (string, error) {
	if claims == nil || claims.TenantID == "" {
		return "", ErrInvalidToken
	}

	override = strings.TrimSpace(override)
	if override == "" || override == claims.TenantID {
		return claims.TenantID, nil
	}

	if !claims.IsSuperAdmin() {
		return "", domain.ErrForbiddenTenantOverride
	}

	if !govalidator.IsUUID(override) {
		return "", domain.ErrInvalidTenant
	}

	return override, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
