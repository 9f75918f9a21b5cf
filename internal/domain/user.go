package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso
const (
	RoleSuperAdmin = 1
	RoleAdmin      = 2
	RoleUser       = 3
)

type User struct {
	ID           int       `json:"id"`
	TenantID     string    `json:"tenant_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID int
	TenantID   string
	jwt.RegisteredClaims
}

func (c *Claims) IsSuperAdmin() bool {
	return c != nil && c.UserRoleID == RoleSuperAdmin
}
