// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"empuvilla_backend/internals/configs"
	"empuvilla_backend/internals/constants"
)

// ErrInvalidCredentials: usuario o contraseña incorrectos.
var ErrInvalidCredentials = errors.New("credenciales incorrectas")

// Authenticator mapea un par (usuario, contraseña) a exactamente un rol.
// El gate de roles depende solo de esta interfaz: la tabla estática de
// credenciales es un placeholder reemplazable por un proveedor real.
type Authenticator interface {
	Authenticate(username, password string) (string, error)
}

type credential struct {
	username     string
	passwordHash []byte
	role         string
}

// StaticAuthenticator: tabla fija de credenciales compartidas (comportamiento
// de referencia). Las contraseñas se guardan hasheadas en memoria y la
// comparación la hace bcrypt.
type StaticAuthenticator struct {
	creds []credential
}

// NewStaticAuthenticatorFromEnv arma la tabla desde ENV, con los valores de
// referencia como default.
func NewStaticAuthenticatorFromEnv() *StaticAuthenticator {
	entries := []struct {
		userKey, passKey, defUser, defPass, role string
	}{
		{"AUTH_OPERATOR_USER", "AUTH_OPERATOR_PASS", "operario", "empuvilla2025", constants.RoleOperator},
		{"AUTH_MANAGER_USER", "AUTH_MANAGER_PASS", "gerente", "admin2025", constants.RoleManager},
		{"AUTH_ADMIN_USER", "AUTH_ADMIN_PASS", "admin", "master2025", constants.RoleAdmin},
	}

	a := &StaticAuthenticator{}
	for _, e := range entries {
		user := configs.GetEnv(e.userKey, e.defUser)
		pass := configs.GetEnv(e.passKey, e.defPass)
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("❌ Error hasheando credencial %s: %v", user, err)
		}
		a.creds = append(a.creds, credential{
			username:     user,
			passwordHash: hash,
			role:         e.role,
		})
	}
	return a
}

func (a *StaticAuthenticator) Authenticate(username, password string) (string, error) {
	for _, c := range a.creds {
		if c.username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)); err != nil {
			return "", ErrInvalidCredentials
		}
		return c.role, nil
	}
	return "", ErrInvalidCredentials
}

// IssueToken firma un access token HS256 con el rol como claim.
func IssueToken(secret, username, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      username,
		"username": username,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
		"jti":      uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
