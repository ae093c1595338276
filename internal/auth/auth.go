package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-scheduler/internal/apperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
)

const (
	RoleClient = "client"
	RoleStaff  = "staff"
)

// Service valida as credenciais fixas de demonstração e emite o token de
// sessão. Os segredos ficam apenas como hash bcrypt em memória.
type Service struct {
	jwtSecret []byte
	hashes    map[string][]byte
}

func New(cfg *config.Config) (*Service, error) {
	clientHash, err := bcrypt.GenerateFromPassword([]byte(cfg.ClientSecret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to hash client secret: %w", err)
	}
	staffHash, err := bcrypt.GenerateFromPassword([]byte(cfg.StaffSecret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to hash staff secret: %w", err)
	}

	return &Service{
		jwtSecret: []byte(cfg.JWTSecret),
		hashes: map[string][]byte{
			RoleClient: clientHash,
			RoleStaff:  staffHash,
		},
	}, nil
}

// Authenticate checks the role/secret pair and returns a signed session
// token carrying the role. Unknown roles and wrong secrets fail alike.
func (s *Service) Authenticate(role, secret string) (string, error) {
	hash, ok := s.hashes[role]
	if !ok {
		return "", apperr.ErrBusiness(apperr.CodeInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(secret)); err != nil {
		return "", apperr.ErrBusiness(apperr.CodeInvalidCredentials)
	}
	return s.generateToken(role)
}

func (s *Service) generateToken(role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(12 * time.Hour).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

// VerifyRole parses the session token and checks that it carries the
// expected role claim.
func (s *Service) VerifyRole(tokenString, role string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return apperr.ErrBusiness(apperr.CodeInvalidCredentials)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return apperr.ErrBusiness(apperr.CodeInvalidCredentials)
	}
	if got, _ := claims["role"].(string); got != role {
		return apperr.ErrBusiness(apperr.CodeInvalidCredentials)
	}
	return nil
}
