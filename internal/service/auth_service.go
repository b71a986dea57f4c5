package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Abdelrhman012/parking-reservations-system/internal/domain"
	"github.com/Abdelrhman012/parking-reservations-system/internal/dto"
	"github.com/Abdelrhman012/parking-reservations-system/internal/store"
)

// accessClaims is the JWT payload for operator tokens
type accessClaims struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// authService implements the AuthService interface
type authService struct {
	store  *store.Store
	secret []byte
	ttl    time.Duration
	issuer string
	nowFn  func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(st *store.Store, secret string, ttl time.Duration, issuer string) AuthService {
	return &authService{
		store:  st,
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		nowFn:  time.Now,
	}
}

// Login verifies credentials and issues an access token
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var user *domain.User
	err := s.store.View(func(tx *store.Tx) error {
		u := tx.UserByUsername(req.Username)
		if u == nil || u.Password != req.Password {
			return domain.Unauthorized("Invalid credentials")
		}
		copied := *u
		user = &copied
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := s.nowFn().UTC()
	claims := accessClaims{
		Username: user.Username,
		Name:     user.Name,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		User: dto.UserPayload{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.Name,
			Role:     string(user.Role),
		},
		Token: token,
	}, nil
}

// VerifyToken parses an access token and returns the user it names
func (s *authService) VerifyToken(ctx context.Context, token string) (*dto.UserPayload, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.Unauthorized("Invalid token")
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithTimeFunc(func() time.Time { return s.nowFn().UTC() }))
	if err != nil || !parsed.Valid {
		return nil, domain.Unauthorized("Invalid token")
	}

	return &dto.UserPayload{
		ID:       claims.Subject,
		Username: claims.Username,
		Name:     claims.Name,
		Role:     claims.Role,
	}, nil
}
