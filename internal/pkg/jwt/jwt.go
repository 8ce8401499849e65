package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/workaxis/hrms-backend-go/internal/pkg/clock"
)

const (
	ClaimUserID = "user_id"
	ClaimEmail  = "email"
	ClaimRole   = "role"
	ClaimType   = "type"

	TokenTypeAccess = "access"
)

var ErrMissingUserID = errors.New("user id is required")

// Claims identifies the caller recorded in audit columns.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

type Service interface {
	GenerateAccessToken(c Claims) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessExpiration time.Duration
	tokenAuth        *jwtauth.JWTAuth
	clock            clock.Clock
}

func NewJWTService(secretKey string, accessExpiration time.Duration, clk clock.Clock) *JWTService {
	return &JWTService{
		accessExpiration: accessExpiration,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil,
			jwt.WithAcceptableSkew(30*time.Second),
			jwt.WithClock(jwt.ClockFunc(clk.Now)),
		),
		clock: clk,
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(c Claims) (token string, expiresAt int64, err error) {
	if c.UserID == "" {
		return "", 0, ErrMissingUserID
	}
	now := j.clock.Now()
	expiresAt = now.Add(j.accessExpiration).Unix()

	claims := map[string]interface{}{
		ClaimUserID: c.UserID,
		ClaimType:   TokenTypeAccess,
		"iat":       now.Unix(),
		"exp":       expiresAt,
	}
	if c.Email != "" {
		claims[ClaimEmail] = c.Email
	}
	if c.Role != "" {
		claims[ClaimRole] = c.Role
	}

	_, token, err = j.tokenAuth.Encode(claims)
	return token, expiresAt, err
}
