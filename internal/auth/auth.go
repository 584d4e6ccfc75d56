package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	jwtIssuer   = "sportbook-api"
	jwtAudience = "sportbook-clients"

	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour

	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidTokenType = errors.New("invalid token type")
	ErrEmptyJWTSecret   = errors.New("jwt secret cannot be empty")
)

// Actor is the authenticated caller as seen by the services.
type Actor struct {
	UserID  int
	IsAdmin bool
}

func NewActor(userID int, role string) Actor {
	return Actor{UserID: userID, IsAdmin: role == RoleAdmin}
}

// CanAccess reports whether the actor owns the resource or is an admin.
func (a Actor) CanAccess(ownerID int) bool {
	return a.IsAdmin || a.UserID == ownerID
}

type Claims struct {
	UserID    int    `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in" example:"900"`
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hashedPassword, plainPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword)) == nil
}

// TokenManager signs and verifies HS256 access and refresh tokens.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, ErrEmptyJWTSecret
	}
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  AccessTokenTTL,
		refreshTTL: RefreshTokenTTL,
		now:        time.Now,
	}, nil
}

func (m *TokenManager) sign(userID int, email, role, tokenType string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := &Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtIssuer,
			Audience:  []string{jwtAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *TokenManager) Issue(userID int, email, role string) (*TokenPair, error) {
	access, err := m.sign(userID, email, role, TokenTypeAccess, m.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := m.sign(userID, email, role, TokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(m.accessTTL.Seconds()),
	}, nil
}

// Parse verifies signature, issuer, audience and expiry, then checks that the
// token is of the wanted type.
func (m *TokenManager) Parse(tokenString, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return m.secret, nil
		},
		jwt.WithIssuer(jwtIssuer),
		jwt.WithAudience(jwtAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, ErrInvalidTokenType
	}
	return claims, nil
}

// Refresh exchanges a refresh token for a fresh pair.
func (m *TokenManager) Refresh(refreshToken string) (*TokenPair, *Claims, error) {
	claims, err := m.Parse(refreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, nil, err
	}
	pair, err := m.Issue(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return nil, nil, err
	}
	return pair, claims, nil
}
