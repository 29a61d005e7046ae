package utils

import (
	"errors"
	"time"

	"github.com/Madhav-Gupta-28/bazar-backend-go/models"
	"github.com/golang-jwt/jwt"
)

const (
	SessionTokenTTL = 24 * time.Hour
	VerifyTokenTTL  = 15 * time.Minute
)

// ErrInvalidToken is returned for every verification failure. Callers never
// learn whether the signature, the expiry or the encoding was at fault.
var ErrInvalidToken = errors.New("invalid or expired token")

// SessionClaims is the payload of a sign-in token.
type SessionClaims struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Image   string `json:"image"`
	jwt.StandardClaims
}

// VerifyClaims is the payload of an email verification token.
type VerifyClaims struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	jwt.StandardClaims
}

// TokenSigner issues and checks both token classes. Each class has its own
// secret so a verification token is never accepted as a session token.
type TokenSigner struct {
	sessionSecret []byte
	verifySecret  []byte
	now           func() time.Time
}

func NewTokenSigner(sessionSecret, verifySecret string) *TokenSigner {
	return &TokenSigner{
		sessionSecret: []byte(sessionSecret),
		verifySecret:  []byte(verifySecret),
		now:           time.Now,
	}
}

// SignInToken returns a session token for user valid for one day.
func (s *TokenSigner) SignInToken(user *models.User) (string, error) {
	now := s.now()
	claims := &SessionClaims{
		ID:      user.ID.Hex(),
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		Phone:   user.Phone,
		Image:   user.Image,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(SessionTokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.sessionSecret)
}

// TokenForVerify returns a fifteen minute token signed with the verify secret.
func (s *TokenSigner) TokenForVerify(user *models.User) (string, error) {
	now := s.now()
	claims := &VerifyClaims{
		ID:       user.ID.Hex(),
		Name:     user.Name,
		Email:    user.Email,
		Password: user.Password,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(VerifyTokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.verifySecret)
}

func (s *TokenSigner) ParseSessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	if err := parse(tokenString, claims, s.sessionSecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *TokenSigner) ParseVerifyToken(tokenString string) (*VerifyClaims, error) {
	claims := &VerifyClaims{}
	if err := parse(tokenString, claims, s.verifySecret); err != nil {
		return nil, err
	}
	return claims, nil
}

func parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}
