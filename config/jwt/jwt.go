package jwt

import (
	"errors"
	"fmt"
	"time"

	"ClinicDesk/role"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID   string    `json:"id"`
	Username string    `json:"username"`
	Role     role.Role `json:"role"`
	gojwt.RegisteredClaims
}

// Issuer signs and verifies session tokens with one HMAC key.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *Issuer) TTL() time.Duration { return i.ttl }

func (i *Issuer) GenerateJWT(id, username string, r role.Role) (string, error) {
	now := i.now()
	claims := &Claims{
		UserID:   id,
		Username: username,
		Role:     r,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

/*
* Parse and verify the token
* Expired, malformed and wrongly signed tokens all give ErrInvalidToken
 */
func (i *Issuer) ValidateJWT(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := gojwt.ParseWithClaims(tokenString, claims, func(token *gojwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, gojwt.WithTimeFunc(i.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
