package helpers

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated principal embedded in tokens and attached to
// requests by the auth middleware.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Claims carries the identity under a "user" claim. Tokens have no expiry;
// they stay valid until the signing secret rotates.
type Claims struct {
	User Identity `json:"user"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 tokens with a single process-wide
// secret injected at construction time.
type JWTManager struct {
	secret []byte
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: []byte(secret)}
}

// Sign issues a token embedding the given identity.
func (m *JWTManager) Sign(id Identity) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{User: id})
	return t.SignedString(m.secret)
}

// Verify checks the signature and returns the embedded identity.
func (m *JWTManager) Verify(tokenStr string) (*Identity, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return &claims.User, nil
}
