package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventboard/internal/domain"
)

// jwtClaims is the claim set shared with the external identity provider. The
// subject is the opaque token identifier; the remaining claims let first
// sign-in create the account without a second round-trip.
type jwtClaims struct {
	jwt.RegisteredClaims
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	ImageURL *string `json:"image_url,omitempty"`
	HasPro   bool    `json:"has_pro"`
}

type jwtCodec struct {
	secret []byte
}

// NewJWTIssuer returns a TokenIssuer that signs identity JWTs with HS256.
func NewJWTIssuer(secret string) domain.TokenIssuer {
	return &jwtCodec{secret: []byte(secret)}
}

// NewJWTVerifier returns a TokenVerifier for HS256 identity JWTs signed with
// the same shared secret as the issuer.
func NewJWTVerifier(secret string) domain.TokenVerifier {
	return &jwtCodec{secret: []byte(secret)}
}

func (c *jwtCodec) Issue(identity domain.Identity, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.TokenIdentifier,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Name:     identity.Name,
		Email:    identity.Email,
		ImageURL: identity.ImageURL,
		HasPro:   identity.HasPro,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (c *jwtCodec) Verify(tokenString string) (*domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return &domain.Identity{
		TokenIdentifier: claims.Subject,
		Name:            claims.Name,
		Email:           claims.Email,
		ImageURL:        claims.ImageURL,
		HasPro:          claims.HasPro,
	}, nil
}
