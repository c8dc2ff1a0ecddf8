// Package auth verifies partner dashboard sessions presented to this service.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tablescan/qrmenu/internal/shared/biztime"
)

const TokenTypeAccess = "access"

var (
	ErrTokenExpired = errors.New("session token expired")
	ErrTokenInvalid = errors.New("session token invalid")
)

// PartnerClaims is the payload of a partner session token.
type PartnerClaims struct {
	PartnerID string `json:"partner_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// PartnerSessionVerifier checks HS256 tokens issued by the partner
// dashboard. Issuing belongs to the dashboard; Sign exists for tooling and
// tests that need a valid session.
type PartnerSessionVerifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewPartnerSessionVerifier(secret, issuer string) *PartnerSessionVerifier {
	return &PartnerSessionVerifier{
		secret: []byte(secret),
		issuer: issuer,
		now:    biztime.NowUTC,
	}
}

// Verify parses tokenString and returns its claims. Expired tokens yield
// ErrTokenExpired; anything else wrong yields ErrTokenInvalid.
func (v *PartnerSessionVerifier) Verify(tokenString string) (*PartnerClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &PartnerClaims{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*PartnerClaims)
	if !ok || !token.Valid || claims.PartnerID == "" || claims.TokenType != TokenTypeAccess {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Sign issues an access token for partnerID valid for ttl.
func (v *PartnerSessionVerifier) Sign(partnerID string, ttl time.Duration) (string, error) {
	now := v.now()
	claims := &PartnerClaims{
		PartnerID: partnerID,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.issuer,
			Subject:   partnerID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}
