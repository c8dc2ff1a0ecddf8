package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tablescan/qrmenu/internal/infrastructure/auth"
	"github.com/tablescan/qrmenu/internal/shared/constants"
	apperrors "github.com/tablescan/qrmenu/internal/shared/errors"
	"github.com/tablescan/qrmenu/internal/shared/logger"
	"github.com/tablescan/qrmenu/internal/shared/utils"
)

// SessionVerifier validates a partner session token.
type SessionVerifier interface {
	Verify(token string) (*auth.PartnerClaims, error)
}

// PartnerSessionMiddleware authenticates partners signed in to the dashboard.
// The token comes from the session cookie or an Authorization bearer header.
type PartnerSessionMiddleware struct {
	verifier   SessionVerifier
	cookieName string
	logger     logger.Interface
}

func NewPartnerSessionMiddleware(verifier SessionVerifier, cookieName string, logger logger.Interface) *PartnerSessionMiddleware {
	return &PartnerSessionMiddleware{
		verifier:   verifier,
		cookieName: cookieName,
		logger:     logger,
	}
}

// RequireSession rejects requests without a valid session. When the route
// has a :partner_id parameter it must name the signed-in partner.
func (m *PartnerSessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.token(c)
		if token == "" {
			m.reject(c, apperrors.NewSessionMissingError())
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				m.reject(c, apperrors.NewTokenExpiredError())
				return
			}
			m.reject(c, apperrors.NewTokenInvalidError())
			return
		}

		if routePartner := c.Param("partner_id"); routePartner != "" && routePartner != claims.PartnerID {
			m.reject(c, apperrors.NewPartnerMismatchError())
			return
		}

		c.Set(constants.ContextKeyPartnerID, claims.PartnerID)
		c.Next()
	}
}

// OptionalSession identifies the partner when a valid session is present and
// lets every request through. Storefront routes use it to recognise a
// partner previewing their own menu.
func (m *PartnerSessionMiddleware) OptionalSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := m.token(c); token != "" {
			if claims, err := m.verifier.Verify(token); err == nil {
				c.Set(constants.ContextKeyPartnerID, claims.PartnerID)
			}
		}
		c.Next()
	}
}

func (m *PartnerSessionMiddleware) token(c *gin.Context) string {
	if m.cookieName != "" {
		if token := utils.GetTokenFromCookie(c, m.cookieName); token != "" {
			return token
		}
	}
	return utils.GetBearerToken(c)
}

func (m *PartnerSessionMiddleware) reject(c *gin.Context, err *apperrors.AuthError) {
	if err.ShouldLog {
		m.logger.Warnw("partner session rejected",
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
			"reason", string(err.Type),
			"security_event", err.SecurityEvent,
		)
	}
	utils.ErrorResponseWithError(c, err)
	c.Abort()
}
