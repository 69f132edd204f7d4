package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"taskflow/pkg/apierrors"
)

const (
	ctxUserIDKey    = "user_id"
	ctxUserEmailKey = "user_email"
	ctxTokenKey     = "access_token"
)

// SessionClaims is what the auth provider signs into its access tokens.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Bearer session token locally with the auth
// provider's signing secret and stores the caller's identity on the
// context. Requests without a valid session get a 401.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		claims := &SessionClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !parsed.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(ctxUserIDKey, claims.Subject)
		c.Set(ctxUserEmailKey, claims.Email)
		c.Set(ctxTokenKey, token)
		c.Next()
	}
}

func GetUserID(c *gin.Context) string {
	return c.GetString(ctxUserIDKey)
}

func GetUserEmail(c *gin.Context) string {
	return c.GetString(ctxUserEmailKey)
}

func GetAccessToken(c *gin.Context) string {
	return c.GetString(ctxTokenKey)
}

func bearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
