package authorization

import (
	"net/http"
	"strings"

	"ClinicDesk/config/jwt"
	"ClinicDesk/role"
	"ClinicDesk/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Context keys set by JWTAuth.
const (
	ContextID       = "id"
	ContextUsername = "username"
	ContextRole     = "role"
)

/*
* Read the bearer token from the Authorization header
* Validate it and put id, username and role on the context
 */
func JWTAuth(issuer *jwt.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(util.MISSING_AUTHORIZATION))
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))

		claims, err := issuer.ValidateJWT(tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("Error from ValidateJWT")
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(util.INVALID_TOKEN))
			return
		}
		c.Set(ContextID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// Authorize lets the request through only for the given roles. Must run after JWTAuth.
func Authorize(allowed ...role.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(ContextRole)
		r, _ := val.(role.Role)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, util.FailedResponse(util.INVALID_TOKEN))
			return
		}
		for _, a := range allowed {
			if r == a {
				c.Next()
				return
			}
		}
		log.Info().Str("role", string(r)).Str("path", c.FullPath()).Msg("This user does not have access")
		c.AbortWithStatusJSON(http.StatusForbidden, util.FailedResponse(util.ACCESS_DENIED))
	}
}
