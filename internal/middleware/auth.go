package middleware

import (
	"strings"

	"unicourse_backend/internal/config"
	"unicourse_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware 管理接口鉴权，要求携带 admin 角色的JWT
func AdminAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if claims.Role != util.RoleAdmin {
			util.Forbidden(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
