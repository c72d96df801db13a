package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// 上下文中存放调用者身份的键
const IdentityKey = "x-user-id"

// Middleware 校验 Bearer 令牌并提取调用者身份
// 令牌由外部身份服务签发，这里只验签并信任 sub 声明，不做额外核实
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "缺少认证头"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "认证头格式必须为 Bearer {token}"})
			return
		}

		userID, err := ExtractIDFromToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "无效的身份令牌"})
			return
		}

		c.Set(IdentityKey, userID)
		c.Next()
	}
}

// ExtractIDFromToken 验签并取出 sub 声明
func ExtractIDFromToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("token missing subject")
	}

	return sub, nil
}

// CallerID 从请求上下文取出已认证的调用者身份
func CallerID(c *gin.Context) string {
	return c.GetString(IdentityKey)
}
