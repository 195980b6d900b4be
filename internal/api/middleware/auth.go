package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/agi040922/HR-Management-sub000/pkg/jwt"
	"github.com/agi040922/HR-Management-sub000/pkg/redis"
	"github.com/agi040922/HR-Management-sub000/pkg/response"
)

// JWTAuth JWT 인증 미들웨어
// Authorization: Bearer <token> 헤더에서 토큰을 추출해 검증한다.
// rdb가 nil이면 블랙리스트 검사를 생략하고 통과시킨다(저하 운용).
func JWTAuth(verifier *jwt.Verifier, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "인증 헤더가 없습니다")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "인증 헤더 형식이 올바르지 않습니다")
			c.Abort()
			return
		}

		claims, err := verifier.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "토큰이 유효하지 않거나 만료되었습니다")
			c.Abort()
			return
		}

		// 로그아웃 등으로 블랙리스트에 오른 토큰 차단
		if rdb != nil && claims.ID != "" {
			blocked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blocked {
				response.Unauthorized(c, 10002, "이미 무효화된 토큰입니다")
				c.Abort()
				return
			}
		}

		// 사용자 정보를 컨텍스트에 주입
		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RoleAuth 역할 권한 미들웨어
// 현재 사용자가 지정된 역할 중 하나를 갖는지 검사한다.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "인증되지 않았습니다")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "접근 권한이 없습니다")
		c.Abort()
	}
}
