package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/agi040922/HR-Management-sub000/pkg/response"
)

// MustGetUserID gin.Context에서 user_id를 안전하게 추출한다.
// JWT 미들웨어가 user_id를 주입하지 않았다면 401 응답을 쓰고 false를 반환한다.
// 호출 측은 ok=false일 때 즉시 return 해야 한다.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	return s, true
}

// MustGetRole gin.Context에서 role을 안전하게 추출한다.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "인증되지 않았습니다")
		return "", false
	}
	return s, true
}
