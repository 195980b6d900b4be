package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen 외부에서 전달된 Request-ID의 최대 길이. 로그 주입 방지.
const requestIDMaxLen = 64

// RequestID 요청 추적 ID 미들웨어
// X-Request-ID 헤더를 읽고, 없으면 UUID를 새로 생성한다.
// 결과는 gin.Context와 응답 헤더 X-Request-ID에 모두 기록된다.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
