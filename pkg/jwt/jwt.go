package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/agi040922/HR-Management-sub000/config"
)

var (
	ErrTokenExpired = errors.New("token 이 만료되었습니다")
	ErrTokenInvalid = errors.New("token 이 유효하지 않습니다")
)

// Claims 커스텀 JWT 클레임
// Access Token 은 외부 인증 서비스가 발급하며, 본 서버는 검증만 담당한다.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"` // "owner" | "manager" | "staff"
	jwtv5.RegisteredClaims
}

// Verifier 외부 발급 토큰 검증기
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier 토큰 검증기 생성
func NewVerifier(cfg *config.AuthConfig) *Verifier {
	return &Verifier{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
	}
}

// ParseToken 토큰 파싱 및 서명/만료 검증
func (v *Verifier) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return v.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	// 발급자 확인 (설정된 경우에만)
	if v.issuer != "" && claims.Issuer != v.issuer {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// RemainingTTL 토큰의 남은 유효 기간
// Redis 블랙리스트 TTL 계산에 사용한다.
func (c *Claims) RemainingTTL(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Time.Sub(now)
}
