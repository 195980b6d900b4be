package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/agi040922/HR-Management-sub000/config"
)

// ErrCacheMiss 캐시에 값이 없음
var ErrCacheMiss = errors.New("캐시에 값이 없습니다")

// Client Redis 클라이언트 래퍼
// Token 블랙리스트, 속도 제한, 최적화 결과 캐시에 사용한다.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient Redis 연결 생성 및 Ping 헬스체크
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	logger.Info("Redis 연결 성공", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── Token 블랙리스트 ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken JWT ID 를 블랙리스트에 추가. TTL 은 토큰 잔여 유효기간과 동일
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // 이미 만료된 토큰은 등록할 필요 없음
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted JWT ID 가 블랙리스트에 있는지 확인
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── 속도 제한 ──

// CheckRateLimit 슬라이딩 윈도우 기반 속도 제한 검사
// 윈도우 내 요청 수가 limit 이하이면 true 반환
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now().UnixNano()
	windowStart := now - window.Nanoseconds()

	pipe := c.rdb.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, goredis.Z{Score: float64(now), Member: now})
	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return countCmd.Val() < int64(limit), nil
}

// ── JSON 캐시 (최적화 결과 등) ──

// SetJSON 값을 JSON 으로 직렬화해 TTL 과 함께 저장
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("캐시 직렬화 실패: %w", err)
	}
	return c.rdb.Set(ctx, key, data, ttl).Err()
}

// GetJSON 키의 JSON 값을 역직렬화. 키가 없으면 ErrCacheMiss
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// Delete 키 삭제
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Close Redis 연결 종료
func (c *Client) Close() error {
	return c.rdb.Close()
}
