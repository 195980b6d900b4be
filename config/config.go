package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 애플리케이션 전역 설정 구조체
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
	Payroll  PayrollConfig  `mapstructure:"payroll"`
}

// ServerConfig HTTP 서버 설정
type ServerConfig struct {
	Port    int        `mapstructure:"port"`
	BaseURL string     `mapstructure:"base_url"`
	CORS    CORSConfig `mapstructure:"cors"`
}

// CORSConfig CORS 설정
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig PostgreSQL 데이터베이스 설정
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // 커넥션 최대 수명(분)
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // 유휴 커넥션 최대 수명(분)
}

// DSN PostgreSQL 연결 문자열 생성
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig Redis 캐시 설정
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig JWT 검증 설정
// 토큰 발급은 외부 인증 서비스 책임이며, 본 서버는 공유 시크릿으로 검증만 수행한다.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

// LogConfig 로그 설정
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PayrollConfig 급여 정책 설정
// 최저임금 등 연도별로 갱신되는 수치는 상수가 아닌 설정으로 둔다.
type PayrollConfig struct {
	MinimumWage      int64         `mapstructure:"minimum_wage"`       // 시간당 최저임금(원)
	OptimizeCacheTTL time.Duration `mapstructure:"optimize_cache_ttl"` // 최적화 결과 캐시 TTL
}

// Load 설정 파일과 환경 변수에서 설정 로드
// 우선순위: 환경 변수 > 설정 파일 > 기본값
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 기본값 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:3000"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "hr_management")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Asia/Seoul")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)  // 60분
	v.SetDefault("db.conn_max_idle_time", 30) // 30분

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.issuer", "hr-management")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("payroll.minimum_wage", 10030) // 2025년 최저임금
	v.SetDefault("payroll.optimize_cache_ttl", "10m")

	// ── 설정 파일 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 환경 변수 ──
	v.SetEnvPrefix("HRM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("설정 파일 읽기 실패: %w", err)
		}
		// 설정 파일이 없으면 기본값과 환경 변수만 사용
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("설정 파싱 실패: %w", err)
	}

	// ── 핵심 설정 검증 ──
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 핵심 설정 항목 검증
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("설정 검증 실패: auth.jwt_secret 은 비워둘 수 없습니다")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("설정 검증 실패: auth.jwt_secret 은 16자 이상이어야 합니다")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("설정 검증 실패: server.port 는 1-65535 범위여야 합니다")
	}
	if c.Payroll.MinimumWage <= 0 {
		return fmt.Errorf("설정 검증 실패: payroll.minimum_wage 는 0보다 커야 합니다")
	}
	return nil
}
