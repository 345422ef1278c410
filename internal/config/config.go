package config

import (
	"flag"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN   string        `env:"DATABASE_URI"`
	CacheTTL      time.Duration `env:"CACHE_TTL"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RateLimitRPS  float64       `env:"RATE_LIMIT_RPS"`
	RateBurst     int           `env:"RATE_LIMIT_BURST"`
	ImageMaxMB    float64       `env:"IMAGE_MAX_MB"`
	ImageMaxSide  int           `env:"IMAGE_MAX_SIDE"`
	ImageQuality  float64       `env:"IMAGE_QUALITY"`
	CORSOrigins   []string      `env:"CORS_ORIGINS" envSeparator:","`
	Metrics       bool          `env:"METRICS_ENABLED"`
	LogProduction bool          `env:"LOG_PRODUCTION"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	var origins string
	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres:// или путь к sqlite)")
	flag.DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "время жизни кэша коллекций")
	flag.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "адрес redis (пусто — кэш в памяти)")
	flag.Float64Var(&cfg.RateLimitRPS, "rps", cfg.RateLimitRPS, "лимит запросов на запись в секунду с одного IP")
	flag.IntVar(&cfg.RateBurst, "burst", cfg.RateBurst, "размер всплеска для лимита запросов")
	flag.StringVar(&origins, "cors", strings.Join(cfg.CORSOrigins, ","), "разрешённые CORS origins через запятую")
	flag.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "включить /metrics")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the ornament server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.CORSOrigins = splitList(origins)

	// Defaults
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "myweddblue.db"
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.RateLimitRPS <= 0 {
		cfg.RateLimitRPS = 5
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 30
	}
	if cfg.ImageMaxMB <= 0 {
		cfg.ImageMaxMB = 0.5
	}
	if cfg.ImageMaxSide <= 0 {
		cfg.ImageMaxSide = 800
	}
	if cfg.ImageQuality <= 0 || cfg.ImageQuality > 1 {
		cfg.ImageQuality = 0.9
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
