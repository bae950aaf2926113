package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	Cart     CartConfig
	Checkout CheckoutConfig
	Store    StoreDefaultsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ROTIKITA_APP_ENV" required:"true"`
	Port         string `envconfig:"ROTIKITA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ROTIKITA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ROTIKITA_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"ROTIKITA_AUTO_MIGRATE" default:"false"`
	CORSOrigins  string `envconfig:"ROTIKITA_CORS_ORIGINS" default:"*"`
}

// CORSOriginList splits the configured comma-separated origins.
func (a AppConfig) CORSOriginList() []string {
	if strings.TrimSpace(a.CORSOrigins) == "" {
		return nil
	}
	parts := strings.Split(a.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ROTIKITA_DB_DSN"`
	Driver string `envconfig:"ROTIKITA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ROTIKITA_DB_HOST"`
	LegacyPort     int    `envconfig:"ROTIKITA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ROTIKITA_DB_USER"`
	LegacyPassword string `envconfig:"ROTIKITA_DB_PASSWORD"`
	LegacyName     string `envconfig:"ROTIKITA_DB_NAME"`
	LegacySSLMode  string `envconfig:"ROTIKITA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ROTIKITA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ROTIKITA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ROTIKITA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ROTIKITA_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	// StatementTimeout bounds every storage call so a stuck insert surfaces
	// as a retryable error instead of a silent hang.
	StatementTimeout time.Duration `envconfig:"ROTIKITA_DB_STATEMENT_TIMEOUT" default:"5s"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ROTIKITA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"ROTIKITA_REDIS_ADDR"`
	Password     string        `envconfig:"ROTIKITA_REDIS_PASSWORD"`
	DB           int           `envconfig:"ROTIKITA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ROTIKITA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ROTIKITA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ROTIKITA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ROTIKITA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ROTIKITA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CartConfig struct {
	TTL time.Duration `envconfig:"ROTIKITA_CART_TTL" default:"720h"`
}

type CheckoutConfig struct {
	IdempotencyTTL     time.Duration `envconfig:"ROTIKITA_CHECKOUT_IDEMPOTENCY_TTL" default:"24h"`
	OrderNumberRetries int           `envconfig:"ROTIKITA_ORDER_NUMBER_RETRIES" default:"5"`
}

// StoreDefaultsConfig provides the last-resort fallbacks used when the
// settings table is unreachable or a value is malformed. The settings table
// always wins when readable.
type StoreDefaultsConfig struct {
	TaxRate        float64 `envconfig:"ROTIKITA_DEFAULT_TAX_RATE" default:"0.11"`
	StoreName      string  `envconfig:"ROTIKITA_DEFAULT_STORE_NAME" default:"RotiKita Bakery"`
	WhatsAppNumber string  `envconfig:"ROTIKITA_DEFAULT_WHATSAPP_NUMBER" default:""`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   "/" + db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
