// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"time"

	"github.com/caarlos0/env/v11"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/joho/godotenv"

	"github.com/gatherhub/gatherhub/internal/app/system/apperr"
)

// AppConfig holds service configuration, loaded from the environment
// (with an optional .env file for local development).
//
// TokenHMACSecret may be left empty: the service then runs without a
// token verifier and only the fallback identity headers authenticate
// requests. That mirrors how the hosted deployments run when the
// identity provider keys are rotated.
type AppConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`
	Env  string `env:"APP_ENV" envDefault:"dev"`

	MongoURI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"gatherhub"`

	TokenHMACSecret string `env:"TOKEN_HMAC_SECRET"`

	ConnectAttempts int           `env:"MONGO_CONNECT_ATTEMPTS" envDefault:"5"`
	ConnectBackoff  time.Duration `env:"MONGO_CONNECT_BACKOFF" envDefault:"500ms"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	Debug bool `env:"DEBUG" envDefault:"false"`

	PingTimeout   time.Duration `env:"TIMEOUT_PING" envDefault:"2s"`
	ShortTimeout  time.Duration `env:"TIMEOUT_SHORT" envDefault:"5s"`
	MediumTimeout time.Duration `env:"TIMEOUT_MEDIUM" envDefault:"10s"`
	LongTimeout   time.Duration `env:"TIMEOUT_LONG" envDefault:"30s"`
}

// LoadConfig reads AppConfig from the environment. A .env file in the
// working directory is merged in first when present.
func LoadConfig() (AppConfig, error) {
	_ = godotenv.Load()

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, apperr.Wrap(apperr.KindInternal, "parse configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c AppConfig) Validate() error {
	if err := wafflemongo.ValidateURI(c.MongoURI); err != nil {
		return apperr.Wrap(apperr.KindInternal, "invalid MONGO_URI", err)
	}
	if c.MongoDatabase == "" {
		return apperr.New(apperr.KindInternal, "MONGO_DATABASE is required")
	}
	return nil
}
