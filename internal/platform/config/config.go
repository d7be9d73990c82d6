package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config agrupa toda la configuración del servicio.
// Todo viene de env vars; los defaults sirven para dev local (modo memoria).
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	AppName string `env:"APP_NAME" envDefault:"pets-day-registration"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Si DBDSN viene, se usa Postgres. Si no pero SupabaseURL viene,
	// se usa el gateway legacy vía PostgREST. Si nada, in-memory.
	DBDSN       string `env:"DB_DSN"`
	SupabaseURL string `env:"SUPABASE_URL"`
	SupabaseKey string `env:"SUPABASE_SERVICE_KEY"`

	// Secret HMAC para sesiones de staff. Vacío => modo dev (headers de debug).
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"12h"`

	// Bucket para fotos de mascotas. Vacío => store in-memory.
	PhotoBucket string `env:"PHOTO_BUCKET"`

	WorkflowTTL    time.Duration `env:"WORKFLOW_TTL" envDefault:"30m"`
	SearchCacheTTL time.Duration `env:"SEARCH_CACHE_TTL" envDefault:"30s"`
}

// Load parsea la configuración desde el entorno.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
