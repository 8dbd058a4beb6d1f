package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config del front. Los dos backends son colaboradores externos:
// acá solo viven sus base URLs y el timeout del cliente HTTP.
type Config struct {
	Addr     string
	Backends BackendsConfig
	Demo     DemoConfig
	Logging  LoggingConfig
}

type BackendsConfig struct {
	// Primary: API "profesor" (Laravel remota). Rutas bajo /api.
	PrimaryURL string
	// Secondary: API "express" (local). Rutas /auth, /propietarios, /mascotas.
	SecondaryURL string

	Timeout time.Duration
}

// DemoConfig son las credenciales del modo local (sin red).
type DemoConfig struct {
	Email    string
	Password string
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("front")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("VETCARE")
	// Las keys anidadas (backends.secondaryurl) se mapean a la forma
	// con guión bajo (VETCARE_BACKENDS_SECONDARYURL).
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")

	v.SetDefault("backends.primaryurl", "https://profesor.example.edu")
	v.SetDefault("backends.secondaryurl", "http://localhost:3001/api/v1")
	v.SetDefault("backends.timeout", "10s")

	// Par demo del modo local; solo habilita una sesión guest sin red.
	v.SetDefault("demo.email", "gmail@ejemplo.com")
	v.SetDefault("demo.password", "1234")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}
