package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"lost-found-pets/internal/geo"

	"github.com/adrg/xdg"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	AppName = "lost-found-pets"

	// nombre del archivo opcional (lostfound.yaml) en "." o en el home
	configName = "lostfound"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config del proceso. Orden: defaults, archivo opcional, variables de entorno.
type Config struct {
	Port      string
	DBDSN     string // si viene, el estado va a Postgres en vez de SQLite
	DataPath  string
	LogLevel  string
	LogFormat string
	AppName   string
	KeyPrefix string

	GeoURL     string
	GeoAPIKey  string
	GeoTimeout time.Duration

	// GeoLat/GeoLng fijan una posición estática (dev); nil = no configurada.
	GeoLat *float64
	GeoLng *float64

	PhotoLimit int64
}

// DefaultDataPath: $XDG_DATA_HOME/lost-found-pets/state.db
func DefaultDataPath() string {
	return filepath.Join(xdg.DataHome, AppName, "state.db")
}

// Load lee la configuración. configFile vacío busca lostfound.yaml en "." y
// en el home; que no exista no es error.
func Load(configFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("db_dsn", "")
	v.SetDefault("data_path", DefaultDataPath())
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("app_name", AppName)
	v.SetDefault("key_prefix", "pf.")
	v.SetDefault("geo_url", "")
	v.SetDefault("geo_api_key", "")
	v.SetDefault("geo_timeout", "10s")
	v.SetDefault("geo_lat", "")
	v.SetDefault("geo_lng", "")
	v.SetDefault("photo_limit", 5<<20)

	if configFile != "" {
		path, err := homedir.Expand(configFile)
		if err != nil {
			return Config{}, fmt.Errorf("config path: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	dataPath, err := homedir.Expand(strings.TrimSpace(v.GetString("data_path")))
	if err != nil {
		return Config{}, fmt.Errorf("data_path: %w", err)
	}

	cfg := Config{
		Port:       strings.TrimSpace(v.GetString("port")),
		DBDSN:      strings.TrimSpace(v.GetString("db_dsn")),
		DataPath:   dataPath,
		LogLevel:   v.GetString("log_level"),
		LogFormat:  v.GetString("log_format"),
		AppName:    v.GetString("app_name"),
		KeyPrefix:  v.GetString("key_prefix"),
		GeoURL:     strings.TrimSpace(v.GetString("geo_url")),
		GeoAPIKey:  strings.TrimSpace(v.GetString("geo_api_key")),
		GeoTimeout: v.GetDuration("geo_timeout"),
		PhotoLimit: v.GetInt64("photo_limit"),
	}

	if cfg.GeoLat, err = optionalFloat(v.GetString("geo_lat")); err != nil {
		return Config{}, fmt.Errorf("%w: geo_lat: %v", ErrInvalidConfig, err)
	}
	if cfg.GeoLng, err = optionalFloat(v.GetString("geo_lng")); err != nil {
		return Config{}, fmt.Errorf("%w: geo_lng: %v", ErrInvalidConfig, err)
	}

	return cfg, cfg.Validate()
}

func optionalFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("%w: port is required", ErrInvalidConfig)
	}
	if c.DBDSN == "" && c.DataPath == "" {
		return fmt.Errorf("%w: data_path is required without db_dsn", ErrInvalidConfig)
	}
	if (c.GeoLat == nil) != (c.GeoLng == nil) {
		return fmt.Errorf("%w: geo_lat and geo_lng go together", ErrInvalidConfig)
	}
	if pos := c.StaticLocation(); pos != nil && !pos.Valid() {
		return fmt.Errorf("%w: static location out of range", ErrInvalidConfig)
	}
	return nil
}

// Addr para http.Server.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// StaticLocation devuelve la posición fija configurada, si hay.
func (c Config) StaticLocation() *geo.LatLng {
	if c.GeoLat == nil || c.GeoLng == nil {
		return nil
	}
	return &geo.LatLng{Lat: *c.GeoLat, Lng: *c.GeoLng}
}
