package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	CatalogStatic   = "static"
	CatalogPostgres = "postgres"
	CatalogMinio    = "minio"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"prod"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Gateway    Gateway    `yaml:"gateway"`
	Catalog    Catalog    `yaml:"catalog"`
	PostgreSQL PostgreSQL `yaml:"postgresql"`
	Minio      Minio      `yaml:"minio"`
	Session    Session    `yaml:"session"`
	Location   Location   `yaml:"location"`
}

type HTTPServer struct {
	Address        string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout        time.Duration `yaml:"timeout" env-default:"60s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins []string      `yaml:"allowed_origins" env-default:"*"`
}

type Gateway struct {
	URL            string        `yaml:"url" env:"GATEWAY_URL" env-default:"https://ai.gateway.lovable.dev/v1/chat/completions"`
	APIKeyEnv      string        `yaml:"api_key_env" env-default:"LOVABLE_API_KEY"`
	Model          string        `yaml:"model" env-default:"google/gemini-2.5-flash"`
	MaxTokens      int           `yaml:"max_tokens" env-default:"500"`
	Temperature    float64       `yaml:"temperature" env-default:"0.7"`
	Timeout        time.Duration `yaml:"timeout" env-default:"30s"`
	CurrencySymbol string        `yaml:"currency_symbol" env-default:"₹"`
}

type Catalog struct {
	Source string `yaml:"source" env:"CATALOG_SOURCE" env-default:"static"`
	Bucket string `yaml:"bucket" env-default:"catalog"`
	Object string `yaml:"object" env-default:"stores.json"`
}

// PostgreSQL is only read when the catalog source is postgres.
type PostgreSQL struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	Username string `yaml:"username" env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	Database string `yaml:"database" env:"POSTGRES_DB"`
}

type Minio struct {
	Endpoint        string `yaml:"endpoint" env:"MINIO_ENDPOINT"`
	AccessKeyID     string `yaml:"access_key_id" env:"MINIO_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"MINIO_SECRET_ACCESS_KEY"`
	UseSSL          bool   `yaml:"use_ssl"`
}

type Session struct {
	IdleTTL time.Duration `yaml:"idle_ttl" env-default:"1h"`
}

type Location struct {
	Timeout      time.Duration `yaml:"timeout" env-default:"10s"`
	MaximumAge   time.Duration `yaml:"maximum_age" env-default:"5m"`
	HighAccuracy bool          `yaml:"high_accuracy" env-default:"true"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadByPath(configPath)
}

// MustLoadByPath reads the YAML file at configPath. Variables from an optional
// .env file in the working directory are loaded first so secrets such as the
// gateway API key can stay out of the YAML.
func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic("env file reading error: " + err.Error())
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("config reading error: " + err.Error())
	}

	switch cfg.Catalog.Source {
	case CatalogStatic, CatalogPostgres, CatalogMinio:
	default:
		panic("unknown catalog source: " + cfg.Catalog.Source)
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
