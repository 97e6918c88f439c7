package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/DanRulev/vokabot/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"

	ProviderDeepL    = "deepl"
	ProviderMyMemory = "mymemory"
)

type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	BotToken   string           `mapstructure:"bot_token" validate:"required"`
	DB         DBConfig         `mapstructure:"db" validate:"required"`
	Translator TranslatorConfig `mapstructure:"translator" validate:"required"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Env        string           `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	PollTimeout time.Duration `mapstructure:"poll_timeout" validate:"min=1s"`
	TrainSize   int           `mapstructure:"train_size" validate:"min=1"`
	ListLimit   int           `mapstructure:"list_limit" validate:"min=1"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite3 postgres"`
	Path   string `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	Conn   DBConn `mapstructure:"conn" validate:"-"`
	Cfg    DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type TranslatorConfig struct {
	Provider string `mapstructure:"provider" validate:"oneof=deepl mymemory"`
	APIKey   string `mapstructure:"api_key" validate:"required_if=Provider deepl"`
	URL      string `mapstructure:"url" validate:"omitempty,url"`
}

// HTTPConfig configures the health endpoint. An empty Addr disables it.
type HTTPConfig struct {
	Addr string `mapstructure:"addr" validate:"omitempty,hostname_port"`
}

var envBindings = map[string][]string{
	"env":                 {"ENV"},
	"bot_token":           {"TELEGRAM_TOKEN", "BOT_TOKEN"},
	"translator.provider": {"TRANSLATOR_PROVIDER"},
	"translator.api_key":  {"DEEPL_API_KEY"},
	"translator.url":      {"TRANSLATOR_URL"},
	"db.driver":           {"DB_DRIVER"},
	"db.path":             {"DB_PATH"},
	"db.conn.host":        {"DB_HOST"},
	"db.conn.port":        {"DB_PORT"},
	"db.conn.user":        {"DB_USER"},
	"db.conn.password":    {"DB_PASSWORD"},
	"db.conn.name":        {"DB_NAME"},
	"db.conn.ssl":         {"DB_SSL"},
	"http.addr":           {"HTTP_ADDR"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("app.poll_timeout", 60*time.Second)
	v.SetDefault("app.train_size", 20)
	v.SetDefault("app.list_limit", 100)
	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.path", "data/vocab.db")
	v.SetDefault("db.conn.ssl", "disable")
	v.SetDefault("db.cfg.max_open_conns", 1)
	v.SetDefault("db.cfg.max_idle_conns", 1)
	v.SetDefault("translator.provider", ProviderDeepL)
}

func Init() (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	for key, envs := range envBindings {
		input := append([]string{key}, envs...)
		if err := v.BindEnv(input...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", envs[0], err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c Config) Validate() error {
	if err := validator.ValidateStruct(c); err != nil {
		return err
	}

	if c.DB.Driver == DriverPostgres {
		if err := validator.ValidateStruct(c.DB.Conn); err != nil {
			return fmt.Errorf("postgres connection: %w", err)
		}
	}

	return nil
}
