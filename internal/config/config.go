package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/seb0305/aenigma-verborum/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig    `mapstructure:"app" validate:"required"`
	BotToken string       `mapstructure:"bot_token"`
	DB       DBConfig     `mapstructure:"db" validate:"required"`
	Lookup   LookupConfig `mapstructure:"lookup" validate:"required"`
	Cache    CacheConfig  `mapstructure:"cache"`
	Events   EventsConfig `mapstructure:"events"`
	Env      string       `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Port        string        `mapstructure:"port" validate:"required"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"min=1"`
	UserID      int64         `mapstructure:"user_id" validate:"min=1"`
	StaticDir   string        `mapstructure:"static_dir"`
	CORSOrigins []string      `mapstructure:"cors_origins"`
}

type DBConfig struct {
	Driver     string `mapstructure:"driver" validate:"oneof=postgres sqlite"`
	URL        string `mapstructure:"url"`
	SQLitePath string `mapstructure:"sqlite_path"`
	Conn       DBConn `mapstructure:"conn"`
	Cfg        DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type LookupConfig struct {
	FragCaesarURL string        `mapstructure:"frag_caesar_url" validate:"required,url"`
	MyMemoryURL   string        `mapstructure:"my_memory_url" validate:"omitempty,url"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type CacheConfig struct {
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db" validate:"min=0"`
	TTL           time.Duration `mapstructure:"ttl" validate:"min=0"`
}

type EventsConfig struct {
	AMQPURL  string `mapstructure:"amqp_url"`
	Exchange string `mapstructure:"exchange" validate:"required_with=AMQPURL"`
}

var envBindings = map[string]string{
	"bot_token":            "BOT_TOKEN",
	"db.url":               "DATABASE_URL",
	"db.driver":            "DB_DRIVER",
	"db.conn.host":         "DB_HOST",
	"db.conn.port":         "DB_PORT",
	"db.conn.user":         "DB_USER",
	"db.conn.password":     "DB_PASSWORD",
	"db.conn.name":         "DB_NAME",
	"db.conn.ssl":          "DB_SSL",
	"app.port":             "PORT",
	"cache.redis_addr":     "REDIS_ADDR",
	"cache.redis_password": "REDIS_PASSWORD",
	"events.amqp_url":      "AMQP_URL",
}

func Init() (*Config, error) {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}

	v.AddConfigPath(configPath)
	v.SetConfigName(configName)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// DATABASE_URL selects postgres unless DB_DRIVER says otherwise
	if cfg.DB.URL != "" && os.Getenv("DB_DRIVER") == "" {
		cfg.DB.Driver = "postgres"
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
