package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost:6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// Upstreams holds the base URLs of the remote REST backends the storefront
// aggregates. Each one is an independent service.
type Upstreams struct {
	ProductsURL  string `yaml:"PRODUCTS_URL" env:"PRODUCTS_URL" env-required:"true"`
	CombosURL    string `yaml:"COMBOS_URL" env:"COMBOS_URL" env-required:"true"`
	OrdersURL    string `yaml:"ORDERS_URL" env:"ORDERS_URL" env-required:"true"`
	PaymentsURL  string `yaml:"PAYMENTS_URL" env:"PAYMENTS_URL" env-required:"true"`
	LocalesURL   string `yaml:"LOCALES_URL" env:"LOCALES_URL" env-required:"true"`
	FavoritosURL string `yaml:"FAVORITOS_URL" env:"FAVORITOS_URL" env-required:"true"`
}

type Security struct {
	JWTKey string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
}

type SendGrid struct {
	APIKey    string `yaml:"SENDGRID_API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail string `yaml:"SENDGRID_FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:""`
	FromName  string `yaml:"SENDGRID_FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:""`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"CACHE_TTL" env:"CACHE_TTL" env-default:"5m"`
}

// Checkout holds the business constants baked into every order payload.
type Checkout struct {
	TenantID         string  `yaml:"TENANT_ID" env:"CHECKOUT_TENANT_ID" env-default:"restaurante_central_01"`
	OriginAddress    string  `yaml:"ORIGIN_ADDRESS" env:"CHECKOUT_ORIGIN_ADDRESS" env-default:"LIMA - CENTRO, Av. Arequipa 123, Lima"`
	PointsMultiplier float64 `yaml:"POINTS_MULTIPLIER" env:"CHECKOUT_POINTS_MULTIPLIER" env-default:"1.5"`
	DefaultComboURL  string  `yaml:"DEFAULT_COMBO_IMAGE" env:"CHECKOUT_DEFAULT_COMBO_IMAGE" env-default:""`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	RedisConnect RedisConnect `yaml:"redis"`
	Upstreams    Upstreams    `yaml:"upstreams"`
	Security     Security     `yaml:"security"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Cache        CacheConfig  `yaml:"cache"`
	Checkout     Checkout     `yaml:"checkout"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s/%d", r.Username, r.Password, r.Host, r.DB)
}
