package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	// Budget alert publishing. Alerts are disabled when AMQPURL is empty.
	AMQPURL      string `mapstructure:"AMQP_URL"`
	AMQPExchange string `mapstructure:"AMQP_EXCHANGE"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "arion-backend")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "arion.budget.alerts")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google OAuth will not function.")
	}

	cfg.AMQPURL = viper.GetString("AMQP_URL")
	cfg.AMQPExchange = viper.GetString("AMQP_EXCHANGE")
	if cfg.AMQPURL == "" {
		log.Println("Warning: AMQP_URL not set. Budget alerts will not be published.")
	}

	return cfg, nil
}
