package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Refresh Token Config
	RefreshTokenExpiryDuration time.Duration
	RefreshTokenCookieName     string
	RefreshTokenCookiePath     string `mapstructure:"REFRESH_TOKEN_COOKIE_PATH"`

	// Checkout Config
	VATRate                     decimal.Decimal
	LoyaltyRedemptionRate       decimal.Decimal // currency value of one point
	LoyaltyMaxRedemptionPercent decimal.Decimal // cap as a percentage of balance due

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	// M-Pesa Daraja API
	MpesaBaseURL        string `mapstructure:"MPESA_BASE_URL"`
	MpesaConsumerKey    string `mapstructure:"MPESA_CONSUMER_KEY"`
	MpesaConsumerSecret string `mapstructure:"MPESA_CONSUMER_SECRET"`
	MpesaShortCode      string `mapstructure:"MPESA_SHORT_CODE"`
	MpesaPasskey        string `mapstructure:"MPESA_PASSKEY"`
	MpesaCallbackURL    string `mapstructure:"MPESA_CALLBACK_URL"`

	// Analytics
	PosthogAPIKey string `mapstructure:"POSTHOG_API_KEY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "pos-backend")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_NAME", "rtid")
	viper.SetDefault("REFRESH_TOKEN_COOKIE_PATH", "/api/v1/auth")
	viper.SetDefault("VAT_RATE", "0.16")
	viper.SetDefault("LOYALTY_REDEMPTION_RATE", "1")
	viper.SetDefault("LOYALTY_MAX_REDEMPTION_PERCENT", "100")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("MPESA_BASE_URL", "https://sandbox.safaricom.co.ke")
	viper.SetDefault("MPESA_CONSUMER_KEY", "")
	viper.SetDefault("MPESA_CONSUMER_SECRET", "")
	viper.SetDefault("MPESA_SHORT_CODE", "")
	viper.SetDefault("MPESA_PASSKEY", "")
	viper.SetDefault("MPESA_CALLBACK_URL", "")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	refreshTokenExpiryStr := viper.GetString("REFRESH_TOKEN_EXPIRY_DURATION")
	refreshTokenExpiryDuration, err := time.ParseDuration(refreshTokenExpiryStr)
	if err != nil {
		refreshTokenExpiryDuration = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for REFRESH_TOKEN_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", refreshTokenExpiryStr, refreshTokenExpiryDuration.String())
	}
	cfg.RefreshTokenExpiryDuration = refreshTokenExpiryDuration
	cfg.RefreshTokenCookieName = viper.GetString("REFRESH_TOKEN_COOKIE_NAME")
	cfg.RefreshTokenCookiePath = viper.GetString("REFRESH_TOKEN_COOKIE_PATH")

	vatRateStr := viper.GetString("VAT_RATE")
	vatRate, err := decimal.NewFromString(vatRateStr)
	if err != nil || vatRate.IsNegative() {
		vatRate = decimal.NewFromFloat(0.16)
		log.Printf("Warning: Invalid value for VAT_RATE ('%s'). Defaulting to %s.\n", vatRateStr, vatRate.String())
	}
	cfg.VATRate = vatRate

	redemptionRateStr := viper.GetString("LOYALTY_REDEMPTION_RATE")
	redemptionRate, err := decimal.NewFromString(redemptionRateStr)
	if err != nil || redemptionRate.IsNegative() {
		redemptionRate = decimal.NewFromInt(1)
		log.Printf("Warning: Invalid value for LOYALTY_REDEMPTION_RATE ('%s'). Defaulting to %s.\n", redemptionRateStr, redemptionRate.String())
	}
	cfg.LoyaltyRedemptionRate = redemptionRate

	maxRedemptionStr := viper.GetString("LOYALTY_MAX_REDEMPTION_PERCENT")
	maxRedemption, err := decimal.NewFromString(maxRedemptionStr)
	if err != nil || maxRedemption.IsNegative() {
		maxRedemption = decimal.NewFromInt(100)
		log.Printf("Warning: Invalid value for LOYALTY_MAX_REDEMPTION_PERCENT ('%s'). Defaulting to %s.\n", maxRedemptionStr, maxRedemption.String())
	}
	cfg.LoyaltyMaxRedemptionPercent = maxRedemption

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	cfg.MpesaBaseURL = viper.GetString("MPESA_BASE_URL")
	cfg.MpesaConsumerKey = viper.GetString("MPESA_CONSUMER_KEY")
	cfg.MpesaConsumerSecret = viper.GetString("MPESA_CONSUMER_SECRET")
	cfg.MpesaShortCode = viper.GetString("MPESA_SHORT_CODE")
	cfg.MpesaPasskey = viper.GetString("MPESA_PASSKEY")
	cfg.MpesaCallbackURL = viper.GetString("MPESA_CALLBACK_URL")
	if cfg.MpesaConsumerKey == "" {
		log.Println("Warning: MPESA_CONSUMER_KEY not set. Mobile money payments will not function.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
