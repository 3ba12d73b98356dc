package config

import "os"

// Config carries the environment-driven settings for the checkout backend.
// The Stripe and Resend keys are optional: an empty key switches the matching
// subsystem into its disabled mode instead of failing startup.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string

	StripeSecretKey     string
	StripeWebhookSecret string
	PlatformFeePriceID  string

	ResendAPIKey string
	EmailFrom    string

	PublicServerURL string

	// DegradeOnGatewayFailure keeps the historical behavior of marking an
	// order paid when checkout-session creation fails at the gateway.
	// Set DEGRADE_ON_GATEWAY_FAILURE=0 to surface those failures instead.
	DegradeOnGatewayFailure bool
}

func Load() Config {
	return Config{
		Addr:                getenv("ADDR", ":8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		PlatformFeePriceID:  getenv("PLATFORM_FEE_PRICE_ID", "price_1OCeBwA19umTXGu8s4p2G3aX"),
		ResendAPIKey:        os.Getenv("RESEND_API_KEY"),
		EmailFrom:           getenv("EMAIL_FROM", "onboarding@resend.dev"),
		PublicServerURL:     getenv("PUBLIC_SERVER_URL", "http://localhost:3000"),

		DegradeOnGatewayFailure: os.Getenv("DEGRADE_ON_GATEWAY_FAILURE") != "0",
	}
}

func (c Config) StripeEnabled() bool {
	return c.StripeSecretKey != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
