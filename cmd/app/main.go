package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/digitalhippo/checkout-backend/internal/config"
	"github.com/digitalhippo/checkout-backend/internal/mail"
	"github.com/digitalhippo/checkout-backend/internal/order"
	"github.com/digitalhippo/checkout-backend/internal/payment"
	"github.com/digitalhippo/checkout-backend/internal/product"
	"github.com/digitalhippo/checkout-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	mustBootstrapSchema(db)

	userService := user.NewService(user.NewPostgresRepository(db))
	userHandler := user.NewHandler(userService, []byte(cfg.JWTSecret))

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService)

	orderService := order.NewService(order.NewPostgresRepository(db), productService)
	orderHandler := order.NewHandler(orderService)

	gateway := payment.NewStripeGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	if !cfg.StripeEnabled() {
		log.Printf("payment: no gateway credential configured, orders will be auto-approved")
	}
	mailer := mail.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom)

	paymentService := payment.NewService(orderService, productService, gateway, payment.SessionConfig{
		PublicServerURL:         cfg.PublicServerURL,
		PlatformFeePriceID:      cfg.PlatformFeePriceID,
		DegradeOnGatewayFailure: cfg.DegradeOnGatewayFailure,
	})
	paymentHandler := payment.NewHandler(paymentService, userService, orderService, mailer, gateway)

	// public surface: auth, catalog reads, and the gateway-signed webhook
	userHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	paymentHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	userHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	paymentHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, Stripe-Signature",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return db
}

func mustBootstrapSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id SERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'customer',
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS product (
			product_id SERIAL PRIMARY KEY,
			product_name TEXT NOT NULL,
			product_price INT NOT NULL DEFAULT 0,
			product_desc TEXT NOT NULL DEFAULT '',
			price_id TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL,
			products integer[] NOT NULL,
			is_paid BOOLEAN NOT NULL DEFAULT false,
			created_at TEXT,
			updated_at TEXT
		)`,
		// price_id arrived after the first deploys of the product table
		`ALTER TABLE product ADD COLUMN IF NOT EXISTS price_id TEXT`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
