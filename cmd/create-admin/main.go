package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/digitalhippo/checkout-backend/internal/user"
)

// create-admin provisions the first admin account:
//
//	go run ./cmd/create-admin [email] [password]
//
// It is idempotent: when an admin already exists it lists the existing
// accounts and exits without creating anything.
func main() {
	_ = godotenv.Load()

	email := "admin@example.com"
	password := "admin123"
	if len(os.Args) > 1 {
		email = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	service := user.NewService(user.NewPostgresRepository(db))

	admin, existing, created, err := service.CreateAdmin(email, password)
	if err != nil {
		log.Fatalf("create admin: %v", err)
	}
	if !created {
		fmt.Println("admin account(s) already exist:")
		for _, a := range existing {
			fmt.Printf("- %s\n", a.Email)
		}
		return
	}

	fmt.Println("admin account created")
	fmt.Printf("email:    %s\n", admin.Email)
	fmt.Printf("password: %s\n", password)
}
