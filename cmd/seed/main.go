// seed creates the demo login account the static frontend expects.
// It is deliberately a separate, opt-in step and never runs inside the
// server. Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/glowbook/salon-directory/internal/infrastructure/postgres"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedName     = "Test User"
	seedEmail    = "test@test.com"
	seedPassword = "123456"
)

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	tag, err := pool.Exec(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING`,
		seedName, seedEmail, string(hash),
	)
	if err != nil {
		log.Fatalf("insert demo user: %v", err)
	}

	if tag.RowsAffected() == 0 {
		fmt.Printf("Demo user %s already exists, nothing to do\n", seedEmail)
		return
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Email:    %s\n", seedEmail)
	fmt.Printf("  Password: %s\n", seedPassword)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Printf("  curl -s -X POST http://localhost:8080/login \\\n")
	fmt.Printf("    -H 'Content-Type: application/json' \\\n")
	fmt.Printf("    -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", seedEmail, seedPassword)
}
