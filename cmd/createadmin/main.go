// Command createadmin creates an administrator account or promotes an existing one.
//
//	ADMIN_PASSWORD=... go run ./cmd/createadmin -email admin@ums.ac.id -name "Admin Talenta"
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"UMS_TALENTA_BACK-END/internal/config"
	"UMS_TALENTA_BACK-END/internal/store"
	"UMS_TALENTA_BACK-END/internal/validation"
)

func main() {
	email := flag.String("email", "", "admin email address")
	name := flag.String("name", "", "admin full name")
	flag.Parse()

	addr := validation.NormalizeEmail(*email)
	if addr == "" {
		log.Fatal("-email is required")
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}
	if err := validation.ValidatePassword(password, addr, *name); err != nil {
		log.Fatalf("password rejected: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pc, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	pc.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pc.MaxConns = 1
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	if err := store.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	u, created, err := store.NewUserRepository(pool).UpsertAdmin(ctx, addr, *name, string(hash))
	if err != nil {
		log.Fatalf("create admin: %v", err)
	}
	if created {
		log.Printf("created admin %s (%s)", u.Email, u.ID)
	} else {
		log.Printf("promoted %s (%s) to admin", u.Email, u.ID)
	}
}
