package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/kert-club/community-api/config"
	"github.com/kert-club/community-api/pkg/helpers"
)

// Seeds an admin account for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	studentID := int64(2000000001)
	email := "admin@kert.org"
	name := "KERT Admin"
	password := "password123"

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO users (student_id, email, name, profile_picture, generation, major)
		VALUES ($1, $2, $3, '', 1, 'Computer Engineering')
		ON CONFLICT (student_id) DO UPDATE SET name = EXCLUDED.name
	`, studentID, email, name); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO credentials (user_id, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET password_hash = EXCLUDED.password_hash
	`, studentID, hash); err != nil {
		log.Fatalf("failed to seed credential: %v", err)
	}
	fmt.Printf("seeded user: student_id=%d email=%s password=%s\n", studentID, email, password)

	// Ensure base roles exist
	var adminRoleID, memberRoleID int64
	if err := db.QueryRow(`
		INSERT INTO roles (name) VALUES ('admin')
		ON CONFLICT (name) DO UPDATE SET updated_at = now()
		RETURNING id
	`).Scan(&adminRoleID); err != nil {
		log.Fatalf("failed to upsert admin role: %v", err)
	}
	if err := db.QueryRow(`
		INSERT INTO roles (name) VALUES ('member')
		ON CONFLICT (name) DO UPDATE SET updated_at = now()
		RETURNING id
	`).Scan(&memberRoleID); err != nil {
		log.Fatalf("failed to upsert member role: %v", err)
	}
	fmt.Printf("roles ensured: admin=%d member=%d\n", adminRoleID, memberRoleID)

	if _, err := db.Exec(`
		INSERT INTO user_roles (user_id, role_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role_id) DO NOTHING
	`, studentID, adminRoleID); err != nil {
		log.Fatalf("failed to assign admin role: %v", err)
	}
	fmt.Println("assigned admin role to seeded user (if not already)")
}
