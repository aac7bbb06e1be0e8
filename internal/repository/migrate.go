package repository

import (
	"context"
	"database/sql"
	"log/slog"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT AUTO_INCREMENT PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role          VARCHAR(16)  NOT NULL DEFAULT 'Owner'
	)`,
	`CREATE TABLE IF NOT EXISTS dogs (
		id            BIGINT AUTO_INCREMENT PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		breed         VARCHAR(255) NULL,
		age           BIGINT       NOT NULL DEFAULT 0,
		size          VARCHAR(32)  NOT NULL,
		special_needs VARCHAR(512) NULL,
		owner_id      BIGINT       NOT NULL,
		CONSTRAINT fk_dogs_owner FOREIGN KEY (owner_id) REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS walks (
		id               BIGINT AUTO_INCREMENT PRIMARY KEY,
		start_time       DATETIME    NOT NULL,
		duration_minutes BIGINT      NOT NULL,
		status           VARCHAR(16) NOT NULL DEFAULT 'Scheduled',
		dog_id           BIGINT      NOT NULL,
		walker_id        BIGINT      NOT NULL,
		CONSTRAINT fk_walks_dog    FOREIGN KEY (dog_id) REFERENCES dogs (id),
		CONSTRAINT fk_walks_walker FOREIGN KEY (walker_id) REFERENCES users (id)
	)`,
}

// Migrate creates the schema if it does not exist yet. Statements are
// idempotent so this is safe to run on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

var seeds = []string{
	`INSERT IGNORE INTO users (id, name, email, password_hash, role) VALUES
		(1, 'Alice', 'alice@example.com', 'hashedpassword1', 'Owner'),
		(2, 'Bob', 'bob@example.com', 'hashedpassword2', 'Walker')`,
	`INSERT IGNORE INTO dogs (id, name, breed, age, size, special_needs, owner_id) VALUES
		(1, 'Buddy', 'Labrador', 3, 'Large', NULL, 1),
		(2, 'Max', 'Beagle', 5, 'Medium', 'Allergic to chicken', 2)`,
	`INSERT IGNORE INTO walks (id, start_time, duration_minutes, status, dog_id, walker_id) VALUES
		(1, '2026-02-05 10:00:00', 60, 'Scheduled', 1, 2),
		(2, '2026-02-06 14:00:00', 30, 'Scheduled', 2, 1)`,
}

// Seed inserts development sample data. Existing rows are left untouched.
func Seed(ctx context.Context, db *sql.DB) error {
	for _, stmt := range seeds {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	slog.Info("seed data applied")
	return nil
}
