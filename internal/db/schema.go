package db

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables the app expects when they are missing.
// Existing tables are left untouched; column migrations stay manual.
func EnsureSchema(conn *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	// Tables created before slugs existed miss the column; CREATE TABLE
	// IF NOT EXISTS will not add it.
	if !HasColumn(conn, "packages", "slug") {
		if _, err := conn.Exec(`ALTER TABLE packages ADD COLUMN slug VARCHAR(255) NOT NULL DEFAULT '' AFTER title`); err != nil {
			return fmt.Errorf("add packages.slug: %w", err)
		}
	}
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL DEFAULT '',
		username VARCHAR(100) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(50) NOT NULL DEFAULT '',
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL DEFAULT 'admin',
		status VARCHAR(32) NOT NULL DEFAULT 'active',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_email (email),
		UNIQUE KEY uq_users_username (username)
	)`,
	`CREATE TABLE IF NOT EXISTS packages (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL DEFAULT '',
		category VARCHAR(64) NOT NULL DEFAULT 'Umrah',
		duration VARCHAR(64) NOT NULL DEFAULT '',
		departure_date VARCHAR(64) NOT NULL DEFAULT '',
		flight_details TEXT,
		description TEXT,
		features JSON,
		itinerary JSON,
		included JSON,
		not_included JSON,
		airline_ids JSON,
		hotel_ids JSON,
		room_options JSON,
		image_url VARCHAR(512) NOT NULL DEFAULT '',
		brochure_url VARCHAR(512) NOT NULL DEFAULT '',
		quotas INT NOT NULL DEFAULT 0,
		initial_quotas INT NOT NULL DEFAULT 0,
		available_rooms INT NOT NULL DEFAULT 0,
		initial_rooms INT NOT NULL DEFAULT 0,
		is_popular TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		KEY idx_packages_slug (slug)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		package_id BIGINT NOT NULL,
		customer_name VARCHAR(255) NOT NULL DEFAULT '',
		customer_phone VARCHAR(50) NOT NULL DEFAULT '',
		customer_email VARCHAR(255) NOT NULL DEFAULT '',
		room_breakdown JSON,
		room_count_booked INT NOT NULL DEFAULT 0,
		participant_count INT NOT NULL DEFAULT 0,
		total_price BIGINT NOT NULL DEFAULT 0,
		payment_status VARCHAR(32) NOT NULL DEFAULT 'Down Payment',
		notes TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		KEY idx_orders_package (package_id)
	)`,
	`CREATE TABLE IF NOT EXISTS participants (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		order_id BIGINT NOT NULL,
		name VARCHAR(255) NOT NULL DEFAULT '',
		identity_number VARCHAR(100) NOT NULL DEFAULT '',
		passport_number VARCHAR(100) NOT NULL DEFAULT '',
		phone VARCHAR(50) NOT NULL DEFAULT '',
		address TEXT,
		room_type VARCHAR(64) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_participants_order (order_id)
	)`,
	`CREATE TABLE IF NOT EXISTS airlines (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		logo_url VARCHAR(512),
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS hotels (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL DEFAULT '',
		stars INT NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS site_settings (
		id INT PRIMARY KEY,
		whatsapp VARCHAR(50) NOT NULL DEFAULT '',
		phone VARCHAR(50) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		address VARCHAR(512) NOT NULL DEFAULT '',
		instagram VARCHAR(255) NOT NULL DEFAULT '',
		tiktok VARCHAR(255) NOT NULL DEFAULT '',
		facebook VARCHAR(255) NOT NULL DEFAULT '',
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS private_trip_requests (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL DEFAULT '',
		phone VARCHAR(50) NOT NULL DEFAULT '',
		destination VARCHAR(255) NOT NULL DEFAULT '',
		days INT NOT NULL DEFAULT 0,
		travelers VARCHAR(100) NOT NULL DEFAULT '',
		interests JSON,
		itinerary_draft MEDIUMTEXT,
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}
