// Command migrate-slugs backfills the slug column for packages created
// before slugs existed. Safe to run repeatedly; rows that already carry
// a slug are left alone.
package main

import (
	"database/sql"
	"fmt"
	"log"

	"alfatih-backend/internal/config"
	"alfatih-backend/internal/db"
	"alfatih-backend/internal/utils"
)

func main() {
	env := config.LoadEnv()
	conn := config.ConnectDB(env)
	defer config.CloseDB()

	if !db.HasTable(conn, "packages") {
		log.Fatal("Tabel packages tidak ditemukan")
	}
	if !db.HasColumn(conn, "packages", "slug") {
		log.Fatal("Kolom slug belum ada, jalankan server sekali untuk migrasi skema")
	}

	rows, err := conn.Query(`SELECT id, title, slug FROM packages ORDER BY id`)
	if err != nil {
		log.Fatalf("Gagal membaca paket: %v", err)
	}
	defer rows.Close()

	type row struct {
		id    int64
		title string
		slug  sql.NullString
	}
	var pending []row
	seen := map[string]bool{}
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.id, &r.title, &r.slug); err != nil {
			log.Fatalf("Gagal membaca baris: %v", err)
		}
		if r.slug.Valid && r.slug.String != "" {
			seen[r.slug.String] = true
			continue
		}
		pending = append(pending, r)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Gagal membaca paket: %v", err)
	}

	updated := 0
	for _, r := range pending {
		slug := utils.Slugify(r.title)
		if slug == "" {
			slug = fmt.Sprintf("paket-%d", r.id)
		}
		if seen[slug] {
			slug = fmt.Sprintf("%s-%d", slug, r.id)
		}
		seen[slug] = true

		if _, err := conn.Exec(`UPDATE packages SET slug = ? WHERE id = ?`, slug, r.id); err != nil {
			log.Fatalf("Gagal memperbarui paket %d: %v", r.id, err)
		}
		log.Printf("Paket %d -> %s", r.id, slug)
		updated++
	}

	log.Printf("Selesai. %d slug diperbarui.", updated)
}
