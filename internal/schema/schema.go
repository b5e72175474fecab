package schema

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Create applies the table DDL for whichever backend db is connected to.
// Every statement is IF NOT EXISTS, so startup can run it unconditionally.
//
// The record tables deliberately carry no unique constraint on
// email/titulo/nome: uniqueness is guarded by the application-level
// existence checks in the repo package, and a concurrent create can slip a
// duplicate through. Adding an index here would change behavior for data
// that may already contain duplicates.
func Create(db *sqlx.DB) error {
	statements := sqliteDDL
	if db.DriverName() == "pgx" {
		statements = postgresDDL
	}
	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}

var sqliteDDL = []string{
	`CREATE TABLE IF NOT EXISTS administrador (
  id    INTEGER PRIMARY KEY AUTOINCREMENT,
  email TEXT NOT NULL,
  senha TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS experimento (
  id                INTEGER PRIMARY KEY AUTOINCREMENT,
  titulo            TEXT NOT NULL,
  descricao         TEXT NOT NULL,
  materiais         TEXT NOT NULL,
  capa              TEXT NULL,
  video_explicativo TEXT NULL
)`,
	`CREATE TABLE IF NOT EXISTS integrante (
  id_integrante INTEGER PRIMARY KEY AUTOINCREMENT,
  nome          TEXT NOT NULL,
  turma         TEXT NOT NULL,
  funcao        TEXT NOT NULL,
  foto          TEXT NULL,
  redes_sociais TEXT NULL
)`,
	`CREATE TABLE IF NOT EXISTS site_visits (
  id         TEXT PRIMARY KEY,
  ip_address TEXT NULL,
  user_agent TEXT NULL,
  path       TEXT NULL,
  referrer   TEXT NULL,
  created_at TIMESTAMP NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS server_metric_samples (
  id                        TEXT PRIMARY KEY,
  captured_at               TIMESTAMP NOT NULL,
  heap_used_bytes           BIGINT NOT NULL,
  heap_max_bytes            BIGINT NOT NULL,
  system_memory_total_bytes BIGINT NOT NULL,
  system_memory_used_bytes  BIGINT NOT NULL,
  disk_total_bytes          BIGINT NOT NULL,
  disk_used_bytes           BIGINT NOT NULL,
  process_cpu_load          REAL NOT NULL,
  system_cpu_load           REAL NOT NULL
)`,
}

var postgresDDL = []string{
	`CREATE TABLE IF NOT EXISTS administrador (
  id    BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  email TEXT NOT NULL,
  senha TEXT NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS experimento (
  id                BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  titulo            TEXT NOT NULL,
  descricao         TEXT NOT NULL,
  materiais         TEXT NOT NULL,
  capa              TEXT NULL,
  video_explicativo TEXT NULL
)`,
	`CREATE TABLE IF NOT EXISTS integrante (
  id_integrante BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
  nome          TEXT NOT NULL,
  turma         TEXT NOT NULL,
  funcao        TEXT NOT NULL,
  foto          TEXT NULL,
  redes_sociais TEXT NULL
)`,
	`CREATE TABLE IF NOT EXISTS site_visits (
  id         TEXT PRIMARY KEY,
  ip_address TEXT NULL,
  user_agent TEXT NULL,
  path       TEXT NULL,
  referrer   TEXT NULL,
  created_at TIMESTAMPTZ NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS server_metric_samples (
  id                        TEXT PRIMARY KEY,
  captured_at               TIMESTAMPTZ NOT NULL,
  heap_used_bytes           BIGINT NOT NULL,
  heap_max_bytes            BIGINT NOT NULL,
  system_memory_total_bytes BIGINT NOT NULL,
  system_memory_used_bytes  BIGINT NOT NULL,
  disk_total_bytes          BIGINT NOT NULL,
  disk_used_bytes           BIGINT NOT NULL,
  process_cpu_load          REAL NOT NULL,
  system_cpu_load           REAL NOT NULL
)`,
}
