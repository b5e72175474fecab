// Package repo holds the persistence layer: one file per record type, each
// operation a single parameterized round trip against the connection it is
// handed. Queries are written with ? placeholders and rebound per driver,
// so the same code runs on Postgres and SQLite.
//
// Lookups that miss return (nil, nil); updates and deletes that match no
// row return (false, nil). Only store failures surface as errors.
package repo

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"ciencia-backend-go/internal/models"
)

func InsertAdministrator(db *sqlx.DB, admin models.Administrator) (int64, error) {
	var id int64
	err := db.Get(&id, db.Rebind(`
INSERT INTO administrador (email, senha)
VALUES (?, ?)
RETURNING id
`), admin.Email, admin.Password)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func UpdateAdministrator(db *sqlx.DB, admin models.Administrator) (bool, error) {
	result, err := db.Exec(db.Rebind(`
UPDATE administrador
SET email = ?, senha = ?
WHERE id = ?
`), admin.Email, admin.Password, admin.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func DeleteAdministrator(db *sqlx.DB, id int64) (bool, error) {
	result, err := db.Exec(db.Rebind(`DELETE FROM administrador WHERE id = ?`), id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func GetAdministratorByID(db *sqlx.DB, id int64) (*models.Administrator, error) {
	var admin models.Administrator
	err := db.Get(&admin, db.Rebind(`
SELECT id, email, senha
FROM administrador
WHERE id = ?
`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func GetAdministratorByEmail(db *sqlx.DB, email string) (*models.Administrator, error) {
	var admin models.Administrator
	err := db.Get(&admin, db.Rebind(`
SELECT id, email, senha
FROM administrador
WHERE email = ?
`), email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func GetAllAdministrators(db *sqlx.DB) ([]models.Administrator, error) {
	admins := []models.Administrator{}
	err := db.Select(&admins, `
SELECT id, email, senha
FROM administrador
ORDER BY id
`)
	return admins, err
}

// AdministratorEmailExists reports whether any administrator other than
// excludeID already uses email. Pass excludeID 0 to check against every row.
// Matching is exact and case sensitive.
func AdministratorEmailExists(db *sqlx.DB, email string, excludeID int64) (bool, error) {
	var exists bool
	if excludeID != 0 {
		err := db.Get(&exists, db.Rebind(`
SELECT EXISTS(SELECT 1 FROM administrador WHERE email = ? AND id != ?)
`), email, excludeID)
		return exists, err
	}
	err := db.Get(&exists, db.Rebind(`
SELECT EXISTS(SELECT 1 FROM administrador WHERE email = ?)
`), email)
	return exists, err
}
