package services

import (
	"log"

	"github.com/jmoiron/sqlx"

	"ciencia-backend-go/internal/models"
	"ciencia-backend-go/internal/repo"
)

// EnsureDefaultAdministrator seeds the very first back-office login. It only
// acts when no administrator exists at all, so running it on every startup
// is safe. When seeding happens, the plaintext default is logged once so the
// operator can log in and change it.
//
// A store failure (schema missing, database unreachable) comes back as an
// error; the caller is expected to log it and keep the process running.
func EnsureDefaultAdministrator(db *sqlx.DB, tokens TokenService, email, password string) (bool, error) {
	admins, err := repo.GetAllAdministrators(db)
	if err != nil {
		return false, WrapError(err, "check existing administrators")
	}
	if len(admins) > 0 {
		for _, admin := range admins {
			log.Printf("administrator already present: %s", admin.Email)
		}
		return false, nil
	}

	hash, err := tokens.HashPassword(password)
	if err != nil {
		return false, WrapError(err, "hash default password")
	}
	id, err := repo.InsertAdministrator(db, models.Administrator{Email: email, Password: hash})
	if err != nil {
		return false, WrapError(err, "insert default administrator")
	}
	log.Printf("default administrator created (id=%d, email=%s, password=%s); change the password after first login", id, email, password)
	return true, nil
}
