package repo

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"ciencia-backend-go/internal/models"
)

func InsertExperiment(db *sqlx.DB, exp models.Experiment) (int64, error) {
	var id int64
	err := db.Get(&id, db.Rebind(`
INSERT INTO experimento (titulo, descricao, materiais, capa, video_explicativo)
VALUES (?, ?, ?, ?, ?)
RETURNING id
`), exp.Title, exp.Description, exp.Materials, exp.CoverImage, exp.ExplainerVideo)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateExperiment overwrites every non-id column, including the optional
// references. Callers that want to keep an existing cover or video must
// re-supply it on the record; there is no partial patch.
func UpdateExperiment(db *sqlx.DB, exp models.Experiment) (bool, error) {
	result, err := db.Exec(db.Rebind(`
UPDATE experimento
SET titulo = ?, descricao = ?, materiais = ?, capa = ?, video_explicativo = ?
WHERE id = ?
`), exp.Title, exp.Description, exp.Materials, exp.CoverImage, exp.ExplainerVideo, exp.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func DeleteExperiment(db *sqlx.DB, id int64) (bool, error) {
	result, err := db.Exec(db.Rebind(`DELETE FROM experimento WHERE id = ?`), id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func GetExperimentByID(db *sqlx.DB, id int64) (*models.Experiment, error) {
	var exp models.Experiment
	err := db.Get(&exp, db.Rebind(`
SELECT id, titulo, descricao, materiais, capa, video_explicativo
FROM experimento
WHERE id = ?
`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

func GetExperimentByTitle(db *sqlx.DB, title string) (*models.Experiment, error) {
	var exp models.Experiment
	err := db.Get(&exp, db.Rebind(`
SELECT id, titulo, descricao, materiais, capa, video_explicativo
FROM experimento
WHERE titulo = ?
`), title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

func GetAllExperiments(db *sqlx.DB) ([]models.Experiment, error) {
	items := []models.Experiment{}
	err := db.Select(&items, `
SELECT id, titulo, descricao, materiais, capa, video_explicativo
FROM experimento
ORDER BY titulo
`)
	return items, err
}

// SearchExperimentsByMaterial returns every experiment whose materials list
// contains the given substring, case-insensitively, in title order.
func SearchExperimentsByMaterial(db *sqlx.DB, material string) ([]models.Experiment, error) {
	items := []models.Experiment{}
	pattern := "%" + strings.ToLower(material) + "%"
	err := db.Select(&items, db.Rebind(`
SELECT id, titulo, descricao, materiais, capa, video_explicativo
FROM experimento
WHERE lower(materiais) LIKE ?
ORDER BY titulo
`), pattern)
	return items, err
}

// SearchExperimentsByDescription matches the term against description and
// title. A row matching both still appears once; it is a single SELECT,
// not a union.
func SearchExperimentsByDescription(db *sqlx.DB, term string) ([]models.Experiment, error) {
	items := []models.Experiment{}
	pattern := "%" + strings.ToLower(term) + "%"
	err := db.Select(&items, db.Rebind(`
SELECT id, titulo, descricao, materiais, capa, video_explicativo
FROM experimento
WHERE lower(descricao) LIKE ? OR lower(titulo) LIKE ?
ORDER BY titulo
`), pattern, pattern)
	return items, err
}

func ExperimentTitleExists(db *sqlx.DB, title string, excludeID int64) (bool, error) {
	var exists bool
	if excludeID != 0 {
		err := db.Get(&exists, db.Rebind(`
SELECT EXISTS(SELECT 1 FROM experimento WHERE titulo = ? AND id != ?)
`), title, excludeID)
		return exists, err
	}
	err := db.Get(&exists, db.Rebind(`
SELECT EXISTS(SELECT 1 FROM experimento WHERE titulo = ?)
`), title)
	return exists, err
}
