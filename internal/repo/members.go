package repo

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"ciencia-backend-go/internal/models"
)

func InsertTeamMember(db *sqlx.DB, member models.TeamMember) (int64, error) {
	var id int64
	err := db.Get(&id, db.Rebind(`
INSERT INTO integrante (nome, turma, funcao, foto, redes_sociais)
VALUES (?, ?, ?, ?, ?)
RETURNING id_integrante
`), member.Name, member.Cohort, member.Role, member.Photo, member.SocialLinks)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func UpdateTeamMember(db *sqlx.DB, member models.TeamMember) (bool, error) {
	result, err := db.Exec(db.Rebind(`
UPDATE integrante
SET nome = ?, turma = ?, funcao = ?, foto = ?, redes_sociais = ?
WHERE id_integrante = ?
`), member.Name, member.Cohort, member.Role, member.Photo, member.SocialLinks, member.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func DeleteTeamMember(db *sqlx.DB, id int64) (bool, error) {
	result, err := db.Exec(db.Rebind(`DELETE FROM integrante WHERE id_integrante = ?`), id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func GetTeamMemberByID(db *sqlx.DB, id int64) (*models.TeamMember, error) {
	var member models.TeamMember
	err := db.Get(&member, db.Rebind(`
SELECT id_integrante, nome, turma, funcao, foto, redes_sociais
FROM integrante
WHERE id_integrante = ?
`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func GetTeamMemberByName(db *sqlx.DB, name string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := db.Get(&member, db.Rebind(`
SELECT id_integrante, nome, turma, funcao, foto, redes_sociais
FROM integrante
WHERE nome = ?
`), name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func GetAllTeamMembers(db *sqlx.DB) ([]models.TeamMember, error) {
	members := []models.TeamMember{}
	err := db.Select(&members, `
SELECT id_integrante, nome, turma, funcao, foto, redes_sociais
FROM integrante
ORDER BY nome
`)
	return members, err
}

func GetTeamMembersByCohort(db *sqlx.DB, cohort string) ([]models.TeamMember, error) {
	members := []models.TeamMember{}
	err := db.Select(&members, db.Rebind(`
SELECT id_integrante, nome, turma, funcao, foto, redes_sociais
FROM integrante
WHERE turma = ?
ORDER BY nome
`), cohort)
	return members, err
}

func GetTeamMembersByRole(db *sqlx.DB, role string) ([]models.TeamMember, error) {
	members := []models.TeamMember{}
	err := db.Select(&members, db.Rebind(`
SELECT id_integrante, nome, turma, funcao, foto, redes_sociais
FROM integrante
WHERE funcao = ?
ORDER BY nome
`), role)
	return members, err
}

func TeamMemberNameExists(db *sqlx.DB, name string, excludeID int64) (bool, error) {
	var exists bool
	if excludeID != 0 {
		err := db.Get(&exists, db.Rebind(`
SELECT EXISTS(SELECT 1 FROM integrante WHERE nome = ? AND id_integrante != ?)
`), name, excludeID)
		return exists, err
	}
	err := db.Get(&exists, db.Rebind(`
SELECT EXISTS(SELECT 1 FROM integrante WHERE nome = ?)
`), name)
	return exists, err
}
