package models

// Administrator is a back-office login. Password always holds the hashed
// credential; nothing in this project stores or compares plaintext.
type Administrator struct {
	ID       int64  `db:"id"`
	Email    string `db:"email"`
	Password string `db:"senha"`
}

// Experiment is a science demo write-up shown on the public site.
// CoverImage and ExplainerVideo are relative references; nil means unset.
type Experiment struct {
	ID             int64   `db:"id"`
	Title          string  `db:"titulo"`
	Description    string  `db:"descricao"`
	Materials      string  `db:"materiais"`
	CoverImage     *string `db:"capa"`
	ExplainerVideo *string `db:"video_explicativo"`
}

// TeamMember is a profile on the public team page. Role is a free label,
// not an enumerated set.
type TeamMember struct {
	ID          int64   `db:"id_integrante"`
	Name        string  `db:"nome"`
	Cohort      string  `db:"turma"`
	Role        string  `db:"funcao"`
	Photo       *string `db:"foto"`
	SocialLinks *string `db:"redes_sociais"`
}
