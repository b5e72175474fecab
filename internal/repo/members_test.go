package repo

import (
	"testing"

	"ciencia-backend-go/internal/models"
)

func TestInsertAndGetTeamMember(t *testing.T) {
	db := openTestDB(t)

	member := models.TeamMember{
		Name:        "Ana Souza",
		Cohort:      "3A",
		Role:        "Coordenadora",
		Photo:       strPtr("/media/photos/ana.jpg"),
		SocialLinks: strPtr("@ana.souza"),
	}
	id, err := InsertTeamMember(db, member)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := GetTeamMemberByID(db, id)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got == nil {
		t.Fatal("expected member, got nil")
	}
	if got.Name != member.Name || got.Cohort != member.Cohort || got.Role != member.Role {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Photo == nil || *got.Photo != *member.Photo {
		t.Errorf("photo mismatch: %v", got.Photo)
	}
	if got.SocialLinks == nil || *got.SocialLinks != *member.SocialLinks {
		t.Errorf("social links mismatch: %v", got.SocialLinks)
	}
}

func TestInsertTeamMemberWithoutOptionals(t *testing.T) {
	db := openTestDB(t)

	id, err := InsertTeamMember(db, models.TeamMember{Name: "Bruno Lima", Cohort: "2B", Role: "Monitor"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	got, err := GetTeamMemberByID(db, id)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Photo != nil || got.SocialLinks != nil {
		t.Errorf("expected nil optionals, got photo=%v links=%v", got.Photo, got.SocialLinks)
	}
}

func TestUpdateTeamMember(t *testing.T) {
	db := openTestDB(t)

	id, err := InsertTeamMember(db, models.TeamMember{Name: "Carla", Cohort: "1C", Role: "Monitora"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	ok, err := UpdateTeamMember(db, models.TeamMember{
		ID:     id,
		Name:   "Carla Mendes",
		Cohort: "2C",
		Role:   "Coordenadora",
		Photo:  strPtr("/media/photos/carla.jpg"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !ok {
		t.Fatal("expected update to match a row")
	}

	got, err := GetTeamMemberByID(db, id)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Name != "Carla Mendes" || got.Cohort != "2C" || got.Role != "Coordenadora" {
		t.Errorf("update not visible: %+v", got)
	}
	if got.Photo == nil || *got.Photo != "/media/photos/carla.jpg" {
		t.Errorf("photo not updated: %v", got.Photo)
	}
}

func TestDeleteTeamMember(t *testing.T) {
	db := openTestDB(t)

	id, err := InsertTeamMember(db, models.TeamMember{Name: "Davi", Cohort: "3A", Role: "Monitor"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	ok, err := DeleteTeamMember(db, id)
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	got, err := GetTeamMemberByID(db, id)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %+v", got)
	}
	again, err := DeleteTeamMember(db, id)
	if err != nil {
		t.Fatalf("second delete errored: %v", err)
	}
	if again {
		t.Error("expected false on second delete")
	}
}

func TestGetAllTeamMembersOrderedByName(t *testing.T) {
	db := openTestDB(t)

	for _, name := range []string{"Carlos", "Alice", "Bianca"} {
		if _, err := InsertTeamMember(db, models.TeamMember{Name: name, Cohort: "1A", Role: "Monitor"}); err != nil {
			t.Fatalf("insert %s: %v", name, err)
		}
	}

	members, err := GetAllTeamMembers(db)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	want := []string{"Alice", "Bianca", "Carlos"}
	if len(members) != len(want) {
		t.Fatalf("expected %d members, got %d", len(want), len(members))
	}
	for i, name := range want {
		if members[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, members[i].Name)
		}
	}
}

func TestGetTeamMemberByName(t *testing.T) {
	db := openTestDB(t)

	id, err := InsertTeamMember(db, models.TeamMember{Name: "Elisa", Cohort: "2A", Role: "Monitora"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := GetTeamMemberByName(db, "Elisa")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if got == nil || got.ID != id {
		t.Fatalf("expected member %d, got %+v", id, got)
	}

	missing, err := GetTeamMemberByName(db, "Ninguém")
	if err != nil {
		t.Fatalf("get missing name: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil, got %+v", missing)
	}
}

func TestGetTeamMembersByCohort(t *testing.T) {
	db := openTestDB(t)

	seed := []models.TeamMember{
		{Name: "Zeca", Cohort: "3A", Role: "Monitor"},
		{Name: "Alice", Cohort: "3A", Role: "Monitora"},
		{Name: "Bruno", Cohort: "1B", Role: "Monitor"},
	}
	for _, member := range seed {
		if _, err := InsertTeamMember(db, member); err != nil {
			t.Fatalf("insert %s: %v", member.Name, err)
		}
	}

	members, err := GetTeamMembersByCohort(db, "3A")
	if err != nil {
		t.Fatalf("get by cohort: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].Name != "Alice" || members[1].Name != "Zeca" {
		t.Errorf("unexpected order: %q, %q", members[0].Name, members[1].Name)
	}
}

func TestGetTeamMembersByRole(t *testing.T) {
	db := openTestDB(t)

	seed := []models.TeamMember{
		{Name: "Rui", Cohort: "3A", Role: "Coordenador"},
		{Name: "Lia", Cohort: "2A", Role: "Monitora"},
		{Name: "Gui", Cohort: "1A", Role: "Coordenador"},
	}
	for _, member := range seed {
		if _, err := InsertTeamMember(db, member); err != nil {
			t.Fatalf("insert %s: %v", member.Name, err)
		}
	}

	members, err := GetTeamMembersByRole(db, "Coordenador")
	if err != nil {
		t.Fatalf("get by role: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].Name != "Gui" || members[1].Name != "Rui" {
		t.Errorf("unexpected order: %q, %q", members[0].Name, members[1].Name)
	}
}

func TestTeamMemberNameExists(t *testing.T) {
	db := openTestDB(t)

	id, err := InsertTeamMember(db, models.TeamMember{Name: "Ana", Cohort: "3A", Role: "Monitora"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	exists, err := TeamMemberNameExists(db, "Ana", 0)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Error("expected name to exist")
	}

	excluded, err := TeamMemberNameExists(db, "Ana", id)
	if err != nil {
		t.Fatalf("exists with exclusion: %v", err)
	}
	if excluded {
		t.Error("expected false when the only match is excluded")
	}
}
