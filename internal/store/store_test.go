package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"preptrack/internal/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.AllModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestListSkillsScopedToOwner(t *testing.T) {
	ctx := context.Background()
	st := New(newTestDB(t))

	for i := 0; i < 3; i++ {
		skill := database.Skill{UserID: 1, SkillName: fmt.Sprintf("skill-%d", i), Category: "technical", TargetLevel: 100}
		if err := st.CreateSkill(ctx, &skill); err != nil {
			t.Fatalf("create skill: %v", err)
		}
	}
	foreign := database.Skill{UserID: 2, SkillName: "foreign", Category: "aptitude", TargetLevel: 100}
	if err := st.CreateSkill(ctx, &foreign); err != nil {
		t.Fatalf("create foreign skill: %v", err)
	}

	skills, err := st.ListSkills(ctx, 1)
	if err != nil {
		t.Fatalf("list skills: %v", err)
	}
	if len(skills) != 3 {
		t.Fatalf("expected 3 skills, got %d", len(skills))
	}
	for _, s := range skills {
		if s.UserID != 1 {
			t.Fatalf("leaked row owned by user %d", s.UserID)
		}
	}
}

func TestUpdateSkillRejectsForeignOwner(t *testing.T) {
	ctx := context.Background()
	st := New(newTestDB(t))

	skill := database.Skill{UserID: 1, SkillName: "React", Category: "technical", Level: 60, TargetLevel: 90}
	if err := st.CreateSkill(ctx, &skill); err != nil {
		t.Fatalf("create skill: %v", err)
	}

	if _, err := st.UpdateSkill(ctx, skill.ID, 2, map[string]any{"level": 75}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}

	updated, err := st.UpdateSkill(ctx, skill.ID, 1, map[string]any{"level": 75})
	if err != nil {
		t.Fatalf("update as owner: %v", err)
	}
	if updated.Level != 75 {
		t.Fatalf("expected level 75, got %d", updated.Level)
	}
	if updated.SkillName != "React" {
		t.Fatalf("untouched field changed: %q", updated.SkillName)
	}
}

func TestDeleteSkillStrictContract(t *testing.T) {
	ctx := context.Background()
	st := New(newTestDB(t))

	skill := database.Skill{UserID: 1, SkillName: "SQL", Category: "technical", TargetLevel: 100}
	if err := st.CreateSkill(ctx, &skill); err != nil {
		t.Fatalf("create skill: %v", err)
	}

	if err := st.DeleteSkill(ctx, skill.ID, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign delete, got %v", err)
	}
	if err := st.DeleteSkill(ctx, skill.ID, 1); err != nil {
		t.Fatalf("delete as owner: %v", err)
	}
	// Second delete finds nothing and leaves the store unchanged.
	if err := st.DeleteSkill(ctx, skill.ID, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}

	skills, err := st.ListSkills(ctx, 1)
	if err != nil {
		t.Fatalf("list skills: %v", err)
	}
	if len(skills) != 0 {
		t.Fatalf("expected empty list, got %d rows", len(skills))
	}
}

func TestToggleGoalTwiceRestoresState(t *testing.T) {
	ctx := context.Background()
	st := New(newTestDB(t))

	goal := database.Goal{UserID: 1, Title: "Solve 2 LeetCode Mediums"}
	if err := st.CreateGoal(ctx, &goal); err != nil {
		t.Fatalf("create goal: %v", err)
	}

	once, err := st.ToggleGoal(ctx, goal.ID, 1)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !once.IsCompleted {
		t.Fatal("expected goal completed after first toggle")
	}

	twice, err := st.ToggleGoal(ctx, goal.ID, 1)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if twice.IsCompleted {
		t.Fatal("expected goal back to incomplete after second toggle")
	}

	if _, err := st.ToggleGoal(ctx, goal.ID, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign toggle, got %v", err)
	}
}

func TestUpsertProfileKeepsSingleRow(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	st := New(db)

	first, err := st.UpsertProfile(ctx, 1, map[string]any{"full_name": "Ada", "department": "CSE"})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := st.UpsertProfile(ctx, 1, map[string]any{"phone": "123-456"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("upsert created a second row: %d vs %d", first.ID, second.ID)
	}
	if second.FullName != "Ada" || second.Phone != "123-456" {
		t.Fatalf("patch lost fields: %+v", second)
	}

	var count int64
	if err := db.Model(&database.UserProfile{}).Where("user_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 profile row, got %d", count)
	}
}

func TestCreateCompanyNoteVerifiesCompanyOwnership(t *testing.T) {
	ctx := context.Background()
	st := New(newTestDB(t))

	company := database.Company{UserID: 1, CompanyName: "Acme", Role: "SDE", Status: "applied"}
	if err := st.CreateCompany(ctx, &company); err != nil {
		t.Fatalf("create company: %v", err)
	}

	foreign := database.CompanyNote{UserID: 2, CompanyID: company.ID, Title: "Round 1", Content: "..."}
	if err := st.CreateCompanyNote(ctx, &foreign); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign company reference, got %v", err)
	}

	missing := database.CompanyNote{UserID: 1, CompanyID: company.ID + 100, Title: "Round 1", Content: "..."}
	if err := st.CreateCompanyNote(ctx, &missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing company, got %v", err)
	}

	note := database.CompanyNote{UserID: 1, CompanyID: company.ID, Title: "Round 1", Content: "..."}
	if err := st.CreateCompanyNote(ctx, &note); err != nil {
		t.Fatalf("create note: %v", err)
	}

	companyID := company.ID
	notes, err := st.ListCompanyNotes(ctx, 1, &companyID)
	if err != nil {
		t.Fatalf("list notes: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != note.ID {
		t.Fatalf("expected exactly the created note, got %+v", notes)
	}
}

func TestDeleteResumeFreesUniqueIndex(t *testing.T) {
	ctx := context.Background()
	st := New(newTestDB(t))

	first := database.Resume{UserID: 1, FileName: "a.pdf", ObjectKey: "resumes/1/a"}
	if err := st.CreateResume(ctx, &first); err != nil {
		t.Fatalf("create resume: %v", err)
	}
	if err := st.DeleteResume(ctx, 1); err != nil {
		t.Fatalf("delete resume: %v", err)
	}
	if err := st.DeleteResume(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}

	second := database.Resume{UserID: 1, FileName: "b.pdf", ObjectKey: "resumes/1/b"}
	if err := st.CreateResume(ctx, &second); err != nil {
		t.Fatalf("re-create resume after delete: %v", err)
	}

	got, err := st.GetResume(ctx, 1)
	if err != nil {
		t.Fatalf("get resume: %v", err)
	}
	if got.FileName != "b.pdf" {
		t.Fatalf("expected replacement resume, got %q", got.FileName)
	}
}
