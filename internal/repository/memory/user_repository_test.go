package memory_test

import (
	"context"
	"testing"
	"time"

	"identity-server/internal/domain"
	"identity-server/internal/repository/memory"
)

const storedHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func newUser(t *testing.T, email, username string) *domain.User {
	t.Helper()

	emailVO := domain.NewEmail(email)
	if !emailVO.IsSuccess() {
		t.Fatalf("NewEmail(%q) failed", email)
	}
	password := domain.PasswordFromHash(storedHash)
	if !password.IsSuccess() {
		t.Fatal("PasswordFromHash failed for a known-good hash")
	}
	return domain.NewUser(emailVO.Value(), username, password.Value())
}

func TestSaveAssignsID(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newUser(t, "john@example.com", "johndoe"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved == nil || saved.ID() == "" {
		t.Fatal("expected a stored user with an assigned id")
	}

	other, err := repo.Save(ctx, newUser(t, "jane@example.com", "janedoe"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if other.ID() == saved.ID() {
		t.Fatal("ids must be unique across saves")
	}
}

func TestFindByEachKey(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newUser(t, "john@example.com", "johndoe"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	byID, err := repo.FindByID(ctx, saved.ID())
	if err != nil || byID == nil || byID.ID() != saved.ID() {
		t.Fatalf("FindByID = (%v, %v)", byID, err)
	}

	byName, err := repo.FindByUsername(ctx, "johndoe")
	if err != nil || byName == nil || byName.ID() != saved.ID() {
		t.Fatalf("FindByUsername = (%v, %v)", byName, err)
	}

	email := domain.NewEmail("john@example.com").Value()
	byEmail, err := repo.FindByEmail(ctx, email)
	if err != nil || byEmail == nil || byEmail.ID() != saved.ID() {
		t.Fatalf("FindByEmail = (%v, %v)", byEmail, err)
	}
}

func TestLookupMissReturnsNil(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	u, err := repo.FindByID(ctx, "missing")
	if err != nil || u != nil {
		t.Fatalf("FindByID miss = (%v, %v), want (nil, nil)", u, err)
	}
	u, err = repo.FindByUsername(ctx, "missing")
	if err != nil || u != nil {
		t.Fatalf("FindByUsername miss = (%v, %v), want (nil, nil)", u, err)
	}
}

func TestSaveUpdatesExistingRecord(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newUser(t, "john@example.com", "johndoe"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	saved.SetUsername("johnny")
	updated, err := repo.Save(ctx, saved)
	if err != nil {
		t.Fatalf("Save (update): %v", err)
	}
	if updated == nil || updated.Username() != "johnny" {
		t.Fatalf("update did not stick: %v", updated)
	}
	if updated.ModifiedAt().Before(saved.CreatedAt()) {
		t.Fatal("ModifiedAt must be refreshed on update")
	}

	byName, err := repo.FindByUsername(ctx, "johnny")
	if err != nil || byName == nil {
		t.Fatalf("FindByUsername after update = (%v, %v)", byName, err)
	}
}

func TestSaveUnknownIDSignalsFailure(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	now := time.Now().UTC()
	ghost := domain.ReconstructUser(
		"no-such-id",
		domain.NewEmail("ghost@example.com").Value(),
		"ghost",
		domain.PasswordFromHash(storedHash).Value(),
		now,
		now,
	)

	saved, err := repo.Save(ctx, ghost)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved != nil {
		t.Fatal("updating an unknown id must signal persistence failure with nil")
	}
}
