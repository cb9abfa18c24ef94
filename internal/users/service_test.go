package users

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	localstore "github.com/masterchiefff/jobfit-server/internal/shared/storage/object/local"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewMemoryRepo(), localstore.New(t.TempDir()))
}

func registerTestUser(t *testing.T, svc *Service, username, email, password string) User {
	t.Helper()
	token, err := svc.BeginRegistration(context.Background(), username, email, "Test", "User")
	if err != nil {
		t.Fatalf("BeginRegistration: %v", err)
	}
	user, err := svc.CompleteRegistration(context.Background(), token, "+254700000000", "KE", "00100", password)
	if err != nil {
		t.Fatalf("CompleteRegistration: %v", err)
	}
	return user
}

func TestRegistrationFlow(t *testing.T) {
	svc := newTestService(t)

	user := registerTestUser(t, svc, "jdoe", "jdoe@example.com", "s3cretpassword")
	if user.ID == "" {
		t.Fatal("expected user id")
	}
	if user.Username != "jdoe" || user.Email != "jdoe@example.com" {
		t.Fatalf("step1 details not carried: %+v", user)
	}
	if user.PhoneNumber != "+254700000000" || user.Country != "KE" {
		t.Fatalf("step2 details not stored: %+v", user)
	}
	if user.PasswordHash == "s3cretpassword" {
		t.Fatal("password stored in clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cretpassword")) != nil {
		t.Fatal("stored hash does not verify")
	}
}

func TestBeginRegistrationValidation(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.BeginRegistration(context.Background(), "", "a@b.com", "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty username, got %v", err)
	}
	if _, err := svc.BeginRegistration(context.Background(), "jdoe", "not-an-email", "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad email, got %v", err)
	}
}

func TestBeginRegistrationDuplicateUsername(t *testing.T) {
	svc := newTestService(t)
	registerTestUser(t, svc, "jdoe", "jdoe@example.com", "s3cretpassword")

	if _, err := svc.BeginRegistration(context.Background(), "jdoe", "other@example.com", "", ""); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestCompleteRegistrationRejectsBadToken(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.CompleteRegistration(context.Background(), "not-a-token", "", "", "", "s3cretpassword"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCompleteRegistrationRejectsAuthToken(t *testing.T) {
	svc := newTestService(t)
	registerTestUser(t, svc, "jdoe", "jdoe@example.com", "s3cretpassword")

	_, token, err := svc.Login(context.Background(), "jdoe", "s3cretpassword")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// An auth token must not complete a registration.
	if _, err := svc.CompleteRegistration(context.Background(), token, "", "", "", "anotherpassword"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCompleteRegistrationShortPassword(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.BeginRegistration(context.Background(), "jdoe", "jdoe@example.com", "", "")
	if err != nil {
		t.Fatalf("BeginRegistration: %v", err)
	}
	if _, err := svc.CompleteRegistration(context.Background(), token, "", "", "", "short"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	created := registerTestUser(t, svc, "jdoe", "jdoe@example.com", "s3cretpassword")

	user, token, err := svc.Login(context.Background(), "jdoe", "s3cretpassword")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("expected user %s, got %s", created.ID, user.ID)
	}
	if token == "" || !strings.Contains(token, ".") {
		t.Fatalf("expected a signed token, got %q", token)
	}

	if _, _, err := svc.Login(context.Background(), "jdoe", "wrongpassword"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody", "s3cretpassword"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestSaveProfileImage(t *testing.T) {
	svc := newTestService(t)
	user := registerTestUser(t, svc, "jdoe", "jdoe@example.com", "s3cretpassword")

	key, err := svc.SaveProfileImage(context.Background(), user.ID, "avatar.png", strings.NewReader("pngbytes"))
	if err != nil {
		t.Fatalf("SaveProfileImage: %v", err)
	}
	if key == "" {
		t.Fatal("expected storage key")
	}

	stored, err := svc.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.ProfileImageKey != key {
		t.Fatalf("expected key %s recorded, got %s", key, stored.ProfileImageKey)
	}
}

func TestSaveProfileImageUnknownUser(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.SaveProfileImage(context.Background(), "missing", "avatar.png", strings.NewReader("x")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
