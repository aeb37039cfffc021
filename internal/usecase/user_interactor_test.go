package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/GoArmGo/BlogApp/internal/core/ports"
)

func validRegistration() RegisterInput {
	return RegisterInput{
		Username:        "alice",
		Email:           "alice@x.com",
		Password:        "password1",
		ConfirmPassword: "password1",
	}
}

func TestRegisterSuccess(t *testing.T) {
	store := &fakeUserStorage{}
	uc := NewUserUseCase(store, discardLogger())

	user, err := uc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.Username != "alice" || user.Email != "alice@x.com" {
		t.Errorf("unexpected user fields: %+v", user)
	}
	if user.Admin {
		t.Error("user is admin without requesting it")
	}
	if user.PasswordHash == "" || user.PasswordHash == "password1" {
		t.Error("plaintext password stored instead of a hash")
	}
	if store.createCnt != 1 {
		t.Errorf("created %d records, want 1", store.createCnt)
	}

	// The freshly registered credentials must authenticate.
	got, err := uc.Authenticate(context.Background(), "alice@x.com", "password1")
	if err != nil {
		t.Fatalf("Authenticate after Register: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("authenticated user id = %s, want %s", got.ID, user.ID)
	}
}

func TestRegisterRequestedAdmin(t *testing.T) {
	store := &fakeUserStorage{}
	uc := NewUserUseCase(store, discardLogger())

	in := validRegistration()
	in.RequestedAdmin = true

	user, err := uc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !user.Admin {
		t.Error("requested admin flag was not stored")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := &fakeUserStorage{}
	uc := NewUserUseCase(store, discardLogger())

	if _, err := uc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	in := validRegistration()
	in.Email = "other@x.com"

	_, err := uc.Register(context.Background(), in)
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("Register with taken username: err = %v, want ErrDuplicateUsername", err)
	}
	if store.createCnt != 1 {
		t.Errorf("a failed registration created a record, count = %d", store.createCnt)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := &fakeUserStorage{}
	uc := NewUserUseCase(store, discardLogger())

	if _, err := uc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	in := validRegistration()
	in.Username = "alice2"

	_, err := uc.Register(context.Background(), in)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("Register with used email: err = %v, want ErrDuplicateEmail", err)
	}
	if store.createCnt != 1 {
		t.Errorf("a failed registration created a record, count = %d", store.createCnt)
	}
}

func TestRegisterShortPassword(t *testing.T) {
	store := &fakeUserStorage{}
	uc := NewUserUseCase(store, discardLogger())

	in := validRegistration()
	in.Password = "short1"
	in.ConfirmPassword = "short1"

	_, err := uc.Register(context.Background(), in)
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("Register with short password: err = %v, want ErrPasswordTooShort", err)
	}
	if store.createCnt != 0 {
		t.Error("a failed registration created a record")
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	store := &fakeUserStorage{}
	uc := NewUserUseCase(store, discardLogger())

	in := validRegistration()
	in.ConfirmPassword = "password2"

	_, err := uc.Register(context.Background(), in)
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("Register with mismatching confirmation: err = %v, want ErrPasswordMismatch", err)
	}
}

func TestRegisterWithoutConfirmation(t *testing.T) {
	store := &fakeUserStorage{}
	uc := NewUserUseCase(store, discardLogger())

	in := validRegistration()
	in.ConfirmPassword = ""

	if _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("Register without confirmation value: %v", err)
	}
}

func TestRegisterLosesUniquenessRace(t *testing.T) {
	// The advisory pre-check passed but the storage unique index rejected
	// the insert; the failure must surface as the matching duplicate kind.
	store := &fakeUserStorage{createErr: ports.ErrUsernameTaken}
	uc := NewUserUseCase(store, discardLogger())

	_, err := uc.Register(context.Background(), validRegistration())
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("err = %v, want ErrDuplicateUsername", err)
	}

	store.createErr = ports.ErrEmailTaken
	_, err = uc.Register(context.Background(), validRegistration())
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	store := &fakeUserStorage{}
	uc := NewUserUseCase(store, discardLogger())

	if _, err := uc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Wrong password and unknown email fail with the same error so the
	// response cannot be used to probe for accounts.
	_, wrongPass := uc.Authenticate(context.Background(), "alice@x.com", "password2")
	if !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", wrongPass)
	}

	_, unknown := uc.Authenticate(context.Background(), "nobody@x.com", "password1")
	if !errors.Is(unknown, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", unknown)
	}
}

func TestListUsersInsertionOrder(t *testing.T) {
	store := &fakeUserStorage{}
	uc := NewUserUseCase(store, discardLogger())

	for _, name := range []string{"alice", "bob", "carol"} {
		in := RegisterInput{
			Username: name,
			Email:    name + "@x.com",
			Password: "password1",
		}
		if _, err := uc.Register(context.Background(), in); err != nil {
			t.Fatalf("Register %s: %v", name, err)
		}
	}

	users, err := uc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("len(users) = %d, want 3", len(users))
	}
	for i, want := range []string{"alice", "bob", "carol"} {
		if users[i].Username != want {
			t.Errorf("users[%d] = %q, want %q", i, users[i].Username, want)
		}
	}
}

func TestFindUserLookups(t *testing.T) {
	storage := &fakeUserStorage{}
	uc := NewUserUseCase(storage, discardLogger())

	created, err := uc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	byEmail, err := uc.FindByEmail(context.Background(), created.Email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if byEmail == nil || byEmail.ID != created.ID {
		t.Errorf("FindByEmail = %+v, want user %s", byEmail, created.ID)
	}

	byName, err := uc.FindByUsername(context.Background(), created.Username)
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if byName == nil || byName.ID != created.ID {
		t.Errorf("FindByUsername = %+v, want user %s", byName, created.ID)
	}

	missing, err := uc.FindByEmail(context.Background(), "nobody@x.com")
	if err != nil {
		t.Fatalf("FindByEmail unknown: %v", err)
	}
	if missing != nil {
		t.Errorf("FindByEmail unknown = %+v, want nil", missing)
	}
}
