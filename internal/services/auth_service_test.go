package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

func newTestAuthService(t *testing.T) (*authServiceImpl, *memUserStore) {
	t.Helper()
	users := &memUserStore{}
	svc := NewAuthService(
		zerolog.Nop(),
		users,
		"go-task-manager",
		[]byte("test-signing-key"),
		time.Hour,
	).(*authServiceImpl)
	return svc, users
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, users := newTestAuthService(t)

	user, err := svc.Register(context.Background(), RegisterParams{
		Username: "alice",
		Password: "correct horse battery",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if user.ID == "" {
		t.Error("expected a service-assigned id")
	}
	if user.Password == "correct horse battery" {
		t.Error("expected the password to be stored hashed")
	}
	if !strings.HasPrefix(user.Password, "$argon2id$") {
		t.Errorf("expected an argon2id hash, got %q", user.Password)
	}
	if user.TaskIDs == nil || user.ListIDs == nil || user.GroupIDs == nil {
		t.Error("expected membership slices to be initialized")
	}
	if len(users.items) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(users.items))
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)

	params := RegisterParams{
		Username: "alice",
		Password: "correct horse battery",
		Email:    "alice@example.com",
	}
	if _, err := svc.Register(context.Background(), params); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	params.Email = "alice2@example.com"
	_, err := svc.Register(context.Background(), params)
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), RegisterParams{
		Username: "alice",
		Password: "correct horse battery",
		Email:    "alice@example.com",
	}); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), RegisterParams{
		Username: "alice2",
		Password: "correct horse battery",
		Email:    "alice@example.com",
	})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), RegisterParams{
		Username: "alice",
		Password: "correct horse battery",
		Email:    "alice@example.com",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	before := time.Now()
	result, err := svc.Login(context.Background(), LoginParams{
		Username: "alice",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if result.Username != "alice" {
		t.Errorf("expected username alice, got %q", result.Username)
	}
	if result.Token == "" {
		t.Fatal("expected a signed token")
	}
	if result.ExpiresAt.Before(before.Add(59 * time.Minute)) {
		t.Errorf("expected roughly an hour of validity, got %v", result.ExpiresAt)
	}

	claims, err := svc.ParseToken(result.Token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.Subject != "alice" {
		t.Errorf("expected subject alice, got %q", claims.Subject)
	}
	if claims.Issuer != "go-task-manager" {
		t.Errorf("expected issuer go-task-manager, got %q", claims.Issuer)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), LoginParams{
		Username: "nobody",
		Password: "whatever",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), RegisterParams{
		Username: "alice",
		Password: "correct horse battery",
		Email:    "alice@example.com",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := svc.Login(context.Background(), LoginParams{
		Username: "alice",
		Password: "wrong password",
	})
	if !errors.Is(err, ErrUserPasswordMismatch) {
		t.Fatalf("expected ErrUserPasswordMismatch, got %v", err)
	}
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	svc, _ := newTestAuthService(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "go-task-manager",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	token, err := forged.SignedString([]byte("some-other-key"))
	if err != nil {
		t.Fatalf("sign forged token: %v", err)
	}

	if _, err = svc.ParseToken(token); err == nil {
		t.Fatal("expected a signature validation error")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.ParseToken("not.a.token"); err == nil {
		t.Fatal("expected a parse error")
	}
}
