package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhdemir/lifehub/internal/pkg/goerror"
)

func TestLoginFallbackPassword(t *testing.T) {
	store := newFakeStore()
	uc := newTestUsecase(store)

	tests := []struct {
		name     string
		username string
		code     string
		wantOK   bool
	}{
		{name: "Valid", username: testIdentity, code: testFallback, wantOK: true},
		{name: "WrongUsername", username: "intruder", code: testFallback},
		{name: "WrongPassword", username: testIdentity, code: "letmein"},
		{name: "CaseSensitivePassword", username: testIdentity, code: "Admin123"},
		{name: "BothWrong", username: "intruder", code: "letmein"},
		{name: "EmptyCode", username: testIdentity, code: ""},
		{name: "EmptyUsername", username: "", code: testFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Login(context.Background(), LoginInput{Username: tt.username, Code: tt.code})

			if !tt.wantOK {
				if err == nil {
					t.Fatalf("expected login to be rejected")
				}

				var gerr *goerror.Error
				if !errors.As(err, &gerr) || gerr.Code() != goerror.CodeUnauthorized {
					t.Fatalf("expected unauthorized error, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected login to succeed, got %v", err)
			}
			if out.Token == "" {
				t.Fatalf("expected a session token")
			}
			if out.Username != testIdentity {
				t.Fatalf("expected username %q, got %q", testIdentity, out.Username)
			}
			if got, want := out.ExpiresAt, testNow.AddDate(0, 0, 30); !got.Equal(want) {
				t.Fatalf("expected expiry %v, got %v", want, got)
			}
		})
	}
}

func TestLoginTOTP(t *testing.T) {
	store := newFakeStore()
	uc := newTestUsecase(store, withTOTPSecret(testTOTPSecret))

	valid := totpCodeAt(testTOTPSecret, testNow)
	stale := totpCodeAt(testTOTPSecret, testNow.Add(-5*time.Minute))

	tests := []struct {
		name     string
		username string
		code     string
		wantOK   bool
	}{
		{name: "CurrentCode", username: testIdentity, code: valid, wantOK: true},
		{name: "StaleCode", username: testIdentity, code: stale},
		{name: "FallbackRejectedWhenSecretSet", username: testIdentity, code: testFallback},
		{name: "WrongUsernameValidCode", username: "intruder", code: valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(context.Background(), LoginInput{Username: tt.username, Code: tt.code})

			if tt.wantOK && err != nil {
				t.Fatalf("expected login to succeed, got %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Fatalf("expected login to be rejected")
			}
		})
	}
}

func TestLoginStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.failNext = errors.New("redis down")
	uc := newTestUsecase(store)

	_, err := uc.Login(context.Background(), LoginInput{Username: testIdentity, Code: testFallback})
	if err == nil {
		t.Fatalf("expected error when session cannot be persisted")
	}
}

func TestLoginSessionKeyedByHash(t *testing.T) {
	store := newFakeStore()
	uc := newTestUsecase(store)

	out, err := uc.Login(context.Background(), LoginInput{Username: testIdentity, Code: testFallback})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, ok := store.sessions[out.Token]; ok {
		t.Fatalf("raw token must not be used as a store key")
	}
	if len(store.sessions) != 1 {
		t.Fatalf("expected one stored session, got %d", len(store.sessions))
	}
}
