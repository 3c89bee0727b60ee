package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/muhdemir/lifehub/internal/gate/entity"
	"github.com/muhdemir/lifehub/internal/pkg/jwt"
)

func TestAdmit(t *testing.T) {
	store := newFakeStore()
	uc := newTestUsecase(store)

	out, err := uc.Login(context.Background(), LoginInput{Username: testIdentity, Code: testFallback})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	t.Run("ValidToken", func(t *testing.T) {
		got, err := uc.Admit(context.Background(), AdmitInput{Token: out.Token})
		if err != nil {
			t.Fatalf("admit: %v", err)
		}
		if got.Username != testIdentity {
			t.Fatalf("expected username %q, got %q", testIdentity, got.Username)
		}
	})

	t.Run("UnknownToken", func(t *testing.T) {
		if _, err := uc.Admit(context.Background(), AdmitInput{Token: "no-such-token"}); err == nil {
			t.Fatalf("expected unknown token to be rejected")
		}
	})

	t.Run("EmptyToken", func(t *testing.T) {
		if _, err := uc.Admit(context.Background(), AdmitInput{}); err == nil {
			t.Fatalf("expected empty token to be rejected")
		}
	})
}

func TestAdmitExpiredSessionDeleted(t *testing.T) {
	store := newFakeStore()
	uc := newTestUsecase(store)

	// Plant a session that is already past its expiry.
	tokenHash, err := uc.tokenHash("expired-token")
	if err != nil {
		t.Fatalf("token hash: %v", err)
	}
	store.sessions[tokenHash] = entity.Session{
		Username:  testIdentity,
		CreatedAt: testNow.Add(-48 * time.Hour),
		ExpiresAt: testNow.Add(-time.Hour),
	}

	if _, err := uc.Admit(context.Background(), AdmitInput{Token: "expired-token"}); err == nil {
		t.Fatalf("expected expired session to be rejected")
	}

	if _, ok := store.sessions[tokenHash]; ok {
		t.Fatalf("expected expired session to be deleted on read")
	}
}

func TestAdmitExpiryBoundary(t *testing.T) {
	store := newFakeStore()
	uc := newTestUsecase(store)

	// A session expiring exactly now is no longer valid.
	tokenHash, err := uc.tokenHash("boundary-token")
	if err != nil {
		t.Fatalf("token hash: %v", err)
	}
	store.sessions[tokenHash] = entity.Session{
		Username:  testIdentity,
		CreatedAt: testNow.Add(-time.Hour),
		ExpiresAt: testNow,
	}

	if _, err := uc.Admit(context.Background(), AdmitInput{Token: "boundary-token"}); err == nil {
		t.Fatalf("expected session expiring now to be rejected")
	}
}

func TestLogout(t *testing.T) {
	store := newFakeStore()
	uc := newTestUsecase(store)

	out, err := uc.Login(context.Background(), LoginInput{Username: testIdentity, Code: testFallback})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := uc.Logout(context.Background(), LogoutInput{Token: out.Token}); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := uc.Admit(context.Background(), AdmitInput{Token: out.Token}); err == nil {
		t.Fatalf("expected session to be gone after logout")
	}

	t.Run("Idempotent", func(t *testing.T) {
		if _, err := uc.Logout(context.Background(), LogoutInput{Token: out.Token}); err != nil {
			t.Fatalf("second logout should succeed, got %v", err)
		}
	})

	t.Run("EmptyToken", func(t *testing.T) {
		if _, err := uc.Logout(context.Background(), LogoutInput{}); err != nil {
			t.Fatalf("logout without a token should succeed, got %v", err)
		}
	})
}

func TestSession(t *testing.T) {
	uc := newTestUsecase(newFakeStore())

	t.Run("Authenticated", func(t *testing.T) {
		ctx := jwt.SetAuth(context.Background(), jwt.Claims{Username: testIdentity})

		out, err := uc.Session(ctx)
		if err != nil {
			t.Fatalf("session: %v", err)
		}
		if !out.Authenticated || out.Username != testIdentity {
			t.Fatalf("unexpected session output: %+v", out)
		}
	})

	t.Run("Anonymous", func(t *testing.T) {
		if _, err := uc.Session(context.Background()); err == nil {
			t.Fatalf("expected anonymous context to be rejected")
		}
	})
}

func TestIssueAndVerifyToken(t *testing.T) {
	uc := newTestUsecase(newFakeStore())

	out, err := uc.IssueToken(context.Background(), IssueTokenInput{Username: testIdentity})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if out.TokenType != "Bearer" || out.AccessToken == "" {
		t.Fatalf("unexpected token output: %+v", out)
	}

	claims, err := uc.VerifyToken(context.Background(), out.AccessToken)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.Username != testIdentity {
		t.Fatalf("expected claims for %q, got %q", testIdentity, claims.Username)
	}

	if _, err := uc.VerifyToken(context.Background(), "not-a-jwt"); err == nil {
		t.Fatalf("expected malformed token to be rejected")
	}
}
