package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/muhdemir/lifehub/internal/pkg/goerror"
)

type AdmitInput struct {
	Token string `validate:"required"`
}

type AdmitOutput struct {
	Username  string
	ExpiresAt time.Time
}

// Admit resolves a session token to its session.
//
// Expiry is re-checked against the stored expires_at even though the store
// applies a TTL, so a lagging store never admits a stale session. An expired
// session is deleted on sight.
func (s *Usecase) Admit(ctx context.Context, in AdmitInput) (*AdmitOutput, error) {
	ctx, span := s.startSpan(ctx, "Admit")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewBusiness("session required", goerror.CodeUnauthorized)
	}

	tokenHash, err := s.tokenHash(in.Token)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash session token", "error", err)

		return nil, goerror.NewServer(err)
	}

	sess, err := s.store.Get(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("session not found", goerror.CodeUnauthorized)
		}

		slog.ErrorContext(ctx, "failed to load session", "error", err)

		return nil, goerror.NewServer(err)
	}

	if sess.Expired(s.clock.Now()) {
		if err := s.store.Delete(ctx, tokenHash); err != nil {
			slog.WarnContext(ctx, "failed to delete expired session", "error", err)
		}

		return nil, goerror.NewBusiness("session expired", goerror.CodeUnauthorized)
	}

	return &AdmitOutput{
		Username:  sess.Username,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}
