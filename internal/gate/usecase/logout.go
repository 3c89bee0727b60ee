package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/muhdemir/lifehub/internal/pkg/goerror"
)

type LogoutInput struct {
	Token string
}

type LogoutOutput struct{}

// Logout destroys the session behind the token. Logging out an unknown or
// already-expired token succeeds; the end state is the same.
func (s *Usecase) Logout(ctx context.Context, in LogoutInput) (*LogoutOutput, error) {
	ctx, span := s.startSpan(ctx, "Logout")
	defer span.End()

	if in.Token == "" {
		return &LogoutOutput{}, nil
	}

	tokenHash, err := s.tokenHash(in.Token)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash session token", "error", err)

		return nil, goerror.NewServer(err)
	}

	if err := s.store.Delete(ctx, tokenHash); err != nil && !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to delete session", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &LogoutOutput{}, nil
}
