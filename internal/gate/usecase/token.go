package usecase

import (
	"context"
	"log/slog"

	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/jwt"
)

type IssueTokenInput struct {
	Username string `validate:"required"`
}

type IssueTokenOutput struct {
	AccessToken string
	TokenType   string
}

// IssueToken mints a bearer token for API clients that cannot hold a cookie.
// It only runs behind the guard, so the caller is already authenticated.
func (s *Usecase) IssueToken(ctx context.Context, in IssueTokenInput) (*IssueTokenOutput, error) {
	ctx, span := s.startSpan(ctx, "IssueToken")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.WarnContext(ctx, "invalid token input", "error", err)

		return nil, goerror.NewBusiness("username is required", goerror.CodeUnauthorized)
	}

	token, err := s.jwt.Generate(in.Username)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access token", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &IssueTokenOutput{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}

// VerifyToken checks a bearer token and returns its claims.
func (s *Usecase) VerifyToken(ctx context.Context, tokenStr string) (*jwt.Claims, error) {
	ctx, span := s.startSpan(ctx, "VerifyToken")
	defer span.End()

	claims, err := s.jwt.Verify(tokenStr)
	if err != nil {
		slog.WarnContext(ctx, "bearer token rejected", "error", err)

		return nil, goerror.NewBusiness("invalid access token", goerror.CodeUnauthorized)
	}

	return &claims, nil
}
