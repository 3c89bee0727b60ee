package usecase

import (
	"context"

	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/jwt"
)

type SessionOutput struct {
	Username      string
	Authenticated bool
}

// Session reports who the current request is authenticated as. The identity
// is whatever the guard stashed in the context.
func (s *Usecase) Session(ctx context.Context) (*SessionOutput, error) {
	_, span := s.startSpan(ctx, "Session")
	defer span.End()

	claims := jwt.GetAuth(ctx)
	if claims == nil || claims.Username == "" {
		return nil, goerror.NewBusiness("not authenticated", goerror.CodeUnauthorized)
	}

	return &SessionOutput{
		Username:      claims.Username,
		Authenticated: true,
	}, nil
}
