package usecase

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/muhdemir/lifehub/internal/gate/entity"
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
)

type LoginInput struct {
	Username string `validate:"required"`
	Code     string `validate:"required"`
}

type LoginOutput struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// Login verifies the credential pair and mints a new session on success.
//
// The code is a TOTP when a secret is configured, otherwise the static
// fallback password. Every rejection maps to the same unauthorized error so
// the response does not reveal which check failed.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.WarnContext(ctx, "invalid login input", "error", err)

		return nil, goerror.NewBusiness("invalid username or code", goerror.CodeUnauthorized)
	}

	if !s.verify(in.Username, in.Code) {
		slog.WarnContext(ctx, "credential verification failed", "username", in.Username)

		return nil, goerror.NewBusiness("invalid username or code", goerror.CodeUnauthorized)
	}

	now := s.clock.Now()
	ttl := s.cfg.GetDay("modules.gate.session_ttl_days")
	sess := entity.Session{
		Username:  in.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	token := s.uuid.Generate()

	tokenHash, err := s.tokenHash(token)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash session token", "error", err)

		return nil, goerror.NewServer(err)
	}

	if err := s.store.Create(ctx, tokenHash, sess, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to persist session", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{
		Token:     token,
		Username:  sess.Username,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// verify applies the credential check in constant time.
//
// Both the username comparison and the code comparison always run, regardless
// of whether the other one already failed.
func (s *Usecase) verify(username, code string) bool {
	identity := s.cfg.GetString("modules.gate.identity")
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(identity)) == 1

	secret := s.cfg.GetString("modules.gate.totp_secret")
	if secret == "" {
		fallback := s.cfg.GetString("modules.gate.fallback_password")
		codeOK := subtle.ConstantTimeCompare([]byte(code), []byte(fallback)) == 1

		return userOK && codeOK
	}

	codeOK := s.totp.Validate(code, secret, s.clock.Now())

	return userOK && codeOK
}

func (s *Usecase) tokenHash(token string) (string, error) {
	sum, err := s.hmac.Hash(token)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(sum), nil
}
