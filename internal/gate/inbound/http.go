package inbound

import (
	"context"

	"github.com/muhdemir/lifehub/internal/gate/usecase"
	"github.com/muhdemir/lifehub/internal/pkg/jwt"
	"github.com/muhdemir/lifehub/internal/pkg/router"
)

type uc interface {
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	Admit(ctx context.Context, in usecase.AdmitInput) (*usecase.AdmitOutput, error)
	Logout(ctx context.Context, in usecase.LogoutInput) (*usecase.LogoutOutput, error)
	IssueToken(ctx context.Context, in usecase.IssueTokenInput) (*usecase.IssueTokenOutput, error)
	VerifyToken(ctx context.Context, tokenStr string) (*jwt.Claims, error)
	Session(ctx context.Context) (*usecase.SessionOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/gate/logout", end.Logout)
	r.POST("/api/v1/gate/token", end.IssueToken)
	r.GET("/api/v1/gate/session", end.Session)
}
