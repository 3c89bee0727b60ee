package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/muhdemir/lifehub/internal/gate"
	"github.com/muhdemir/lifehub/internal/pkg/clock"
	"github.com/muhdemir/lifehub/internal/pkg/config"
	"github.com/muhdemir/lifehub/internal/pkg/goroutine"
	"github.com/muhdemir/lifehub/internal/pkg/hash"
	"github.com/muhdemir/lifehub/internal/pkg/idempotency"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/muhdemir/lifehub/internal/pkg/jwt"
	"github.com/muhdemir/lifehub/internal/pkg/mail"
	"github.com/muhdemir/lifehub/internal/pkg/messaging"
	"github.com/muhdemir/lifehub/internal/pkg/otp"
	"github.com/muhdemir/lifehub/internal/pkg/router"
	"github.com/muhdemir/lifehub/internal/pkg/storage"
	"github.com/muhdemir/lifehub/internal/pkg/uid"
	"github.com/muhdemir/lifehub/internal/pkg/validator"
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	totp      otp.OTP
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	mail      mail.Mail
	messaging messaging.Messaging
	storage   storage.Storage

	// modules built ahead of the router
	gate *gate.Module

	// server
	router     *router.Router
	httpServer *http.Server
	sseServer  *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
