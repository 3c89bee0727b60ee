package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/muhdemir/lifehub/internal/gate/entity"
	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/instrument"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const keyPrefix = "gate:session:"

// Redis keeps sessions in Redis, keyed by the token hash with the session
// TTL as the key TTL.
type Redis struct {
	client *redis.Client
	ins    instrument.Instrumentation
}

func NewRedis(client *redis.Client, ins instrument.Instrumentation) *Redis {
	return &Redis{
		client: client,
		ins:    ins,
	}
}

func (s *Redis) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, redis.Nil) {
		return goerror.ErrNotFound
	}

	return err
}

func (s *Redis) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("gate.outbound.sessionstore").Start(ctx, name)
}

func (s *Redis) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *Redis) Create(ctx context.Context, tokenHash string, sess entity.Session, ttl time.Duration) (err error) {
	ctx, span := s.startSpan(ctx, "Create")
	defer func() { s.endSpan(span, err) }()

	val, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	err = s.mapError(s.client.Set(ctx, keyPrefix+tokenHash, val, ttl).Err())
	return err
}

func (s *Redis) Get(ctx context.Context, tokenHash string) (_ *entity.Session, err error) {
	ctx, span := s.startSpan(ctx, "Get")
	defer func() { s.endSpan(span, err) }()

	val, err := s.client.Get(ctx, keyPrefix+tokenHash).Bytes()
	if err != nil {
		err = s.mapError(err)
		return nil, err
	}

	var sess entity.Session
	if err = json.Unmarshal(val, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

func (s *Redis) Delete(ctx context.Context, tokenHash string) (err error) {
	ctx, span := s.startSpan(ctx, "Delete")
	defer func() { s.endSpan(span, err) }()

	err = s.mapError(s.client.Del(ctx, keyPrefix+tokenHash).Err())
	return err
}
