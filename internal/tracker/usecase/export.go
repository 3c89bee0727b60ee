package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/muhdemir/lifehub/internal/pkg/goerror"
	"github.com/muhdemir/lifehub/internal/pkg/idempotency"
	"github.com/muhdemir/lifehub/internal/pkg/storage"
	"github.com/muhdemir/lifehub/internal/tracker/entity"
)

type ExportOutput struct {
	Export entity.Export
}

// Export snapshots the weight history to object storage as CSV and returns
// a presigned download URL.
//
// The snapshot key is derived from the current minute and guarded by the
// idempotency tracker, so concurrent export requests collapse into one
// upload; losers get a conflict and can re-request the finished snapshot a
// moment later.
func (s *Usecase) Export(ctx context.Context) (*ExportOutput, error) {
	ctx, span := s.startSpan(ctx, "Export")
	defer span.End()

	now := s.clock.Now().UTC()
	objectKey := fmt.Sprintf("exports/weights-%s.csv", now.Format("20060102-1504"))

	var out *ExportOutput
	err := s.idempotency.Exec(ctx, "tracker:export:"+objectKey, func(ctx context.Context) error {
		var err error
		out, err = s.export(ctx, objectKey, now)
		return err
	}, idempotency.WithLockDuration(time.Minute))

	if err != nil {
		switch {
		case errors.Is(err, idempotency.ErrAlreadyInProgress):
			return nil, goerror.NewBusiness("an export is already running", goerror.CodeConflict)
		case errors.Is(err, idempotency.ErrAlreadyCompleted):
			return nil, goerror.NewBusiness("this snapshot was already exported", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to export weights", "error", err)

		return nil, goerror.NewServer(err)
	}

	return out, nil
}

func (s *Usecase) export(ctx context.Context, objectKey string, now time.Time) (*ExportOutput, error) {
	weights, err := s.repoDB.ListWeights(ctx)
	if err != nil {
		return nil, err
	}

	body, err := weightsCSV(weights)
	if err != nil {
		return nil, err
	}

	bucket := s.cfg.GetString("modules.tracker.export.bucket")

	_, err = s.storage.PutObject(ctx, bucket, objectKey, bytes.NewReader(body), storage.PutOptions{
		Size:        int64(len(body)),
		ContentType: "text/csv",
	})
	if err != nil {
		return nil, err
	}

	expiry := s.cfg.GetMinute("modules.tracker.export.url_ttl_minutes")
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	url, err := s.storage.PresignGet(ctx, bucket, objectKey, expiry)
	if err != nil {
		return nil, err
	}

	return &ExportOutput{Export: entity.Export{
		ObjectKey:   objectKey,
		DownloadURL: url,
		Rows:        len(weights),
		GeneratedAt: now,
	}}, nil
}

func weightsCSV(weights []entity.Weight) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"measured_on", "kilograms", "note"}); err != nil {
		return nil, err
	}

	for _, row := range weights {
		record := []string{
			row.MeasuredOn.Format("2006-01-02"),
			strconv.FormatFloat(row.Kilograms, 'f', -1, 64),
			row.Note,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
