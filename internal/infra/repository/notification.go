package repository

import (
	"context"
	"time"

	"equiplend/internal/infra"
	"equiplend/internal/infra/db"

	"github.com/google/uuid"
)

// NotificationRepository appends outbox jobs in the same transaction as the
// state change they announce, so a crash never drops or duplicates one.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	const q = `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status)
		VALUES ($1, $2, $3, $4, $5, 'queued')`

	if _, err := r.db.Exec(ctx, q, uuid.New(), kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr(err, infra.KindDBFailure, "notification.CreateJob")
	}
	return nil
}
