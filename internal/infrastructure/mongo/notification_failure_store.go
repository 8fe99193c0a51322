package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sngm3741/facility-feedback-services/api/internal/notification"
)

// NotificationFailureStore は送信に失敗した通知を failed_notifications
// コレクションへ記録する。後続の再送バッチが status を見て拾い直す。
type NotificationFailureStore struct {
	failures *mongo.Collection
}

// NewNotificationFailureStore は NotificationFailureStore を生成する。
func NewNotificationFailureStore(db *mongo.Database, collection string) *NotificationFailureStore {
	return &NotificationFailureStore{failures: db.Collection(collection)}
}

// Record は失敗した通知を1件保存する。
func (s *NotificationFailureStore) Record(ctx context.Context, failure notification.Failure) error {
	occurredAt := failure.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}
	doc := NotificationFailureDocument{
		ID:          primitive.NewObjectID(),
		Target:      failure.FeedbackID,
		Payload:     failure.Payload,
		Error:       failure.Err,
		Attempts:    failure.Attempts,
		Status:      "pending",
		CreatedAt:   occurredAt,
		LastTriedAt: occurredAt,
	}
	if _, err := s.failures.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("通知失敗レコードの保存に失敗しました: %w", err)
	}
	return nil
}
