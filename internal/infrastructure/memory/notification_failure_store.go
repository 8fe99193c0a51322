package memory

import (
	"context"
	"sync"

	"github.com/sngm3741/facility-feedback-services/api/internal/notification"
)

// NotificationFailureStore keeps failed notifications in memory. Tests use
// it to assert that exhausted deliveries leave a resendable trace.
type NotificationFailureStore struct {
	mu       sync.Mutex
	failures []notification.Failure
}

func NewNotificationFailureStore() *NotificationFailureStore {
	return &NotificationFailureStore{}
}

func (s *NotificationFailureStore) Record(_ context.Context, failure notification.Failure) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, failure)
	return nil
}

// Failures returns a snapshot of everything recorded so far.
func (s *NotificationFailureStore) Failures() []notification.Failure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notification.Failure(nil), s.failures...)
}
