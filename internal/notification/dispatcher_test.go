package notification_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
	"github.com/sngm3741/facility-feedback-services/api/internal/infrastructure/memory"
	"github.com/sngm3741/facility-feedback-services/api/internal/notification"
)

func sampleFeedback() domain.Feedback {
	return domain.Feedback{
		ID:        "fb-1",
		Shift:     domain.ShiftA,
		Location:  domain.Location("team member ladies"),
		Comments:  "soap dispenser empty",
		CreatedAt: time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC),
	}
}

func TestDispatcher_Notify_DeliversPayload(t *testing.T) {
	var received map[string]any
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/messages", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()

	failures := memory.NewNotificationFailureStore()
	dispatcher := notification.NewDispatcher(notification.Config{
		Endpoint:    gateway.URL,
		Destination: "facilities",
		Recipient:   "facilities@example.com",
		Failures:    failures,
	})

	dispatcher.Notify(context.Background(), sampleFeedback())

	require.NotNil(t, received)
	assert.Equal(t, "facilities@example.com", received["recipient"])
	assert.Equal(t, "2025-03-05 14:30", received["feedbackDate"])
	assert.Equal(t, "team member ladies", received["feedbackLocation"])
	assert.Equal(t, "A", received["feedbackShift"])
	assert.Equal(t, "soap dispenser empty", received["feedbackComments"])
	assert.Equal(t, "facilities", received["destination"])
	assert.Empty(t, failures.Failures())
}

func TestDispatcher_Notify_EmptyCommentsGetPlaceholder(t *testing.T) {
	var received map[string]any
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()

	dispatcher := notification.NewDispatcher(notification.Config{Endpoint: gateway.URL})

	record := sampleFeedback()
	record.Comments = "   "
	dispatcher.Notify(context.Background(), record)

	require.NotNil(t, received)
	assert.Equal(t, "No comments provided", received["feedbackComments"])
}

func TestDispatcher_Notify_RetriesThenRecordsFailure(t *testing.T) {
	var calls atomic.Int32
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer gateway.Close()

	failures := memory.NewNotificationFailureStore()
	dispatcher := notification.NewDispatcher(notification.Config{
		Endpoint: gateway.URL,
		Failures: failures,
		Attempts: 3,
	})

	dispatcher.Notify(context.Background(), sampleFeedback())

	assert.Equal(t, int32(3), calls.Load())
	recorded := failures.Failures()
	require.Len(t, recorded, 1)
	assert.Equal(t, "fb-1", recorded[0].FeedbackID)
	assert.Equal(t, 3, recorded[0].Attempts)
	assert.Contains(t, recorded[0].Err, "status=500")
	assert.Equal(t, "soap dispenser empty", recorded[0].Payload["feedbackComments"])
}

func TestDispatcher_Notify_NoEndpointIsNoop(t *testing.T) {
	failures := memory.NewNotificationFailureStore()
	dispatcher := notification.NewDispatcher(notification.Config{Failures: failures})

	dispatcher.Notify(context.Background(), sampleFeedback())

	assert.Empty(t, failures.Failures())
}
