package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
)

// Failure records one exhausted notification attempt for later resend.
type Failure struct {
	FeedbackID string
	Payload    map[string]string
	Err        string
	Attempts   int
	OccurredAt time.Time
}

// FailureStore persists failures out of band; the dispatcher never blocks on it.
type FailureStore interface {
	Record(ctx context.Context, failure Failure) error
}

// Config provides dependencies for Dispatcher.
type Config struct {
	Logger      *log.Logger
	HTTPClient  *http.Client
	Endpoint    string
	Destination string
	Recipient   string
	Failures    FailureStore
	Attempts    int
	RetryDelay  time.Duration
	Location    *time.Location
}

// Dispatcher sends a best-effort message to the operator channel when a
// new feedback record lands. Delivery failure is logged and recorded but
// never surfaces to the submission that triggered it.
type Dispatcher struct {
	logger      *log.Logger
	httpClient  *http.Client
	endpoint    string
	destination string
	recipient   string
	failures    FailureStore
	attempts    int
	retryDelay  time.Duration
	location    *time.Location
}

func NewDispatcher(cfg Config) *Dispatcher {
	attempts := cfg.Attempts
	if attempts < 1 {
		attempts = 1
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	return &Dispatcher{
		logger:      cfg.Logger,
		httpClient:  client,
		endpoint:    strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/"),
		destination: strings.TrimSpace(cfg.Destination),
		recipient:   strings.TrimSpace(cfg.Recipient),
		failures:    cfg.Failures,
		attempts:    attempts,
		retryDelay:  cfg.RetryDelay,
		location:    location,
	}
}

// Notify delivers the submission summary. Always best-effort: the record is
// already persisted by the time this runs, so every failure path ends in a
// log line and a failure record, never an error to the caller.
func (d *Dispatcher) Notify(ctx context.Context, record domain.Feedback) {
	if d.endpoint == "" {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	payload := buildPayload(d.recipient, record, d.location)

	var lastErr error
	for i := 0; i < d.attempts; i++ {
		if err := d.send(ctx, payload); err != nil {
			lastErr = err
		} else {
			return
		}
		if d.retryDelay > 0 && i < d.attempts-1 {
			time.Sleep(d.retryDelay)
		}
	}

	if d.logger != nil {
		d.logger.Printf("フィードバック通知の送信に失敗: id=%s err=%v", record.ID, lastErr)
	}
	d.recordFailure(ctx, record.ID, payload, lastErr)
}

// buildPayload flattens the record into the key/value set the operator
// channel expects. Empty comments get the literal placeholder the
// notification template renders.
func buildPayload(recipient string, record domain.Feedback, location *time.Location) map[string]string {
	comments := strings.TrimSpace(record.Comments)
	if comments == "" {
		comments = "No comments provided"
	}
	return map[string]string{
		"recipient":        recipient,
		"feedbackDate":     record.CreatedAt.In(location).Format("2006-01-02 15:04"),
		"feedbackLocation": record.Location.String(),
		"feedbackShift":    record.Shift.String(),
		"feedbackComments": comments,
	}
}

func (d *Dispatcher) send(ctx context.Context, payload map[string]string) error {
	body := map[string]any{"text": formatMessage(payload)}
	for key, value := range payload {
		body[key] = value
	}
	if d.destination != "" {
		body["destination"] = d.destination
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("通知ペイロードの作成に失敗: %w", err)
	}

	timeout := d.httpClient.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodPost, d.endpoint+"/messages", bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("通知リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("通知リクエストに失敗: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		message, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return fmt.Errorf("通知送信でエラーが発生: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(message)))
	}
	return nil
}

func formatMessage(payload map[string]string) string {
	var builder strings.Builder
	builder.WriteString("新しいトイレ清掃フィードバックが投稿されました。\n")
	builder.WriteString(fmt.Sprintf("- 日時: %s\n", payload["feedbackDate"]))
	builder.WriteString(fmt.Sprintf("- 場所: %s\n", payload["feedbackLocation"]))
	builder.WriteString(fmt.Sprintf("- シフト: %s\n", payload["feedbackShift"]))
	builder.WriteString(fmt.Sprintf("- コメント: %s\n", payload["feedbackComments"]))
	return builder.String()
}

func (d *Dispatcher) recordFailure(ctx context.Context, feedbackID string, payload map[string]string, cause error) {
	if d.failures == nil || cause == nil {
		return
	}
	failure := Failure{
		FeedbackID: feedbackID,
		Payload:    payload,
		Err:        cause.Error(),
		Attempts:   d.attempts,
		OccurredAt: time.Now().UTC(),
	}
	if err := d.failures.Record(ctx, failure); err != nil && d.logger != nil {
		d.logger.Printf("failed_notifications への保存に失敗: %v", err)
	}
}
