package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
)

// FeedbackRepository is an in-memory implementation of the feedback
// repository. It mirrors the Mongo store's contract (newest-first reads,
// inclusive date ranges, ErrNotFound on missing ids) without external
// dependencies, which makes it the store of choice for tests and local runs.
type FeedbackRepository struct {
	mu      sync.RWMutex
	records map[string]domain.Feedback
}

func NewFeedbackRepository() *FeedbackRepository {
	return &FeedbackRepository{records: make(map[string]domain.Feedback)}
}

// Create stores a copy of the record and assigns a fresh id when empty.
func (r *FeedbackRepository) Create(_ context.Context, feedback *domain.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if feedback.ID == "" {
		feedback.ID = uuid.NewString()
	}
	r.records[feedback.ID] = feedback.Clone()
	return nil
}

// FindAll returns every record sorted newest first.
func (r *FeedbackRepository) FindAll(_ context.Context) ([]domain.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(domain.Feedback) bool { return true }), nil
}

// FindByDateRange returns records whose createdAt falls inside [from, to],
// both bounds inclusive, sorted newest first.
func (r *FeedbackRepository) FindByDateRange(_ context.Context, from, to time.Time) ([]domain.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(record domain.Feedback) bool {
		return !record.CreatedAt.Before(from) && !record.CreatedAt.After(to)
	}), nil
}

func (r *FeedbackRepository) FindByID(_ context.Context, id string) (*domain.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := record.Clone()
	return &clone, nil
}

func (r *FeedbackRepository) Update(_ context.Context, feedback *domain.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[feedback.ID]; !ok {
		return domain.ErrNotFound
	}
	r.records[feedback.ID] = feedback.Clone()
	return nil
}

func (r *FeedbackRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

// collect copies matching records and sorts them newest first. Callers must
// hold at least a read lock.
func (r *FeedbackRepository) collect(match func(domain.Feedback) bool) []domain.Feedback {
	results := make([]domain.Feedback, 0, len(r.records))
	for _, record := range r.records {
		if match(record) {
			results = append(results, record.Clone())
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results
}
