package application

import (
	"context"
	"strings"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
)

// queryService implements QueryService. Listing composes two predicates:
// the date range runs against the store, the location keyword is matched
// in-process afterwards. Both leave the store's descending createdAt
// ordering untouched.
type queryService struct {
	repo Repository
}

// NewQueryService creates a new QueryService.
func NewQueryService(repo Repository) QueryService {
	return &queryService{repo: repo}
}

func (s *queryService) List(ctx context.Context, filter Filter) ([]domain.Feedback, error) {
	var (
		records []domain.Feedback
		err     error
	)
	if filter.From != nil && filter.To != nil {
		records, err = s.repo.FindByDateRange(ctx, *filter.From, *filter.To)
	} else {
		records, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	keyword := strings.TrimSpace(filter.Location)
	if keyword == "" {
		return records, nil
	}

	matched := make([]domain.Feedback, 0, len(records))
	for _, record := range records {
		if record.Location.ContainsFold(keyword) {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (s *queryService) Detail(ctx context.Context, id string) (*domain.Feedback, error) {
	return s.repo.FindByID(ctx, id)
}
