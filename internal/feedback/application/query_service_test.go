package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/application"
	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
	"github.com/sngm3741/facility-feedback-services/api/internal/infrastructure/memory"
)

func seedRecords(t *testing.T, repo *memory.FeedbackRepository) (ladies, gents, executive domain.Feedback) {
	t.Helper()
	ctx := context.Background()

	ladies = domain.Feedback{
		Shift:     domain.ShiftA,
		Location:  domain.Location("team member ladies"),
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	gents = domain.Feedback{
		Shift:     domain.ShiftB,
		Location:  domain.Location("operation area gents"),
		CreatedAt: time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
	}
	executive = domain.Feedback{
		Shift:     domain.ShiftGeneral,
		Location:  domain.Location("executive washroom"),
		CreatedAt: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, &ladies))
	require.NoError(t, repo.Create(ctx, &gents))
	require.NoError(t, repo.Create(ctx, &executive))
	return ladies, gents, executive
}

func TestQueryService_List_NoFilterReturnsAllNewestFirst(t *testing.T) {
	repo := memory.NewFeedbackRepository()
	ladies, gents, executive := seedRecords(t, repo)
	service := application.NewQueryService(repo)

	records, err := service.List(context.Background(), application.Filter{})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, executive.ID, records[0].ID)
	assert.Equal(t, gents.ID, records[1].ID)
	assert.Equal(t, ladies.ID, records[2].ID)
}

func TestQueryService_List_DateRangeAppliesOnlyWithBothBounds(t *testing.T) {
	repo := memory.NewFeedbackRepository()
	_, gents, _ := seedRecords(t, repo)
	service := application.NewQueryService(repo)

	from := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 2, 23, 59, 59, 0, time.UTC)

	records, err := service.List(context.Background(), application.Filter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, gents.ID, records[0].ID)

	records, err = service.List(context.Background(), application.Filter{From: &from})
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestQueryService_List_LocationKeywordIsCaseInsensitive(t *testing.T) {
	repo := memory.NewFeedbackRepository()
	ladies, _, _ := seedRecords(t, repo)
	service := application.NewQueryService(repo)

	records, err := service.List(context.Background(), application.Filter{Location: "LADIES"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, ladies.ID, records[0].ID)

	records, err = service.List(context.Background(), application.Filter{Location: "  "})
	require.NoError(t, err)
	assert.Len(t, records, 3)

	records, err = service.List(context.Background(), application.Filter{Location: "rooftop"})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestQueryService_List_RangeAndKeywordCompose(t *testing.T) {
	repo := memory.NewFeedbackRepository()
	ctx := context.Background()
	service := application.NewQueryService(repo)

	day1Gents := domain.Feedback{
		Shift:     domain.ShiftA,
		Location:  domain.Location("team member gents"),
		CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	day2Ladies := domain.Feedback{
		Shift:     domain.ShiftA,
		Location:  domain.Location("team member ladies"),
		CreatedAt: time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC),
	}
	day3Gents := domain.Feedback{
		Shift:     domain.ShiftB,
		Location:  domain.Location("operation area gents"),
		CreatedAt: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC),
	}
	for _, record := range []*domain.Feedback{&day1Gents, &day2Ladies, &day3Gents} {
		require.NoError(t, repo.Create(ctx, record))
	}

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 2, 23, 59, 59, 0, time.UTC)
	records, err := service.List(ctx, application.Filter{From: &from, To: &to, Location: "gents"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, day1Gents.ID, records[0].ID)
}

func TestQueryService_Detail(t *testing.T) {
	repo := memory.NewFeedbackRepository()
	ladies, _, _ := seedRecords(t, repo)
	service := application.NewQueryService(repo)

	record, err := service.Detail(context.Background(), ladies.ID)
	require.NoError(t, err)
	assert.Equal(t, ladies.Location, record.Location)

	_, err = service.Detail(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
