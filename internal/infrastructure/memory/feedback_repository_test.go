package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
)

func newRecord(t *testing.T, createdAt time.Time) domain.Feedback {
	t.Helper()
	return domain.Feedback{
		Shift:     domain.ShiftA,
		Location:  domain.Location("executive washroom"),
		Comments:  "mirror smudged",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestFeedbackRepository_FindAll_SortsNewestFirst(t *testing.T) {
	repo := NewFeedbackRepository()
	ctx := context.Background()

	day1 := newRecord(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	day3 := newRecord(t, time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC))
	day2 := newRecord(t, time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC))
	for _, record := range []*domain.Feedback{&day1, &day3, &day2} {
		require.NoError(t, repo.Create(ctx, record))
		require.NotEmpty(t, record.ID)
	}

	records, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, day3.ID, records[0].ID)
	assert.Equal(t, day2.ID, records[1].ID)
	assert.Equal(t, day1.ID, records[2].ID)
}

func TestFeedbackRepository_FindByDateRange_BoundsAreInclusive(t *testing.T) {
	repo := NewFeedbackRepository()
	ctx := context.Background()

	from := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

	before := newRecord(t, from.Add(-time.Second))
	onFrom := newRecord(t, from)
	inside := newRecord(t, from.Add(24*time.Hour))
	onTo := newRecord(t, to)
	after := newRecord(t, to.Add(time.Second))
	for _, record := range []*domain.Feedback{&before, &onFrom, &inside, &onTo, &after} {
		require.NoError(t, repo.Create(ctx, record))
	}

	records, err := repo.FindByDateRange(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, onTo.ID, records[0].ID)
	assert.Equal(t, inside.ID, records[1].ID)
	assert.Equal(t, onFrom.ID, records[2].ID)
}

func TestFeedbackRepository_FindByID(t *testing.T) {
	repo := NewFeedbackRepository()
	ctx := context.Background()

	record := newRecord(t, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, &record))

	found, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.Comments, found.Comments)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFeedbackRepository_Update(t *testing.T) {
	repo := NewFeedbackRepository()
	ctx := context.Background()

	record := newRecord(t, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, &record))

	record.Comments = "resolved"
	record.Attachments = append(record.Attachments, domain.Attachment{ID: "att-1", Name: "photo.jpg"})
	require.NoError(t, repo.Update(ctx, &record))

	found, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "resolved", found.Comments)
	require.Len(t, found.Attachments, 1)

	missing := newRecord(t, time.Now().UTC())
	missing.ID = "missing"
	assert.ErrorIs(t, repo.Update(ctx, &missing), domain.ErrNotFound)
}

func TestFeedbackRepository_Delete(t *testing.T) {
	repo := NewFeedbackRepository()
	ctx := context.Background()

	record := newRecord(t, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, &record))

	assert.ErrorIs(t, repo.Delete(ctx, "missing"), domain.ErrNotFound)

	records, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	require.NoError(t, repo.Delete(ctx, record.ID))
	_, err = repo.FindByID(ctx, record.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFeedbackRepository_ReturnsDefensiveCopies(t *testing.T) {
	repo := NewFeedbackRepository()
	ctx := context.Background()

	record := newRecord(t, time.Now().UTC())
	record.Attachments = []domain.Attachment{{ID: "att-1", Name: "photo.jpg"}}
	require.NoError(t, repo.Create(ctx, &record))

	found, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	found.Attachments[0].Name = "mutated.jpg"
	found.Comments = "mutated"

	again, err := repo.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "photo.jpg", again.Attachments[0].Name)
	assert.Equal(t, "mirror smudged", again.Comments)
}
