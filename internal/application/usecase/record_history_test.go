package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/burrow/internal/domain/entity"
	repomocks "github.com/bnema/burrow/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCanonicalHistoryURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "https://example.com/docs#intro", want: "https://example.com/docs"},
		{raw: "  http://example.com/a?b=1  ", want: "http://example.com/a?b=1"},
		{raw: "about:blank", want: ""},
		{raw: "file:///etc/passwd", want: ""},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalHistoryURL(tt.raw))
		})
	}
}

func TestRecordVisit_CreatesNewEntry(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockHistoryRepository(t)

	repo.EXPECT().FindByURL(mock.Anything, "https://example.com/docs").Return(nil, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(entry *entity.HistoryEntry) bool {
		return entry.URL == "https://example.com/docs" && entry.VisitCount == 1
	})).Return(nil).Once()

	uc := NewRecordHistoryUseCase(ctx, repo)
	uc.RecordVisit(ctx, "https://example.com/docs#intro")
	uc.RecordVisit(ctx, "https://example.com/docs#api")
	uc.Close()
}

func TestRecordVisit_IncrementsExistingEntry(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockHistoryRepository(t)
	existing := entity.NewHistoryEntry("https://example.com/", "Example")
	existing.ID = 7

	repo.EXPECT().FindByURL(mock.Anything, "https://example.com/").Return(existing, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(entry *entity.HistoryEntry) bool {
		return entry.ID == 7 && entry.VisitCount == 2
	})).Return(nil).Once()

	uc := NewRecordHistoryUseCase(ctx, repo)
	uc.RecordVisit(ctx, "https://example.com/")
	uc.Close()
}

func TestRecordVisit_IgnoresNonWebURLs(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockHistoryRepository(t)

	uc := NewRecordHistoryUseCase(ctx, repo)
	uc.RecordVisit(ctx, "about:blank")
	uc.RecordVisit(ctx, "data:text/html,hi")
	uc.RecordTitle(ctx, "about:blank", "Blank")
	uc.Close()

	repo.AssertNotCalled(t, "FindByURL", mock.Anything, mock.Anything)
}

func TestRecordTitle_UpdatesAfterVisit(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockHistoryRepository(t)

	visit := repo.EXPECT().FindByURL(mock.Anything, "https://example.com/").Return(nil, nil).Once()
	save := repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once().NotBefore(visit)
	repo.EXPECT().FindByURL(mock.Anything, "https://example.com/").
		Return(entity.NewHistoryEntry("https://example.com/", ""), nil).Once().NotBefore(save)
	repo.EXPECT().UpdateTitle(mock.Anything, "https://example.com/", "Example Domain").
		Return(nil).Once().NotBefore(save)

	uc := NewRecordHistoryUseCase(ctx, repo)
	uc.RecordVisit(ctx, "https://example.com/")
	uc.RecordTitle(ctx, "https://example.com/#top", "Example Domain")
	uc.RecordTitle(ctx, "https://example.com/", "   ")
	uc.Close()
}

func TestRecordTitle_BeforeVisitIsKeptForTheVisit(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockHistoryRepository(t)

	repo.EXPECT().FindByURL(mock.Anything, "https://example.com/").Return(nil, nil).Twice()
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(entry *entity.HistoryEntry) bool {
		return entry.URL == "https://example.com/" && entry.Title == "Example Domain" && entry.VisitCount == 1
	})).Return(nil).Once()

	uc := NewRecordHistoryUseCase(ctx, repo)
	uc.RecordTitle(ctx, "https://example.com/", "Example Domain")
	uc.RecordVisit(ctx, "https://example.com/")
	uc.Close()

	repo.AssertNotCalled(t, "UpdateTitle", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordTitle_EarlyTitleOnlyAppliesToItsURL(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockHistoryRepository(t)

	repo.EXPECT().FindByURL(mock.Anything, mock.Anything).Return(nil, nil).Times(3)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(entry *entity.HistoryEntry) bool {
		return entry.URL == "https://other.example/" && entry.Title == ""
	})).Return(nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(entry *entity.HistoryEntry) bool {
		return entry.URL == "https://example.com/" && entry.Title == "Example Domain"
	})).Return(nil).Once()

	uc := NewRecordHistoryUseCase(ctx, repo)
	uc.RecordTitle(ctx, "https://example.com/", "Example Domain")
	uc.RecordVisit(ctx, "https://other.example/")
	uc.RecordVisit(ctx, "https://example.com/")
	uc.Close()
}

func TestRecordVisit_RepositoryErrorsAreLogged(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockHistoryRepository(t)

	repo.EXPECT().FindByURL(mock.Anything, "https://a.example/").Return(nil, errors.New("disk I/O error")).Once()
	repo.EXPECT().FindByURL(mock.Anything, "https://b.example/").Return(nil, nil).Once()
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	uc := NewRecordHistoryUseCase(ctx, repo)
	uc.RecordVisit(ctx, "https://a.example/")
	uc.RecordVisit(ctx, "https://b.example/")
	uc.Close()
}

func TestRecordHistory_CloseIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockHistoryRepository(t)

	uc := NewRecordHistoryUseCase(ctx, repo)
	uc.Close()
	uc.Close()

	uc.RecordVisit(ctx, "https://late.example/")
	repo.AssertNotCalled(t, "FindByURL", mock.Anything, mock.Anything)
}

func TestRecordHistory_ListAndClear(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockHistoryRepository(t)
	entries := []*entity.HistoryEntry{entity.NewHistoryEntry("https://example.com/", "Example")}

	repo.EXPECT().GetRecent(mock.Anything, 50, 0).Return(entries, nil).Once()
	repo.EXPECT().GetRecent(mock.Anything, 5, 0).Return(entries, nil).Once()
	repo.EXPECT().DeleteAll(mock.Anything).Return(nil).Once()

	uc := NewRecordHistoryUseCase(ctx, repo)
	defer uc.Close()

	got, err := uc.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	_, err = uc.ListRecent(ctx, 5)
	require.NoError(t, err)

	require.NoError(t, uc.Clear(ctx))
}

func TestRecordHistory_ClearWrapsErrors(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockHistoryRepository(t)
	repo.EXPECT().DeleteAll(mock.Anything).Return(errors.New("locked")).Once()

	uc := NewRecordHistoryUseCase(ctx, repo)
	defer uc.Close()

	err := uc.Clear(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear history")
}
