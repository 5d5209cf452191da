package usecase

import (
	"context"
	"fmt"
	neturl "net/url"
	"strings"
	"sync"

	"github.com/bnema/burrow/internal/domain/entity"
	"github.com/bnema/burrow/internal/domain/repository"
	"github.com/bnema/burrow/internal/domain/url"
	"github.com/bnema/burrow/internal/logging"
)

const historyQueueSize = 64

type historyRecordKind int

const (
	historyVisit historyRecordKind = iota
	historyTitle
)

type historyRecord struct {
	kind  historyRecordKind
	url   string
	title string
}

// RecordHistoryUseCase persists visits of persistent tabs.
// Records are queued and written by a background worker so SQLite I/O
// never runs on the GTK main thread.
type RecordHistoryUseCase struct {
	repo repository.HistoryRepository
	ctx  context.Context

	queue chan historyRecord
	done  chan struct{}
	wg    sync.WaitGroup
	once  sync.Once

	mu      sync.Mutex
	lastURL string

	// title seen before its visit row existed; worker-owned
	earlyTitle historyRecord
}

// NewRecordHistoryUseCase starts the history worker. Call Close on shutdown.
func NewRecordHistoryUseCase(ctx context.Context, repo repository.HistoryRepository) *RecordHistoryUseCase {
	uc := &RecordHistoryUseCase{
		repo:  repo,
		ctx:   ctx,
		queue: make(chan historyRecord, historyQueueSize),
		done:  make(chan struct{}),
	}

	uc.wg.Add(1)
	go uc.worker()

	return uc
}

// Close stops the worker after draining pending records.
func (uc *RecordHistoryUseCase) Close() {
	uc.once.Do(func() {
		close(uc.done)
		uc.wg.Wait()
	})
}

// RecordVisit queues a visit. Non-web URIs, fragment-only changes and
// repeats of the previous visit are ignored.
func (uc *RecordHistoryUseCase) RecordVisit(ctx context.Context, uri string) {
	historyURL := canonicalHistoryURL(uri)
	if historyURL == "" {
		return
	}

	uc.mu.Lock()
	if uc.lastURL == historyURL {
		uc.mu.Unlock()
		return
	}
	uc.lastURL = historyURL
	uc.mu.Unlock()

	uc.enqueue(ctx, historyRecord{kind: historyVisit, url: historyURL})
}

// RecordTitle queues a title update for an already recorded URL.
func (uc *RecordHistoryUseCase) RecordTitle(ctx context.Context, uri, title string) {
	historyURL := canonicalHistoryURL(uri)
	if historyURL == "" || strings.TrimSpace(title) == "" {
		return
	}
	uc.enqueue(ctx, historyRecord{kind: historyTitle, url: historyURL, title: title})
}

func (uc *RecordHistoryUseCase) enqueue(ctx context.Context, record historyRecord) {
	select {
	case <-uc.done:
		return
	default:
	}

	select {
	case uc.queue <- record:
	default:
		logging.FromContext(ctx).Warn().
			Str("url", logging.TruncateURL(record.url, logURLMaxLen)).
			Msg("history queue full, dropping record")
	}
}

func (uc *RecordHistoryUseCase) worker() {
	defer uc.wg.Done()

	log := logging.FromContext(uc.ctx).With().
		Str("component", "history-worker").
		Logger()

	for {
		select {
		case record := <-uc.queue:
			uc.persist(record)
		case <-uc.done:
			log.Debug().Int("remaining", len(uc.queue)).Msg("draining history queue")
			for {
				select {
				case record := <-uc.queue:
					uc.persist(record)
				default:
					log.Debug().Msg("history worker shutdown complete")
					return
				}
			}
		}
	}
}

func (uc *RecordHistoryUseCase) persist(record historyRecord) {
	log := logging.FromContext(uc.ctx)

	existing, err := uc.repo.FindByURL(uc.ctx, record.url)
	if err != nil {
		log.Warn().Err(err).Str("url", record.url).Msg("failed to check history")
		return
	}

	if record.kind == historyTitle {
		if existing == nil {
			// The page title can be announced before the URI change.
			uc.earlyTitle = record
			return
		}
		if err := uc.repo.UpdateTitle(uc.ctx, record.url, record.title); err != nil {
			log.Warn().Err(err).Str("url", record.url).Msg("failed to update history title")
		}
		return
	}

	entry := existing
	if entry == nil {
		entry = entity.NewHistoryEntry(record.url, "")
	} else {
		entry.IncrementVisit()
	}
	if uc.earlyTitle.url == record.url {
		entry.Title = uc.earlyTitle.title
		uc.earlyTitle = historyRecord{}
	}
	if err := uc.repo.Save(uc.ctx, entry); err != nil {
		log.Warn().Err(err).Str("url", record.url).Msg("failed to save history")
	}
}

// ListRecent returns the most recent entries, newest first.
func (uc *RecordHistoryUseCase) ListRecent(ctx context.Context, limit int) ([]*entity.HistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	entries, err := uc.repo.GetRecent(ctx, limit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entries, nil
}

// Clear deletes all history entries.
func (uc *RecordHistoryUseCase) Clear(ctx context.Context) error {
	logging.FromContext(ctx).Info().Msg("clearing history")
	if err := uc.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// canonicalHistoryURL drops the fragment of web URLs and rejects everything else.
func canonicalHistoryURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if !url.IsWebURL(raw) {
		return ""
	}
	u, err := neturl.Parse(raw)
	if err != nil {
		return ""
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}
