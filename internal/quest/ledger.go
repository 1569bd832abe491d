package quest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/CraftQuest_Go/internal/domain"
	"github.com/osse101/CraftQuest_Go/internal/event"
	"github.com/osse101/CraftQuest_Go/internal/logger"
)

// Labels are the display names returned with each bucket's listing
type Labels struct {
	InProgress string
	Completed  string
}

// DefaultLabels returns the stock bucket labels
func DefaultLabels() Labels {
	return Labels{InProgress: domain.DefaultInProgressLabel, Completed: domain.DefaultCompletedLabel}
}

// Ledger holds quests in two disjoint buckets keyed by quest id.
// An id lives in at most one bucket; completing moves the same entry across.
type Ledger struct {
	mu         sync.RWMutex
	inProgress map[int]*domain.QuestEntry
	completed  map[int]*domain.QuestEntry
	labels     Labels
	bus        event.Bus
}

// NewLedger creates an empty ledger
func NewLedger(labels Labels, bus event.Bus) *Ledger {
	if labels.InProgress == "" {
		labels.InProgress = domain.DefaultInProgressLabel
	}
	if labels.Completed == "" {
		labels.Completed = domain.DefaultCompletedLabel
	}
	if bus == nil {
		bus = event.NopBus{}
	}
	return &Ledger{
		inProgress: make(map[int]*domain.QuestEntry),
		completed:  make(map[int]*domain.QuestEntry),
		labels:     labels,
		bus:        bus,
	}
}

// AddQuest creates an in-progress quest with no descriptions
func (l *Ledger) AddQuest(ctx context.Context, id int, title string) error {
	if id < 0 {
		return fmt.Errorf(ErrFmtInvalidID, domain.ErrInvalidID, id)
	}
	title = normalize(title)
	if title == "" {
		return fmt.Errorf(ErrFmtEmptyTitle, domain.ErrInvalidTitle)
	}

	l.mu.Lock()
	if bucket, ok := l.bucketOf(id); ok {
		l.mu.Unlock()
		return fmt.Errorf(ErrFmtDuplicateID, domain.ErrDuplicateID, id, bucket)
	}
	l.inProgress[id] = &domain.QuestEntry{ID: id, Title: title, Descriptions: []string{}}
	l.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgQuestAdded, "quest_id", id, "title", title)
	l.publish(ctx, event.NewQuestEvent(event.QuestAdded, id, title, ""))
	return nil
}

// AppendDescription appends text to the quest in whichever bucket holds id.
// Empty or whitespace-only text is accepted and changes nothing. Other text is
// stored as given, NFC-normalised but not trimmed.
func (l *Ledger) AppendDescription(ctx context.Context, id int, text string) error {
	text = normalizeText(text)

	l.mu.Lock()
	entry, ok := l.find(id)
	if !ok {
		l.mu.Unlock()
		return fmt.Errorf(ErrFmtNotFound, domain.ErrQuestNotFound, id)
	}
	if isBlank(text) {
		l.mu.Unlock()
		return nil
	}
	entry.Descriptions = append(entry.Descriptions, text)
	title := entry.Title
	l.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgQuestUpdated, "quest_id", id)
	l.publish(ctx, event.NewQuestEvent(event.QuestUpdated, id, title, text))
	return nil
}

// CompleteQuest moves an in-progress quest to completed, then appends text if given.
// Text follows the AppendDescription rules; whitespace-only text is not appended.
func (l *Ledger) CompleteQuest(ctx context.Context, id int, text string) error {
	text = normalizeText(text)
	if isBlank(text) {
		text = ""
	}

	l.mu.Lock()
	entry, ok := l.inProgress[id]
	if !ok {
		l.mu.Unlock()
		return fmt.Errorf(ErrFmtNotInProgress, domain.ErrQuestNotFound, id)
	}
	delete(l.inProgress, id)
	l.completed[id] = entry
	if text != "" {
		entry.Descriptions = append(entry.Descriptions, text)
	}
	title := entry.Title
	l.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgQuestCompleted, "quest_id", id)
	l.publish(ctx, event.NewQuestEvent(event.QuestCompleted, id, title, text))
	return nil
}

// RemoveQuest deletes id from whichever bucket holds it
func (l *Ledger) RemoveQuest(ctx context.Context, id int) error {
	l.mu.Lock()
	entry, ok := l.find(id)
	if !ok {
		l.mu.Unlock()
		return fmt.Errorf(ErrFmtNotFound, domain.ErrQuestNotFound, id)
	}
	delete(l.inProgress, id)
	delete(l.completed, id)
	l.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgQuestRemoved, "quest_id", id)
	l.publish(ctx, event.NewQuestEvent(event.QuestRemoved, id, entry.Title, ""))
	return nil
}

// Clear empties both buckets
func (l *Ledger) Clear(ctx context.Context) {
	l.mu.Lock()
	removed := len(l.inProgress) + len(l.completed)
	l.inProgress = make(map[int]*domain.QuestEntry)
	l.completed = make(map[int]*domain.QuestEntry)
	l.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgQuestsCleared, "removed", removed)
	l.publish(ctx, event.NewQuestEvent(event.QuestsCleared, 0, "", ""))
}

// Query returns copies of the bucket's entries in ascending id order
func (l *Ledger) Query(bucket domain.QuestBucket) ([]domain.QuestEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var src map[int]*domain.QuestEntry
	switch bucket {
	case domain.BucketInProgress:
		src = l.inProgress
	case domain.BucketCompleted:
		src = l.completed
	default:
		return nil, fmt.Errorf(ErrFmtBadBucket, domain.ErrInvalidBucket, bucket)
	}
	return sortedCopy(src), nil
}

// Listing returns the bucket's entries together with its label
func (l *Ledger) Listing(bucket domain.QuestBucket) (domain.QuestListing, error) {
	entries, err := l.Query(bucket)
	if err != nil {
		return domain.QuestListing{}, err
	}
	return domain.QuestListing{Bucket: bucket, Label: l.Label(bucket), Entries: entries}, nil
}

// Label returns the display label of a bucket
func (l *Ledger) Label(bucket domain.QuestBucket) string {
	if bucket == domain.BucketCompleted {
		return l.labels.Completed
	}
	return l.labels.InProgress
}

// Get returns a copy of the quest with id and the bucket holding it
func (l *Ledger) Get(id int) (domain.QuestEntry, domain.QuestBucket, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	bucket, ok := l.bucketOf(id)
	if !ok {
		return domain.QuestEntry{}, "", false
	}
	entry, _ := l.find(id)
	return copyEntry(entry), bucket, true
}

// Snapshot returns copies of both buckets
func (l *Ledger) Snapshot() (inProgress, completed map[int]domain.QuestEntry) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return copyBucket(l.inProgress), copyBucket(l.completed)
}

// Restore replaces both buckets. It fails without changes if an id is in both.
func (l *Ledger) Restore(ctx context.Context, inProgress, completed map[int]domain.QuestEntry) error {
	for id := range inProgress {
		if _, dup := completed[id]; dup {
			return fmt.Errorf(ErrFmtRestoreOverlap, domain.ErrDuplicateID, id)
		}
	}

	nextIn := make(map[int]*domain.QuestEntry, len(inProgress))
	for id, e := range inProgress {
		c := copyEntry(&e)
		c.ID = id
		nextIn[id] = &c
	}
	nextDone := make(map[int]*domain.QuestEntry, len(completed))
	for id, e := range completed {
		c := copyEntry(&e)
		c.ID = id
		nextDone[id] = &c
	}

	l.mu.Lock()
	l.inProgress = nextIn
	l.completed = nextDone
	l.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgLedgerRestored, "in_progress", len(nextIn), "completed", len(nextDone))
	return nil
}

func (l *Ledger) bucketOf(id int) (domain.QuestBucket, bool) {
	if _, ok := l.inProgress[id]; ok {
		return domain.BucketInProgress, true
	}
	if _, ok := l.completed[id]; ok {
		return domain.BucketCompleted, true
	}
	return "", false
}

func (l *Ledger) find(id int) (*domain.QuestEntry, bool) {
	if e, ok := l.inProgress[id]; ok {
		return e, true
	}
	e, ok := l.completed[id]
	return e, ok
}

func (l *Ledger) publish(ctx context.Context, evt event.Event) {
	if err := l.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// normalize trims and NFC-normalises a title so equal titles compare equal
func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// normalizeText NFC-normalises description text and keeps its spacing
func normalizeText(s string) string {
	return norm.NFC.String(s)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func copyEntry(e *domain.QuestEntry) domain.QuestEntry {
	out := *e
	out.Descriptions = append([]string{}, e.Descriptions...)
	return out
}

func copyBucket(src map[int]*domain.QuestEntry) map[int]domain.QuestEntry {
	out := make(map[int]domain.QuestEntry, len(src))
	for id, e := range src {
		out[id] = copyEntry(e)
	}
	return out
}

func sortedCopy(src map[int]*domain.QuestEntry) []domain.QuestEntry {
	ids := make([]int, 0, len(src))
	for id := range src {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]domain.QuestEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, copyEntry(src[id]))
	}
	return out
}
