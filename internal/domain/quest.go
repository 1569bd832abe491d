package domain

// QuestBucket names one of the two mutually exclusive quest sets
type QuestBucket string

const (
	BucketInProgress QuestBucket = "in_progress"
	BucketCompleted  QuestBucket = "completed"
)

// ParseQuestBucket converts a bucket token, accepting the empty string as in-progress
func ParseQuestBucket(token string) (QuestBucket, bool) {
	switch QuestBucket(token) {
	case "", BucketInProgress:
		return BucketInProgress, true
	case BucketCompleted:
		return BucketCompleted, true
	}
	return "", false
}

// QuestEntry is a single quest. Title never changes after creation and
// Descriptions is an append-only log.
type QuestEntry struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Descriptions []string `json:"descriptions"`
}

// QuestListing is a bucket's entries together with its display label
type QuestListing struct {
	Bucket  QuestBucket  `json:"bucket"`
	Label   string       `json:"label"`
	Entries []QuestEntry `json:"entries"`
}
