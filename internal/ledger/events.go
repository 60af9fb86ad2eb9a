package ledger

import (
	"context"

	"github.com/bizdesk/backend/internal/events"
	"github.com/bizdesk/backend/internal/models"
	"github.com/ryanuber/go-glob"
)

// TaskEvents returns the monetary events of all tasks whose title matches
// the glob pattern, ordered by date. An empty pattern matches every task.
func (l Ledger) TaskEvents(ctx context.Context, pattern string) ([]events.Event, error) {
	snapshot, err := models.LoadSnapshot(l.DB.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	if pattern == "" {
		pattern = "*"
	}

	result := make([]events.Event, 0)
	for _, task := range snapshot.Tasks {
		if !glob.Glob(pattern, task.Title) {
			continue
		}
		result = append(result, events.Normalize(task)...)
	}

	events.Sort(result)
	return result, nil
}
