package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/model"
)

const blobTimeLayout = time.RFC3339Nano

// taskRecord is the wire shape of one task inside the blob. The key
// names (including dueDate for the creation timestamp) match the
// original unversioned payload, so old blobs keep loading.
type taskRecord struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	Completed     bool   `json:"completed"`
	Category      string `json:"category"`
	DueDate       string `json:"dueDate"`
	EstimatedTime string `json:"estimatedTime,omitempty"`
}

func encodeTasks(tasks []model.Task) ([]byte, error) {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskRecord{
			ID:            t.ID,
			Text:          t.Text,
			Completed:     t.Completed,
			Category:      string(t.Category),
			DueDate:       t.CreatedAt.UTC().Format(blobTimeLayout),
			EstimatedTime: t.EstimatedTime,
		})
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	return payload, nil
}

// decodeTasks is tolerant per record: unknown categories coerce to
// personal and records without an id or text are dropped. Only a blob
// that fails to parse at all is reported as corrupt.
func decodeTasks(raw []byte) ([]model.Task, error) {
	if len(raw) == 0 || strings.TrimSpace(string(raw)) == "" {
		return []model.Task{}, nil
	}
	var records []taskRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return []model.Task{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	out := make([]model.Task, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.ID) == "" || strings.TrimSpace(r.Text) == "" {
			continue
		}
		createdAt, err := time.Parse(blobTimeLayout, r.DueDate)
		if err != nil {
			createdAt = time.Time{}
		}
		out = append(out, model.Task{
			ID:            r.ID,
			Text:          r.Text,
			Completed:     r.Completed,
			Category:      model.ParseCategory(r.Category),
			CreatedAt:     createdAt,
			EstimatedTime: r.EstimatedTime,
		})
	}
	return out, nil
}
