package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ExportStatusCompleted = "completed"
	ExportStatusFailed    = "failed"
)

// ExportRecord describes one "generate PDF" action and its outcome.
type ExportRecord struct {
	ID        uuid.UUID              `json:"id"`
	FileName  string                 `json:"file_name"`
	Location  string                 `json:"location"`
	FileSize  int                    `json:"file_size"`
	Status    string                 `json:"status"`
	FullName  string                 `json:"full_name"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"created_at"`
}
