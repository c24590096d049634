package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	TypeCommentNotification = "comment:notify"
	TypeSearchReindex       = "search:reindex"
)

// CommentNotificationPayload carries everything the email handler needs so
// the worker never touches the database.
type CommentNotificationPayload struct {
	CommentID   string `json:"comment_id"`
	AuthorName  string `json:"author_name"`
	TargetType  string `json:"target_type"`
	TargetTitle string `json:"target_title"`
	Body        string `json:"body"`
}

func NewCommentNotificationTask(payload CommentNotificationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal comment notification payload: %w", err)
	}
	return asynq.NewTask(TypeCommentNotification, data, asynq.MaxRetry(5)), nil
}

// NewSearchReindexTask rebuilds every bleve index from the database. Queued
// nightly by cron and on demand from the admin surface.
func NewSearchReindexTask() *asynq.Task {
	return asynq.NewTask(TypeSearchReindex, nil, asynq.MaxRetry(2))
}
