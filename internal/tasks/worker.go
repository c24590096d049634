package tasks

import (
	"photo-portfolio-backend/config"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// StartWorker runs the asynq server in a background goroutine. Queue
// priorities keep reindex jobs from starving notification emails.
func StartWorker(redisOpt asynq.RedisClientOpt, handler *TaskHandler) *asynq.Server {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCommentNotification, handler.HandleCommentNotification)
	mux.HandleFunc(TypeSearchReindex, handler.HandleSearchReindex)

	go func() {
		if err := srv.Run(mux); err != nil {
			config.Logger.Fatal("Asynq worker failed", zap.Error(err))
		}
	}()

	config.Logger.Info("Asynq worker started")
	return srv
}
