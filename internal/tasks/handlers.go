package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	blogRepositories "photo-portfolio-backend/blog/repositories"
	"photo-portfolio-backend/config"
	galleryRepositories "photo-portfolio-backend/galleries/repositories"
	imageRepositories "photo-portfolio-backend/images/repositories"
	"photo-portfolio-backend/internal/bootstrap"
	searchRepositories "photo-portfolio-backend/search/repositories"
	"photo-portfolio-backend/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskHandler holds the dependencies the background workers need
type TaskHandler struct {
	GalleryRepo galleryRepositories.GalleryRepository
	ImageRepo   imageRepositories.ImageRepository
	BlogRepo    blogRepositories.BlogPostRepository
	SearchRepo  searchRepositories.SearchRepositoryInterface
}

// HandleCommentNotification emails the moderation address about a new
// pending comment.
func (h *TaskHandler) HandleCommentNotification(ctx context.Context, t *asynq.Task) error {
	var payload CommentNotificationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal comment notification payload: %w", err)
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		config.Logger.Warn("ADMIN_EMAIL not set, dropping comment notification",
			zap.String("commentID", payload.CommentID),
		)
		return nil
	}

	subject := fmt.Sprintf("New comment from %s awaiting moderation", payload.AuthorName)
	plain := fmt.Sprintf("%s commented on the %s %q:\n\n%s",
		payload.AuthorName, payload.TargetType, payload.TargetTitle, payload.Body)
	html := utils.CommentNotificationBody(payload.AuthorName, payload.TargetType, payload.TargetTitle, payload.Body)

	if err := utils.SendEmail(adminEmail, plain, subject, html, ""); err != nil {
		return fmt.Errorf("failed to send comment notification: %w", err)
	}

	config.Logger.Info("Comment notification sent",
		zap.String("commentID", payload.CommentID),
	)
	return nil
}

// HandleSearchReindex rebuilds all bleve indexes from the database
func (h *TaskHandler) HandleSearchReindex(ctx context.Context, t *asynq.Task) error {
	config.Logger.Info("Starting background search reindex")
	bootstrap.IndexSearchData(ctx, h.GalleryRepo, h.ImageRepo, h.BlogRepo, h.SearchRepo)
	config.Logger.Info("Background search reindex complete")
	return nil
}
