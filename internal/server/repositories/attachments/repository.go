package attachments

import (
	"context"

	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, attachment *models.Attachment) (*models.Attachment, error)
	SelectByPost(ctx context.Context, postID string) ([]*models.Attachment, error)
	Delete(ctx context.Context, id string) error
}
