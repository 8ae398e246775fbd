package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/dbx"
	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/repomanager"
)

// PostService implements blog post operations. Mutating operations check
// that the caller owns the post; a mismatch yields common.ErrorForbidden.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager) *PostService {
	return &PostService{db: db, repomanager: m}
}

func (s *PostService) Create(ctx context.Context, authorID, title, body string) (*models.Post, error) {
	post := &models.Post{AuthorID: authorID, Title: title, Body: body}
	p, err := s.repomanager.Posts(s.db).Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return p, nil
}

func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	return s.repomanager.Posts(s.db).SelectAll(ctx)
}

func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.repomanager.Posts(s.db).GetByID(ctx, id)
}

func (s *PostService) Update(ctx context.Context, authorID, id, title, body string) (*models.Post, error) {
	repo := s.repomanager.Posts(s.db)

	post, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != authorID {
		return nil, common.ErrorForbidden
	}

	post.Title = title
	post.Body = body
	if err := repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	return post, nil
}

// Delete removes a post together with its attachment records in a single
// transaction.
func (s *PostService) Delete(ctx context.Context, authorID, id string) error {
	post, err := s.repomanager.Posts(s.db).GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID != authorID {
		return common.ErrorForbidden
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		attachments, err := s.repomanager.Attachments(tx).SelectByPost(ctx, id)
		if err != nil {
			return err
		}
		for _, a := range attachments {
			if err := s.repomanager.Attachments(tx).Delete(ctx, a.ID); err != nil && !errors.Is(err, common.ErrorNotFound) {
				return err
			}
		}
		return s.repomanager.Posts(tx).Delete(ctx, id)
	})
}
