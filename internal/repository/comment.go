package repository

import (
	"context"
	"errors"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment and vote operations.
//
// The four vote operations implement the toggle contract: a user is a member
// of at most one of the two vote sets, the opposite membership is removed
// before the target one is added, and all four are idempotent — none errors
// on a missing or duplicate membership.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByBlog(ctx context.Context, blogID uint) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	DeleteSubtree(ctx context.Context, id uint) error

	Upvote(ctx context.Context, commentID, userID uint) error
	Downvote(ctx context.Context, commentID, userID uint) error
	RemoveUpvote(ctx context.Context, commentID, userID uint) error
	RemoveDownvote(ctx context.Context, commentID, userID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Omit("User", "Blog", "Parent", "Replies", "UpvotedBy", "DownvotedBy").
		Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("UpvotedBy").
		Preload("DownvotedBy").
		First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	comment.UpvoteCount = len(comment.UpvotedBy)
	comment.DownvoteCount = len(comment.DownvotedBy)
	return &comment, nil
}

func (r *commentRepository) ListByBlog(ctx context.Context, blogID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("UpvotedBy").
		Preload("DownvotedBy").
		Where("blog_id = ?", blogID).
		Order("created_at, id").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	for i := range comments {
		comments[i].UpvoteCount = len(comments[i].UpvotedBy)
		comments[i].DownvoteCount = len(comments[i].DownvotedBy)
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Omit("User", "Blog", "Parent", "Replies", "UpvotedBy", "DownvotedBy").
		Save(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// DeleteSubtree removes the comment and every descendant reply in one
// transaction. Replies are never re-parented.
func (r *commentRepository) DeleteSubtree(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := []uint{id}
		frontier := []uint{id}
		for len(frontier) > 0 {
			var children []uint
			if err := tx.Model(&models.Comment{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error; err != nil {
				return err
			}
			ids = append(ids, children...)
			frontier = children
		}
		return tx.Where("id IN ?", ids).Delete(&models.Comment{}).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// vote runs the remove-from-opposite/add-to-target pair inside one
// transaction scoped to the comment, so two concurrent opposite votes from
// the same user cannot both partially apply.
func (r *commentRepository) vote(ctx context.Context, commentID, userID uint, target, opposite string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, commentID).Error; err != nil {
			return err
		}
		voter := models.User{ID: userID}
		if err := tx.Model(&comment).Association(opposite).Delete(&voter); err != nil {
			return err
		}
		// Append upserts the join row, so re-voting is a no-op.
		return tx.Model(&comment).Association(target).Append(&voter)
	})
	return r.wrapVoteErr(commentID, err)
}

func (r *commentRepository) unvote(ctx context.Context, commentID, userID uint, target string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, commentID).Error; err != nil {
			return err
		}
		voter := models.User{ID: userID}
		return tx.Model(&comment).Association(target).Delete(&voter)
	})
	return r.wrapVoteErr(commentID, err)
}

func (r *commentRepository) wrapVoteErr(commentID uint, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Comment", commentID)
	}
	return models.NewInternalError(err)
}

func (r *commentRepository) Upvote(ctx context.Context, commentID, userID uint) error {
	return r.vote(ctx, commentID, userID, "UpvotedBy", "DownvotedBy")
}

func (r *commentRepository) Downvote(ctx context.Context, commentID, userID uint) error {
	return r.vote(ctx, commentID, userID, "DownvotedBy", "UpvotedBy")
}

func (r *commentRepository) RemoveUpvote(ctx context.Context, commentID, userID uint) error {
	return r.unvote(ctx, commentID, userID, "UpvotedBy")
}

func (r *commentRepository) RemoveDownvote(ctx context.Context, commentID, userID uint) error {
	return r.unvote(ctx, commentID, userID, "DownvotedBy")
}
