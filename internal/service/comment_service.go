package service

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/policy"
	"inkwell/internal/repository"
)

// CommentService manages the threaded comment tree and the vote engine.
// Every successful write invalidates the cached views of the owning blog.
type CommentService struct {
	commentRepo repository.CommentRepository
	blogRepo    repository.BlogRepository
	cache       *cache.Client
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	blogRepo repository.BlogRepository,
	cacheClient *cache.Client,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
		cache:       cacheClient,
	}
}

// CreateComment creates a top-level comment on a blog.
func (s *CommentService) CreateComment(ctx context.Context, user *models.User, blogID uint, content string) (*models.CommentView, error) {
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if _, err := s.blogRepo.GetByID(ctx, blogID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		BlogID:  blogID,
		UserID:  user.ID,
		Content: content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	s.cache.InvalidateBlog(ctx, blogID)
	return s.view(ctx, comment.ID)
}

// Reply creates a child comment under parentID. The reply always lives on
// the parent's blog, regardless of what the caller claims.
func (s *CommentService) Reply(ctx context.Context, user *models.User, parentID uint, content string) (*models.CommentView, error) {
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	parent, err := s.commentRepo.GetByID(ctx, parentID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		BlogID:   parent.BlogID,
		UserID:   user.ID,
		ParentID: &parent.ID,
		Content:  content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	s.cache.InvalidateBlog(ctx, parent.BlogID)
	return s.view(ctx, comment.ID)
}

// UpdateComment edits a comment's content. Only the comment's author or a
// privileged user may edit it.
func (s *CommentService) UpdateComment(ctx context.Context, user *models.User, commentID uint, content string) (*models.CommentView, error) {
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutateComment(user, comment) {
		return nil, models.NewForbiddenError("You do not have permission to perform this action on another user's resource")
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	s.cache.InvalidateBlog(ctx, comment.BlogID)
	return s.view(ctx, comment.ID)
}

// DeleteComment removes a comment and all of its descendants. Allowed for
// admins and staff, the comment's author, and the author of the owning blog.
func (s *CommentService) DeleteComment(ctx context.Context, user *models.User, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	blog, err := s.blogRepo.GetByID(ctx, comment.BlogID)
	if err != nil {
		return err
	}
	if !policy.CanDeleteComment(user, comment, blog.AuthorID) {
		return models.NewForbiddenError("You do not have permission to delete this comment")
	}
	if err := s.commentRepo.DeleteSubtree(ctx, commentID); err != nil {
		return err
	}
	s.cache.InvalidateBlog(ctx, comment.BlogID)
	return nil
}

// GetComment returns a single comment with its vote counts.
func (s *CommentService) GetComment(ctx context.Context, commentID uint) (*models.CommentView, error) {
	return s.view(ctx, commentID)
}

// ListComments returns the threaded comment tree of a blog.
func (s *CommentService) ListComments(ctx context.Context, blogID uint) ([]models.CommentView, error) {
	if _, err := s.blogRepo.GetByID(ctx, blogID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}
	return models.BuildCommentTree(comments), nil
}

type voteOp func(ctx context.Context, commentID, userID uint) error

func (s *CommentService) applyVote(ctx context.Context, user *models.User, commentID uint, op voteOp) (*models.CommentView, error) {
	if err := op(ctx, commentID, user.ID); err != nil {
		return nil, err
	}
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateBlog(ctx, comment.BlogID)
	view := models.NewCommentView(comment)
	return &view, nil
}

// Upvote adds the user to the comment's upvoter set, removing any standing
// downvote first. Upvoting twice is a no-op.
func (s *CommentService) Upvote(ctx context.Context, user *models.User, commentID uint) (*models.CommentView, error) {
	return s.applyVote(ctx, user, commentID, s.commentRepo.Upvote)
}

// Downvote mirrors Upvote for the downvoter set.
func (s *CommentService) Downvote(ctx context.Context, user *models.User, commentID uint) (*models.CommentView, error) {
	return s.applyVote(ctx, user, commentID, s.commentRepo.Downvote)
}

// RemoveUpvote withdraws the user's upvote if present.
func (s *CommentService) RemoveUpvote(ctx context.Context, user *models.User, commentID uint) (*models.CommentView, error) {
	return s.applyVote(ctx, user, commentID, s.commentRepo.RemoveUpvote)
}

// RemoveDownvote withdraws the user's downvote if present.
func (s *CommentService) RemoveDownvote(ctx context.Context, user *models.User, commentID uint) (*models.CommentView, error) {
	return s.applyVote(ctx, user, commentID, s.commentRepo.RemoveDownvote)
}

func (s *CommentService) view(ctx context.Context, commentID uint) (*models.CommentView, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	view := models.NewCommentView(comment)
	return &view, nil
}
