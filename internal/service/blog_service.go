// Package service implements the business rules on top of the repositories:
// blog lifecycle, the comment tree, the vote engine and profile management.
package service

import (
	"context"
	"time"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/policy"
	"inkwell/internal/repository"
)

// BlogService owns the blog lifecycle and the read-through cache of
// serialized blog views.
type BlogService struct {
	blogRepo     repository.BlogRepository
	commentRepo  repository.CommentRepository
	taxonomyRepo repository.TaxonomyRepository
	cache        *cache.Client
}

// BlogWriteInput carries the caller-supplied fields of a blog create/update.
// Nil pointers (and empty strings for title/content on update) leave the
// corresponding field unchanged.
type BlogWriteInput struct {
	Title       string
	Content     string
	IsPublished *bool
	CategoryID  *uint
	TagIDs      []uint
}

func NewBlogService(
	blogRepo repository.BlogRepository,
	commentRepo repository.CommentRepository,
	taxonomyRepo repository.TaxonomyRepository,
	cacheClient *cache.Client,
) *BlogService {
	return &BlogService{
		blogRepo:     blogRepo,
		commentRepo:  commentRepo,
		taxonomyRepo: taxonomyRepo,
		cache:        cacheClient,
	}
}

const maxTitleLen = 255

// today returns the current date truncated to midnight UTC.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

func (s *BlogService) resolveTags(ctx context.Context, ids []uint) ([]models.Tag, error) {
	if ids == nil {
		return nil, nil
	}
	return s.taxonomyRepo.GetTagsByIDs(ctx, ids)
}

// CreateBlog creates a blog owned by the requester. Only Authors, Admins and
// staff may create blogs.
func (s *BlogService) CreateBlog(ctx context.Context, author *models.User, in BlogWriteInput) (*models.BlogWriteView, error) {
	if !policy.CanWriteBlogs(author) {
		return nil, models.NewForbiddenError("Only Authors and Admins are allowed to perform this action")
	}
	if in.Title == "" || in.Content == "" {
		return nil, models.NewValidationError("Title and content are required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 255 characters)")
	}
	if in.CategoryID != nil {
		if _, err := s.taxonomyRepo.GetCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
	}
	tags, err := s.resolveTags(ctx, in.TagIDs)
	if err != nil {
		return nil, err
	}

	blog := &models.Blog{
		Title:      in.Title,
		Content:    in.Content,
		AuthorID:   author.ID,
		CategoryID: in.CategoryID,
	}
	if in.IsPublished != nil && *in.IsPublished {
		blog.IsPublished = true
		date := today()
		blog.PublicationDate = &date
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}
	if len(tags) > 0 {
		if err := s.blogRepo.ReplaceTags(ctx, blog, tags); err != nil {
			return nil, err
		}
	}

	s.cache.InvalidateBlogList(ctx)

	view := models.NewBlogWriteView(blog)
	return &view, nil
}

// UpdateBlog applies a partial update. Non-privileged users may only touch
// their own blogs. The publication date is stamped when is_published
// transitions to true and is never cleared on unpublish.
func (s *BlogService) UpdateBlog(ctx context.Context, user *models.User, blogID uint, in BlogWriteInput) (*models.BlogWriteView, error) {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutateBlog(user, blog) {
		return nil, models.NewForbiddenError("You do not have permission to perform this action on another user's resource")
	}

	if in.Title != "" {
		if len(in.Title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 255 characters)")
		}
		blog.Title = in.Title
	}
	if in.Content != "" {
		blog.Content = in.Content
	}
	if in.CategoryID != nil {
		if _, err := s.taxonomyRepo.GetCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		blog.CategoryID = in.CategoryID
	}
	if in.IsPublished != nil {
		if *in.IsPublished && !blog.IsPublished {
			date := today()
			blog.PublicationDate = &date
		}
		blog.IsPublished = *in.IsPublished
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}
	if in.TagIDs != nil {
		tags, err := s.resolveTags(ctx, in.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.blogRepo.ReplaceTags(ctx, blog, tags); err != nil {
			return nil, err
		}
	}

	s.cache.InvalidateBlog(ctx, blog.ID)

	view := models.NewBlogWriteView(blog)
	return &view, nil
}

// DeleteBlog removes the blog and its whole comment set.
func (s *BlogService) DeleteBlog(ctx context.Context, user *models.User, blogID uint) error {
	blog, err := s.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return err
	}
	if !policy.CanMutateBlog(user, blog) {
		return models.NewForbiddenError("You do not have permission to perform this action on another user's resource")
	}
	if err := s.blogRepo.Delete(ctx, blogID); err != nil {
		return err
	}
	s.cache.InvalidateBlog(ctx, blogID)
	return nil
}

// ListBlogs returns the collection view. The unconstrained default listing is
// served through the list cache; filtered or searched listings always hit the
// store.
func (s *BlogService) ListBlogs(ctx context.Context, filter repository.BlogFilter) ([]models.BlogListView, error) {
	fetch := func(dest *[]models.BlogListView) error {
		blogs, err := s.blogRepo.List(ctx, filter)
		if err != nil {
			return err
		}
		views := make([]models.BlogListView, 0, len(blogs))
		for _, b := range blogs {
			views = append(views, models.NewBlogListView(b))
		}
		*dest = views
		return nil
	}

	var views []models.BlogListView
	if filter.Default() {
		err := s.cache.Aside(ctx, cache.BlogListKey, "blog_list", &views, func() error {
			return fetch(&views)
		})
		return views, err
	}
	if err := fetch(&views); err != nil {
		return nil, err
	}
	return views, nil
}

// GetBlog returns the detail view with threaded comments and vote counts,
// served through the per-blog cache.
func (s *BlogService) GetBlog(ctx context.Context, blogID uint) (*models.BlogDetailView, error) {
	var view models.BlogDetailView
	err := s.cache.Aside(ctx, cache.BlogKey(blogID), "blog_detail", &view, func() error {
		blog, err := s.blogRepo.GetByID(ctx, blogID)
		if err != nil {
			return err
		}
		comments, err := s.commentRepo.ListByBlog(ctx, blogID)
		if err != nil {
			return err
		}
		view = models.NewBlogDetailView(blog, comments)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}
