package repository

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// BlogFilter holds the query parameters of a blog list request.
type BlogFilter struct {
	AuthorID    *uint
	CategoryID  *uint
	TagID       *uint
	IsPublished *bool
	Search      string
	OrderBy     string
	Limit       int
	Offset      int
}

// DefaultListLimit is the page size of the unconstrained default listing.
const DefaultListLimit = 20

// Default reports whether the filter selects the unconstrained default
// collection, which is the only shape the list cache stores. A non-default
// page size is a different payload and must bypass the cache.
func (f BlogFilter) Default() bool {
	return f.AuthorID == nil && f.CategoryID == nil && f.TagID == nil &&
		f.IsPublished == nil && f.Search == "" &&
		(f.OrderBy == "" || f.OrderBy == "id") &&
		(f.Limit == 0 || f.Limit == DefaultListLimit) && f.Offset == 0
}

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	GetByID(ctx context.Context, id uint) (*models.Blog, error)
	List(ctx context.Context, filter BlogFilter) ([]*models.Blog, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]*models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) error
	ReplaceTags(ctx context.Context, blog *models.Blog, tags []models.Tag) error
	Delete(ctx context.Context, id uint) error
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new BlogRepository
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// commentsCountSelect annotates blog rows with the live comment count.
const commentsCountSelect = "blogs.*, " +
	"(SELECT count(*) FROM comments WHERE comments.blog_id = blogs.id AND comments.deleted_at IS NULL) AS comments_count"

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).
		Select(commentsCountSelect).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		First(&blog, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Blog", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &blog, nil
}

// orderColumns restricts client-supplied ordering to known columns.
var orderColumns = map[string]string{
	"id":     "blogs.id",
	"-id":    "blogs.id DESC",
	"title":  "blogs.title",
	"-title": "blogs.title DESC",
}

func (r *blogRepository) List(ctx context.Context, filter BlogFilter) ([]*models.Blog, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Blog{}).
		Select(commentsCountSelect).
		Preload("Author").
		Preload("Category").
		Preload("Tags")

	if filter.AuthorID != nil {
		q = q.Where("blogs.author_id = ?", *filter.AuthorID)
	}
	if filter.CategoryID != nil {
		q = q.Where("blogs.category_id = ?", *filter.CategoryID)
	}
	if filter.IsPublished != nil {
		q = q.Where("blogs.is_published = ?", *filter.IsPublished)
	}
	if filter.TagID != nil {
		q = q.Joins("JOIN blog_tags bt ON bt.blog_id = blogs.id AND bt.tag_id = ?", *filter.TagID)
	}

	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		q = q.
			Joins("LEFT JOIN users ON users.id = blogs.author_id").
			Joins("LEFT JOIN categories ON categories.id = blogs.category_id").
			Joins("LEFT JOIN blog_tags search_bt ON search_bt.blog_id = blogs.id").
			Joins("LEFT JOIN tags ON tags.id = search_bt.tag_id").
			Where(
				"LOWER(blogs.title) LIKE ? OR LOWER(blogs.content) LIKE ? OR "+
					"LOWER(users.first_name) LIKE ? OR LOWER(users.email) LIKE ? OR "+
					"LOWER(categories.name) LIKE ? OR LOWER(tags.name) LIKE ?",
				pattern, pattern, pattern, pattern, pattern, pattern,
			).
			Group("blogs.id")
	}

	order, ok := orderColumns[filter.OrderBy]
	if !ok {
		order = "blogs.id"
	}
	q = q.Order(order)

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var blogs []*models.Blog
	if err := q.Find(&blogs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return blogs, nil
}

func (r *blogRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*models.Blog, error) {
	return r.List(ctx, BlogFilter{AuthorID: &authorID})
}

func (r *blogRepository) Update(ctx context.Context, blog *models.Blog) error {
	// Omit associations so tag updates go through ReplaceTags explicitly.
	if err := r.db.WithContext(ctx).Omit("Tags", "Author", "Category", "Comments").Save(blog).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *blogRepository) ReplaceTags(ctx context.Context, blog *models.Blog, tags []models.Tag) error {
	assoc := r.db.WithContext(ctx).Model(blog).Association("Tags")
	var err error
	if len(tags) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(&tags)
	}
	if err != nil {
		return models.NewInternalError(err)
	}
	blog.Tags = tags
	return nil
}

// Delete removes the blog and its entire comment set in one transaction.
func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("blog_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Blog{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
