// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user with the given role.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(role models.Role, overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)
	user := &models.User{
		Email:       gofakeit.Email(),
		Password:    string(hashed),
		FirstName:   gofakeit.FirstName(),
		LastName:    gofakeit.LastName(),
		Role:        role,
		Bio:         gofakeit.Sentence(10),
		ProfilePic:  fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		PhoneNumber: gofakeit.Phone(),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateCategory persists a category with a unique name.
func (f *Factory) CreateCategory(name string) (*models.Category, error) {
	category := &models.Category{Name: name}
	if err := f.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// CreateTag persists a tag with a unique name.
func (f *Factory) CreateTag(name string) (*models.Tag, error) {
	tag := &models.Tag{Name: name}
	if err := f.db.Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// CreateBlog constructs and persists a sample blog for the given author.
// Published blogs get a publication date inside the creation spread.
func (f *Factory) CreateBlog(author *models.User, overrides ...func(*models.Blog)) (*models.Blog, error) {
	blog := &models.Blog{
		Title:    gofakeit.Sentence(6),
		Content:  gofakeit.Paragraph(2, 4, 8, "\n\n"),
		AuthorID: author.ID,
	}

	// realistic created_at spread over the last 90 days
	daysBack := f.rng.Intn(90)
	hoursBack := f.rng.Intn(24)
	blog.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	if f.rng.Intn(100) < 75 {
		blog.IsPublished = true
		date := blog.CreatedAt.Add(time.Duration(f.rng.Intn(48)) * time.Hour).Truncate(24 * time.Hour)
		blog.PublicationDate = &date
	}

	for _, override := range overrides {
		override(blog)
	}

	if err := f.db.Create(blog).Error; err != nil {
		return nil, err
	}
	return blog, nil
}

// AttachTags links the given tags to the blog.
func (f *Factory) AttachTags(blog *models.Blog, tags []models.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	return f.db.Model(blog).Association("Tags").Append(&tags)
}

// CreateComment persists a sample comment on the blog, optionally as a reply
// to parent.
func (f *Factory) CreateComment(user *models.User, blog *models.Blog, parent *models.Comment, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(8),
		UserID:  user.ID,
		BlogID:  blog.ID,
	}
	if parent != nil {
		comment.ParentID = &parent.ID
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateUpvote records an upvote from user on comment.
func (f *Factory) CreateUpvote(user *models.User, comment *models.Comment) error {
	return f.db.Model(comment).Association("UpvotedBy").Append(user)
}

// CreateDownvote records a downvote from user on comment.
func (f *Factory) CreateDownvote(user *models.User, comment *models.Comment) error {
	return f.db.Model(comment).Association("DownvotedBy").Append(user)
}
