package seed

import (
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Blog{},
		&models.Comment{},
	))
	return db
}

func TestFactory_CreateUser(t *testing.T) {
	db := setupSeedDB(t)
	f := NewFactory(db)

	user, err := f.CreateUser(models.RoleAuthor)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAuthor, user.Role)
	assert.NotEmpty(t, user.Email)
	assert.NotEmpty(t, user.FirstName)

	staff, err := f.CreateUser(models.RoleReader, func(u *models.User) {
		u.IsStaff = true
		u.Email = "staff@inkwell.dev"
	})
	require.NoError(t, err)
	assert.True(t, staff.IsStaff)
	assert.Equal(t, "staff@inkwell.dev", staff.Email)
}

func TestFactory_CreateCommentThread(t *testing.T) {
	db := setupSeedDB(t)
	f := NewFactory(db)

	author, err := f.CreateUser(models.RoleAuthor)
	require.NoError(t, err)
	blog, err := f.CreateBlog(author)
	require.NoError(t, err)

	root, err := f.CreateComment(author, blog, nil)
	require.NoError(t, err)
	assert.Nil(t, root.ParentID)

	reply, err := f.CreateComment(author, blog, root)
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, root.ID, *reply.ParentID)
	assert.Equal(t, blog.ID, reply.BlogID)
}

func TestSeeder_Seed(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Seed(8, 12))

	var userCount, blogCount, categoryCount, tagCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Blog{}).Count(&blogCount)
	db.Model(&models.Category{}).Count(&categoryCount)
	db.Model(&models.Tag{}).Count(&tagCount)

	// The admin account is seeded in addition to the requested users.
	assert.GreaterOrEqual(t, userCount, int64(8))
	assert.Equal(t, int64(12), blogCount)
	assert.Greater(t, categoryCount, int64(0))
	assert.Greater(t, tagCount, int64(0))

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@inkwell.dev").First(&admin).Error)
	assert.True(t, admin.IsStaff)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// Every blog belongs to a user who is allowed to write.
	var blogs []models.Blog
	require.NoError(t, db.Preload("Author").Find(&blogs).Error)
	for _, b := range blogs {
		assert.True(t, b.Author.Role.Can(models.CapWriteBlogs) || b.Author.IsStaff,
			"blog %d authored by %s", b.ID, b.Author.Role)
	}

	// Re-seeding after ClearAll starts from an empty store.
	require.NoError(t, s.ClearAll())
	db.Model(&models.Blog{}).Count(&blogCount)
	assert.Equal(t, int64(0), blogCount)
}
