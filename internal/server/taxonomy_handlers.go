package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCategories handles GET /api/v1/categories
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.taxonomyRepo.ListCategories(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Categories retrieved successfully", categories)
}

// CreateCategory handles POST /api/v1/categories (admin only)
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Category name is required"))
	}

	category := &models.Category{Name: req.Name}
	if err := s.taxonomyRepo.CreateCategory(c.Context(), category); err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, "Category created successfully", category)
}

// DeleteCategory handles DELETE /api/v1/categories/:id (admin only).
// Blogs in the category are detached, not deleted.
func (s *Server) DeleteCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	blogIDs, err := s.taxonomyRepo.DeleteCategory(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	for _, blogID := range blogIDs {
		s.cache.InvalidateBlog(c.Context(), blogID)
	}
	s.cache.InvalidateBlogList(c.Context())
	return respond(c, fiber.StatusOK, "Category deleted successfully", nil)
}

// GetTags handles GET /api/v1/tags
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.taxonomyRepo.ListTags(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Tags retrieved successfully", tags)
}

// CreateTag handles POST /api/v1/tags (admin only)
func (s *Server) CreateTag(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Tag name is required"))
	}

	tag := &models.Tag{Name: req.Name}
	if err := s.taxonomyRepo.CreateTag(c.Context(), tag); err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, "Tag created successfully", tag)
}
