package server

import (
	"strconv"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// queryUint parses an optional positive integer query parameter.
func queryUint(c *fiber.Ctx, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return nil
	}
	u := uint(v)
	return &u
}

// queryBool parses an optional boolean query parameter.
func queryBool(c *fiber.Ctx, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// blogFilterFromQuery builds the repository filter from the list endpoint's
// query parameters.
func blogFilterFromQuery(c *fiber.Ctx) repository.BlogFilter {
	page := parsePagination(c, repository.DefaultListLimit)
	return repository.BlogFilter{
		AuthorID:    queryUint(c, "author"),
		CategoryID:  queryUint(c, "category"),
		TagID:       queryUint(c, "tag"),
		IsPublished: queryBool(c, "is_published"),
		Search:      c.Query("search"),
		OrderBy:     c.Query("ordering"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	}
}

// GetBlogs handles GET /api/v1/blogs
func (s *Server) GetBlogs(c *fiber.Ctx) error {
	blogs, err := s.blogService.ListBlogs(c.Context(), blogFilterFromQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Blogs retrieved successfully", blogs)
}

// GetBlog handles GET /api/v1/blogs/:id
func (s *Server) GetBlog(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	blog, err := s.blogService.GetBlog(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Blog retrieved successfully", blog)
}

type blogRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsPublished *bool  `json:"is_published"`
	CategoryID  *uint  `json:"category"`
	Tags        []uint `json:"tags"`
}

// CreateBlog handles POST /api/v1/blogs
func (s *Server) CreateBlog(c *fiber.Ctx) error {
	var req blogRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	blog, err := s.blogService.CreateBlog(c.Context(), s.currentUser(c), service.BlogWriteInput{
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: req.IsPublished,
		CategoryID:  req.CategoryID,
		TagIDs:      req.Tags,
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, "Blog created successfully", blog)
}

// UpdateBlog handles PUT /api/v1/blogs/:id
func (s *Server) UpdateBlog(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req blogRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	blog, err := s.blogService.UpdateBlog(c.Context(), s.currentUser(c), id, service.BlogWriteInput{
		Title:       req.Title,
		Content:     req.Content,
		IsPublished: req.IsPublished,
		CategoryID:  req.CategoryID,
		TagIDs:      req.Tags,
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Blog updated successfully", blog)
}

// DeleteBlog handles DELETE /api/v1/blogs/:id
func (s *Server) DeleteBlog(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.blogService.DeleteBlog(c.Context(), s.currentUser(c), id); err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Blog deleted successfully", nil)
}

// GetUserBlogs handles GET /api/v1/users/:id/blogs
func (s *Server) GetUserBlogs(c *fiber.Ctx) error {
	authorID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	blogs, err := s.blogRepo.ListByAuthor(c.Context(), authorID)
	if err != nil {
		return fail(c, err)
	}

	views := make([]models.BlogListView, 0, len(blogs))
	for _, b := range blogs {
		views = append(views, models.NewBlogListView(b))
	}
	return respond(c, fiber.StatusOK, "Blogs retrieved successfully", views)
}
