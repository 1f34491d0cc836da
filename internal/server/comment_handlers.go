package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

type commentRequest struct {
	Content string `json:"content"`
}

// GetComments handles GET /api/v1/blogs/:id/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	blogID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.Context(), blogID)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Comments retrieved successfully", comments)
}

// CreateComment handles POST /api/v1/blogs/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	blogID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), s.currentUser(c), blogID, req.Content)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, "Comment created successfully", comment)
}

// ReplyToComment handles POST /api/v1/comments/:id/reply
func (s *Server) ReplyToComment(c *fiber.Ctx) error {
	parentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Reply(c.Context(), s.currentUser(c), parentID, req.Content)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusCreated, "Reply created successfully", comment)
}

// GetComment handles GET /api/v1/comments/:id
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetComment(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Comment retrieved successfully", comment)
}

// UpdateComment handles PUT /api/v1/comments/:id
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req commentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), s.currentUser(c), id, req.Content)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Comment updated successfully", comment)
}

// DeleteComment handles DELETE /api/v1/comments/:id. Deleting a comment
// removes all of its descendants as well.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), s.currentUser(c), id); err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Comment deleted successfully", nil)
}

// UpvoteComment handles POST /api/v1/comments/:id/upvote
func (s *Server) UpvoteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.Upvote(c.Context(), s.currentUser(c), id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Comment upvoted", comment)
}

// RemoveCommentUpvote handles DELETE /api/v1/comments/:id/upvote
func (s *Server) RemoveCommentUpvote(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.RemoveUpvote(c.Context(), s.currentUser(c), id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Upvote removed", comment)
}

// DownvoteComment handles POST /api/v1/comments/:id/downvote
func (s *Server) DownvoteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.Downvote(c.Context(), s.currentUser(c), id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Comment downvoted", comment)
}

// RemoveCommentDownvote handles DELETE /api/v1/comments/:id/downvote
func (s *Server) RemoveCommentDownvote(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.RemoveDownvote(c.Context(), s.currentUser(c), id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Downvote removed", comment)
}
