package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/v1/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user := s.currentUser(c)
	return respond(c, fiber.StatusOK, "Profile retrieved successfully", models.NewUserView(user))
}

// UpdateMyProfile handles PUT /api/v1/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		Bio         string `json:"bio"`
		PhoneNumber string `json:"phone_number"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), s.currentUser(c).ID, service.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Bio:         req.Bio,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Profile updated successfully", models.NewUserView(user))
}

// ChangePassword handles PUT /api/v1/users/me/password
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	var req struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.OldPassword == "" || req.NewPassword == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Old and new passwords are required"))
	}

	if err := s.userService.ChangePassword(c.Context(), s.currentUser(c).ID, req.OldPassword, req.NewPassword); err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Password changed successfully", nil)
}

// SetProfilePhoto handles PUT /api/v1/users/me/photo
func (s *Server) SetProfilePhoto(c *fiber.Ctx) error {
	var req struct {
		Filename string `json:"filename"`
	}
	if err := c.BodyParser(&req); err != nil || req.Filename == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Filename is required"))
	}

	user, err := s.userService.SetProfilePhoto(c.Context(), s.currentUser(c).ID, req.Filename)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Profile photo updated successfully", models.NewUserView(user))
}

// DeleteProfilePhoto handles DELETE /api/v1/users/me/photo
func (s *Server) DeleteProfilePhoto(c *fiber.Ctx) error {
	user, err := s.userService.DeleteProfilePhoto(c.Context(), s.currentUser(c).ID)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Profile photo removed successfully", models.NewUserView(user))
}

// GetAllUsers handles GET /api/v1/users (admin only)
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	users, err := s.userService.ListUsers(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}

	views := make([]models.UserView, 0, len(users))
	for i := range users {
		views = append(views, models.NewUserView(&users[i]))
	}
	return respond(c, fiber.StatusOK, "Users retrieved successfully", views)
}

// GetUserProfile handles GET /api/v1/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "Profile retrieved successfully", models.NewUserView(user))
}

// DeleteUser handles DELETE /api/v1/users/:id. Users may delete their own
// account; admins may delete anyone.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(c.Context(), s.currentUser(c), id); err != nil {
		return fail(c, err)
	}
	return respond(c, fiber.StatusOK, "User deleted successfully", nil)
}
