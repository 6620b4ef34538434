package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/https-Luan-Fernandes/rest-api-aws/internal/repositories"
	"github.com/https-Luan-Fernandes/rest-api-aws/internal/services"
)

// UserHandler handles user-related HTTP requests. It exposes the same
// observable contract as the Lambda dispatch surface.
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// @Summary Create a new user
// @Description Create a new user with a server-generated ID
// @Tags users
// @Accept json
// @Produce json
// @Param user body services.CreateUserRequest true "User data"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON format"})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary List users
// @Description Get every user record in storage order
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Get a user
// @Description Get a user by ID
// @Tags users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{user_id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("user_id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing user ID"})
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Update a user
// @Description Overwrite name and email on an existing user
// @Tags users
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param user body services.UpdateUserRequest true "Updated user data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{user_id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("user_id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing user ID"})
		return
	}

	var req services.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON format"})
		return
	}

	if err := h.userService.UpdateUser(c.Request.Context(), id, &req); err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// @Summary Delete a user
// @Description Delete a user by ID; deleting an unknown ID is not an error
// @Tags users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 204 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{user_id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("user_id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing user ID"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, gin.H{"message": fmt.Sprintf("User %s deleted successfully", id)})
}

// renderError maps domain and storage failures onto the uniform error body
func (h *UserHandler) renderError(c *gin.Context, err error) {
	var storageErr *repositories.StorageError

	switch {
	case errors.Is(err, services.ErrMissingFields):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields: name, email"})
	case errors.Is(err, services.ErrMissingUserID), errors.Is(err, repositories.ErrInvalidID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing user ID"})
	case repositories.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
	case errors.As(err, &storageErr):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fmt.Sprintf("DynamoDB error: %v", storageErr.Err)})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fmt.Sprintf("Internal Server Error: %v", err)})
	}
}
