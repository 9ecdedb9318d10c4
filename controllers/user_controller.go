package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"ecommerce-api/models"
	"ecommerce-api/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// @Summary Get all users
// @Description Get list of all users
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Router /users [get]
func (ctrl *UserController) GetAllUsers(c *gin.Context) {
	users, err := ctrl.userService.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Get user by ID
// @Description Get a single user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.MessageResponse
// @Router /users/{id} [get]
func (ctrl *UserController) GetUserByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid user id"})
		return
	}

	user, err := ctrl.userService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to retrieve user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Create user
// @Description Create a new user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body models.CreateUserRequest true "User data"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string][]string
// @Router /users [post]
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	user, err := ctrl.userService.CreateUser(req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// @Summary Update user
// @Description Replace all user fields
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body models.UpdateUserRequest true "User data"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} models.MessageResponse
// @Router /users/{id} [put]
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid user id"})
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validationErrors(err))
		return
	}

	user, err := ctrl.userService.UpdateUser(id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "User not found"})
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to update user"})
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Delete user
// @Description Delete a user without orders
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Router /users/{id} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid user id"})
		return
	}

	if err := ctrl.userService.DeleteUser(id); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "Invalid user id"})
		case errors.Is(err, services.ErrUserHasOrders):
			c.JSON(http.StatusBadRequest, models.MessageResponse{Message: "User has existing orders"})
		default:
			c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: "Failed to delete user"})
		}
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: fmt.Sprintf("Successfully deleted user %d", id)})
}
