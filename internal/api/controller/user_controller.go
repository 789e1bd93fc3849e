package controller

import (
	"strconv"

	"adboard/internal/api/apperrors"
	"adboard/internal/api/models"
	"adboard/internal/api/response"
	"adboard/internal/api/service"

	"github.com/gin-gonic/gin"
)

// UserController handles user-related HTTP requests.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Create handles the user registration endpoint.
func (uc *UserController) Create(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, bodyNotJSON())
		return
	}

	user, err := uc.userService.Register(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, err)
		return
	}
	response.SuccessResponse(c, user.Public())
}

// Get handles fetching a user by id. The endpoint is public.
func (uc *UserController) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		response.ErrorResponse(c, apperrors.NotFound("user not found"))
		return
	}

	user, err := uc.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, err)
		return
	}
	response.SuccessResponse(c, user.Public())
}

// Login handles the user login endpoint and returns a fresh token.
func (uc *UserController) Login(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, bodyNotJSON())
		return
	}

	token, err := uc.userService.Login(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, err)
		return
	}
	response.SuccessResponse(c, models.LoginResponse{Token: token.ID})
}

// bodyNotJSON is the validation failure for a body that could not be
// decoded at all.
func bodyNotJSON() *apperrors.Error {
	return apperrors.Validation([]apperrors.FieldViolation{
		{Field: "body", Message: "invalid json"},
	})
}
