package controller

import (
	"strconv"

	"adboard/internal/api/apperrors"
	"adboard/internal/api/models"
	"adboard/internal/api/response"
	"adboard/internal/api/service"

	"github.com/gin-gonic/gin"
)

// AdvertisementController handles advertisement HTTP requests. Caller
// identity on protected endpoints is carried in the user_name and
// token headers.
type AdvertisementController struct {
	adService service.AdvertisementService
}

// NewAdvertisementController creates a new AdvertisementController.
func NewAdvertisementController(adService service.AdvertisementService) *AdvertisementController {
	return &AdvertisementController{
		adService: adService,
	}
}

// Create handles authenticated advertisement creation.
func (ac *AdvertisementController) Create(c *gin.Context) {
	var req models.AdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, bodyNotJSON())
		return
	}

	ad, err := ac.adService.Create(c.Request.Context(), credentials(c), &req)
	if err != nil {
		response.ErrorResponse(c, err)
		return
	}
	response.SuccessResponse(c, ad)
}

// Get handles the public advertisement read.
func (ac *AdvertisementController) Get(c *gin.Context) {
	id, ok := advertisementID(c)
	if !ok {
		return
	}

	ad, err := ac.adService.Get(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, err)
		return
	}
	response.SuccessResponse(c, ad)
}

// Update handles the owner-only advertisement update.
func (ac *AdvertisementController) Update(c *gin.Context) {
	id, ok := advertisementID(c)
	if !ok {
		return
	}

	var req models.AdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, bodyNotJSON())
		return
	}

	ad, err := ac.adService.Update(c.Request.Context(), credentials(c), id, &req)
	if err != nil {
		response.ErrorResponse(c, err)
		return
	}
	response.SuccessResponse(c, ad)
}

// Delete handles the owner-only advertisement delete.
func (ac *AdvertisementController) Delete(c *gin.Context) {
	id, ok := advertisementID(c)
	if !ok {
		return
	}

	if err := ac.adService.Delete(c.Request.Context(), credentials(c), id); err != nil {
		response.ErrorResponse(c, err)
		return
	}
	response.MessageResponse(c, "advertisement deleted")
}

// advertisementID parses the id path parameter. A non-numeric id is
// indistinguishable from a missing advertisement.
func advertisementID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("advertisement_id"), 10, 64)
	if err != nil {
		response.ErrorResponse(c, apperrors.NotFound("advertisement not found"))
		return 0, false
	}
	return id, true
}

func credentials(c *gin.Context) models.Credentials {
	return models.Credentials{
		UserName: c.GetHeader("user_name"),
		Token:    c.GetHeader("token"),
	}
}
