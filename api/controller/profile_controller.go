package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moviemind/moviemind-backend/domain"
)

type ProfileController struct {
	ProfileUsecase domain.ProfileUsecase
}

func NewProfileController(uc domain.ProfileUsecase) *ProfileController {
	return &ProfileController{ProfileUsecase: uc}
}

func (pc *ProfileController) Fetch(ctx *gin.Context) {
	profile, err := pc.ProfileUsecase.Fetch(ctx.Request.Context(), ctx.GetString("x-user-id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) UpdateTastes(ctx *gin.Context) {
	var request domain.UpdateTastesRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	profile, err := pc.ProfileUsecase.UpdateTastes(ctx.Request.Context(), ctx.GetString("x-user-id"), request)
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
