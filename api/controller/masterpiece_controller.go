package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moviemind/moviemind-backend/domain"
)

type MasterpieceController struct {
	MasterpieceUsecase domain.MasterpieceUsecase
}

func NewMasterpieceController(uc domain.MasterpieceUsecase) *MasterpieceController {
	return &MasterpieceController{MasterpieceUsecase: uc}
}

func (mc *MasterpieceController) Register(ctx *gin.Context) {
	err := mc.MasterpieceUsecase.Register(ctx.Request.Context(), ctx.GetString("x-user-id"), ctx.Param("id"))
	if errors.Is(err, domain.ErrMovieNotFound) {
		ErrorResponse(ctx, http.StatusNotFound, "MOVIE_NOT_FOUND", err.Error())
		return
	}
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "masterpiece registered"})
}

func (mc *MasterpieceController) Unregister(ctx *gin.Context) {
	err := mc.MasterpieceUsecase.Unregister(ctx.Request.Context(), ctx.GetString("x-user-id"), ctx.Param("id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "masterpiece unregistered"})
}

func (mc *MasterpieceController) Fetch(ctx *gin.Context) {
	movies, err := mc.MasterpieceUsecase.FetchMovies(ctx.Request.Context(), ctx.GetString("x-user-id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	SuccessResponse(ctx, "masterpieces", movies, len(movies))
}
