package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moviemind/moviemind-backend/domain"
)

type MovieController struct {
	MovieUsecase domain.MovieUsecase
}

func NewMovieController(uc domain.MovieUsecase) *MovieController {
	return &MovieController{MovieUsecase: uc}
}

func (mc *MovieController) FetchPopular(ctx *gin.Context) {
	limit := 15
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			ErrorResponse(ctx, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a positive number")
			return
		}
		limit = parsed
	}

	var movies []domain.Movie
	var err error
	if genres := ctx.QueryArray("genre"); len(genres) > 0 {
		movies, err = mc.MovieUsecase.FetchByGenres(ctx.Request.Context(), genres, limit)
	} else {
		movies, err = mc.MovieUsecase.FetchPopular(ctx.Request.Context(), limit)
	}
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	SuccessResponse(ctx, "movies", movies, len(movies))
}

func (mc *MovieController) FetchByID(ctx *gin.Context) {
	movie, err := mc.MovieUsecase.FetchByID(ctx.Request.Context(), ctx.Param("id"))
	if errors.Is(err, domain.ErrMovieNotFound) {
		ErrorResponse(ctx, http.StatusNotFound, "MOVIE_NOT_FOUND", err.Error())
		return
	}
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, movie)
}
