package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moviemind/moviemind-backend/domain"
)

type ReviewController struct {
	ReviewUsecase domain.ReviewUsecase
}

func NewReviewController(uc domain.ReviewUsecase) *ReviewController {
	return &ReviewController{ReviewUsecase: uc}
}

func (rc *ReviewController) Submit(ctx *gin.Context) {
	var request domain.SubmitReviewRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	userID := ctx.GetString("x-user-id")
	movieID := ctx.Param("id")

	review, err := rc.ReviewUsecase.Submit(ctx.Request.Context(), userID, movieID, request)
	if errors.Is(err, domain.ErrRateLimitExceeded) {
		// The review itself is saved; only the analysis quota was hit.
		ctx.JSON(http.StatusTooManyRequests, gin.H{
			"code":    "ANALYSIS_LIMIT_REACHED",
			"message": err.Error(),
			"review":  review,
		})
		return
	}
	if errors.Is(err, domain.ErrAnalysisFormat) {
		ctx.JSON(http.StatusBadGateway, gin.H{
			"code":    "ANALYSIS_FAILED",
			"message": err.Error(),
			"review":  review,
		})
		return
	}
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, review)
}

func (rc *ReviewController) FetchByMovie(ctx *gin.Context) {
	reviews, err := rc.ReviewUsecase.FetchByMovie(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	SuccessResponse(ctx, "reviews", reviews, len(reviews))
}

func (rc *ReviewController) FetchOwn(ctx *gin.Context) {
	reviews, err := rc.ReviewUsecase.FetchByUser(ctx.Request.Context(), ctx.GetString("x-user-id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	SuccessResponse(ctx, "reviews", reviews, len(reviews))
}
