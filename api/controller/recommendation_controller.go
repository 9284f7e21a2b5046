package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moviemind/moviemind-backend/domain"
)

type RecommendationController struct {
	RecommendationUsecase domain.RecommendationUsecase
}

func NewRecommendationController(uc domain.RecommendationUsecase) *RecommendationController {
	return &RecommendationController{RecommendationUsecase: uc}
}

func (rc *RecommendationController) Recommend(ctx *gin.Context) {
	recommendations, err := rc.RecommendationUsecase.Recommend(ctx.Request.Context(), ctx.GetString("x-user-id"))
	if err != nil {
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	SuccessResponse(ctx, "recommendations", recommendations, len(recommendations))
}
