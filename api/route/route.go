package route

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moviemind/moviemind-backend/api/middleware"
	"github.com/moviemind/moviemind-backend/bootstrap"
	"github.com/moviemind/moviemind-backend/domain"
	"github.com/moviemind/moviemind-backend/internal/analyzer"
	"github.com/moviemind/moviemind-backend/mongo"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, gin *gin.Engine) {
	ensureReviewIndex(db)

	reviewAnalyzer := analyzer.NewOpenAIAnalyzer(env.AnalyzerAPIURL, env.AnalyzerAPIKey, env.AnalyzerModel, timeout)

	publicRouter := gin.Group("")
	NewSignupRouter(env, timeout, db, publicRouter)
	NewLoginRouter(env, timeout, db, publicRouter)
	NewMovieRouter(timeout, db, publicRouter)

	protectedRouter := gin.Group("")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))
	NewReviewRouter(env, timeout, db, reviewAnalyzer, protectedRouter)
	NewRecommendationRouter(env, timeout, db, protectedRouter)
	NewProfileRouter(timeout, db, protectedRouter)
	NewMasterpieceRouter(timeout, db, protectedRouter)
}

// ensureReviewIndex enforces one live review per (user, movie) at the
// storage layer; a later submission upserts over the prior one.
func ensureReviewIndex(db mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Collection(domain.CollectionReview).Indexes().CreateOne(ctx, driver.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "movie_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("create review index: %v", err)
	}
}
