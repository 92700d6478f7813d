package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	handlerHttp "github.com/bereketsh/viewtube/internal/handler/http"
	redisclient "github.com/bereketsh/viewtube/internal/infrastructure/cache"
	"github.com/bereketsh/viewtube/internal/infrastructure/config"
	database "github.com/bereketsh/viewtube/internal/infrastructure/database"
	"github.com/bereketsh/viewtube/internal/infrastructure/jwt"
	"github.com/bereketsh/viewtube/internal/infrastructure/logger"
	passwordservice "github.com/bereketsh/viewtube/internal/infrastructure/password_service"
	"github.com/bereketsh/viewtube/internal/infrastructure/repository/mongodb"
	"github.com/bereketsh/viewtube/internal/infrastructure/store"
	"github.com/bereketsh/viewtube/internal/infrastructure/validator"
	"github.com/bereketsh/viewtube/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userRepo := mongodb.NewUserRepository(db)
	videoRepo := mongodb.NewVideoRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	tweetRepo := mongodb.NewTweetRepository(db)
	playlistRepo := mongodb.NewPlaylistRepository(db)
	likeRepo := mongodb.NewLikeRepository(db)
	subscriptionRepo := mongodb.NewSubscriptionRepository(db)

	// The unique indexes back the one-document-per-relationship guarantees.
	if err := likeRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create like indexes: %v", err)
	}
	if err := subscriptionRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create subscription indexes: %v", err)
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	appConfig := config.NewConfig()
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry(), appConfig.GetRefreshTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, appValidator, appLogger)
	videoUsecase := usecase.NewVideoUsecase(videoRepo, userRepo, appLogger)
	likeUsecase := usecase.NewLikeUsecase(likeRepo, videoRepo, commentRepo, tweetRepo, appLogger)
	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriptionRepo, userRepo, appLogger)
	commentUsecase := usecase.NewCommentUsecase(commentRepo, videoRepo, appLogger)
	tweetUsecase := usecase.NewTweetUsecase(tweetRepo, userRepo, appLogger)
	playlistUsecase := usecase.NewPlaylistUsecase(playlistRepo, videoRepo, appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		if rdb != nil {
			defer redisclient.Close(rdb)
			videoCache := store.NewVideoCacheStore(rdb)
			videoUsecase.SetCache(videoCache)
			subscriptionUsecase.SetCache(videoCache)
		}
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		userUsecase, videoUsecase, likeUsecase, subscriptionUsecase,
		commentUsecase, tweetUsecase, playlistUsecase,
		jwtService, appConfig.RateLimitPerSecond,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
