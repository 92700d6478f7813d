package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bereketsh/viewtube/internal/handler/http/middleware"
	"github.com/bereketsh/viewtube/internal/usecase"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

type Router struct {
	userHandler         *UserHandler
	videoHandler        *VideoHandler
	likeHandler         *LikeHandler
	subscriptionHandler *SubscriptionHandler
	commentHandler      *CommentHandler
	tweetHandler        *TweetHandler
	playlistHandler     *PlaylistHandler
	userUsecase         usecasecontract.IUserUsecase
	jwtService          usecase.JWTService
	rateLimit           float64
}

func NewRouter(
	userUsecase usecasecontract.IUserUsecase,
	videoUsecase usecasecontract.IVideoUsecase,
	likeUsecase usecasecontract.ILikeUsecase,
	subscriptionUsecase usecasecontract.ISubscriptionUsecase,
	commentUsecase usecasecontract.ICommentUsecase,
	tweetUsecase usecasecontract.ITweetUsecase,
	playlistUsecase usecasecontract.IPlaylistUsecase,
	jwtService usecase.JWTService,
	rateLimit float64,
) *Router {
	return &Router{
		userHandler:         NewUserHandler(userUsecase),
		videoHandler:        NewVideoHandler(videoUsecase),
		likeHandler:         NewLikeHandler(likeUsecase),
		subscriptionHandler: NewSubscriptionHandler(subscriptionUsecase),
		commentHandler:      NewCommentHandler(commentUsecase),
		tweetHandler:        NewTweetHandler(tweetUsecase),
		playlistHandler:     NewPlaylistHandler(playlistUsecase),
		userUsecase:         userUsecase,
		jwtService:          jwtService,
		rateLimit:           rateLimit,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(r.rateLimit, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	v1.GET("/healthcheck", Healthcheck)

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.Register)
		auth.POST("/login", r.userHandler.Login)
	}

	users := v1.Group("/users")
	{
		users.GET("/:userID", r.userHandler.GetUser)
		users.GET("/:userID/playlists", r.playlistHandler.GetUserPlaylists)
		users.GET("/:userID/tweets", r.tweetHandler.GetUserTweets)
	}

	videos := v1.Group("/videos")
	{
		videos.GET("", r.videoHandler.ListVideos)
		videos.GET("/:videoID", r.videoHandler.GetVideo)
		videos.GET("/:videoID/comments", r.commentHandler.GetVideoComments)
	}

	v1.GET("/playlists", r.playlistHandler.ListPlaylists)
	v1.GET("/playlists/:playlistID", r.playlistHandler.GetPlaylist)
	v1.GET("/subscriptions/channels/:channelID/count", r.subscriptionHandler.GetSubscriberCount)

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.jwtService, r.userUsecase))
	{
		protected.GET("/me", r.userHandler.GetCurrentUser)

		// Video routes
		protected.POST("/videos", r.videoHandler.PublishVideo)
		protected.PATCH("/videos/:videoID", r.videoHandler.UpdateVideo)
		protected.DELETE("/videos/:videoID", r.videoHandler.DeleteVideo)
		protected.PATCH("/videos/:videoID/toggle-publish", r.videoHandler.TogglePublishStatus)

		// Comment routes
		protected.POST("/videos/:videoID/comments", r.commentHandler.AddComment)
		protected.PATCH("/comments/:commentID", r.commentHandler.UpdateComment)
		protected.DELETE("/comments/:commentID", r.commentHandler.DeleteComment)

		// Tweet routes
		protected.POST("/tweets", r.tweetHandler.CreateTweet)
		protected.PATCH("/tweets/:tweetID", r.tweetHandler.UpdateTweet)
		protected.DELETE("/tweets/:tweetID", r.tweetHandler.DeleteTweet)

		// Engagement routes
		protected.POST("/likes/toggle/video/:videoID", r.likeHandler.ToggleVideoLike)
		protected.POST("/likes/toggle/comment/:commentID", r.likeHandler.ToggleCommentLike)
		protected.POST("/likes/toggle/tweet/:tweetID", r.likeHandler.ToggleTweetLike)
		protected.GET("/likes/videos", r.likeHandler.GetLikedVideos)

		// Subscription routes
		protected.POST("/subscriptions/channels/:channelID", r.subscriptionHandler.ToggleSubscription)
		protected.GET("/subscriptions/channels/:channelID/subscribers", r.subscriptionHandler.GetChannelSubscribers)
		protected.GET("/subscriptions", r.subscriptionHandler.GetSubscribedChannels)

		// Playlist routes
		protected.POST("/playlists", r.playlistHandler.CreatePlaylist)
		protected.PATCH("/playlists/:playlistID", r.playlistHandler.UpdatePlaylist)
		protected.DELETE("/playlists/:playlistID", r.playlistHandler.DeletePlaylist)
		protected.POST("/playlists/:playlistID/videos/:videoID", r.playlistHandler.AddVideoToPlaylist)
		protected.DELETE("/playlists/:playlistID/videos/:videoID", r.playlistHandler.RemoveVideoFromPlaylist)
	}
}
