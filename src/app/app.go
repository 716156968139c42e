package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/roshdman/backend/src/handler"
	"github.com/roshdman/backend/src/repository"
	"github.com/roshdman/backend/src/service"
	"github.com/rs/zerolog"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/roshdman/backend/docs" // Swagger docs
)

type Application struct {
	config AppConfig
	store  *repository.Store

	IdentityService   *service.IdentityService
	ChallengeService  *service.ChallengeService
	InvitationService *service.InvitationService
	StatisticsService *service.StatisticsService
	CharityService    *service.CharityService
}

func NewApplication(ctx context.Context, config AppConfig) *Application {
	logger := zerolog.Ctx(ctx).With().Str("function", "NewApplication").Logger()

	store := repository.NewStore(*config.DataFile)
	logger.Info().Str("data_file", *config.DataFile).Msg("Record store initialized")

	return &Application{
		config:            config,
		store:             store,
		IdentityService:   service.NewIdentityService(store),
		ChallengeService:  service.NewChallengeService(store),
		InvitationService: service.NewInvitationService(store),
		StatisticsService: service.NewStatisticsService(store),
		CharityService:    service.NewCharityService(store),
	}
}

func (app *Application) RunHTTPServer(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	logger := zerolog.Ctx(ctx).With().Str("function", "RunHTTPServer").Logger()

	// Set to release mode to disable Gin logger
	gin.SetMode(gin.ReleaseMode)

	ginRouter := gin.Default()

	// Register routes
	app.registerRoutes(ctx, ginRouter)

	// Build HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", *app.config.Port),
		Handler: ginRouter,
	}

	// Start server in goroutine
	go func() {
		zerolog.Ctx(ctx).Info().Msgf("HTTP server is on http://localhost:%s/health", *app.config.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zerolog.Ctx(ctx).Panic().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	logger.Info().Msg("Gracefully shutting down HTTP server...")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	// Shutdown server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Failed to shutdown HTTP server gracefully")
	} else {
		logger.Info().Msg("HTTP server shutdown complete")
	}
}

func (app *Application) registerRoutes(ctx context.Context, router *gin.Engine) {

	// Configure CORS. With no configured origins every origin is allowed;
	// credentials are only enabled for an explicit origin list because the
	// combination with a wildcard is rejected by the cors middleware.
	config := cors.DefaultConfig()
	if len(*app.config.AllowOrigins) > 0 {
		config.AllowOrigins = *app.config.AllowOrigins
		config.AllowCredentials = true
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}

	router.Use(cors.New(config))

	handler.SetMiddlewares(ctx, router)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	identityHandler := handler.NewIdentityHandler(app.IdentityService)
	challengeHandler := handler.NewChallengeHandler(app.ChallengeService)
	invitationHandler := handler.NewInvitationHandler(app.InvitationService)
	statisticsHandler := handler.NewStatisticsHandler(app.StatisticsService)
	charityHandler := handler.NewCharityHandler(app.CharityService)

	router.GET("/health", handler.HandleHealthCheck)

	router.POST("/register", identityHandler.Register)
	router.POST("/login", identityHandler.Login)

	// GET /challenges/:id takes a user id; gin needs one param name for the
	// whole /challenges/:id subtree.
	router.POST("/challenges", challengeHandler.Create)
	router.GET("/challenges/:id", challengeHandler.ListForUser)
	router.POST("/challenges/:id/penalties", challengeHandler.RecordPenalty)
	router.GET("/challenges/:id/penalties", challengeHandler.ListPenalties)
	router.POST("/challenges/:id/confirm-payment", challengeHandler.ConfirmPayment)
	router.POST("/challenges/:id/witnesses", challengeHandler.AddWitness)

	router.GET("/profile/:userId", statisticsHandler.Profile)
	router.GET("/statistics/:userId", statisticsHandler.Weekly)

	router.GET("/charities", charityHandler.List)

	router.POST("/invitations", invitationHandler.Invite)
	router.GET("/invitations/:userId", invitationHandler.ListForUser)
}
