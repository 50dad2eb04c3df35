package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	_ "arborlove_quote/docs"
	"arborlove_quote/internal/adapter/http/handlers"
	"arborlove_quote/internal/adapter/persistence/repository"
	"arborlove_quote/internal/infrastructure/config"
	"arborlove_quote/internal/infrastructure/database"
	"arborlove_quote/internal/infrastructure/notification"
	"arborlove_quote/internal/infrastructure/storage"
	"arborlove_quote/internal/usecase"
	"arborlove_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// Run wires the service from cfg and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	gin.SetMode(cfg.GinMode)

	quoteHandler, uploadHandler, cleanup, err := getHandlers(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           NewRouter(cfg, log, quoteHandler, uploadHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(cfg *config.Config, log *zap.Logger, quoteHandler *handlers.QuoteHandler, uploadHandler *handlers.UploadHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	addUploadRoutes(v1, uploadHandler)
	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, log *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	if len(cfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, o := range origins {
		if o = strings.TrimSpace(o); o == "*" {
			c.AllowAllOrigins = true
			c.AllowCredentials = false
			c.AllowOrigins = nil
			return c
		} else if o != "" {
			c.AllowOrigins = append(c.AllowOrigins, o)
		}
	}
	return c
}

func getHandlers(ctx context.Context, cfg *config.Config, log *zap.Logger) (*handlers.QuoteHandler, *handlers.UploadHandler, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (*handlers.QuoteHandler, *handlers.UploadHandler, func(), error) {
		cleanup()
		return nil, nil, func() {}, err
	}

	awsCfg, err := database.NewAWSConfig(ctx, database.AWSOptions{
		Region:          cfg.AWS.Region,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
	})
	if err != nil {
		return fail(err)
	}

	var (
		quoteRepo    interfaces.IQuoteRepository
		optionsStore interfaces.IQuoteOptionsRepository
	)
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		db, err := database.ConnectPostgres(ctx, cfg.Postgres.DSN)
		if err != nil {
			return fail(err)
		}
		closers = append(closers, func() { _ = db.Close() })
		if err := database.Migrate(ctx, db); err != nil {
			return fail(err)
		}
		quoteRepo = repository.NewQuotePostgresRepository(db)
		optionsStore = repository.NewQuoteOptionsPostgresRepository(db)
	default:
		ddb := database.ConnectDynamoDB(awsCfg, cfg.AWS.DynamoDBEndpoint)
		quoteRepo = repository.NewQuoteDynamoRepository(ddb, cfg.AWS.QuotesTable)
		optionsStore = repository.NewQuoteOptionsDynamoRepository(ddb, cfg.AWS.OptionsTable)
	}
	log.Info("quote storage configured", zap.String("backend", cfg.StorageBackend))

	optionsRepo := optionsStore
	if cfg.OptionsSource == config.OptionsSourceStatic {
		optionsRepo = repository.NewStaticQuoteOptionsRepository()
	}
	if cfg.Redis.Addr != "" {
		rdb, err := database.ConnectRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Warn("quote options cache disabled", zap.Error(err))
		} else {
			closers = append(closers, func() { _ = rdb.Close() })
			optionsRepo = repository.NewCachedQuoteOptionsRepository(optionsRepo, rdb, cfg.Redis.TTL, log)
		}
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, newNotifier(cfg, awsCfg, log), log)
	optionsUseCase := usecase.NewQuoteOptionsUseCase(optionsRepo)

	s3Client := storage.NewS3Client(awsCfg, cfg.Upload.Endpoint, cfg.Upload.ForcePathStyle)
	imageStore := storage.NewS3ImageStore(s3Client, cfg.Upload.Bucket, cfg.AWS.Region, cfg.Upload.Endpoint)
	uploadUseCase := usecase.NewImageUploadUseCase(imageStore, cfg.Upload.MaxBytes, log)

	return handlers.NewQuoteHandler(quoteUseCase, optionsUseCase),
		handlers.NewUploadHandler(uploadUseCase, cfg.Upload.MaxBytes),
		cleanup, nil
}

func newNotifier(cfg *config.Config, awsCfg aws.Config, log *zap.Logger) interfaces.IQuoteNotifier {
	if !cfg.Email.Send {
		return notification.NewLogQuoteNotifier(log)
	}
	return notification.NewSESQuoteNotifier(ses.NewFromConfig(awsCfg), cfg.Email.SourceEmail, cfg.Email.AdminEmail, log)
}
