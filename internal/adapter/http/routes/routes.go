package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wascrap/internal/adapter/http/handlers"
	"wascrap/internal/adapter/http/middleware"
	"wascrap/internal/adapter/persistence/repository"
	"wascrap/internal/config"
	"wascrap/internal/infrastructure/auth"
	"wascrap/internal/infrastructure/cache"
	"wascrap/internal/infrastructure/database"
	"wascrap/internal/infrastructure/email"
	"wascrap/internal/infrastructure/events"
	"wascrap/internal/usecase"
	"wascrap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Booking        *handlers.BookingHandler
	Buyer          *handlers.ScrapBuyerHandler
	Account        *handlers.AccountHandler
	OTP            *handlers.OTPHandler
	PartnerInquiry *handlers.PartnerInquiryHandler
	Seller         *handlers.ScrapSellerHandler
	Notification   *handlers.NotificationHandler
}

// Run will start the server and block until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ddb, err := database.NewDynamoDBClient(ctx, cfg.AWS)
	if err != nil {
		return fmt.Errorf("dynamodb: %w", err)
	}

	rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
	} else {
		log.Printf("[routes] REDIS_ADDR not set, using in-memory OTP store and no idempotency")
	}

	publisher := events.NewPublisher(cfg.Kafka)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Printf("[routes] closing event publisher: %v", err)
		}
	}()

	sender, err := email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.EmailMockEnabled())
	if err != nil {
		return fmt.Errorf("email: %w", err)
	}

	tokens := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	h := buildHandlers(cfg, ddb, rdb, publisher, sender, tokens)
	router := NewRouter(h, tokens, rdb)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[routes] %s %s listening on %s", cfg.App.Name, cfg.App.Version, srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Printf("[routes] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts middleware, docs, metrics and the /v1 API on a fresh engine.
// rdb may be nil.
func NewRouter(h Handlers, tokens middleware.TokenParser, rdb *redis.Client) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, h.Account)
	addFunctionRoutes(v1, h, tokens)
	addBookingRoutes(v1, h.Booking, tokens, rdb)
	addBuyerRoutes(v1, h.Buyer, tokens)
	addPartnerRoutes(v1, h.PartnerInquiry, tokens)
	return router
}

func buildHandlers(
	cfg *config.Config,
	ddb *dynamodb.Client,
	rdb *redis.Client,
	publisher interfaces.IEventPublisher,
	sender interfaces.IEmailSender,
	tokens interfaces.ITokenIssuer,
) Handlers {
	bookingRepo := repository.NewBookingDynamoRepository(ddb, cfg.Tables.Bookings)
	buyerRepo := repository.NewScrapBuyerDynamoRepository(ddb, cfg.Tables.ScrapBuyers)
	accountRepo := repository.NewAccountDynamoRepository(ddb, cfg.Tables.Accounts)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb, cfg.Tables.Notifications)
	inquiryRepo := repository.NewPartnerInquiryDynamoRepository(ddb, cfg.Tables.PartnerInquiries)
	sellerRepo := repository.NewScrapSellerDynamoRepository(ddb, cfg.Tables.ScrapSellers)

	var otpStore interfaces.IOTPStore
	if rdb != nil {
		otpStore = repository.NewOTPRedisStore(rdb)
	} else {
		otpStore = repository.NewOTPMemoryStore()
	}

	notificationUseCase := usecase.NewNotificationUseCase(sender, notificationRepo, bookingRepo, cfg.Email.AdminAddress, cfg.Email.SupportAddress)
	accountUseCase := usecase.NewAccountUseCase(accountRepo, buyerRepo, tokens, cfg.IsAdminEmail)
	otpUseCase := usecase.NewOTPUseCase(otpStore, sender, accountUseCase, cfg.OTP.TTL, cfg.OTP.MaxAttempts, cfg.Email.SupportAddress)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, notificationUseCase, publisher)
	buyerUseCase := usecase.NewScrapBuyerUseCase(buyerRepo, notificationUseCase, publisher)

	return Handlers{
		Booking:        handlers.NewBookingHandler(bookingUseCase),
		Buyer:          handlers.NewScrapBuyerHandler(buyerUseCase),
		Account:        handlers.NewAccountHandler(accountUseCase),
		OTP:            handlers.NewOTPHandler(otpUseCase),
		PartnerInquiry: handlers.NewPartnerInquiryHandler(usecase.NewPartnerInquiryUseCase(inquiryRepo)),
		Seller:         handlers.NewScrapSellerHandler(usecase.NewScrapSellerUseCase(sellerRepo)),
		Notification:   handlers.NewNotificationHandler(notificationUseCase),
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())
}
