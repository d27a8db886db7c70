package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "takaful_quote/docs"
	"takaful_quote/internal/adapter/http/handlers"
	"takaful_quote/internal/infrastructure/config"
	"takaful_quote/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

const (
	PathFlows     = "/flows"
	PathQuotes    = "/quotes"
	PathApprovals = "/approvals"
	PathPayments  = "/payments"

	shutdownTimeout = 10 * time.Second
)

// Handlers is everything the router mounts.
type Handlers struct {
	Flow      *handlers.QuoteFlowHandler
	Quotes    *handlers.QuoteHandler
	Approvals *handlers.ApprovalHandler
	Payments  *handlers.PolicyPaymentHandler
	Metrics   http.Handler
}

// Run wires the application and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	app, err := build(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if !cfg.App.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           NewRouter(app.handlers),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log := logger.For("http", "router")
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), requestLogger(), recoverer())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFlowRoutes(v1, h.Flow)
	addQuoteRoutes(v1, h.Quotes, h.Payments)
	addApprovalRoutes(v1, h.Approvals)
	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addFlowRoutes(rg *gin.RouterGroup, h *handlers.QuoteFlowHandler) {
	flows := rg.Group(PathFlows)
	{
		flows.POST("", h.StartFlow)
		flows.GET("/:session_id", h.GetFlow)
		flows.DELETE("/:session_id", h.AbandonFlow)

		flows.POST("/:session_id/customer", h.IdentifyCustomer)
		flows.POST("/:session_id/subscriber", h.SubmitSubscriber)
		flows.POST("/:session_id/draft-prompt", h.ResolveDraftPrompt)

		flows.PATCH("/:session_id/input", h.UpdateInput)
		flows.POST("/:session_id/commit", h.Commit)
		flows.POST("/:session_id/vehicle-lookup", h.LookupVehicle)
		flows.POST("/:session_id/next", h.Next)
		flows.POST("/:session_id/back", h.Back)

		flows.PUT("/:session_id/plan", h.SelectPlan)
		flows.PUT("/:session_id/payment-method", h.SetPaymentMethod)
		flows.PUT("/:session_id/discount", h.ApplyDiscount)
		flows.DELETE("/:session_id/discount", h.RemoveDiscount)
		flows.POST("/:session_id/exception", h.RequestException)
		flows.POST("/:session_id/send-link", h.SendLink)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, quotes *handlers.QuoteHandler, payments *handlers.PolicyPaymentHandler) {
	q := rg.Group(PathQuotes)
	{
		q.GET("/:id", quotes.GetQuote)
		q.GET("/reference/:reference", quotes.GetQuoteByReference)
		q.POST("/:id/payments", payments.CapturePayment)
		q.GET("/:id/payments", payments.ListPayments)
	}
	rg.GET(PathPayments+"/:payment_id", payments.GetPayment)
}

func addApprovalRoutes(rg *gin.RouterGroup, h *handlers.ApprovalHandler) {
	rg.POST(PathApprovals+"/decisions", h.ReceiveDecision)
}
