package routes

import (
	"context"
	"fmt"
	"strings"
	"time"

	sessioncache "takaful_quote/internal/adapter/cache"
	"takaful_quote/internal/adapter/http/handlers"
	"takaful_quote/internal/adapter/persistence/repository"
	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/infrastructure/cache"
	"takaful_quote/internal/infrastructure/collaborators"
	"takaful_quote/internal/infrastructure/config"
	"takaful_quote/internal/infrastructure/database"
	"takaful_quote/internal/infrastructure/metrics"
	"takaful_quote/internal/infrastructure/payments"
	"takaful_quote/internal/usecase"
	"takaful_quote/internal/usecase/interfaces"
	"takaful_quote/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"
)

type application struct {
	handlers Handlers
	closers  []func() error
}

func (a *application) Close() {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.closers[i]())
	}
	if err != nil {
		logger.For("app", "router").Warn().Err(err).Msg("shutdown cleanup failed")
	}
}

type collaboratorSet struct {
	customers   interfaces.ICustomerLookup
	vehicles    interfaces.IVehicleLookup
	registry    interfaces.IRegistryLookup
	eligibility interfaces.IEligibilityChecker
	plans       interfaces.IPlanGenerator
	discounts   interfaces.IDiscountAuthority
	links       interfaces.ILinkDispatcher
	approval    interfaces.IApprovalService
	// mockApproval is set when decisions are produced in-process.
	mockApproval *collaborators.MockApprovalService
}

func build(ctx context.Context, cfg *config.Config) (*application, error) {
	log := logger.For("app", "router")
	app := &application{}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	flowMetrics := metrics.NewFlowMetrics(reg)

	quoteRepo, paymentRepo, err := buildRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var (
		sessions   interfaces.ISessionDraftStore
		references interfaces.IReferenceIssuer
	)
	if cfg.Redis.Enabled() {
		client, err := cache.New(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connecting redis: %w", err)
		}
		app.closers = append(app.closers, client.Close)
		sessions = sessioncache.NewSessionDraftRedisStore(client, cfg.Redis.DraftTTL, cache.IsMiss)
		references = collaborators.NewReferenceIssuer(client)
	} else {
		log.Info().Msg("REDIS_URL not set; session drafts kept in memory")
		sessions = sessioncache.NewSessionDraftMemoryStore()
		references = collaborators.NewReferenceIssuer(nil)
	}

	collab, err := buildCollaborators(cfg)
	if err != nil {
		return nil, err
	}
	if collab.mockApproval != nil {
		app.closers = append(app.closers, func() error {
			collab.mockApproval.Close()
			return nil
		})
	}

	paymentsCfg := cfg.Payments
	gateway, err := payments.NewMercadoPagoGateway(paymentsCfg)
	if err != nil {
		if !cfg.App.IsDev() {
			return nil, fmt.Errorf("configuring payment gateway: %w", err)
		}
		log.Warn().Err(err).Msg("Mercado Pago gateway not configured; using mock gateway")
		paymentsCfg.Mock = true
		if gateway, err = payments.NewMercadoPagoGateway(paymentsCfg); err != nil {
			return nil, fmt.Errorf("configuring payment gateway: %w", err)
		}
	}

	drafts := usecase.NewDraftUseCase(quoteRepo, sessions, references, flowMetrics)
	eligibility := usecase.NewEligibilityUseCase(collab.eligibility, collab.approval, drafts, flowMetrics)
	discounts := usecase.NewDiscountUseCase(collab.discounts, flowMetrics)
	if collab.mockApproval != nil {
		collab.mockApproval.SetResolver(func(ctx context.Context, d interfaces.ApprovalDecision) error {
			_, err := eligibility.ResolveException(ctx, d)
			return err
		})
	}

	flow := usecase.NewQuoteFlowUseCase(usecase.FlowDependencies{
		Drafts:        drafts,
		Eligibility:   eligibility,
		Discounts:     discounts,
		Customers:     collab.customers,
		Vehicles:      collab.vehicles,
		Registry:      collab.registry,
		Plans:         collab.plans,
		FallbackPlans: collaborators.MockPlanGenerator{},
		Links:         collab.links,
		Payments:      gateway,
		Metrics:       flowMetrics,
	}, usecase.FlowOptions{
		CustomerLookupEnabled: bool(cfg.Flow.CustomerLookupEnabled),
		DefaultInsuranceType:  entities.ParseInsuranceType(cfg.Flow.DefaultInsuranceType),
		SessionIdleTTL:        cfg.Redis.DraftTTL,
	})
	sweepCtx, stopSweep := context.WithCancel(ctx)
	go flow.RunIdleSweep(sweepCtx, sessionSweepInterval(cfg.Redis.DraftTTL))
	app.closers = append(app.closers, func() error {
		stopSweep()
		return nil
	})
	policyPayments := usecase.NewPolicyPaymentUseCase(paymentRepo, drafts, collab.plans, gateway, flowMetrics)

	actor := usecase.Actor{AgentID: cfg.Flow.DefaultAgentID, AgentName: cfg.Flow.DefaultAgentName}
	app.handlers = Handlers{
		Flow:      handlers.NewQuoteFlowHandler(flow, actor),
		Quotes:    handlers.NewQuoteHandler(drafts),
		Approvals: handlers.NewApprovalHandler(eligibility),
		Payments:  handlers.NewPolicyPaymentHandler(policyPayments, paymentsCfg.MockEnabled()),
		Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	}
	return app, nil
}

// sessionSweepInterval checks for idle sessions a few times per TTL.
func sessionSweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	return interval
}

func buildRepositories(ctx context.Context, cfg *config.Config) (interfaces.IQuoteRepository, interfaces.IQuotePaymentRepository, error) {
	if cfg.Storage.Driver == config.StorageMemory {
		logger.For("app", "router").Warn().Msg("STORAGE_DRIVER=memory; quotes are not durable")
		return repository.NewQuoteMemoryRepository(), repository.NewQuotePaymentMemoryRepository(), nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting dynamodb: %w", err)
	}
	return repository.NewQuoteDynamoRepository(ddb, cfg.Storage.QuotesTable),
		repository.NewQuotePaymentDynamoRepository(ddb, cfg.Storage.PaymentsTable),
		nil
}

func buildCollaborators(cfg *config.Config) (collaboratorSet, error) {
	if bool(cfg.Collaborators.Mock) || strings.TrimSpace(cfg.Collaborators.BaseURL) == "" {
		logger.For("app", "router").Info().Msg("using mock collaborators")
		approval := collaborators.NewMockApprovalService(cfg.Flow.ApprovalMockDelay, cfg.Flow.ApprovalMockOutcome)
		return collaboratorSet{
			customers:    collaborators.NewMockCustomerDirectory(),
			vehicles:     collaborators.NewMockVehicleLookup(),
			registry:     collaborators.NewMockRegistryLookup(),
			eligibility:  collaborators.MockEligibilityChecker{},
			plans:        collaborators.MockPlanGenerator{},
			discounts:    collaborators.NewMockDiscountAuthority(),
			links:        collaborators.NewMockLinkDispatcher(),
			approval:     approval,
			mockApproval: approval,
		}, nil
	}

	client, err := collaborators.NewHTTPCollaborators(cfg.Collaborators.BaseURL, cfg.Collaborators.Timeout)
	if err != nil {
		return collaboratorSet{}, fmt.Errorf("configuring collaborators: %w", err)
	}
	return collaboratorSet{
		customers:   client,
		vehicles:    client,
		registry:    client,
		eligibility: client,
		plans:       client,
		discounts:   client,
		links:       client,
		approval:    client,
	}, nil
}
