package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"contract-mgmt/backend/internal/audit"
	auditrepo "contract-mgmt/backend/internal/audit/repository"
	auditservice "contract-mgmt/backend/internal/audit/service"
	"contract-mgmt/backend/internal/config"
	"contract-mgmt/backend/internal/db"
	healthhandler "contract-mgmt/backend/internal/health/handler"
	"contract-mgmt/backend/internal/identity"
	"contract-mgmt/backend/internal/identity/verifier"
	invitationrepo "contract-mgmt/backend/internal/invitation/repository"
	invitationservice "contract-mgmt/backend/internal/invitation/service"
	"contract-mgmt/backend/internal/logger"
	membershiprepo "contract-mgmt/backend/internal/membership/repository"
	membershipservice "contract-mgmt/backend/internal/membership/service"
	organizationrepo "contract-mgmt/backend/internal/organization/repository"
	organizationservice "contract-mgmt/backend/internal/organization/service"
	"contract-mgmt/backend/internal/platform/rbac"
	"contract-mgmt/backend/internal/policy/engine"
	"contract-mgmt/backend/internal/ratelimit"
	"contract-mgmt/backend/internal/server"
	"contract-mgmt/backend/internal/server/interceptors"
	"contract-mgmt/backend/internal/telemetry"
	telemetryotel "contract-mgmt/backend/internal/telemetry/otel"
	"contract-mgmt/backend/internal/telemetry/producer"
	userrepo "contract-mgmt/backend/internal/user/repository"
	userservice "contract-mgmt/backend/internal/user/service"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "server:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.ValidateAuth(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := telemetryotel.NewProviders(ctx, cfg.OTLPEndpoint, logger.ServiceName, cfg.OTLPInsecure)
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	providers.SetGlobal()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = providers.Shutdown(shutdownCtx)
	}()

	opts := logger.Options{Level: cfg.LogLevel, Production: cfg.IsProduction()}
	if providers.Exporting {
		opts.LoggerProvider = providers.LoggerProvider
	}
	log := logger.New(os.Stderr, opts)
	slog.SetDefault(log)

	metrics, err := telemetry.NewMetrics(providers.MeterProvider)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	var emitter telemetry.EventEmitter
	kafka := producer.NewKafkaProducer(cfg.TelemetryKafkaBrokersList(), cfg.TelemetryKafkaTopic)
	switch {
	case kafka != nil:
		emitter = kafka
		defer kafka.Close()
		log.Info("domain events to kafka", "topic", kafka.Topic())
	case providers.Exporting:
		emitter = telemetryotel.NewEventEmitter(providers.LoggerProvider)
		log.Info("domain events to otel logs")
	}
	events := telemetry.NewAsyncPublisher(emitter, logger.Component(log, "events"))

	pool, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	v, err := verifier.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("verifier: %w", err)
	}
	policy, err := engine.NewOPAEvaluator(ctx, engine.DefaultPolicy)
	if err != nil {
		return fmt.Errorf("policy: %w", err)
	}

	userStore := userrepo.NewPostgresRepository(pool)
	orgStore := organizationrepo.NewPostgresRepository(pool)
	auditStore := auditrepo.NewPostgresRepository(pool)

	users := userservice.NewDirectory(userStore, events, log)
	memberships := membershipservice.NewDirectory(membershiprepo.NewPostgresRepository(pool), events)
	selector := membershipservice.NewSelector(memberships, userStore, events, metrics, log)
	checker := rbac.NewChecker(memberships, policy)

	limiter, err := newLimiter(ctx, cfg, log)
	if err != nil {
		return err
	}

	srv := server.NewGRPCServer(server.Gate{
		Verifier:    v,
		Extractor:   identity.NewExtractor(cfg.AuthEmailClaim),
		Users:       users,
		Memberships: memberships,
		Selector:    selector,
		Limiter:     limiter,
		Audit:       audit.NewLogger(auditStore, interceptors.ClientIP, log),
		Metrics:     metrics,
		Logger:      log,
	})
	server.RegisterServices(srv, server.Deps{
		Users:            users,
		MembershipLister: memberships,
		OrgSwitcher:      selector,
		Organizations:    organizationservice.NewService(orgStore, checker, events, log),
		Invitations: invitationservice.NewService(invitationrepo.NewPostgresRepository(pool), orgStore, memberships, checker, invitationservice.Options{
			TTL:     cfg.InvitationTTL(),
			Events:  events,
			Metrics: metrics,
			Logger:  log,
		}),
		AuditReader: auditservice.NewService(auditStore, checker),
		Health:      healthhandler.NewServer(pool, policy),
	})

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("gRPC server listening", "addr", cfg.GRPCAddr, "auth_provider", cfg.AuthProvider)
		if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down gRPC server")
		srv.GracefulStop()
		drainCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := events.Drain(drainCtx); err != nil {
			log.Warn("event drain incomplete", "error", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("gRPC server stopped")
	return nil
}

// newLimiter returns nil when the invite lookup limit is disabled. With REDIS_ADDR the budget is
// shared across replicas; otherwise each process keeps its own buckets.
func newLimiter(ctx context.Context, cfg *config.Config, log *slog.Logger) (ratelimit.Limiter, error) {
	if cfg.InviteLookupRatePerMin == 0 {
		return nil, nil
	}
	if cfg.RedisAddr == "" {
		return ratelimit.NewLocal(cfg.InviteLookupRatePerMin), nil
	}
	client, err := ratelimit.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	return ratelimit.NewRedis(client, cfg.InviteLookupRatePerMin, log), nil
}
