// Package server assembles the back-office HTTP service from configuration.
package server

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/backoffice/internal/api/http"
	"github.com/spec-kit/backoffice/internal/api/http/handlers"
	"github.com/spec-kit/backoffice/internal/config"
	"github.com/spec-kit/backoffice/internal/domain"
	"github.com/spec-kit/backoffice/internal/events"
	"github.com/spec-kit/backoffice/internal/export"
	"github.com/spec-kit/backoffice/internal/observability"
	"github.com/spec-kit/backoffice/internal/persistence"
	"github.com/spec-kit/backoffice/internal/repository"
	"github.com/spec-kit/backoffice/internal/seed"
	"github.com/spec-kit/backoffice/internal/service"
	"github.com/spec-kit/backoffice/internal/stats"
	"github.com/spec-kit/backoffice/internal/store"
	"github.com/spec-kit/backoffice/internal/worker"
)

// Server is a fully wired back office.
type Server struct {
	App     *fiber.App
	Office  *service.Backoffice
	Audit   *service.AuditService
	Metrics *observability.Metrics

	logger  *zap.Logger
	closers []func()
}

// New connects the configured backends, seeds the collections and builds
// the fiber app. Close must be called to release connections.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	s := &Server{logger: logger, Metrics: observability.NewMetrics()}
	dispatcher := events.NewInMemoryDispatcher()
	dependencies := map[string]handlers.Pinger{}

	auditRepo, err := s.openAudit(ctx, cfg, dependencies)
	if err != nil {
		s.Close()
		return nil, err
	}

	var publisher *events.RedisPublisher
	if rdb := persistence.NewRedis(ctx, cfg.Redis, logger); rdb != nil {
		s.closers = append(s.closers, rdb.Close)
		dependencies["redis"] = rdb
		publisher = events.NewRedisPublisher(rdb.ClientHandle(), cfg.Redis.EventsChannel)
	}

	s.Office = service.NewBackoffice(service.CollectionDependencies{
		Store:             store.Options{Latency: cfg.Store.Latency()},
		Dispatcher:        dispatcher,
		Logger:            logger,
		StrictTransitions: cfg.Store.StrictTransitions,
	})
	fixtures, err := seed.Load(cfg.Store.SeedFile)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Office.Seed(fixtures)

	s.Audit = service.NewAuditService(dispatcher, auditRepo, logger)
	worker.Start(dispatcher, worker.Subscribers{
		Notification: service.NewNotificationService(dispatcher, logger, cfg.Notification),
		Audit:        s.Audit,
		Redis:        publisher,
	})

	for name, size := range s.Office.Sizes() {
		if err := s.Metrics.RegisterCollection(name, size); err != nil {
			s.Close()
			return nil, fmt.Errorf("register %s gauge: %w", name, err)
		}
	}

	s.App = fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(s.App, logger, s.Metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(s.App, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dependencies),
		Dashboard:     handlers.NewDashboardHandler(s.Office, s.Audit),
		Payments:      handlers.NewPaymentsHandler(s.Office.Payments, export.Options{Location: cfg.Export.Location(), BOM: cfg.Export.CSVByteOrderMark}),
		Inquiries:     handlers.NewInquiriesHandler(s.Office.Inquiries),
		Notifications: handlers.NewNotificationsHandler(s.Office.Notifications),
		Collections:   CollectionRoutes(s.Office),
		Metrics:       s.Metrics.Handler(),
	})

	logger.Info("backoffice ready",
		zap.String("audit_driver", string(cfg.Audit.Driver)),
		zap.Bool("strict_transitions", cfg.Store.StrictTransitions),
		zap.Bool("redis_events", publisher != nil))
	return s, nil
}

// CollectionRoutes returns the CRUD handlers of every collection, in menu order.
func CollectionRoutes(office *service.Backoffice) []handlers.CollectionRoutes {
	return []handlers.CollectionRoutes{
		handlers.NewCollectionHandler[domain.User, domain.UserPatch, stats.UserSummary](office.Users),
		handlers.NewCollectionHandler[domain.Employee, domain.EmployeePatch, stats.EmployeeSummary](office.Employees),
		handlers.NewCollectionHandler[domain.Content, domain.ContentPatch, stats.ContentSummary](office.Content),
		handlers.NewCollectionHandler[domain.Payment, domain.PaymentPatch, stats.PaymentSummary](office.Payments),
		handlers.NewCollectionHandler[domain.Inquiry, domain.InquiryPatch, stats.InquirySummary](office.Inquiries),
		handlers.NewCollectionHandler[domain.Notification, domain.NotificationPatch, stats.NotificationSummary](office.Notifications),
		handlers.NewCollectionHandler[domain.AdminAccount, domain.AdminAccountPatch, stats.AdminSummary](office.Permissions),
		handlers.NewCollectionHandler[domain.Setting, domain.SettingPatch, stats.SettingSummary](office.Settings),
	}
}

func (s *Server) openAudit(ctx context.Context, cfg *config.Config, deps map[string]handlers.Pinger) (repository.AuditRepository, error) {
	switch cfg.Audit.Driver {
	case config.AuditDriverPostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, cfg.App.Name, s.logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		s.closers = append(s.closers, pg.Close)
		deps["postgres"] = pg
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, s.logger); err != nil {
				return nil, err
			}
		}
		return repository.NewPostgresAuditRepository(pg.PoolHandle()), nil
	case config.AuditDriverSQLite:
		lite, err := persistence.NewSQLite(ctx, cfg.SQLite, s.logger)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, lite.Close)
		deps["sqlite"] = lite
		return repository.NewSQLiteAuditRepository(ctx, lite.DB)
	default:
		return repository.NewMemoryAuditRepository(), nil
	}
}

// Listen serves HTTP on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	s.logger.Info("listening", zap.String("addr", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown() error {
	if s.App == nil {
		return nil
	}
	return s.App.Shutdown()
}

// Close releases backend connections in reverse order of opening.
func (s *Server) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// Run builds the server and serves until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	s, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Listen(cfg.App.Addr())
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		return s.Shutdown()
	case err := <-errCh:
		return err
	}
}
