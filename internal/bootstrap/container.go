package bootstrap

import (
	"fmt"
	"time"

	"github.com/workdesk/workdesk/internal/config"
	"github.com/workdesk/workdesk/internal/infra/cache"
	"github.com/workdesk/workdesk/internal/infra/db"
	"github.com/workdesk/workdesk/internal/infra/logger"
	"github.com/workdesk/workdesk/internal/infra/mq"
	"github.com/workdesk/workdesk/internal/metrics"
	"github.com/workdesk/workdesk/internal/modules/handler"
	"github.com/workdesk/workdesk/internal/modules/model"
	"github.com/workdesk/workdesk/internal/modules/repo"
	"github.com/workdesk/workdesk/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Stores holds one store per persisted kind, all on the same backend.
type Stores struct {
	Users           repo.Store[model.User]
	Clients         repo.Store[model.Client]
	Projects        repo.Store[model.Project]
	Tasks           repo.Store[model.Task]
	Proposals       repo.Store[model.Proposal]
	Invoices        repo.Store[model.Invoice]
	Expenses        repo.Store[model.Expense]
	SupportTickets  repo.Store[model.SupportTicket]
	SupportMessages repo.Store[model.SupportMessage]
	CalendarEvents  repo.Store[model.CalendarEvent]
	Settings        repo.Store[model.CompanySettings]
}

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// clock in the configured timezone; it decides what "today" means
	do.Provide(inj, func(i *do.Injector) (repo.Clock, error) {
		cfg := do.MustInvoke[*config.Config](i)
		loc, err := time.LoadLocation(cfg.Dashboard.Timezone)
		if err != nil {
			return nil, fmt.Errorf("dashboard timezone: %w", err)
		}
		return func() time.Time { return time.Now().In(loc) }, nil
	})

	// DB, only resolved for relational drivers
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := db.Migrate(d); err != nil {
				return nil, fmt.Errorf("auto migrate: %w", err)
			}
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.Redis.Addr == "" {
			return nil, fmt.Errorf("redis.addr is not set")
		}
		return cache.New(cfg), nil
	})
	do.Provide(inj, func(i *do.Injector) (*cache.SnapshotCache, error) {
		return cache.NewSnapshotCache(do.MustInvoke[*redis.Client](i)), nil
	})

	// RabbitMQ
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, fmt.Errorf("rabbitmq.url is not set")
		}
		return amqp.Dial(cfg.RabbitMQ.URL)
	})
	do.Provide(inj, func(i *do.Injector) (*mq.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		conn, err := do.Invoke[*amqp.Connection](i)
		if err != nil {
			return nil, err
		}
		return mq.NewPublisher(conn, cfg.RabbitMQ.Queue, do.MustInvoke[*zap.Logger](i))
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (*Stores, error) {
		cfg := do.MustInvoke[*config.Config](i)
		now := do.MustInvoke[repo.Clock](i)
		if cfg.Database.Driver == db.DriverMemory {
			return memoryStores(now), nil
		}
		return gormStores(do.MustInvoke[*gorm.DB](i), now), nil
	})

	// side channels shared by every entity service
	do.Provide(inj, func(i *do.Injector) (service.Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		deps := service.Deps{
			Log:     log,
			Observe: metrics.ObserveEntityWrite,
			Now:     do.MustInvoke[repo.Clock](i),
		}
		if cacheEnabled(cfg) {
			deps.Snapshots = do.MustInvoke[*cache.SnapshotCache](i)
		}
		if cfg.RabbitMQ.URL != "" {
			pub, err := do.Invoke[*mq.Publisher](i)
			if err != nil {
				log.Sugar().Warnw("change events disabled", "err", err)
			} else {
				deps.Events = pub
			}
		}
		return deps, nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (handler.EntityServices, error) {
		s := do.MustInvoke[*Stores](i)
		deps := do.MustInvoke[service.Deps](i)
		return handler.EntityServices{
			Users:           service.NewUserService(s.Users, deps),
			Clients:         service.NewEntityService[model.Client](service.KindClients, s.Clients, deps, service.Hooks[model.Client]{}),
			Projects:        service.NewEntityService[model.Project](service.KindProjects, s.Projects, deps, service.Hooks[model.Project]{}),
			Tasks:           service.NewEntityService[model.Task](service.KindTasks, s.Tasks, deps, service.Hooks[model.Task]{}),
			Proposals:       service.NewEntityService[model.Proposal](service.KindProposals, s.Proposals, deps, service.Hooks[model.Proposal]{}),
			Invoices:        service.NewEntityService[model.Invoice](service.KindInvoices, s.Invoices, deps, service.Hooks[model.Invoice]{}),
			Expenses:        service.NewEntityService[model.Expense](service.KindExpenses, s.Expenses, deps, service.Hooks[model.Expense]{}),
			SupportTickets:  service.NewEntityService[model.SupportTicket](service.KindSupportTickets, s.SupportTickets, deps, service.Hooks[model.SupportTicket]{}),
			SupportMessages: service.NewEntityService[model.SupportMessage](service.KindSupportMessages, s.SupportMessages, deps, service.Hooks[model.SupportMessage]{}),
			CalendarEvents:  service.NewEntityService[model.CalendarEvent](service.KindCalendarEvents, s.CalendarEvents, deps, service.Hooks[model.CalendarEvent]{}),
		}, nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SettingsService, error) {
		return service.NewSettingsService(do.MustInvoke[*Stores](i).Settings, do.MustInvoke[service.Deps](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DashboardService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		s := do.MustInvoke[*Stores](i)

		var snapshots service.SnapshotCache
		if cacheEnabled(cfg) {
			snapshots = do.MustInvoke[*cache.SnapshotCache](i)
		}
		return service.NewDashboardService(service.DashboardStores{
			Clients:   s.Clients,
			Tasks:     s.Tasks,
			Invoices:  s.Invoices,
			Proposals: s.Proposals,
		},
			do.MustInvoke[repo.Clock](i),
			do.MustInvoke[*zap.Logger](i),
			snapshots,
			time.Duration(cfg.Dashboard.CacheTTLSec)*time.Second,
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) ([]handler.Routes, error) {
		return handler.NewEntityRoutes(do.MustInvoke[handler.EntityServices](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SettingsHandler, error) {
		return handler.NewSettingsHandler(do.MustInvoke[service.SettingsService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DashboardHandler, error) {
		return handler.NewDashboardHandler(do.MustInvoke[service.DashboardService](i)), nil
	})

	return inj
}

func cacheEnabled(cfg *config.Config) bool {
	return cfg.Dashboard.CacheTTLSec > 0 && cfg.Redis.Addr != ""
}

func memoryStores(now repo.Clock) *Stores {
	return &Stores{
		Users:           repo.NewMemoryStore[model.User](now),
		Clients:         repo.NewMemoryStore[model.Client](now),
		Projects:        repo.NewMemoryStore[model.Project](now),
		Tasks:           repo.NewMemoryStore[model.Task](now),
		Proposals:       repo.NewMemoryStore[model.Proposal](now),
		Invoices:        repo.NewMemoryStore[model.Invoice](now),
		Expenses:        repo.NewMemoryStore[model.Expense](now),
		SupportTickets:  repo.NewMemoryStore[model.SupportTicket](now),
		SupportMessages: repo.NewMemoryStore[model.SupportMessage](now),
		CalendarEvents:  repo.NewMemoryStore[model.CalendarEvent](now),
		Settings:        repo.NewMemoryStore[model.CompanySettings](now),
	}
}

func gormStores(d *gorm.DB, now repo.Clock) *Stores {
	return &Stores{
		Users:           repo.NewGormStore[model.User](d, now),
		Clients:         repo.NewGormStore[model.Client](d, now),
		Projects:        repo.NewGormStore[model.Project](d, now),
		Tasks:           repo.NewGormStore[model.Task](d, now),
		Proposals:       repo.NewGormStore[model.Proposal](d, now),
		Invoices:        repo.NewGormStore[model.Invoice](d, now),
		Expenses:        repo.NewGormStore[model.Expense](d, now),
		SupportTickets:  repo.NewGormStore[model.SupportTicket](d, now),
		SupportMessages: repo.NewGormStore[model.SupportMessage](d, now),
		CalendarEvents:  repo.NewGormStore[model.CalendarEvent](d, now),
		Settings:        repo.NewGormStore[model.CompanySettings](d, now),
	}
}
