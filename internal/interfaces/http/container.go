package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/deskline-inc/deskline/internal/infrastructure/auth"
	"github.com/deskline-inc/deskline/internal/infrastructure/config"
	"github.com/deskline-inc/deskline/internal/infrastructure/permission"
	"github.com/deskline-inc/deskline/internal/infrastructure/pubsub"
	"github.com/deskline-inc/deskline/internal/infrastructure/scheduler"
	"github.com/deskline-inc/deskline/internal/interfaces/http/middleware"
	"github.com/deskline-inc/deskline/internal/shared/logger"
	"github.com/deskline-inc/deskline/internal/shared/services/markdown"
)

// Container holds the infrastructure components, repositories, use cases
// and handlers, wired together once at startup.
type Container struct {
	// Core infrastructure
	engine   *gin.Engine
	db       *gorm.DB
	cfg      *config.Config
	log      logger.Interface
	redis    *redis.Client
	registry *prometheus.Registry

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	httpMetrics          *middleware.HTTPMetrics

	// Infrastructure services
	jwtSvc    *auth.JWTService
	hasher    *auth.BcryptPasswordHasher
	enforcer  *permission.Enforcer
	publisher *pubsub.MultiPublisher
	renderer  *markdown.Renderer

	scheduler *scheduler.SchedulerManager
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, repositories, auth, RBAC, events
	if err := c.initInfrastructure(); err != nil {
		c.Shutdown()
		return nil, err
	}

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Handlers
	c.initHandlers()

	// Section 4: Maintenance jobs
	if err := c.initScheduler(); err != nil {
		c.Shutdown()
		return nil, err
	}

	return c, nil
}

func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	c.registry = prometheus.NewRegistry()
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if cfg.Redis.Enabled {
		client, err := initRedis(cfg, log)
		if err != nil {
			return err
		}
		c.redis = client
	}

	c.repos = newRepositories(c.db, log)

	jwtSvc, err := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpSeconds)
	if err != nil {
		return fmt.Errorf("failed to create jwt service: %w", err)
	}
	c.jwtSvc = jwtSvc
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	enforcer, err := permission.NewEnforcer(c.db, log.Named("permission"))
	if err != nil {
		return err
	}
	if cfg.Permission.SeedDefaults {
		if err := permission.Seed(enforcer, cfg.Permission.PolicyFile, log); err != nil {
			return fmt.Errorf("failed to seed permission policies: %w", err)
		}
	}
	c.enforcer = enforcer

	publisher, err := c.newEventPublisher()
	if err != nil {
		return err
	}
	c.publisher = publisher
	c.renderer = markdown.NewRenderer()

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)
	httpMetrics, err := middleware.NewHTTPMetrics(c.registry)
	if err != nil {
		return fmt.Errorf("failed to register http metrics: %w", err)
	}
	c.httpMetrics = httpMetrics

	return nil
}

// newEventPublisher fans ticket events out to Redis (or the log when Redis
// is disabled) and to the ticket event counters.
func (c *Container) newEventPublisher() (*pubsub.MultiPublisher, error) {
	metricsPublisher, err := pubsub.NewMetricsPublisher(c.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register ticket event metrics: %w", err)
	}

	var delivery pubsub.Publisher
	if c.redis != nil {
		delivery = pubsub.NewRedisTicketEventBus(c.redis, c.cfg.Redis.Channel, c.log)
	} else {
		delivery = pubsub.NewLogPublisher(c.log)
	}

	return pubsub.NewMultiPublisher(delivery, metricsPublisher), nil
}

// initRedis creates the Redis client and checks the connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr(), "channel", cfg.Redis.Channel)

	return client, nil
}

func (c *Container) initScheduler() error {
	if !c.cfg.Scheduler.Enabled {
		return nil
	}
	c.scheduler = scheduler.NewSchedulerManager(c.log.Named("scheduler"))
	return c.scheduler.RegisterResetTokenPurge(c.cfg.Scheduler.ResetTokenPurgeSpec, c.ucs.purgeResetTokens)
}

// StartScheduler starts the maintenance jobs, if enabled.
func (c *Container) StartScheduler() {
	if c.scheduler != nil {
		c.scheduler.Start()
	}
}

// Shutdown releases resources owned by the container. The database handle
// belongs to the caller.
func (c *Container) Shutdown() {
	if c.scheduler != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		c.scheduler.Stop(ctx)
		cancel()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
		c.redis = nil
	}
}
