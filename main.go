package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/settleview/settleview-api/handlers"
	"github.com/settleview/settleview-api/internal/analytics"
	"github.com/settleview/settleview-api/internal/appointments"
	"github.com/settleview/settleview-api/internal/billing"
	"github.com/settleview/settleview-api/internal/cases"
	"github.com/settleview/settleview-api/internal/config"
	"github.com/settleview/settleview-api/internal/database"
	"github.com/settleview/settleview-api/internal/documents"
	"github.com/settleview/settleview-api/internal/messaging"
	"github.com/settleview/settleview-api/internal/notifications"
	"github.com/settleview/settleview-api/internal/profile"
	"github.com/settleview/settleview-api/internal/seed"
	"github.com/settleview/settleview-api/internal/settings"
	"github.com/settleview/settleview-api/internal/sessions"
	"github.com/settleview/settleview-api/internal/storage"
	"github.com/settleview/settleview-api/internal/tokens"
	"github.com/settleview/settleview-api/internal/users"
	"github.com/settleview/settleview-api/pkg/logger"
	"github.com/settleview/settleview-api/pkg/metrics"
	"github.com/settleview/settleview-api/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v rate_limit=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.RateLimit.Enabled)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple; production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, Last-Event-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	ctx := context.Background()

	// Connect to Redis early so the rate limiter, session store and token
	// blacklist can use it when configured.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter (per-user when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Sessions prefer Redis, then Mongo, then in-process memory. Users prefer
	// Mongo. Memory fallbacks keep the dashboard usable without either.
	var sessionsSvc *sessions.Service
	var usersSvc *users.Service
	if redisClient != nil {
		sessionsSvc = sessions.NewService(sessions.NewRedisRepository(redisClient, "session:"))
		logger.Infof("using Redis for session storage")
	}

	var mongoClient *mongo.Client
	if cfg.MongoDB.URI != "" {
		var errConn error
		mongoClient, errConn = database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB: %v", errConn)
			mongoClient = nil
		} else {
			defer func() { _ = mongoClient.Disconnect(ctx) }()
			db := mongoClient.Database(cfg.MongoDB.Database)
			usersSvc = users.NewService(users.NewMongoRepository(db.Collection("users")))
			if sessionsSvc == nil {
				sessionsSvc = sessions.NewService(sessions.NewMongoRepository(db.Collection("sessions")))
			}
		}
	}
	if usersSvc == nil {
		usersSvc = users.NewService(users.NewMemoryRepository())
		logger.Warnf("MongoDB unavailable; using in-memory user store")
	}
	if sessionsSvc == nil {
		sessionsSvc = sessions.NewService(sessions.NewMemoryRepository())
		logger.Warnf("no session backend configured; using in-memory sessions")
	}
	blacklist := sessions.NewBlacklist(redisClient)

	// Optional object storage for document content. Metadata stays in the
	// resource store either way.
	var blobs documents.BlobStore
	if scfg := storage.LoadConfig(); scfg.Endpoint != "" {
		ms, err := storage.NewMinIOStorage(scfg)
		if err != nil {
			logger.Warnf("object storage unavailable: %v", err)
		} else {
			blobs = ms
			logger.Infof("object storage ready: %s/%s", scfg.Endpoint, scfg.Bucket)
		}
	}

	// Domain services share one notifications service so every mutation can
	// fan out to the owner's event stream.
	ntfs := notifications.NewService(notifications.NewBroker(cfg.Stream.SubscriberBuffer))
	docsSvc := documents.NewService(blobs, ntfs)
	apptsSvc := appointments.NewService(ntfs)
	billsSvc := billing.NewService()
	msgsSvc := messaging.NewService(ntfs)
	casesSvc := cases.NewService(ntfs)
	analyticsSvc := analytics.NewService(docsSvc, apptsSvc, billsSvc, msgsSvc, casesSvc)
	profileSvc := profile.NewService()
	settingsSvc := settings.NewService()

	if os.Getenv("SEED_DEMO_DATA") != "false" {
		if err := seed.Demo(ctx, seed.Services{
			Users:         usersSvc,
			Documents:     docsSvc,
			Appointments:  apptsSvc,
			Billing:       billsSvc,
			Messaging:     msgsSvc,
			Cases:         casesSvc,
			Notifications: ntfs,
			Analytics:     analyticsSvc,
			Profile:       profileSvc,
		}); err != nil {
			logger.Warnf("failed to seed demo data: %v", err)
		} else {
			logger.Infof("demo data seeded for %s", seed.DemoEmail)
		}
	}

	verifier := tokens.NewVerifier(cfg.JWT.Secret, blacklist)

	handlers.NewAuthHandler(cfg, usersSvc, sessionsSvc, blacklist).Register(r.Group("/"))
	handlers.RegisterSwagger(r)

	api := r.Group("/api", middleware.AuthMiddleware(verifier))
	handlers.NewAPI(cfg, docsSvc, apptsSvc, billsSvc, msgsSvc, casesSvc, ntfs, analyticsSvc, profileSvc, settingsSvc).Register(api)
	api.GET("/me", func(c *gin.Context) {
		u, err := usersSvc.GetBySub(c.Request.Context(), middleware.Subject(c))
		if err != nil || u == nil {
			c.JSON(http.StatusOK, gin.H{"claims": c.MustGet("claims")})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": u})
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// Readiness reports per-dependency state; optional backends that fell
	// back to memory do not block readiness, unreachable configured ones do.
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := gin.H{}
		if cfg.MongoDB.URI != "" {
			deps["mongo"] = mongoClient != nil
			ready = ready && mongoClient != nil
		}
		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil
			ready = ready && redisClient != nil
		}
		deps["sessions"] = sessionsSvc != nil
		deps["users"] = usersSvc != nil
		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	// No WriteTimeout: the event-stream endpoints hold their responses open
	// until the client disconnects.
	srv := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: cfg.Server.ReadTimeout,
	}

	shutdownCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("starting dashboard service on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	<-shutdownCtx.Done()
	logger.Infof("shutdown signal received")
	ctxTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxTimeout); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
	logger.Infof("server stopped")
}
