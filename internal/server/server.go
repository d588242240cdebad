// Package server boots the storefront: configuration, database, cache,
// storage, queue workers, scheduler, websocket feed, and the HTTP (and
// optionally gRPC) servers.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pamleeskitchen/bakehouse/app/jobs"
	"github.com/pamleeskitchen/bakehouse/app/models"
	"github.com/pamleeskitchen/bakehouse/app/notifications"
	"github.com/pamleeskitchen/bakehouse/app/routes"
	"github.com/pamleeskitchen/bakehouse/app/services"
	"github.com/pamleeskitchen/bakehouse/config"
	"github.com/pamleeskitchen/bakehouse/pkg/cache"
	"github.com/pamleeskitchen/bakehouse/pkg/database"
	"github.com/pamleeskitchen/bakehouse/pkg/event"
	grpcserver "github.com/pamleeskitchen/bakehouse/pkg/grpc"
	"github.com/pamleeskitchen/bakehouse/pkg/logger"
	"github.com/pamleeskitchen/bakehouse/pkg/metrics"
	"github.com/pamleeskitchen/bakehouse/pkg/middleware"
	"github.com/pamleeskitchen/bakehouse/pkg/notification"
	"github.com/pamleeskitchen/bakehouse/pkg/queue"
	"github.com/pamleeskitchen/bakehouse/pkg/reqid"
	"github.com/pamleeskitchen/bakehouse/pkg/router"
	"github.com/pamleeskitchen/bakehouse/pkg/schedule"
	"github.com/pamleeskitchen/bakehouse/pkg/session"
	"github.com/pamleeskitchen/bakehouse/pkg/storage"
	"github.com/pamleeskitchen/bakehouse/pkg/ws"
)

// Start boots every subsystem and blocks until SIGINT or SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if uri := config.MongoURI(); uri != "" {
		if _, err := logger.EnableMongoSink(uri, "bakehouse", "logs"); err != nil {
			logger.Warn("mongo log sink unavailable", "error", err)
		}
	}

	if err := database.Connect(); err != nil {
		return err
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, falling back to in-process cache and queue", "error", err)
	}
	storage.Connect()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	orderFeed := ws.NewHub()
	go orderFeed.Run()

	registerListeners(orderFeed)
	startQueue(ctx)
	startScheduler(ctx)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		session.Middleware(session.DefaultOptions()),
	)
	routes.RegisterAPI(r, orderFeed)

	httpSrv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "port", config.AppPort(), "env", config.AppEnv())
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	if port := config.GRPCPort(); port != "" {
		srv, _, err := grpcserver.Start(port)
		if err != nil {
			logger.Error("grpc server failed to start", "error", err)
		} else {
			defer grpcserver.Stop(srv)
		}
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// registerListeners wires domain events to jobs and the admin feed.
func registerListeners(orderFeed *ws.Hub) {
	broadcast := func(kind string, order models.Order) {
		payload, err := json.Marshal(map[string]interface{}{
			"event": kind,
			"order": order,
		})
		if err != nil {
			return
		}
		select {
		case orderFeed.Broadcast <- payload:
		default: // feed full, drop rather than block the request
		}
	}

	event.Listen("order.created", func(payload interface{}) {
		order, ok := payload.(models.Order)
		if !ok {
			return
		}
		if err := queue.Dispatch(jobs.OrderConfirmationJob{OrderID: order.ID}); err != nil {
			logger.Error("could not queue order confirmation", "order", order.OrderNumber, "error", err)
		}
		notification.SendAsync(config.ShopEmail(), &notifications.NewOrder{Order: order})
		broadcast("order.created", order)
	})

	event.Listen("order.status_changed", func(payload interface{}) {
		if order, ok := payload.(models.Order); ok {
			broadcast("order.status_changed", order)
		}
	})

	event.Listen("order.cancelled", func(payload interface{}) {
		if order, ok := payload.(models.Order); ok {
			broadcast("order.cancelled", order)
		}
	})

	event.Listen("contact.received", func(payload interface{}) {
		msg, ok := payload.(models.ContactMessage)
		if !ok {
			return
		}
		if err := queue.Dispatch(jobs.ContactNotificationJob{MessageID: msg.ID}); err != nil {
			logger.Error("could not queue contact notification", "message", msg.ID, "error", err)
		}
	})
}

// startQueue registers job types, picks the driver, and launches workers.
func startQueue(ctx context.Context) {
	jobs.Register()
	queue.UseDB(database.DB)
	if cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	queue.StartWorkers(ctx, 5)
}

// startScheduler registers recurring tasks and runs them in-process.
func startScheduler(ctx context.Context) {
	RegisterSchedules()
	schedule.Start(ctx)
}

// RegisterSchedules wires every recurring task. Also called by the
// standalone schedule:run command.
func RegisterSchedules() {
	content := services.NewContentService()
	schedule.Daily().At("00:05").Name("specials:expire").WithoutOverlapping().Run(func() {
		n, err := content.ExpireSpecials()
		if err != nil {
			logger.Error("expiring specials failed", "error", err)
			return
		}
		if n > 0 {
			logger.Info("expired specials deactivated", "count", n)
		}
	})
}
