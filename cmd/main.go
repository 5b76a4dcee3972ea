package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/brandon-nx/Food-Ordering-System/internal/app"
	"github.com/brandon-nx/Food-Ordering-System/internal/config"
	"github.com/brandon-nx/Food-Ordering-System/internal/console"
	"github.com/brandon-nx/Food-Ordering-System/internal/database"
	"github.com/brandon-nx/Food-Ordering-System/internal/logger"
	"github.com/brandon-nx/Food-Ordering-System/internal/messaging"
	"github.com/brandon-nx/Food-Ordering-System/internal/services/notification"
	"github.com/brandon-nx/Food-Ordering-System/internal/services/order"
)

func main() {
	var (
		configPath    = pflag.String("config", "config.yaml", "Path to the YAML configuration file")
		mode          = pflag.String("mode", "console", "Service mode (console, notification-subscriber)")
		customersFile = pflag.String("customers-file", "", "Override the customer file from the configuration")
		prefetch      = pflag.Int("prefetch", 1, "RabbitMQ prefetch count for notification-subscriber")
	)
	pflag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *customersFile != "" {
		cfg.App.CustomersFile = *customersFile
	}

	logOut, closeLog, err := openLogOutput(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	log := logger.New(*mode, cfg.Log.Level, logOut)
	defer log.Sync()
	requestID := logger.GenerateRequestID()

	log.Info("service_started", fmt.Sprintf("Starting %s", *mode), requestID, map[string]interface{}{
		"mode":     *mode,
		"config":   *configPath,
		"database": cfg.Database.Enabled,
		"rabbitmq": cfg.RabbitMQ.Enabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "console":
		err = runConsole(ctx, cfg, log)
	case "notification-subscriber":
		err = runNotificationSubscriber(ctx, cfg, log, *prefetch)
	default:
		log.Error("validation_failed", fmt.Sprintf("Unknown mode: %s", *mode), requestID, nil, nil)
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", *mode)
		pflag.Usage()
		os.Exit(1)
	}
	if err != nil {
		log.Error("service_failed", fmt.Sprintf("%s failed", *mode), requestID, err, nil)
		log.Sync()
		os.Exit(1)
	}

	log.Info("service_stopped", "Service stopped gracefully", requestID, nil)
}

// openLogOutput keeps structured logs off the console when a file is set
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func runConsole(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	var (
		opts   []order.Option
		ledger *order.PostgresLedger
	)

	if cfg.Database.Enabled {
		db, err := database.New(ctx, cfg, log)
		if err != nil {
			log.Error("db_unavailable", "Order ledger disabled", "startup", err, nil)
		} else {
			defer db.Close()
			if err := db.RunMigrations(ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			ledger = order.NewPostgresLedger(db)
			opts = append(opts, order.WithSinks(ledger))
		}
	}

	if cfg.RabbitMQ.Enabled {
		conn, err := messaging.New(ctx, cfg, log)
		if err != nil {
			log.Error("rabbitmq_unavailable", "Notifications disabled", "startup", err, nil)
		} else {
			defer conn.Close()
			notifier := order.NewNotifier(messaging.NewPublisher(conn, log))
			opts = append(opts, order.WithSinks(notifier), order.WithAlerter(notifier))
		}
	}

	orders := order.NewService(log, cfg.App.LowStockThreshold, opts...)
	if ledger != nil {
		if err := orders.ResumeNumbering(ctx, ledger); err != nil {
			log.Error("order_numbering_failed", "Order numbers restart at 001", "startup", err, nil)
		}
	}

	a := app.New(cfg, log, orders, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	if cfg.App.SeedData {
		if err := a.Seed(); err != nil {
			return fmt.Errorf("failed to seed restaurants: %w", err)
		}
	}
	a.LoadCustomers()

	// Unblock the stdin read when a signal arrives
	go func() {
		<-ctx.Done()
		os.Stdin.Close()
	}()

	err := console.New(os.Stdin, os.Stdout, a).Run(ctx)
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func runNotificationSubscriber(ctx context.Context, cfg *config.Config, log *logger.Logger, prefetch int) error {
	conn, err := messaging.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize messaging: %w", err)
	}

	consumer := messaging.NewConsumer(conn, log, messaging.NotificationsQueue, "notification-subscriber", prefetch)
	subscriber := notification.NewSubscriber(consumer, log, os.Stdout, cfg.App.Currency)
	return subscriber.Start(ctx)
}
