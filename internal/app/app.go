// Package app wires the booking engine together and exposes it over HTTP.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-booking-engine/internal/domain"
	"github.com/metinatakli/cinema-booking-engine/internal/event"
	"github.com/metinatakli/cinema-booking-engine/internal/gateway"
	"github.com/metinatakli/cinema-booking-engine/internal/mailer"
	"github.com/metinatakli/cinema-booking-engine/internal/pricing"
	"github.com/metinatakli/cinema-booking-engine/internal/repository"
	"github.com/metinatakli/cinema-booking-engine/internal/service"
	appvalidator "github.com/metinatakli/cinema-booking-engine/internal/validator"
	"github.com/metinatakli/cinema-booking-engine/internal/vcs"
	"github.com/redis/go-redis/v9"
)

var (
	version = vcs.Version()
)

type application struct {
	config    config
	logger    *slog.Logger
	validator *validator.Validate
	mailer    mailer.Mailer

	movieRepo domain.MovieRepository

	subject   *event.Subject
	inventory *event.InventoryObserver

	bookings *service.BookingService
	payments *service.PaymentService
	workflow *service.Workflow
}

type config struct {
	port int
	env  string
	smtp struct {
		host     string
		port     int
		username string
		password string
		sender   string
	}
	redis struct {
		url string
	}
	holidays       string
	gatewaySeed    int64
	gatewayTimeout time.Duration
}

func Run() error {
	var cfg config

	flag.IntVar(&cfg.port, "port", 3000, "server port")
	flag.StringVar(&cfg.env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.smtp.host, "smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	flag.IntVar(&cfg.smtp.port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.smtp.username, "smtp-username", "", "SMTP username")
	flag.StringVar(&cfg.smtp.password, "smtp-password", "", "SMTP password")
	flag.StringVar(&cfg.smtp.sender, "smtp-sender", "CineX <no-reply@cinex.metinatakli.net>", "SMTP sender")

	flag.StringVar(&cfg.redis.url, "redis-url", "", "Redis URL for inventory counters (empty: in-memory)")

	flag.StringVar(&cfg.holidays, "holidays", "", "Comma-separated holiday dates (YYYY-MM-DD)")
	flag.Int64Var(&cfg.gatewaySeed, "gateway-seed", 0, "Seed for simulated gateway outcomes (0: time-based)")
	flag.DurationVar(&cfg.gatewayTimeout, "gateway-timeout", 2*time.Second, "Max duration of a single gateway call")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	holidays, err := parseHolidays(cfg.holidays)
	if err != nil {
		return err
	}

	inventoryStore, closeStore, err := newInventoryStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	smtpMailer := mailer.NewSMTPMailer(
		cfg.smtp.host, cfg.smtp.port, cfg.smtp.username, cfg.smtp.password, cfg.smtp.sender)

	subject := event.NewSubject(logger)
	inventory := event.NewInventoryObserver(inventoryStore, logger)

	subject.Attach(event.NewLogObserver(logger))
	subject.Attach(event.NewEmailObserver(smtpMailer, logger))
	subject.Attach(event.NewSMSObserver(logger))
	subject.Attach(inventory)

	registry := gateway.NewRegistry()

	gatewayOpts := []gateway.Option{gateway.WithLogger(logger)}
	if cfg.gatewaySeed != 0 {
		gatewayOpts = append(gatewayOpts, gateway.WithRand(rand.New(rand.NewSource(cfg.gatewaySeed))))
	}

	registry.Register("STRIPE", gateway.NewStripeAdapter(gatewayOpts...))
	registry.Register("PAYPAL", gateway.NewPayPalAdapter(gatewayOpts...))
	registry.Register("CASH", gateway.NewCashAdapter(gatewayOpts...))

	movieRepo := repository.NewInMemoryMovieRepository(repository.SeedMovies()...)
	bookingRepo := repository.NewInMemoryBookingRepository()
	paymentRepo := repository.NewInMemoryPaymentRepository()

	bookings := service.NewBookingService(bookingRepo, subject, logger)

	payments := service.NewPaymentService(registry, paymentRepo, subject, logger)
	payments.SetGatewayTimeout(cfg.gatewayTimeout)

	workflow := service.NewWorkflow(movieRepo, bookings, payments, pricing.NewSelector(holidays), logger)

	app := &application{
		config:    cfg,
		logger:    logger,
		validator: appvalidator.NewValidator(),
		mailer:    smtpMailer,
		movieRepo: movieRepo,
		subject:   subject,
		inventory: inventory,
		bookings:  bookings,
		payments:  payments,
		workflow:  workflow,
	}

	return app.run()
}

func parseHolidays(csv string) ([]time.Time, error) {
	if csv == "" {
		return nil, nil
	}

	var holidays []time.Time

	for _, raw := range strings.Split(csv, ",") {
		day, err := time.Parse(time.DateOnly, strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid holiday date %q: %w", raw, err)
		}

		holidays = append(holidays, day)
	}

	return holidays, nil
}

// newInventoryStore returns a Redis-backed store when a URL is configured
// and an in-memory store otherwise.
func newInventoryStore(cfg config) (event.InventoryStore, func(), error) {
	if cfg.redis.url == "" {
		return repository.NewInMemoryInventoryStore(), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.redis.url)
	if err != nil {
		return nil, nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = client.Ping(ctx).Err()
	if err != nil {
		client.Close()
		return nil, nil, err
	}

	return repository.NewRedisInventoryStore(client), func() { client.Close() }, nil
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
