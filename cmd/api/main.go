package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/ftracker/internal/api"
	"example.com/ftracker/internal/auth"
	"example.com/ftracker/internal/config"
	"example.com/ftracker/internal/domain"
	"example.com/ftracker/internal/publish"
	httptransport "example.com/ftracker/internal/transport/http"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	locale, err := domain.ParseLocale(cfg.ReportLocale)
	if err != nil {
		log.Fatalf("invalid REPORT_LOCALE: %v", err)
	}

	var publisher domain.Publisher = publish.NoopPublisher{}
	if cfg.PublishingEnabled() {
		producer := publish.NewSummaryProducer(cfg.KafkaBrokers, cfg.SummaryTopic)
		defer producer.Close()
		publisher = publish.NewSummaryPublisher(producer, cfg.PublishTimeout)
		log.Printf("publishing summaries to %s via %v", cfg.SummaryTopic, cfg.KafkaBrokers)
	} else {
		log.Printf("KAFKA_BROKERS not set, summary publishing disabled")
	}

	service := domain.NewService(publisher)
	handler := api.NewHandler(service, locale)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	// Basic request logger
	logger := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("%s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
		})
	}

	authMiddleware := auth.NewMiddleware(auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer})

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:         cfg.HTTPAddress,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger(authMiddleware.Wrap(mux)))

	metricsServer := httptransport.NewServer(httptransport.ServerConfig{
		Address:         cfg.MetricsAddress,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, promhttp.Handler())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		log.Printf("metrics listening on %s", cfg.MetricsAddress)
		if err := metricsServer.Run(ctx); err != nil {
			log.Printf("metrics server error: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		log.Printf("ftracker api listening on %s", cfg.HTTPAddress)
		if err := server.Run(ctx); err != nil {
			log.Printf("server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("shutdown requested")
	wg.Wait()
}
