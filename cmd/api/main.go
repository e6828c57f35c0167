package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mattOd80/skills-getting-started-with-github-copilot/internal/api"
	"github.com/mattOd80/skills-getting-started-with-github-copilot/internal/config"
	"github.com/mattOd80/skills-getting-started-with-github-copilot/internal/directory"
	"github.com/mattOd80/skills-getting-started-with-github-copilot/internal/domain"
	"github.com/mattOd80/skills-getting-started-with-github-copilot/internal/events"
	httptransport "github.com/mattOd80/skills-getting-started-with-github-copilot/internal/transport/http"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, storeCleanup, err := buildDirectory(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialise directory store: %v", err)
	}
	defer storeCleanup()

	publisher, publisherCleanup := buildPublisher(cfg)
	defer publisherCleanup()

	service := domain.NewService(store, publisher)

	handler := api.NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	// Basic request logger
	logger := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Printf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
		})
	}

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, logger(mux))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("activity directory listening on %s", cfg.HTTPAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}

// buildDirectory selects the roster store. POSTGRES_URL switches to the
// persistent store; otherwise the seeded in-memory directory serves requests.
func buildDirectory(ctx context.Context, cfg config.Config) (domain.Directory, func(), error) {
	if cfg.PostgresURL == "" {
		log.Printf("POSTGRES_URL not set, using in-memory directory")
		return directory.NewInMemoryDirectory(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		return nil, nil, err
	}

	store := directory.NewPostgresDirectory(pool)
	if err := store.EnsureSeed(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return store, pool.Close, nil
}

// buildPublisher wires roster events to Kafka when brokers are configured.
func buildPublisher(cfg config.Config) (events.Publisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Printf("KAFKA_BROKERS not set, roster events disabled")
		return events.NoopPublisher{}, func() {}
	}

	producer := events.NewKafkaProducer(cfg.KafkaBrokers)
	cleanup := func() {
		if err := producer.Close(); err != nil {
			log.Printf("kafka producer close error: %v", err)
		}
	}

	if cfg.SchemaRegistryURL == "" {
		log.Printf("SCHEMA_REGISTRY_URL not set, publishing bare JSON payloads")
		return events.NewKafkaPublisher(producer, nil, cfg.RosterTopic), cleanup
	}

	registry := events.NewSchemaRegistryClient(cfg.SchemaRegistryURL)
	return events.NewKafkaPublisher(producer, registry, cfg.RosterTopic), cleanup
}
