package main

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dentadesk/dentadesk/internal/handlers"
	"github.com/dentadesk/dentadesk/internal/storage"
	"github.com/dentadesk/dentadesk/libs/config"
	"github.com/dentadesk/dentadesk/libs/db"
	"github.com/dentadesk/dentadesk/libs/httpx"
	otelx "github.com/dentadesk/dentadesk/libs/otel"
	"github.com/dentadesk/dentadesk/libs/runtime"
)

func main() {
	service := config.String("SERVICE_NAME", "dentadesk")
	port, err := config.Port("PORT", "8765")
	if err != nil {
		panic(err)
	}
	dbPath := config.String("DENTADESK_DB_PATH", "dental.db")
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	store, err := db.Open(ctx, dbPath)
	if err != nil {
		logger.Error("opening database failed", "path", dbPath, "err", err)
		panic(err)
	}
	defer func() { _ = store.Close() }()

	if err := storage.Migrate(ctx, store, logger); err != nil {
		logger.Error("schema migration failed", "err", err)
		panic(err)
	}

	bridge := handlers.New(
		storage.NewPatientRepository(store),
		storage.NewAppointmentRepository(store),
		storage.NewClinicalRecordRepository(store),
		storage.NewPaymentRepository(store),
		storage.NewTreatmentRepository(store),
		logger,
	)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(store)},
	)
	bridge.Register(mux)

	handler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
		httpx.WithBodyLimit(1<<20),
		httpx.WithCORS(config.List("DENTADESK_UI_ORIGINS", nil)),
	)
	handler = otelhttp.NewHandler(handler, service)

	srv := &http.Server{
		// Loopback only: the bridge serves the UI shell on this machine.
		Addr:              "127.0.0.1:" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("bridge listening", "addr", srv.Addr, "db_path", dbPath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("bridge stopped")
}
