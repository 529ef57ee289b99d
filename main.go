package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/eventlog"
	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/router"
	"github.com/danielhkuo/pollbooth/store"
	"github.com/danielhkuo/pollbooth/sweeper"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the poll store
	st, err := openStore(cfg)
	if err != nil {
		slog.Error("store setup failed", "error", err)
		os.Exit(1)
	}
	guard := store.NewGuard(st)
	events := eventlog.NewSlog(slog.Default())

	// Create router
	mux := router.NewRouter(guard, cfg, events)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// Start the expiration sweeper
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweeper.New(guard, cfg.SweepInterval, events).Run(ctx)
	slog.Info("Expiration sweeper running", "interval", cfg.SweepInterval)

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "store", cfg.StoreKind)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openStore picks the store backend from the configuration. SQL stores
// share one code path; only the driver differs.
func openStore(cfg cliparse.Config) (store.Store, error) {
	switch cfg.StoreKind {
	case cliparse.StoreSQLite, cliparse.StorePostgres:
		driver := "sqlite"
		if cfg.StoreKind == cliparse.StorePostgres {
			driver = "postgres"
		}
		db, err := sql.Open(driver, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := db.Ping(); err != nil {
			return nil, err
		}
		return store.NewSQL(db)
	default:
		return store.NewFile(cfg.DataFile), nil
	}
}
