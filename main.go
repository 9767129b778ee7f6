package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/quantfold/scatter.report/internal/config"
	"github.com/quantfold/scatter.report/internal/db"
	"github.com/quantfold/scatter.report/internal/version"
)

var (
	listen        = flag.String("listen", ":8080", "Listen address")
	dbFile        = flag.String("db", "runs.db", "Path to the sqlite run store")
	configFile    = flag.String("config", "", "Path to a demo config JSON file (optional)")
	migrationsDir = flag.String("migrations", "migrations", "Path to the migrations directory")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: scatter-report [flags] [migrate up|down|status|force <v>|to <v>]\n\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *listen == "" {
		log.Fatal("Listen address is required")
	}

	var cfg *config.DemoConfig
	if *configFile != "" {
		var err error
		cfg, err = config.LoadDemoConfig(*configFile)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	} else if loaded, err := config.LoadDemoConfig(config.DefaultConfigPath); err == nil {
		cfg = loaded
	} else {
		log.Printf("no %s, using built-in defaults: %v", config.DefaultConfigPath, err)
		cfg = config.EmptyDemoConfig()
	}

	store, err := db.Open(*dbFile)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if flag.Arg(0) == "migrate" {
		if err := runMigrateCommand(store, *migrationsDir, flag.Args()[1:]); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		return
	}

	var wg sync.WaitGroup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wg.Add(1)
	go func() {
		defer wg.Done()

		mux := http.NewServeMux()

		// mount the admin debugging routes
		store.AttachAdminRoutes(mux)

		apiServer := NewServer(store, cfg)
		mux.Handle("/", LoggingMiddleware(apiServer.ServeMux()))

		server := &http.Server{
			Addr:    *listen,
			Handler: mux,
		}

		go func() {
			log.Printf("scatter.report %s listening on %s", version.Version, *listen)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("failed to start server: %v", err)
			}
		}()

		<-ctx.Done()
		log.Println("shutting down HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}

		log.Printf("HTTP server routine stopped")
	}()

	wg.Wait()
	log.Printf("Graceful shutdown complete")
}

// runMigrateCommand handles the migrate subcommand: up, down, status,
// force <version>, to <version>.
func runMigrateCommand(store *db.DB, dir string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand (up, down, status, force, to)")
	}

	switch args[0] {
	case "up":
		if err := store.MigrateUp(dir); err != nil {
			return err
		}
		log.Print("migrations applied")
	case "down":
		if err := store.MigrateDown(dir); err != nil {
			return err
		}
		log.Print("rolled back one migration")
	case "status":
		version, dirty, err := store.MigrateVersion(dir)
		if err != nil {
			return err
		}
		latest, err := db.LatestMigrationVersion(dir)
		if err != nil {
			return err
		}
		log.Printf("version=%d dirty=%v latest=%d", version, dirty, latest)
	case "force":
		if len(args) < 2 {
			return fmt.Errorf("force requires a version")
		}
		var v int
		if _, err := fmt.Sscanf(args[1], "%d", &v); err != nil {
			return fmt.Errorf("invalid version %q", args[1])
		}
		if err := store.MigrateForce(dir, v); err != nil {
			return err
		}
		log.Printf("forced version to %d", v)
	case "to":
		if len(args) < 2 {
			return fmt.Errorf("to requires a version")
		}
		var v uint
		if _, err := fmt.Sscanf(args[1], "%d", &v); err != nil {
			return fmt.Errorf("invalid version %q", args[1])
		}
		if err := store.MigrateTo(dir, v); err != nil {
			return err
		}
		log.Printf("migrated to version %d", v)
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
	return nil
}
