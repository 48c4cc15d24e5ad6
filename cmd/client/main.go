package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cinema-client/internal/adapter"
	"github.com/MKhiriev/go-cinema-client/internal/client"
	"github.com/MKhiriev/go-cinema-client/internal/commands"
	"github.com/MKhiriev/go-cinema-client/internal/config"
	"github.com/MKhiriev/go-cinema-client/internal/console"
	"github.com/MKhiriev/go-cinema-client/internal/display"
	"github.com/MKhiriev/go-cinema-client/internal/logger"
	"github.com/MKhiriev/go-cinema-client/internal/service"
	"github.com/MKhiriev/go-cinema-client/internal/workers"
	"github.com/MKhiriev/go-cinema-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log, logCloser := logger.NewClientLogger("cinema-client", cfg.Log.File)
	defer logCloser.Close()

	if err = run(cfg, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		logCloser.Close()
		os.Exit(1)
	}
}

func run(cfg *config.ClientConfig, log *logger.Logger) error {
	// The first signal ends the session gracefully; stop() restores the
	// default handler so a second one kills a session stuck on input.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		stop()
	}()

	cinemaAdapter, err := adapter.NewGRPCCinemaAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create cinema adapter: %w", err)
	}

	source, err := console.NewLineSource(os.Stdin, os.Stdout, cfg.Session.HistoryFile)
	if err != nil {
		_ = cinemaAdapter.Close()
		return fmt.Errorf("create input source: %w", err)
	}
	renderer := display.NewRenderer(os.Stdout)
	reader := console.NewReader(source, renderer)
	defer reader.Close()

	dispatcher := commands.NewDispatcher(reader, renderer, log)
	svc := service.NewCinemaService(cinemaAdapter, log)

	bg := workers.NewWorkers(
		workers.NewConnStateWatcher(cinemaAdapter.Conn(), log.GetChildLogger()),
	)
	watchCtx, cancelWatch := context.WithCancel(ctx)
	bg.Run(watchCtx)
	defer func() {
		cancelWatch()
		bg.Wait()
	}()

	app := client.NewApp(cinemaAdapter, svc, reader, dispatcher, renderer, cfg.Session, log)
	return app.Run(ctx)
}
