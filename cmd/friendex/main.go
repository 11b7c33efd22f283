package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/friendex/internal/cli"
	"github.com/alexanderramin/friendex/internal/cli/formatter"
	"github.com/alexanderramin/friendex/internal/config"
	"github.com/alexanderramin/friendex/internal/db"
	"github.com/alexanderramin/friendex/internal/repository"
	"github.com/alexanderramin/friendex/internal/service"
	"github.com/alexanderramin/friendex/internal/storage"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Records that fail to decode are always dumped to stderr.
	sink := storage.NewLogSink(os.Stderr)
	contactRepo := repository.NewSQLiteContactRepo(database, sink)
	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Contacts:     service.NewContactService(contactRepo, nil, observer),
		Events:       service.NewEventService(contactRepo, uow, nil, observer),
		Transfer:     service.NewTransferService(contactRepo, uow, storage.NewCodec(sink), nil, observer),
		UpcomingDays: cfg.UpcomingDays,
	}

	formatter.SetPlain(!isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()))

	return cli.NewRootCmd(app).Execute()
}
