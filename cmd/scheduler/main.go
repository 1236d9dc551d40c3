package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hiresync/scheduler/internal/api"
	"github.com/hiresync/scheduler/internal/calendar"
	"github.com/hiresync/scheduler/internal/directory"
	"github.com/hiresync/scheduler/internal/outreach"
	"github.com/hiresync/scheduler/internal/reminders"
	"github.com/hiresync/scheduler/internal/repo"
	"github.com/hiresync/scheduler/internal/scheduling"
	"github.com/hiresync/scheduler/pkg/errors"
	"github.com/hiresync/scheduler/pkg/logger"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	interviews, err := repo.New(ctx, cfg.Storage, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init interviews repo"))
	}

	notifier, err := outreach.New(cfg.Outreach, log)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init notifier"))
	}

	coord := scheduling.New(
		interviews,
		directory.New(cfg.Directory),
		calendar.NewSlotSource(cfg.Calendar, log),
		calendar.NewMeetProvisioner(log),
		notifier,
		log,
	)

	sweeper := reminders.New(cfg.Reminders, log, coord)
	err = sweeper.Start(ctx)
	if err != nil {
		log.Panic(errors.WrapFail(err, "start reminder sweeper"))
	}

	server := api.NewServer(cfg.API, log, coord)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		stdlog.Println("Graceful shutdown...")

		sweeper.Stop()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelShutdown()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Error(errors.WrapFail(err, "shutdown server"))
		}

		err = interviews.Close(shutdownCtx)
		if err != nil {
			log.Error(errors.WrapFail(err, "close repo"))
		}

		stopped <- struct{}{}
	})

	stdlog.Println("Serving on", cfg.API.HTTP.Addr)
	err = server.Serve(ctx)
	if err != nil {
		log.Error(err)
	}

	<-stopped
	stdlog.Println("Shutdown complete")
}
