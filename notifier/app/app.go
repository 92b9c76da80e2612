package app

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/napat-dev/lending-service/notifier/config"
	"github.com/napat-dev/lending-service/notifier/internal/handler"
	"github.com/napat-dev/lending-service/notifier/internal/service"
	"github.com/napat-dev/lending-service/pkg/kafka"
	"github.com/napat-dev/lending-service/pkg/logger"
	"github.com/napat-dev/lending-service/pkg/server"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "notifier")

	svc := service.NewService(log)

	cg, err := kafka.NewConsumer(cfg.Kafka, kafka.NotifierConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka.NewConsumer %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		kafka.Consume(gctx, cg, handler.NewConsumer(svc.Record, log), log, kafka.LendingTopic)
		return nil
	})
	g.Go(func() error {
		return srv.Run()
	})
	g.Go(func() error {
		<-gctx.Done()

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()

		if err := srv.Stop(closeCtx); err != nil {
			log.Error("srv.Stop", zap.Error(err))
		}
		return cg.Close()
	})

	if err := g.Wait(); err != nil {
		log.Error("notifier run", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
	return nil
}
