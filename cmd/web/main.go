package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/matthewfinger/solitaire-lightweight/config"
	"github.com/matthewfinger/solitaire-lightweight/server"
	"github.com/matthewfinger/solitaire-lightweight/store"
	"k8s.io/klog/v2"
)

func main() {
	klog.InitFlags(nil)
	configPath := flag.String("config", "", "path to a config file")
	flag.Parse()
	defer klog.Flush()

	cfg, err := config.Load(*configPath)
	if err != nil {
		klog.Fatalf("could not load config: %v", err)
	}

	s := server.NewServer(store.NewInMemoryGameStore(), server.ServerOpts{
		Layout:         cfg.GameLayout(),
		DragMode:       cfg.DragMode,
		Seed:           cfg.Seed,
		SessionIdle:    cfg.SessionIdle,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, s, cfg.Addr); err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
}
