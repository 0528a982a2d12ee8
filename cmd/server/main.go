package main

import (
	"context"
	"log"
	"os/signal"
	"slot_machine/internal/app"
	"syscall"

	_ "go.uber.org/automaxprocs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.NewApp().Run(ctx); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
