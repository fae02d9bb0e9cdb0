package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"slot_backend/internal/app"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.NewApp().Run(ctx); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
