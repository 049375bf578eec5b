package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/uvjustin/golibrespot-java/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	host := flag.String("host", "", "librespot-java API host (overrides config)")
	port := flag.Int("port", 0, "librespot-java API port (overrides config)")
	reconnect := flag.Int("reconnect", 0, "event stream reconnect interval in seconds (overrides config)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:       *configPath,
		Host:             *host,
		Port:             *port,
		ReconnectSeconds: *reconnect,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "golibrespot: %v\n", err)
		return 1
	}
	return 0
}
