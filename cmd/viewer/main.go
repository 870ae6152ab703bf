package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/smartcity/trafficmap/internal/client"
	"github.com/smartcity/trafficmap/internal/config"
	"github.com/smartcity/trafficmap/internal/directions"
	"github.com/smartcity/trafficmap/internal/presenter"
	"github.com/smartcity/trafficmap/internal/routing"
	"github.com/smartcity/trafficmap/internal/session"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend := client.New(cfg.BackendURL, cfg.FetchTimeout)
	routes := routing.NewService(
		directions.NewRouter(cfg.DirectionsURL, cfg.DirectionsKey),
		routing.WithTimeout(cfg.RouteTimeout),
		routing.WithRegion(cfg.Region),
	)
	view := presenter.NewConsole(os.Stdout)

	s := session.New(backend, routes, view, session.WithSchedule(cfg.RefreshSchedule))
	if err := s.Start(ctx); err != nil {
		log.Fatalf("Viewer error: %v", err)
	}
	defer s.Stop()

	log.Printf("Kottakkal traffic viewer connected to %s (type help)", cfg.BackendURL)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		fmt.Print("> ")
		select {
		case <-ctx.Done():
			fmt.Println()
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			err := execute(ctx, s, os.Stdout, line)
			if errors.Is(err, errQuit) {
				return
			}
			var uerr *usageError
			if errors.As(err, &uerr) {
				fmt.Println(err)
			}
		}
	}
}
