package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"driftAnalyzer/internal/analyzer/server"
)

func main() {
	log.Println("Starting application...")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := server.NewServer(ctx, "./config.yml")
	if err := s.Run(); err != nil {
		log.Fatal(err)
	}
	log.Println("Application started!")

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	s.Stop()
	log.Println("Shutting down")
	os.Exit(0)
}
