package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/klokku/worklog-report/internal/app"
	log "github.com/sirupsen/logrus"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := app.NewRootCmd(app.NewApplication())
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}
