package main

import (
	"chat-metrics/analytics"
	"chat-metrics/classify"
	"chat-metrics/internal"
	"chat-metrics/repositories"
	"chat-metrics/runtime"
	"chat-metrics/services"
	"chat-metrics/transcript"
	"flag"
	"fmt"
	"os"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run keeps every defer (database close) on the error path.
func run() error {
	chat := flag.String("chat", "", "name under which the transcript is stored")
	file := flag.String("file", "", "normalized transcript, JSON array or NDJSON")
	flag.Parse()
	if *chat == "" || *file == "" {
		flag.Usage()
		return fmt.Errorf("both -chat and -file are required")
	}

	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	loc, err := config.Location()
	if err != nil {
		return fmt.Errorf("timezone %q: %w", config.Timezone, err)
	}
	records, err := transcript.NewReader(loc).ReadFile(*file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *file, err)
	}

	db, err := internal.OpenBadger(config, false)
	if err != nil {
		return err
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	repository := repositories.NewMessageRepository(db, log, nil)
	engine := analytics.NewEngine(runtime.NewRunner(log, config.NumberOfWorkers), classify.DefaultOracles(), config.AnalyticsOptions())
	service := services.NewChatService(log, repository, engine)

	count, err := service.Import(*chat, records)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d messages into %q\n", count, *chat)
	return nil
}
