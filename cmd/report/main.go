package main

import (
	"chat-metrics/analytics"
	"chat-metrics/classify"
	"chat-metrics/domain"
	"chat-metrics/internal"
	"chat-metrics/repositories"
	"chat-metrics/runtime"
	"chat-metrics/services"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	chat := flag.String("chat", "", "stored chat to analyse")
	user := flag.String("user", domain.Overall, "sender to analyse, Overall for everyone")
	listUsers := flag.Bool("users", false, "list the senders of the chat and exit")
	flag.Parse()
	if *chat == "" {
		flag.Usage()
		return fmt.Errorf("-chat is required")
	}

	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	db, err := internal.OpenBadger(config, true)
	if err != nil {
		return err
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	repository := repositories.NewMessageRepository(db, log, config.LimitMessages)
	engine := analytics.NewEngine(runtime.NewRunner(log, config.NumberOfWorkers), classify.DefaultOracles(), config.AnalyticsOptions())
	service := services.NewChatService(log, repository, engine)

	if *listUsers {
		users, err := service.Users(*chat)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(users, "\n"))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := service.Report(ctx, *chat, *user)
	if err != nil {
		return err
	}
	newPrinter(os.Stdout, config.Colours).Print(report)
	return nil
}
