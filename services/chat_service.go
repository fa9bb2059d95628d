package services

import (
	"chat-metrics/analytics"
	"chat-metrics/domain"
	"chat-metrics/repositories"
	"chat-metrics/store"
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
)

type IChatService interface {
	Import(chat string, records []domain.Record) (int, error)
	Users(chat string) ([]string, error)
	Report(ctx context.Context, chat, user string) (analytics.Report, error)
}

// ChatService glues the repository, the message store and the report engine.
type ChatService struct {
	log        *slog.Logger
	repository repositories.IMessageRepository
	engine     *analytics.Engine
}

func NewChatService(log *slog.Logger, repository repositories.IMessageRepository, engine *analytics.Engine) *ChatService {
	return &ChatService{log: log, repository: repository, engine: engine}
}

// Import validates the records through the store before anything is persisted.
func (s ChatService) Import(chat string, records []domain.Record) (int, error) {
	st, err := store.New(records)
	if err != nil {
		return 0, err
	}
	if err = s.repository.StoreMessages(chat, st.All().Messages()); err != nil {
		return 0, fmt.Errorf("storing chat %s: %w", chat, err)
	}
	s.log.Info("Chat imported", "chat", chat, "messages", st.Len())
	return st.Len(), nil
}

func (s ChatService) Users(chat string) ([]string, error) {
	st, err := s.load(chat)
	if err != nil {
		return nil, err
	}
	return st.Users(), nil
}

// Report computes every table for user. An unknown user is not an error,
// it simply yields empty tables.
func (s ChatService) Report(ctx context.Context, chat, user string) (analytics.Report, error) {
	st, err := s.load(chat)
	if err != nil {
		return analytics.Report{}, err
	}
	if !lo.Contains(st.Users(), user) {
		s.log.Warn("User has no message in chat", "chat", chat, "user", user)
	}
	report := s.engine.Report(ctx, st, user)
	for name, failure := range report.Failures {
		s.log.Error("Table not computed", "chat", chat, "table", name, "error", failure)
	}
	return report, nil
}

func (s ChatService) load(chat string) (*store.Store, error) {
	messages, err := s.repository.GetMessages(chat)
	if err != nil {
		return nil, err
	}
	s.log.Debug("Chat loaded", "chat", chat, "messages", len(messages))
	return store.FromMessages(messages), nil
}
