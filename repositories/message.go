//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"chat-metrics/domain"
	"chat-metrics/errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	messagePrefix = "msg:"
	chatPrefix    = "chat:"
)

type IMessageRepository interface {
	StoreMessages(chat string, messages []domain.Message) error
	GetMessages(chat string) ([]domain.Message, error)
	ListChats() ([]ChatSummary, error)
	DeleteChat(chat string) error
}

// ChatSummary is the metadata kept next to an imported transcript.
type ChatSummary struct {
	Name       string
	Messages   int
	ImportedAt time.Time
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

// StoreMessages replaces the transcript of a chat.
// The key is formatted as "msg:{chat}:{position_padded}" so a prefix scan
// returns messages in their stored order, even when timestamps are not monotonic.
func (m MessageRepository) StoreMessages(chat string, messages []domain.Message) error {
	if err := validChat(chat); err != nil {
		return err
	}
	if err := m.DeleteChat(chat); err != nil {
		return err
	}

	wb := m.db.NewWriteBatch()
	defer wb.Cancel()
	for i, message := range messages {
		bytes, err := marshalMessage(message)
		if err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		if err = wb.Set(messageKey(chat, i), bytes); err != nil {
			return err
		}
	}
	meta, err := marshalSummary(ChatSummary{Name: chat, Messages: len(messages), ImportedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	if err = wb.Set([]byte(chatPrefix+chat), meta); err != nil {
		return err
	}
	if err = wb.Flush(); err != nil {
		return err
	}
	m.log.Debug("Chat stored", "chat", chat, "messages", len(messages))
	return nil
}

// GetMessages reads a chat back in stored order.
// It stops collecting messages once the configured limitMessages is reached.
func (m MessageRepository) GetMessages(chat string) ([]domain.Message, error) {
	if err := validChat(chat); err != nil {
		return nil, err
	}
	var messages []domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(chatPrefix + chat)); err != nil {
			if err == badger.ErrKeyNotFound {
				return fmt.Errorf("%w: %s", errors.ErrChatNotFound, chat)
			}
			return err
		}

		prefix := []byte(fmt.Sprintf("%s%s:", messagePrefix, chat))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(messages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", *m.limitMessages))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				message, err := unmarshalMessage(value)
				if err != nil {
					return err
				}
				messages = append(messages, message)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// ListChats returns every imported chat, sorted by name.
func (m MessageRepository) ListChats() ([]ChatSummary, error) {
	var chats []ChatSummary
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(chatPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				summary, err := unmarshalSummary(value)
				if err != nil {
					return err
				}
				chats = append(chats, summary)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return chats, err
}

func (m MessageRepository) DeleteChat(chat string) error {
	if err := validChat(chat); err != nil {
		return err
	}
	if err := m.db.DropPrefix([]byte(fmt.Sprintf("%s%s:", messagePrefix, chat))); err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(chatPrefix + chat))
	})
}

func validChat(chat string) error {
	if chat == "" || strings.Contains(chat, ":") {
		return fmt.Errorf("%w: %q", errors.ErrInvalidChatName, chat)
	}
	return nil
}

func messageKey(chat string, position int) []byte {
	return []byte(fmt.Sprintf("%s%s:%019d", messagePrefix, chat, position))
}

func marshalMessage(message domain.Message) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"id":      message.ID.String(),
		"sender":  message.Sender,
		"content": message.Content,
		"at":      message.At.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func unmarshalMessage(value []byte) (domain.Message, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(value, &s); err != nil {
		return domain.Message{}, err
	}
	fields := s.GetFields()
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return domain.Message{}, err
	}
	at, err := time.Parse(time.RFC3339Nano, fields["at"].GetStringValue())
	if err != nil {
		return domain.Message{}, err
	}
	return domain.NewMessage(id, fields["sender"].GetStringValue(), fields["content"].GetStringValue(), at), nil
}

func marshalSummary(summary ChatSummary) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"name":        summary.Name,
		"messages":    summary.Messages,
		"imported_at": summary.ImportedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func unmarshalSummary(value []byte) (ChatSummary, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(value, &s); err != nil {
		return ChatSummary{}, err
	}
	fields := s.GetFields()
	importedAt, err := time.Parse(time.RFC3339Nano, fields["imported_at"].GetStringValue())
	if err != nil {
		return ChatSummary{}, err
	}
	return ChatSummary{
		Name:       fields["name"].GetStringValue(),
		Messages:   int(fields["messages"].GetNumberValue()),
		ImportedAt: importedAt,
	}, nil
}
