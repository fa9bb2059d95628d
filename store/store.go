// Package store holds a chat transcript in its stored order and projects it
// into read-only views consumed by the aggregators.
package store

import (
	"chat-metrics/domain"
	"chat-metrics/errors"
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var validate = validator.New()

// Store wraps the ordered sequence of messages of one chat.
type Store struct {
	messages []domain.Message
}

// New validates every record and builds the store.
// A record without sender or timestamp is rejected here so aggregators
// never have to deal with it.
func New(records []domain.Record) (*Store, error) {
	messages := make([]domain.Message, 0, len(records))
	for i, r := range records {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", errors.ErrInvalidRecord, i, err)
		}
		messages = append(messages, domain.NewMessage(uuid.New(), r.Sender, r.Content, r.At))
	}
	return &Store{messages: messages}, nil
}

// FromMessages builds a store from messages that were already validated,
// typically reloaded from the repository.
func FromMessages(messages []domain.Message) *Store {
	return &Store{messages: slices.Clone(messages)}
}

func (s *Store) Len() int { return len(s.messages) }

// All returns the unfiltered view.
func (s *Store) All() View {
	return View{messages: s.messages}
}

// FilterByUser returns every message for Overall, else exactly those sent by user.
func (s *Store) FilterByUser(user string) View {
	return s.All().FilterByUser(user)
}

// Users lists distinct human senders sorted by name, preceded by Overall.
func (s *Store) Users() []string {
	users := s.All().ExcludeSystem().Senders()
	slices.Sort(users)
	return append([]string{domain.Overall}, users...)
}

// View is an ordered, read-only projection of a store.
// Filtering always allocates a new backing slice, the source is never touched.
type View struct {
	messages []domain.Message
}

// NewView is mostly useful in tests.
func NewView(messages ...domain.Message) View {
	return View{messages: slices.Clone(messages)}
}

func (v View) FilterByUser(user string) View {
	if user == domain.Overall {
		return v
	}
	return View{messages: lo.Filter(v.messages, func(m domain.Message, _ int) bool {
		return m.Sender == user
	})}
}

// ExcludeSystem drops group notifications. Applying it twice is a no-op.
func (v View) ExcludeSystem() View {
	return View{messages: lo.Filter(v.messages, func(m domain.Message, _ int) bool {
		return !m.IsSystem()
	})}
}

func (v View) Len() int { return len(v.messages) }

func (v View) IsEmpty() bool { return len(v.messages) == 0 }

func (v View) At(i int) domain.Message { return v.messages[i] }

// Messages returns a copy, callers may sort it freely.
func (v View) Messages() []domain.Message {
	return slices.Clone(v.messages)
}

// Senders returns distinct senders in order of first appearance.
func (v View) Senders() []string {
	return lo.Uniq(lo.Map(v.messages, func(m domain.Message, _ int) string {
		return m.Sender
	}))
}
