package inquiry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// StorageKey is the key the inquiry list is stored under.
const StorageKey = "ggci_local_inquiries"

// DefaultAuthor signs replies that name no author.
const DefaultAuthor = "Admin Director"

// Urgency ranks an inquiry for triage.
type Urgency string

const (
	UrgencyNormal   Urgency = "Normal"
	UrgencyUrgent   Urgency = "Urgent"
	UrgencyCritical Urgency = "Critical"
)

// Status tracks an inquiry through the admin workflow.
type Status string

const (
	StatusNew     Status = "New"
	StatusRead    Status = "Read"
	StatusReplied Status = "Replied"
)

// Reply is an admin response to an inquiry.
type Reply struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author"`
}

// Inquiry is a contact-form submission.
type Inquiry struct {
	ID          string    `json:"id"`
	SenderName  string    `json:"senderName"`
	SenderEmail string    `json:"senderEmail"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Urgency     Urgency   `json:"urgency"`
	Status      Status    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Replies     []Reply   `json:"replies"`
}

// Submission is the contact-form input for a new inquiry.
type Submission struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
}

// Store keeps the inquiry list as a single JSON array under StorageKey.
// Every mutation reads the whole list, changes it and writes it back. A
// mutex serializes this within one Store; separate processes sharing a
// backend overwrite each other, and the last write wins.
type Store struct {
	mu      sync.Mutex
	adapter Adapter
	now     func() time.Time
	newID   func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator sets the function that assigns inquiry IDs.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// NewStore creates a store over adapter. If adapter is nil, a default
// in-memory adapter is used.
func NewStore(adapter Adapter, opts ...Option) *Store {
	if adapter == nil {
		adapter = NewMemoryAdapter()
	}
	s := &Store{
		adapter: adapter,
		now:     time.Now,
		newID:   newID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newID() string {
	return "INQ-" + strings.ToUpper(uuid.NewString()[:8])
}

// List returns all inquiries, newest first.
func (s *Store) List(ctx context.Context) ([]Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Get returns the inquiry with id.
func (s *Store) Get(ctx context.Context, id string) (Inquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return Inquiry{}, err
	}
	i := indexOf(list, id)
	if i < 0 {
		return Inquiry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return list[i], nil
}

// Submit records a new inquiry at the top of the list.
func (s *Store) Submit(ctx context.Context, sub Submission) (Inquiry, error) {
	inq := Inquiry{
		ID:          s.newID(),
		SenderName:  sub.SenderName,
		SenderEmail: sub.SenderEmail,
		Subject:     sub.Subject,
		Message:     sub.Message,
		Urgency:     UrgencyNormal,
		Status:      StatusNew,
		Timestamp:   s.now(),
		Replies:     []Reply{},
	}

	err := s.update(ctx, func(list []Inquiry) ([]Inquiry, error) {
		return append([]Inquiry{inq}, list...), nil
	})
	if err != nil {
		return Inquiry{}, err
	}
	return inq, nil
}

// MarkRead moves a New inquiry to Read. Other statuses are left alone.
func (s *Store) MarkRead(ctx context.Context, id string) (Inquiry, error) {
	var out Inquiry
	err := s.update(ctx, func(list []Inquiry) ([]Inquiry, error) {
		i := indexOf(list, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if list[i].Status == StatusNew {
			list[i].Status = StatusRead
		}
		out = list[i]
		return list, nil
	})
	return out, err
}

// Reply appends a reply and marks the inquiry Replied. An empty author
// defaults to DefaultAuthor.
func (s *Store) Reply(ctx context.Context, id, text, author string) (Inquiry, error) {
	if strings.TrimSpace(text) == "" {
		return Inquiry{}, ErrEmptyReply
	}
	if author == "" {
		author = DefaultAuthor
	}

	var out Inquiry
	err := s.update(ctx, func(list []Inquiry) ([]Inquiry, error) {
		i := indexOf(list, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		list[i].Replies = append(list[i].Replies, Reply{Text: text, Timestamp: s.now(), Author: author})
		list[i].Status = StatusReplied
		out = list[i]
		return list, nil
	})
	return out, err
}

// Delete removes the inquiry with id. Deleting the last inquiry clears
// StorageKey from the adapter.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.update(ctx, func(list []Inquiry) ([]Inquiry, error) {
		i := indexOf(list, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return append(list[:i], list[i+1:]...), nil
	})
}

// update runs one read-modify-write cycle under the store mutex.
func (s *Store) update(ctx context.Context, fn func([]Inquiry) ([]Inquiry, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return err
	}
	list, err = fn(list)
	if err != nil {
		return err
	}
	return s.save(ctx, list)
}

func (s *Store) load(ctx context.Context) ([]Inquiry, error) {
	raw, ok, err := s.adapter.Get(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	list := []Inquiry{}
	if !ok || len(raw) == 0 {
		return list, nil
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, &SerializationError{Key: StorageKey, Err: err}
	}
	if list == nil {
		list = []Inquiry{}
	}
	return list, nil
}

// save writes the list back. An empty list removes the key.
func (s *Store) save(ctx context.Context, list []Inquiry) error {
	if len(list) == 0 {
		return s.adapter.Delete(ctx, StorageKey)
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return &SerializationError{Key: StorageKey, Err: err}
	}
	return s.adapter.Set(ctx, StorageKey, raw)
}

func indexOf(list []Inquiry, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
