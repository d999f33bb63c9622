package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/td0m/vacation/pkg/plan"
)

// DefaultKey is the storage key the planner document lives under
const DefaultKey = "vacationPlannerData"

var ErrWrite = errors.New("could not write document")

type Persistor interface {
	Save(plan.Document) error
	Load() plan.Document
}

var _ Persistor = &Store{}

type Store struct {
	storage Storage
	key     string
	log     *slog.Logger
}

func New(storage Storage, key string, log *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{storage: storage, key: key, log: log.With("key", key)}
}

// Save encodes the document and writes it under the store's key.
// Errors wrap ErrWrite; the caller keeps its in-memory state either way.
func (s *Store) Save(doc plan.Document) error {
	bs, err := json.Marshal(doc)
	if err != nil {
		s.log.Error("encode document", "err", err)
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := s.storage.SetItem(s.key, string(bs)); err != nil {
		s.log.Error("save document", "err", err)
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Load never fails. Missing, unreadable or malformed data falls back to a
// fresh document. Whatever is returned is written back immediately so that
// storage always matches memory.
func (s *Store) Load() plan.Document {
	doc := s.read()
	// a failed write-back is already logged by Save
	_ = s.Save(doc)
	return doc
}

func (s *Store) read() plan.Document {
	value, ok, err := s.storage.GetItem(s.key)
	if err != nil {
		s.log.Warn("read document, using defaults", "err", err)
		return plan.NewDocument()
	}
	if !ok {
		s.log.Info("no document found, creating one")
		return plan.NewDocument()
	}
	var sv savable
	if err := json.Unmarshal([]byte(value), &sv); err != nil {
		s.log.Warn("malformed document, using defaults", "err", err)
		return plan.NewDocument()
	}
	doc, repaired := sv.toDocument()
	if repaired {
		s.log.Info("repaired stored document")
	}
	return doc
}
