package views

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sort"

	"github.com/dgraph-io/badger/v3"

	"github.com/wgonzales/catalogd/internal/explore"
)

// Sentinel errors for saved-view operations.
var (
	ErrViewNotFound    = errors.New("view not found")
	ErrInvalidViewName = errors.New("invalid view name")
)

// maxNameLen bounds saved-view names.
const maxNameLen = 64

// Store persists named filter selections in Badger so a dashboard session
// can be recalled later. Values are JSON-encoded explore.Selection.
type Store struct {
	db *badger.DB
}

// badgerLogger adapts slog for Badger's logger interface.
type badgerLogger struct {
	log *slog.Logger
}

func (l *badgerLogger) Errorf(f string, v ...interface{}) {
	l.log.Error(f, "args", v)
}

func (l *badgerLogger) Warningf(f string, v ...interface{}) {
	l.log.Warn(f, "args", v)
}

func (l *badgerLogger) Infof(f string, v ...interface{}) {
	l.log.Info(f, "args", v)
}

func (l *badgerLogger) Debugf(f string, v ...interface{}) {
	l.log.Debug(f, "args", v)
}

// Open creates or opens a saved-view store at the given directory.
func Open(path string) (*Store, error) {
	log := slog.With("component", "views-store")

	opts := badger.DefaultOptions(path).
		WithLogger(&badgerLogger{log: log}).
		WithValueLogFileSize(1<<26 - 1)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	err = db.RunValueLogGC(0.5)
	if err != nil && err != badger.ErrNoRewrite {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Put saves a selection under the given name, replacing any previous value.
func (s *Store) Put(name string, sel explore.Selection) error {
	if !validName(name) {
		return ErrInvalidViewName
	}

	value, err := json.Marshal(sel)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *badger.Txn) error {
		return tx.Set([]byte(name), value)
	})
}

// Get retrieves a saved selection by name.
func (s *Store) Get(name string) (explore.Selection, error) {
	var sel explore.Selection

	err := s.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(name))
		if err == badger.ErrKeyNotFound {
			return ErrViewNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sel)
		})
	})

	return sel, err
}

// Delete removes a saved selection.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *badger.Txn) error {
		_, err := tx.Get([]byte(name))
		if err == badger.ErrKeyNotFound {
			return ErrViewNotFound
		}
		if err != nil {
			return err
		}
		return tx.Delete([]byte(name))
	})
}

// List returns all saved view names, sorted.
func (s *Store) List() ([]string, error) {
	var names []string

	err := s.db.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(names)
	return names, nil
}

// Close shuts down the Badger database.
func (s *Store) Close() error {
	return s.db.Close()
}

func validName(name string) bool {
	return name != "" && len(name) <= maxNameLen
}
