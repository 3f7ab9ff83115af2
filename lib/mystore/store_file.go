package mystore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore keeps one JSON file per entity so that state survives restarts.
// It is meant for single-instance deployments: writers are serialized with a
// process-wide mutex, concurrent processes are last-write-wins.
type FileStore[T any] struct {
	sync.Mutex
	dir string
}

func NewFileStore[T any](c context.Context, baseDir string) (*FileStore[T], func(), error) {
	val := new(T)
	kind := fmt.Sprintf("%T", *val)
	if strings.Contains(kind, ".") {
		kind = strings.Split(kind, ".")[1]
	}

	dir := filepath.Join(baseDir, kind)
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating data-dir %s: %s", dir, err)
	}

	return &FileStore[T]{
		dir: dir,
	}, func() {}, nil
}

func (s *FileStore[T]) filename(uid string) string {
	return filepath.Join(s.dir, uid+".json")
}

func (s *FileStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	// Start transaction
	s.Lock()

	ctx := context.WithValue(c, ctxTransactionKey{}, true)

	// Within this block everything is transactional
	err := f(ctx)
	if err != nil {

		// Rollback
		s.Unlock()

		return err
	}

	// Commit
	s.Unlock()

	return nil
}

func (s *FileStore[T]) Put(c context.Context, uid string, value T) error {
	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshalling entity with uid %s: %s", uid, err)
	}

	err = os.WriteFile(s.filename(uid), data, 0o644)
	if err != nil {
		return fmt.Errorf("error storing entity with uid %s: %s", uid, err)
	}

	return nil
}

func (s *FileStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	value := new(T)

	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	data, err := os.ReadFile(s.filename(uid))
	if err != nil {
		if os.IsNotExist(err) {
			return *value, false, nil
		}
		return *value, false, fmt.Errorf("error fetching entity with uid %s: %s", uid, err)
	}

	err = json.Unmarshal(data, value)
	if err != nil {
		return *value, false, fmt.Errorf("error unmarshalling entity with uid %s: %s", uid, err)
	}

	return *value, true, nil
}

func (s *FileStore[T]) Delete(c context.Context, uid string) error {
	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	err := os.Remove(s.filename(uid))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error deleting entity with uid %s: %s", uid, err)
	}

	return nil
}

func (s *FileStore[T]) List(c context.Context) ([]T, error) {
	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("error listing data-dir %s: %s", s.dir, err)
	}

	result := []T{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("error reading entity-file %s: %s", entry.Name(), err)
		}

		value := new(T)
		err = json.Unmarshal(data, value)
		if err != nil {
			return nil, fmt.Errorf("error unmarshalling entity-file %s: %s", entry.Name(), err)
		}
		result = append(result, *value)
	}

	return result, nil
}

func (s *FileStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	return s.List(c)
}
