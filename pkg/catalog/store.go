package catalog

import (
	"bytes"
	"io/fs"
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Store persists the whole book sequence. Save always replaces everything
// previously stored.
type Store interface {
	Load() ([]Book, error)
	Save(books []Book) error
	Path() string
}

// Compile-time interface checks.
var (
	_ Store = (*JSONStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// storeJSON decodes numbers as json.Number so a hand-written year keeps its digits.
var storeJSON = jsoniter.Config{
	EscapeHTML:             false,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// JSONStore keeps the catalog in a single indented JSON file.
// Writes overwrite the file in place; there is no locking.
type JSONStore struct {
	path string
}

// NewJSONStore returns a store backed by the file at path.
func NewJSONStore(path string) *JSONStore {
	if path == "" {
		path = constants.DefaultLibraryFile
	}
	return &JSONStore{path: path}
}

// Path returns the backing file path.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the backing file. A missing file yields no books and no error.
// Content that is not a JSON array of objects yields a *errors.ParseError.
func (s *JSONStore) Load() ([]Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.WrapIO("read", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 || !storeJSON.Valid(data) {
		return nil, errors.NewParseError("json", s.path, "not a valid JSON document", nil)
	}

	var records []map[string]any
	if err := storeJSON.Unmarshal(data, &records); err != nil {
		return nil, errors.WrapParse("json", s.path, err)
	}

	books := make([]Book, 0, len(records))
	for _, record := range records {
		books = append(books, FromStorage(record))
	}
	return books, nil
}

// Save overwrites the backing file with books.
func (s *JSONStore) Save(books []Book) error {
	if books == nil {
		books = []Book{}
	}

	data, err := storeJSON.MarshalIndent(books, "", constants.StoreIndent)
	if err != nil {
		return errors.WrapParse("json", s.path, err)
	}

	if err := os.WriteFile(s.path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", s.path, err)
	}
	return nil
}

// MemoryStore keeps the stored representation in memory. It is used for
// dry runs and tests.
type MemoryStore struct {
	mu      sync.Mutex
	records []map[string]string
	saves   int
	saveErr error
}

// NewMemoryStore returns a memory store pre-populated with books.
func NewMemoryStore(books ...Book) *MemoryStore {
	s := &MemoryStore{}
	s.records = toRecords(books)
	return s
}

// Path returns a placeholder path for log messages.
func (s *MemoryStore) Path() string {
	return ":memory:"
}

// Load returns the stored books.
func (s *MemoryStore) Load() ([]Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]Book, 0, len(s.records))
	for _, record := range s.records {
		data := make(map[string]any, len(record))
		for k, v := range record {
			data[k] = v
		}
		books = append(books, FromStorage(data))
	}
	return books, nil
}

// Save replaces the stored books, or fails with the error set by FailSaves.
func (s *MemoryStore) Save(books []Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return errors.WrapIO("write", s.Path(), s.saveErr)
	}
	s.records = toRecords(books)
	s.saves++
	return nil
}

// Saves returns how many successful saves the store has seen.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// FailSaves makes every following Save return err. Pass nil to recover.
func (s *MemoryStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

func toRecords(books []Book) []map[string]string {
	records := make([]map[string]string, 0, len(books))
	for _, b := range books {
		records = append(records, b.ToStorage())
	}
	return records
}
