package invest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/simfone/invest/date"
)

// LedgerFile persists the transaction ledger as a JSONL file.
//
// The file is shared with the manual-trade screen as a second writer.
// There is no locking and every write rewrites the whole file, so the
// store is only safe under the single-process, low-volume assumption it
// was designed for.
type LedgerFile struct {
	Path string

	log zerolog.Logger
}

// NewLedgerFile creates a ledger store for the given file.
func NewLedgerFile(path string, log zerolog.Logger) *LedgerFile {
	return &LedgerFile{Path: path, log: log.With().Str("component", "ledger").Logger()}
}

// ReadAll loads the full transaction sequence. On any I/O or parse
// failure it returns a nil ledger and the error: callers must treat nil
// as "ledger unavailable", not as an empty ledger.
func (s *LedgerFile) ReadAll() (*Ledger, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", s.Path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", s.Path, err)
	}
	return ledger, nil
}

// Append appends transactions to the ledger file.
//
// There is no true append: the existing sequence is re-read, extended,
// and the whole file rewritten. A missing file bootstraps an empty
// ledger so the very first trade can be written; a corrupt file is an
// error, since rewriting it would destroy whatever it still holds.
func (s *LedgerFile) Append(txs ...Transaction) error {
	ledger, err := s.ReadAll()
	if errors.Is(err, fs.ErrNotExist) {
		ledger = NewLedger()
	} else if err != nil {
		return err
	}

	if err := ledger.Append(txs...); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", s.Path, err)
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", s.Path, err)
	}
	defer f.Close()

	if err := EncodeLedger(f, ledger); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", s.Path, err)
	}
	s.log.Debug().Int("appended", len(txs)).Int("total", ledger.Len()).Msg("ledger rewritten")
	return nil
}

// HistoryFile persists the execution history: a map from plan key to the
// last day the plan executed. It is the idempotency guard preventing a
// plan from executing more than once per calendar day.
type HistoryFile struct {
	Path string

	log zerolog.Logger
}

// NewHistoryFile creates an execution-history store for the given file.
func NewHistoryFile(path string, log zerolog.Logger) *HistoryFile {
	return &HistoryFile{Path: path, log: log.With().Str("component", "history").Logger()}
}

// Load returns the persisted execution history. The file not being
// present yet is the expected state on first run, so any read or format
// error degrades to an empty map, logged, never an error.
func (h *HistoryFile) Load() map[string]date.Date {
	history := make(map[string]date.Date)

	data, err := os.ReadFile(h.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			h.log.Warn().Err(err).Str("path", h.Path).Msg("execution history not readable, starting empty")
		}
		return history
	}
	if err := json.Unmarshal(data, &history); err != nil {
		h.log.Warn().Err(err).Str("path", h.Path).Msg("execution history format mismatch, starting empty")
		return make(map[string]date.Date)
	}
	return history
}

// Save fully overwrites the history file with the given map. There are
// no merge semantics: concurrent writers would clobber each other
// (single-writer assumption).
func (h *HistoryFile) Save(history map[string]date.Date) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("could not encode execution history: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(h.Path), 0755); err != nil {
		return fmt.Errorf("could not create directory for history %q: %w", h.Path, err)
	}
	if err := os.WriteFile(h.Path, data, 0644); err != nil {
		return fmt.Errorf("could not write execution history %q: %w", h.Path, err)
	}
	return nil
}
