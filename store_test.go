package invest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/simfone/invest/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerFile_ReadAllMissingFile(t *testing.T) {
	store := NewLedgerFile(filepath.Join(t.TempDir(), "transactions.jsonl"), zerolog.Nop())

	ledger, err := store.ReadAll()
	require.Error(t, err)
	assert.Nil(t, ledger)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLedgerFile_ReadAllCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("not json at all\n"), 0644))
	store := NewLedgerFile(path, zerolog.Nop())

	ledger, err := store.ReadAll()
	require.Error(t, err)
	assert.Nil(t, ledger)
}

func TestLedgerFile_AppendBootstrapsAndAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger", "transactions.jsonl")
	store := NewLedgerFile(path, zerolog.Nop())

	first := NewBuy(date.MustParse("2024-02-15"), "AAPL", 5, M(100, "USD"))
	require.NoError(t, store.Append(first))

	ledger, err := store.ReadAll()
	require.NoError(t, err)
	require.Equal(t, 1, ledger.Len())

	// A later append re-reads and rewrites the whole file, sorted by date.
	earlier := NewSell(date.MustParse("2024-01-10"), "AAPL", 2, M(90, "USD"))
	require.NoError(t, store.Append(earlier))

	ledger, err = store.ReadAll()
	require.NoError(t, err)
	require.Equal(t, 2, ledger.Len())
	assert.Equal(t, date.MustParse("2024-01-10"), ledger.OldestTransactionDate())
}

func TestLedgerFile_AppendRefusesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{broken\n"), 0644))
	store := NewLedgerFile(path, zerolog.Nop())

	err := store.Append(NewBuy(date.MustParse("2024-02-15"), "AAPL", 1, M(100, "USD")))
	require.Error(t, err)

	// The corrupt content was not clobbered.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "{broken\n", string(data))
}

func TestLedgerFile_AppendValidatesTransactions(t *testing.T) {
	store := NewLedgerFile(filepath.Join(t.TempDir(), "transactions.jsonl"), zerolog.Nop())
	err := store.Append(NewBuy(date.MustParse("2024-02-15"), "AAPL", 0, M(100, "USD")))
	require.Error(t, err)
}

func TestHistoryFile_LoadMissingFile(t *testing.T) {
	store := NewHistoryFile(filepath.Join(t.TempDir(), "history.json"), zerolog.Nop())
	history := store.Load()
	require.NotNil(t, history)
	assert.Empty(t, history)
}

func TestHistoryFile_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(`["not","a","map"]`), 0644))
	store := NewHistoryFile(path, zerolog.Nop())

	history := store.Load()
	require.NotNil(t, history)
	assert.Empty(t, history)
}

func TestHistoryFile_SaveLoadRoundtrip(t *testing.T) {
	store := NewHistoryFile(filepath.Join(t.TempDir(), "state", "history.json"), zerolog.Nop())

	saved := map[string]date.Date{
		"AAPL-Retirement": date.MustParse("2024-02-15"),
		"VTI-Vacation":    date.MustParse("2024-02-01"),
	}
	require.NoError(t, store.Save(saved))

	loaded := store.Load()
	require.Len(t, loaded, 2)
	assert.Equal(t, date.MustParse("2024-02-15"), loaded["AAPL-Retirement"])
	assert.Equal(t, date.MustParse("2024-02-01"), loaded["VTI-Vacation"])
}

func TestHistoryFile_SaveOverwrites(t *testing.T) {
	store := NewHistoryFile(filepath.Join(t.TempDir(), "history.json"), zerolog.Nop())

	require.NoError(t, store.Save(map[string]date.Date{"AAPL-Retirement": date.MustParse("2024-02-15")}))
	require.NoError(t, store.Save(map[string]date.Date{"VTI-Vacation": date.MustParse("2024-03-01")}))

	loaded := store.Load()
	require.Len(t, loaded, 1)
	assert.Equal(t, date.MustParse("2024-03-01"), loaded["VTI-Vacation"])
}
