package bankroll

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const ledgerExt = ".json"

// DefaultLedgerName is used when a ledger directory holds no ledger yet.
const DefaultLedgerName = "sessions"

// Store is the persistence adapter for a session list. LoadAll is silently
// tolerant: a missing, unreadable or undecodable slot yields an empty
// sequence. SaveAll replaces the persisted slot wholesale.
type Store interface {
	LoadAll() []Session
	SaveAll([]Session) error
}

// FileStore persists the whole session list in a single JSON file.
type FileStore struct {
	Path     string
	Currency string
}

// LoadAll reads, decodes and sanitizes the persisted session list.
func (st *FileStore) LoadAll() []Session {
	f, err := os.Open(st.Path)
	if err != nil {
		return nil
	}
	defer f.Close()
	return DecodeSessions(f, st.Currency)
}

// SaveAll rewrites the persisted file atomically: the new list is written to
// a temporary file in the same directory and then renamed over the slot.
func (st *FileStore) SaveAll(sessions []Session) error {
	dir := filepath.Dir(st.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", st.Path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(st.Path)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeSessions(tmp, sessions); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode ledger %q: %w", st.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary ledger file: %w", err)
	}
	return os.Rename(tmp.Name(), st.Path)
}

// FindLedger returns the unique ledger matching the name under dir.
// With an empty name it returns the only ledger found, or an empty default
// one when the directory holds none. A name that matches no existing file
// binds a new empty ledger to that path, so first use needs no setup.
func FindLedger(dir, name, currency string) (*Ledger, error) {
	paths, err := findLedgerPaths(dir, name)
	if err != nil {
		return nil, err
	}
	switch len(paths) {
	case 0:
		if name == "" {
			name = DefaultLedgerName
		}
		return openLedger(dir, filepath.Join(dir, name+ledgerExt), currency)
	case 1:
		return openLedger(dir, paths[0], currency)
	default:
		return nil, fmt.Errorf("multiple ledgers found in %q, select one with -l", dir)
	}
}

// FindLedgers discovers and loads all ledger files under dir. A ledger name
// is its relative path from dir, without the extension.
func FindLedgers(dir string) ([]*Ledger, error) {
	paths, err := findLedgerPaths(dir, "")
	if err != nil {
		return nil, err
	}
	ledgers := make([]*Ledger, 0, len(paths))
	for _, p := range paths {
		l, err := openLedger(dir, p, "")
		if err != nil {
			return nil, err
		}
		ledgers = append(ledgers, l)
	}
	return ledgers, nil
}

// openLedger binds a ledger to its file, loading whatever the file holds.
func openLedger(dir, path, currency string) (*Ledger, error) {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return nil, fmt.Errorf("could not determine relative path for %q: %w", path, err)
	}

	store := &FileStore{Path: path, Currency: currency}
	l := NewLedger()
	l.name = strings.TrimSuffix(rel, ledgerExt)
	l.currency = currency
	l.store = store
	l.replace(store.LoadAll())
	return l, nil
}

// findLedgerPaths scans dir for ledger files matching the name.
func findLedgerPaths(dir, name string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && p == dir {
				// an absent ledger directory simply holds no ledgers yet
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ledgerExt) {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		ledgerName := strings.TrimSuffix(rel, ledgerExt)
		if name == "" || ledgerName == name {
			paths = append(paths, p)
		}
		return nil
	})
	return paths, err
}
