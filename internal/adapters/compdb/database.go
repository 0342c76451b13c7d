// Package compdb maintains the compile_commands.json file read by editor tooling.
package compdb

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/rebuild/internal/core/domain"
	"go.trai.ch/rebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CompileDatabase = (*Database)(nil)

// Database implements ports.CompileDatabase on a flat JSON file in the project root.
type Database struct {
	mu sync.Mutex
}

// New creates a Database.
func New() *Database {
	return &Database{}
}

// Path returns the location of the compilation database for cfg.
func Path(cfg *domain.Config) string {
	return filepath.Join(cfg.Root, domain.CompileDatabaseFileName)
}

// Update merges commands into the existing database. Entries for the same file are
// replaced, all others are kept. The file is left untouched when its content would
// not change.
func (d *Database) Update(cfg *domain.Config, commands []domain.CompileCommand) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	path := Path(cfg)

	//nolint:gosec // Path is derived from the project root
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, failure(zerr.Wrap(err, "failed to read compilation database"), path)
	}

	entries := make(map[string]domain.CompileCommand)
	for _, cmd := range decode(existing) {
		entries[key(cmd)] = cmd
	}
	for _, cmd := range commands {
		entries[key(cmd)] = cmd
	}

	data, err := encode(entries)
	if err != nil {
		return false, failure(zerr.Wrap(err, "failed to marshal compilation database"), path)
	}

	if existing != nil && xxhash.Sum64(existing) == xxhash.Sum64(data) {
		return false, nil
	}

	//nolint:gosec // Path is derived from the project root
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return false, failure(zerr.Wrap(err, "failed to write compilation database"), path)
	}
	return true, nil
}

// decode reads the entries of an existing database. Unparseable content is dropped
// so the file is rewritten from scratch.
func decode(data []byte) []domain.CompileCommand {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var cmds []domain.CompileCommand
	if err := json.Unmarshal(data, &cmds); err != nil {
		return nil
	}
	return cmds
}

func encode(entries map[string]domain.CompileCommand) ([]byte, error) {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cmds := make([]domain.CompileCommand, 0, len(keys))
	for _, k := range keys {
		cmds = append(cmds, entries[k])
	}

	data, err := json.MarshalIndent(cmds, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// key identifies an entry by the absolute path of its file.
func key(cmd domain.CompileCommand) string {
	if filepath.IsAbs(cmd.File) {
		return filepath.Clean(cmd.File)
	}
	return filepath.Join(cmd.Directory, cmd.File)
}

func failure(err error, path string) error {
	return errors.Join(domain.ErrCompileDatabaseFailed, zerr.With(err, "path", path))
}
