package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"resumeforge/internal/logging/types"
)

// FileAdapter implements the LogAdapter interface for file output with
// size-based rotation.
type FileAdapter struct {
	name        string
	config      FileConfig
	currentFile *os.File
	currentSize int64
	mu          sync.Mutex
}

// FileConfig represents configuration for the file adapter
type FileConfig struct {
	FilePath    string      `yaml:"file_path"`     // path to log file
	Format      string      `yaml:"format"`        // json or text
	MaxSize     int64       `yaml:"max_size"`      // max file size in bytes (0 = no limit)
	MaxBackups  int         `yaml:"max_backups"`   // max number of backup files to keep
	CreateDirs  bool        `yaml:"create_dirs"`   // create parent directories if missing
	FileMode    os.FileMode `yaml:"file_mode"`     // file permissions
	SyncOnWrite bool        `yaml:"sync_on_write"` // sync after each write
}

// NewFileAdapter creates a new file adapter
func NewFileAdapter(name string, config FileConfig) (*FileAdapter, error) {
	if config.FileMode == 0 {
		config.FileMode = 0644
	}
	if config.MaxBackups == 0 {
		config.MaxBackups = 10
	}
	if config.Format == "" {
		config.Format = "json"
	}

	adapter := &FileAdapter{
		name:   name,
		config: config,
	}

	if config.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directories: %w", err)
		}
	}

	if err := adapter.openFile(); err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return adapter, nil
}

// Write writes a log entry to the file
func (a *FileAdapter) Write(entry *types.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.config.MaxSize > 0 && a.currentSize >= a.config.MaxSize {
		if err := a.rotate(); err != nil {
			return fmt.Errorf("failed to rotate log file: %w", err)
		}
	}

	var output string
	var err error

	switch strings.ToLower(a.config.Format) {
	case "text":
		output, err = formatText(entry, false)
	default:
		output, err = formatJSON(entry)
	}

	if err != nil {
		return fmt.Errorf("failed to format log entry: %w", err)
	}

	n, err := a.currentFile.WriteString(output + "\n")
	if err != nil {
		return fmt.Errorf("failed to write to log file: %w", err)
	}
	a.currentSize += int64(n)

	if a.config.SyncOnWrite {
		if err := a.currentFile.Sync(); err != nil {
			return fmt.Errorf("failed to sync log file: %w", err)
		}
	}

	return nil
}

// Close closes the adapter
func (a *FileAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.currentFile != nil {
		return a.currentFile.Close()
	}
	return nil
}

// Name returns the name of the adapter
func (a *FileAdapter) Name() string {
	return a.name
}

func (a *FileAdapter) openFile() error {
	f, err := os.OpenFile(a.config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, a.config.FileMode)
	if err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}

	a.currentFile = f
	a.currentSize = info.Size()
	return nil
}

// rotate renames the current file with a timestamp suffix and opens a fresh
// one; backups beyond MaxBackups are removed oldest-first.
func (a *FileAdapter) rotate() error {
	if a.currentFile != nil {
		a.currentFile.Close()
		a.currentFile = nil
	}

	backup := fmt.Sprintf("%s.%s", a.config.FilePath, time.Now().Format("20060102-150405"))
	if err := os.Rename(a.config.FilePath, backup); err != nil && !os.IsNotExist(err) {
		return err
	}

	a.pruneBackups()

	return a.openFile()
}

func (a *FileAdapter) pruneBackups() {
	matches, err := filepath.Glob(a.config.FilePath + ".*")
	if err != nil || len(matches) <= a.config.MaxBackups {
		return
	}
	// Glob results are sorted; timestamp suffixes sort oldest first
	for _, old := range matches[:len(matches)-a.config.MaxBackups] {
		os.Remove(old)
	}
}
