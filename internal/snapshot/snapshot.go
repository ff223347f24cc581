// Package snapshot maintains the derived copy of the library file used to
// avoid lock contention with a running EndNote.
package snapshot

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/natefinch/atomic"

	"github.com/DOGGY-SAINT/ENL-Reader-MCP/internal/config"
)

// Refresh statuses.
const (
	StatusSuccess = "success"
	StatusSkipped = "skipped"
	StatusError   = "error"
)

const timestampLayout = "2006-01-02 15:04:05"

// Result reports the outcome of a refresh. FileSize is nil unless the copy
// succeeded.
type Result struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	FileSize  *int64 `json:"filesize"`
}

// Manager owns the snapshot lifecycle. The snapshot is written with an
// atomic rename, so readers of the snapshot path never observe a partial
// destination file. The READ of the source is not synchronized with the
// owning application: a refresh racing a live EndNote write can still copy
// a torn source. That risk is accepted; there is no retry.
type Manager struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewManager creates a manager bound to the given configuration.
func NewManager(cfg *config.Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{cfg: cfg, logger: logger}
}

// EnsureFresh refreshes the snapshot once at startup when snapshot mode is
// enabled. Failure is logged but never aborts startup; reads then target a
// stale or missing snapshot until a manual refresh succeeds.
func (m *Manager) EnsureFresh() {
	if !m.cfg.UseSnapshot {
		return
	}
	res := m.Refresh()
	if res.Status == StatusError {
		m.logger.Warn("snapshot refresh failed at startup", "message", res.Message)
		return
	}
	m.logger.Debug("snapshot refreshed at startup", "path", m.cfg.SnapshotPath())
}

// Refresh re-copies the library file over the snapshot. It is idempotent
// and callable repeatedly; in non-snapshot mode it has no effect and
// reports a skip.
func (m *Manager) Refresh() Result {
	now := time.Now().Format(timestampLayout)

	if !m.cfg.UseSnapshot {
		return Result{
			Status:    StatusSkipped,
			Message:   "Backup mode is not enabled. Cannot refresh .enl.backup. Please use the --use-backup option.",
			Timestamp: now,
		}
	}

	size, err := m.copySnapshot()
	if err != nil {
		msg := fmt.Sprintf("Failed to refresh .enl.backup: %v", err)
		m.logger.Warn("snapshot refresh failed", "error", err)
		return Result{Status: StatusError, Message: msg, Timestamp: now}
	}

	m.logger.Debug("snapshot refreshed", "path", m.cfg.SnapshotPath(), "size", size)
	return Result{
		Status:    StatusSuccess,
		Message:   fmt.Sprintf(".enl.backup refreshed successfully, size %d bytes.", size),
		Timestamp: now,
		FileSize:  &size,
	}
}

// copySnapshot copies the source library over the snapshot path and returns
// the written size. A locked or missing source surfaces here.
func (m *Manager) copySnapshot() (int64, error) {
	src, err := os.Open(m.cfg.LibraryPath)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	dst := m.cfg.SnapshotPath()
	if err := atomic.WriteFile(dst, src); err != nil {
		return 0, err
	}

	info, err := os.Stat(dst)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
