// Package daemon provides the long-running background refresher that keeps
// widget snapshots current as the ledger changes.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"pocketbook/internal/pipeline"
	"pocketbook/internal/store"
	"pocketbook/internal/widget"
)

// Config controls the daemon runtime behavior.
type Config struct {
	DBPath         string
	WidgetDir      string
	ProjectionDays int
	Interval       time.Duration
	Addr           string
}

// Snapshot is a compact projection state for status payloads.
type Snapshot struct {
	At          time.Time `json:"at"`
	Bills       int       `json:"bills"`
	Utilities   int       `json:"utilities"`
	DueInWindow int       `json:"due_in_window"`
	TotalDue    string    `json:"total_due"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt          time.Time `json:"started_at"`
	LastRefreshAt      time.Time `json:"last_refresh_at"`
	RefreshIntervalSec int       `json:"refresh_interval_sec"`
	RefreshCount       int64     `json:"refresh_count"`
	DBPath             string    `json:"db_path"`
	WidgetDir          string    `json:"widget_dir"`
	ProjectionDays     int       `json:"projection_days"`
	Summary            Snapshot  `json:"summary"`
	LastError          string    `json:"last_error,omitempty"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg Config

	mu            sync.RWMutex
	startedAt     time.Time
	lastRefreshAt time.Time
	refreshCount  int64
	lastError     string
	snapshot      Snapshot
}

// New returns a new daemon service with the provided config.
func New(cfg Config) *Service {
	if cfg.Interval < 10*time.Second {
		cfg.Interval = 15 * time.Minute
	}
	if cfg.ProjectionDays <= 0 {
		cfg.ProjectionDays = pipeline.DefaultProjectionDays
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8791"
	}

	return &Service{
		cfg:       cfg,
		startedAt: time.Now(),
	}
}

// Run refreshes on a timer and on database writes, and serves the status API,
// until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("daemon http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return s.watchLoop(ctx)
	})

	return g.Wait()
}

// watchLoop refreshes once up front, then on every tick and on write events
// to the database file. SQLite under WAL touches sibling files, so the watch
// covers the whole data directory and filters by name prefix.
func (s *Service) watchLoop(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(s.cfg.DBPath)); err != nil {
		return fmt.Errorf("watching data dir: %w", err)
	}

	s.refreshOnce()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	// Writes arrive in bursts; coalesce them behind a short settle delay.
	var settle <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.refreshOnce()
		case <-settle:
			settle = nil
			s.refreshOnce()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			base := filepath.Base(s.cfg.DBPath)
			if !strings.HasPrefix(filepath.Base(ev.Name), base) {
				continue
			}
			if settle == nil {
				settle = time.After(500 * time.Millisecond)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("pocketbook daemon watch error: %v", err)
		}
	}
}

func (s *Service) refreshOnce() {
	now := time.Now()

	snap, err := s.rebuild(now)
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastRefreshAt = now
		s.refreshCount++
		s.mu.Unlock()
		log.Printf("pocketbook daemon refresh error: %v", err)
		return
	}

	s.mu.Lock()
	s.snapshot = snap
	s.lastRefreshAt = now
	s.refreshCount++
	s.lastError = ""
	s.mu.Unlock()
}

// rebuild recomputes the projection from the database and replaces the
// widget snapshot on disk.
func (s *Service) rebuild(now time.Time) (Snapshot, error) {
	db, err := store.Open(s.cfg.DBPath)
	if err != nil {
		return Snapshot{}, fmt.Errorf("opening store: %w", err)
	}
	defer func() { _ = db.Close() }()

	bills, err := db.LoadBills()
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading bills: %w", err)
	}
	utilities, err := db.LoadUtilities()
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading utilities: %w", err)
	}

	items := make([]pipeline.BillLike, 0, len(bills)+len(utilities))
	for i := range bills {
		items = append(items, &bills[i])
	}
	for i := range utilities {
		items = append(items, &utilities[i])
	}

	ws := widget.BuildUpcomingBills(items, now, s.cfg.ProjectionDays)
	if err := widget.WriteUpcomingBills(s.cfg.WidgetDir, ws); err != nil {
		return Snapshot{}, err
	}

	return summarize(ws, len(bills), len(utilities), now), nil
}

func summarize(ws widget.UpcomingBillsSnapshot, bills, utilities int, at time.Time) Snapshot {
	snap := Snapshot{
		At:        at,
		Bills:     bills,
		Utilities: utilities,
		TotalDue:  "0",
	}
	if len(ws.Days) > 0 {
		today := ws.Days[0].Bills
		inWindow := pipeline.TotalDue(today)
		snap.DueInWindow = len(today)
		snap.TotalDue = inWindow.String()
	}
	return snap
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:          s.startedAt,
		LastRefreshAt:      s.lastRefreshAt,
		RefreshIntervalSec: int(s.cfg.Interval.Seconds()),
		RefreshCount:       s.refreshCount,
		DBPath:             s.cfg.DBPath,
		WidgetDir:          s.cfg.WidgetDir,
		ProjectionDays:     s.cfg.ProjectionDays,
		Summary:            s.snapshot,
		LastError:          s.lastError,
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}
