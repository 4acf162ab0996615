package daemon

import (
	"path/filepath"
	"testing"
	"time"

	"pocketbook/internal/model"
	"pocketbook/internal/money"
	"pocketbook/internal/pipeline"
	"pocketbook/internal/schedule"
	"pocketbook/internal/store"
	"pocketbook/internal/widget"
)

func TestNewAppliesDefaults(t *testing.T) {
	s := New(Config{DBPath: "/tmp/x.db"})

	if s.cfg.Interval != 15*time.Minute {
		t.Errorf("interval = %s, want 15m", s.cfg.Interval)
	}
	if s.cfg.ProjectionDays != 10 {
		t.Errorf("projection days = %d, want 10", s.cfg.ProjectionDays)
	}
	if s.cfg.Addr == "" {
		t.Error("addr not defaulted")
	}

	custom := New(Config{DBPath: "/tmp/x.db", Interval: time.Minute, ProjectionDays: 30})
	if custom.cfg.Interval != time.Minute || custom.cfg.ProjectionDays != 30 {
		t.Errorf("explicit config overridden: %+v", custom.cfg)
	}
}

func TestRefreshWritesSnapshot(t *testing.T) {
	dataDir := t.TempDir()
	dbPath := filepath.Join(dataDir, "pocketbook.db")

	db, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	b := model.Bill{Name: "Rent", Start: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Period: schedule.Monthly, Amount: money.FromInt(900)}
	if err := db.CreateBill(&b); err != nil {
		t.Fatalf("create bill: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	widgetDir := filepath.Join(dataDir, "widgets")
	s := New(Config{DBPath: dbPath, WidgetDir: widgetDir, ProjectionDays: 10})
	s.refreshOnce()

	st := s.snapshotStatus()
	if st.LastError != "" {
		t.Fatalf("refresh error: %s", st.LastError)
	}
	if st.RefreshCount != 1 {
		t.Errorf("refresh count = %d, want 1", st.RefreshCount)
	}
	if st.Summary.Bills != 1 {
		t.Errorf("summary bills = %d, want 1", st.Summary.Bills)
	}

	ws, err := widget.ReadUpcomingBills(widgetDir)
	if err != nil {
		t.Fatalf("read widget snapshot: %v", err)
	}
	if len(ws.Days) != 10 {
		t.Errorf("snapshot days = %d, want 10", len(ws.Days))
	}
}

func TestRefreshRecordsError(t *testing.T) {
	// A directory where the db file should be makes Open fail.
	dataDir := t.TempDir()
	s := New(Config{DBPath: dataDir, WidgetDir: filepath.Join(dataDir, "widgets")})
	s.refreshOnce()

	st := s.snapshotStatus()
	if st.LastError == "" {
		t.Error("refresh failure not recorded")
	}
	if st.RefreshCount != 1 {
		t.Errorf("refresh count = %d, want 1", st.RefreshCount)
	}
}

func TestSummarize(t *testing.T) {
	due := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	ws := widget.UpcomingBillsSnapshot{
		Days: []pipeline.DayBundle{
			{Date: due, Bills: []pipeline.UpcomingBill{
				{Name: "Rent", Amount: money.FromInt(900), DueDate: due},
				{Name: "Internet", Amount: money.FromInt(60), DueDate: due},
			}},
		},
	}

	snap := summarize(ws, 2, 1, due)
	if snap.Bills != 2 || snap.Utilities != 1 {
		t.Errorf("counts = %d/%d", snap.Bills, snap.Utilities)
	}
	if snap.DueInWindow != 2 {
		t.Errorf("due in window = %d, want 2", snap.DueInWindow)
	}
	if snap.TotalDue != "960" {
		t.Errorf("total due = %q, want 960", snap.TotalDue)
	}

	empty := summarize(widget.UpcomingBillsSnapshot{}, 0, 0, due)
	if empty.TotalDue != "0" || empty.DueInWindow != 0 {
		t.Errorf("empty summary = %+v", empty)
	}
}
