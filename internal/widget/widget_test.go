package widget

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pocketbook/internal/model"
	"pocketbook/internal/money"
	"pocketbook/internal/pipeline"
	"pocketbook/internal/schedule"
)

func testBill(name, start string, amount int64) *model.Bill {
	day, err := time.Parse("2006-01-02", start)
	if err != nil {
		panic(err)
	}
	return &model.Bill{
		Name:   name,
		Start:  day,
		Period: schedule.Monthly,
		Amount: money.FromInt(amount),
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ref := time.Date(2025, time.May, 28, 0, 0, 0, 0, time.UTC)

	items := []pipeline.BillLike{
		testBill("Rent", "2025-01-01", 900),
		testBill("Internet", "2025-01-05", 60),
	}
	snap := BuildUpcomingBills(items, ref, 10)
	if snap.Version != SnapshotVersion || snap.ProjectionDays != 10 {
		t.Fatalf("snapshot header = %+v", snap)
	}
	if len(snap.Days) != 10 {
		t.Fatalf("got %d day bundles, want 10", len(snap.Days))
	}

	if err := WriteUpcomingBills(dir, snap); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ReadUpcomingBills(dir)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got.Days) != len(snap.Days) {
		t.Fatalf("round trip lost days: %d != %d", len(got.Days), len(snap.Days))
	}
	if !got.GeneratedAt.Equal(ref) {
		t.Errorf("generatedAt = %s, want %s", got.GeneratedAt, ref)
	}

	// June 1 is inside the window; both bills should appear there.
	for _, day := range got.Days {
		if day.Date.Equal(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)) {
			if len(day.Bills) != 2 {
				t.Errorf("June 1 bundle has %d bills, want 2", len(day.Bills))
			}
			return
		}
	}
	t.Fatal("June 1 bundle missing from projection")
}

func TestWriteReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	ref := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	first := BuildUpcomingBills([]pipeline.BillLike{testBill("Rent", "2025-01-01", 900)}, ref, 3)
	if err := WriteUpcomingBills(dir, first); err != nil {
		t.Fatalf("first write: %v", err)
	}
	second := BuildUpcomingBills(nil, ref, 3)
	if err := WriteUpcomingBills(dir, second); err != nil {
		t.Fatalf("second write: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}

	got, err := ReadUpcomingBills(dir)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, day := range got.Days {
		if len(day.Bills) != 0 {
			t.Error("stale bills survived the replacement write")
		}
	}
}

func TestReadMissingSnapshot(t *testing.T) {
	_, err := ReadUpcomingBills(t.TempDir())
	if !os.IsNotExist(err) {
		t.Errorf("missing snapshot err = %v, want not-exist", err)
	}
}

func TestReadTolerantOfUnknownFields(t *testing.T) {
	dir := t.TempDir()
	raw := `{"version": 1, "generatedAt": "2025-06-01T00:00:00Z", "projectionDays": 10, "days": [], "futureField": {"x": 1}}`
	if err := os.WriteFile(filepath.Join(dir, UpcomingBillsFile), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	snap, err := ReadUpcomingBills(dir)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if snap.ProjectionDays != 10 {
		t.Errorf("projectionDays = %d", snap.ProjectionDays)
	}
}

func TestReadRejectsNewerVersion(t *testing.T) {
	dir := t.TempDir()
	raw := `{"version": 99, "days": []}`
	if err := os.WriteFile(filepath.Join(dir, UpcomingBillsFile), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadUpcomingBills(dir); err == nil {
		t.Error("newer snapshot version accepted")
	}
}

func TestReadRejectsCorruptSnapshot(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, UpcomingBillsFile), []byte("{truncated"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadUpcomingBills(dir); err == nil {
		t.Error("corrupt snapshot accepted")
	}
}
