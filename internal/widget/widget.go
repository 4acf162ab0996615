// Package widget writes and reads the JSON snapshots consumed by home
// screen widgets. Writers replace snapshots atomically so a reader never
// observes a partial file.
package widget

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pocketbook/internal/pipeline"
)

// UpcomingBillsFile is the snapshot filename readers look for.
const UpcomingBillsFile = "upcomingBills.json"

// SnapshotVersion is bumped when the snapshot layout changes incompatibly.
const SnapshotVersion = 1

// UpcomingBillsSnapshot is the widget's view of the bill projection.
type UpcomingBillsSnapshot struct {
	Version        int                  `json:"version"`
	GeneratedAt    time.Time            `json:"generatedAt"`
	ProjectionDays int                  `json:"projectionDays"`
	Days           []pipeline.DayBundle `json:"days"`
}

// BuildUpcomingBills projects the given items forward from ref and wraps the
// result in a versioned snapshot.
func BuildUpcomingBills(items []pipeline.BillLike, ref time.Time, days int) UpcomingBillsSnapshot {
	bundles := pipeline.ProjectDays(items, ref, days)
	if days <= 0 {
		days = pipeline.DefaultProjectionDays
	}
	return UpcomingBillsSnapshot{
		Version:        SnapshotVersion,
		GeneratedAt:    ref,
		ProjectionDays: days,
		Days:           bundles,
	}
}

// WriteUpcomingBills persists the snapshot under dir, creating the directory
// if needed. The file is written to a temp name in the same directory and
// renamed into place.
func WriteUpcomingBills(dir string, snap UpcomingBillsSnapshot) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating widget dir: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, ".upcomingBills-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing snapshot: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(dir, UpcomingBillsFile)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}

// ReadUpcomingBills loads the snapshot from dir. A missing file is reported
// via os.IsNotExist on the returned error; unknown fields from newer writers
// are ignored.
func ReadUpcomingBills(dir string) (UpcomingBillsSnapshot, error) {
	var snap UpcomingBillsSnapshot

	data, err := os.ReadFile(filepath.Join(dir, UpcomingBillsFile))
	if err != nil {
		return snap, err
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, fmt.Errorf("decoding snapshot: %w", err)
	}
	if snap.Version > SnapshotVersion {
		return snap, fmt.Errorf("snapshot version %d is newer than supported %d", snap.Version, SnapshotVersion)
	}
	return snap, nil
}
