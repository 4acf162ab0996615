// Package export reads and writes versioned JSON dumps of the whole book:
// accounts, categories, bills, utilities, jobs and budget months.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"pocketbook/internal/model"
	"pocketbook/internal/store"
)

// FormatVersion is bumped when the document layout changes incompatibly.
const FormatVersion = 1

// Document is one complete dump of a pocketbook data file.
type Document struct {
	Version    int               `json:"version"`
	ExportedAt time.Time         `json:"exportedAt"`
	Accounts   []model.Account   `json:"accounts"`
	Categories []model.Category  `json:"categories"`
	Bills      []model.Bill      `json:"bills"`
	Utilities  []model.Utility   `json:"utilities"`
	Jobs       []JobRecord       `json:"jobs"`
	Budgets    []model.BudgetMonth `json:"budgets"`
}

// JobRecord bundles a job with its paycheck history.
type JobRecord struct {
	model.Job
	Paychecks []model.Paycheck `json:"paychecks"`
}

// Export assembles a Document from everything in the store.
func Export(s *store.Store) (Document, error) {
	doc := Document{Version: FormatVersion, ExportedAt: time.Now().UTC()}

	var err error
	if doc.Accounts, err = s.LoadAccounts(); err != nil {
		return doc, fmt.Errorf("exporting accounts: %w", err)
	}
	if doc.Categories, err = s.LoadCategories(); err != nil {
		return doc, fmt.Errorf("exporting categories: %w", err)
	}
	if doc.Bills, err = s.LoadBills(); err != nil {
		return doc, fmt.Errorf("exporting bills: %w", err)
	}
	if doc.Utilities, err = s.LoadUtilities(); err != nil {
		return doc, fmt.Errorf("exporting utilities: %w", err)
	}

	jobs, err := s.LoadJobs()
	if err != nil {
		return doc, fmt.Errorf("exporting jobs: %w", err)
	}
	for _, j := range jobs {
		checks, err := s.LoadPaychecks(j.ID)
		if err != nil {
			return doc, fmt.Errorf("exporting paychecks for %q: %w", j.Name, err)
		}
		doc.Jobs = append(doc.Jobs, JobRecord{Job: j, Paychecks: checks})
	}

	if doc.Budgets, err = s.BudgetMonths(); err != nil {
		return doc, fmt.Errorf("exporting budgets: %w", err)
	}
	return doc, nil
}

// Write encodes a Document as indented JSON.
func Write(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Read decodes a Document and checks the format version. Documents written
// by a newer format are rejected rather than silently dropped on the floor.
func Read(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return doc, fmt.Errorf("decoding export: %w", err)
	}
	if doc.Version < 1 {
		return doc, fmt.Errorf("export document missing version")
	}
	if doc.Version > FormatVersion {
		return doc, fmt.Errorf("export version %d is newer than supported %d", doc.Version, FormatVersion)
	}
	return doc, nil
}

// Import loads a Document into the store, preserving every ID so references
// between entities survive the round trip. The target should be a fresh data
// file; colliding names surface as store.ErrDuplicate.
func Import(s *store.Store, doc Document) error {
	// Categories go in first and wholesale: entries reference sub-category
	// IDs, and the seeded reserved rows must yield to the exported ones.
	if err := s.ReplaceCategories(doc.Categories); err != nil {
		return fmt.Errorf("importing categories: %w", err)
	}

	for i := range doc.Accounts {
		a := doc.Accounts[i]
		subs := a.SubAccounts
		a.SubAccounts = nil
		if err := s.CreateAccount(&a); err != nil {
			return fmt.Errorf("importing account %q: %w", a.Name, err)
		}
		for j := range subs {
			sub := subs[j]
			entries := sub.Entries
			sub.Entries = nil
			sub.AccountID = a.ID
			if err := s.CreateSubAccount(&sub); err != nil {
				return fmt.Errorf("importing sub-account %q: %w", sub.Name, err)
			}
			for k := range entries {
				e := entries[k]
				e.SubAccountID = sub.ID
				if err := s.AddEntry(&e); err != nil {
					return fmt.Errorf("importing entry %s: %w", e.ID, err)
				}
			}
		}
	}

	for i := range doc.Bills {
		b := doc.Bills[i]
		if err := s.CreateBill(&b); err != nil {
			return fmt.Errorf("importing bill %q: %w", b.Name, err)
		}
	}
	for i := range doc.Utilities {
		u := doc.Utilities[i]
		readings := u.Readings
		u.Readings = nil
		if err := s.CreateUtility(&u); err != nil {
			return fmt.Errorf("importing utility %q: %w", u.Name, err)
		}
		for j := range readings {
			r := readings[j]
			r.UtilityID = u.ID
			if err := s.AddUtilityReading(&r); err != nil {
				return fmt.Errorf("importing reading for %q: %w", u.Name, err)
			}
		}
	}

	for i := range doc.Jobs {
		rec := doc.Jobs[i]
		if err := s.CreateJob(&rec.Job); err != nil {
			return fmt.Errorf("importing job %q: %w", rec.Name, err)
		}
		for j := range rec.Paychecks {
			p := rec.Paychecks[j]
			p.JobID = rec.Job.ID
			if err := s.AddPaycheck(&p); err != nil {
				return fmt.Errorf("importing paycheck for %q: %w", rec.Name, err)
			}
		}
	}

	for _, bm := range doc.Budgets {
		for i := range bm.Divisions {
			div := bm.Divisions[i]
			if err := s.CreateDivision(&div, bm.Year, bm.Month); err != nil {
				return fmt.Errorf("importing division %q: %w", div.Name, err)
			}
		}
		for i := range bm.SpendingGoal {
			g := bm.SpendingGoal[i]
			if err := s.AddSpendingGoal(&g, bm.Year, bm.Month); err != nil {
				return fmt.Errorf("importing spending goal: %w", err)
			}
		}
		for i := range bm.SavingsGoal {
			g := bm.SavingsGoal[i]
			if err := s.AddSavingsGoal(&g, bm.Year, bm.Month); err != nil {
				return fmt.Errorf("importing savings goal: %w", err)
			}
		}
	}
	return nil
}
