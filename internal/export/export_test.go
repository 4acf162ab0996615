package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pocketbook/internal/model"
	"pocketbook/internal/money"
	"pocketbook/internal/schedule"
	"pocketbook/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "pocketbook.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedStore(t *testing.T, s *store.Store) {
	t.Helper()

	a := model.Account{Name: "Checking", Kind: model.KindChecking}
	if err := s.CreateAccount(&a); err != nil {
		t.Fatal(err)
	}
	sub := model.SubAccount{Name: "Main", AccountID: a.ID}
	if err := s.CreateSubAccount(&sub); err != nil {
		t.Fatal(err)
	}
	cats, err := s.LoadCategories()
	if err != nil {
		t.Fatal(err)
	}
	e := model.LedgerEntry{
		Memo: "opening", Credit: money.FromInt(1000), Debit: money.Zero,
		Date:         time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
		SubAccountID: sub.ID, SubCategoryID: cats[0].SubCategories[0].ID,
	}
	if err := s.AddEntry(&e); err != nil {
		t.Fatal(err)
	}

	b := model.Bill{Name: "Rent", Start: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Period: schedule.Monthly, Amount: money.FromInt(900)}
	if err := s.CreateBill(&b); err != nil {
		t.Fatal(err)
	}

	div := model.IncomeDivision{
		Name: "Paycheck", Amount: money.FromInt(450), Kind: model.IncomePay, Finalized: true,
		Devotions: []model.IncomeDevotion{
			{Name: "Rent", Kind: model.DevotionAmount, Group: model.GroupNeed, Amount: money.MustParse("137.50")},
		},
	}
	if err := s.CreateDivision(&div, 2025, time.June); err != nil {
		t.Fatal(err)
	}

	j := model.Job{Name: "Barista", Employer: "Beans & Co"}
	if err := s.CreateJob(&j); err != nil {
		t.Fatal(err)
	}
	p := model.Paycheck{JobID: j.ID, PayDate: time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC),
		Gross: money.FromInt(1300), Net: money.MustParse("1041.17"), Hours: 40}
	if err := s.AddPaycheck(&p); err != nil {
		t.Fatal(err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := openStore(t)
	seedStore(t, src)

	doc, err := Export(src)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if doc.Version != FormatVersion {
		t.Errorf("version = %d", doc.Version)
	}

	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		t.Fatalf("write: %v", err)
	}
	decoded, err := Read(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	dst := openStore(t)
	if err := Import(dst, decoded); err != nil {
		t.Fatalf("import: %v", err)
	}

	accounts, err := dst.LoadAccounts()
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 1 || len(accounts[0].SubAccounts) != 1 {
		t.Fatalf("accounts shape = %+v", accounts)
	}
	entries := accounts[0].SubAccounts[0].Entries
	if len(entries) != 1 || !entries[0].Credit.Equal(money.FromInt(1000)) {
		t.Errorf("entries = %+v", entries)
	}
	// IDs must survive so cross-references stay intact.
	if accounts[0].ID != doc.Accounts[0].ID {
		t.Error("account ID changed on import")
	}

	divisions, err := dst.LoadDivisions(2025, time.June)
	if err != nil {
		t.Fatal(err)
	}
	if len(divisions) != 1 || !divisions[0].Finalized {
		t.Errorf("divisions = %+v", divisions)
	}
	if len(divisions[0].Devotions) != 1 {
		t.Errorf("devotions lost: %+v", divisions[0])
	}

	jobs, err := dst.LoadJobs()
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 1 {
		t.Fatalf("jobs = %+v", jobs)
	}
	checks, err := dst.LoadPaychecks(jobs[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(checks) != 1 || !checks[0].Net.Equal(money.MustParse("1041.17")) {
		t.Errorf("paychecks = %+v", checks)
	}

	cats, err := dst.LoadCategories()
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != len(doc.Categories) {
		t.Errorf("got %d categories, want %d", len(cats), len(doc.Categories))
	}
}

func TestReadRejectsNewerVersion(t *testing.T) {
	r := strings.NewReader(`{"version": 99}`)
	if _, err := Read(r); err == nil {
		t.Error("newer format version accepted")
	}
}

func TestReadRejectsMissingVersion(t *testing.T) {
	r := strings.NewReader(`{"accounts": []}`)
	if _, err := Read(r); err == nil {
		t.Error("unversioned document accepted")
	}
}

func TestImportCollisionSurfacesDuplicate(t *testing.T) {
	src := openStore(t)
	seedStore(t, src)
	doc, err := Export(src)
	if err != nil {
		t.Fatal(err)
	}

	dst := openStore(t)
	taken := model.Account{Name: "Checking", Kind: model.KindSavings}
	if err := dst.CreateAccount(&taken); err != nil {
		t.Fatal(err)
	}

	err = Import(dst, doc)
	if err == nil {
		t.Fatal("import into colliding store succeeded")
	}
	if !strings.Contains(err.Error(), "Checking") {
		t.Errorf("error does not name the collision: %v", err)
	}
}
