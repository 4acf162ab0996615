package store

import (
	"time"

	"github.com/google/uuid"

	"pocketbook/internal/model"
)

// AddEntry inserts a ledger entry. RecordedOn defaults to now when unset.
func (s *Store) AddEntry(e *model.LedgerEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.RecordedOn.IsZero() {
		e.RecordedOn = time.Now().UTC()
	}

	_, err := s.db.Exec(`INSERT INTO ledger_entries
		(id, memo, credit, debit, tx_date, recorded_on, location, sub_account_id, sub_category_id, voided)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID.String(), e.Memo, e.Credit.String(), e.Debit.String(),
		formatDate(e.Date), e.RecordedOn.UTC().Format(time.RFC3339), e.Location,
		e.SubAccountID.String(), e.SubCategoryID.String(), boolToInt(e.Voided),
	)
	return err
}

// VoidEntry marks an entry voided; it stays on the books but drops out of
// every balance.
func (s *Store) VoidEntry(id uuid.UUID) error {
	res, err := s.db.Exec("UPDATE ledger_entries SET voided = 1 WHERE id = ?", id.String())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteEntry removes an entry outright.
func (s *Store) DeleteEntry(id uuid.UUID) error {
	res, err := s.db.Exec("DELETE FROM ledger_entries WHERE id = ?", id.String())
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanEntry(row rowScanner) (model.LedgerEntry, uuid.UUID, error) {
	var e model.LedgerEntry
	var idStr, txDate, recordedOn, subAccountStr, subCategoryStr string
	var voided int
	err := row.Scan(&idStr, &e.Memo, &e.Credit, &e.Debit, &txDate, &recordedOn,
		&e.Location, &subAccountStr, &subCategoryStr, &voided)
	if err != nil {
		return model.LedgerEntry{}, uuid.Nil, err
	}
	e.ID = uuid.MustParse(idStr)
	e.Date = parseDate(txDate)
	e.RecordedOn, _ = time.Parse(time.RFC3339, recordedOn)
	e.SubAccountID = uuid.MustParse(subAccountStr)
	e.SubCategoryID = uuid.MustParse(subCategoryStr)
	e.Voided = voided != 0
	return e, e.SubAccountID, nil
}
