package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pocketbook/internal/model"
)

// CreateDivision inserts an income division and its devotions in one
// transaction, attached to the given budget month.
func (s *Store) CreateDivision(div *model.IncomeDivision, year int, month time.Month) error {
	if div.ID == uuid.Nil {
		div.ID = uuid.New()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO income_divisions
		(id, name, amount, kind, deposit_to, finalized, budget_year, budget_month)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		div.ID.String(), div.Name, div.Amount.String(), string(div.Kind),
		uuidPtrValue(div.DepositTo), boolToInt(div.Finalized), year, int(month),
	)
	if err != nil {
		return err
	}

	for i := range div.Devotions {
		dev := &div.Devotions[i]
		dev.DivisionID = div.ID
		if err := insertDevotion(tx, dev); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// UpdateDivision rewrites a division and replaces its devotions. Finalized
// divisions are immutable; the attempt is rejected before anything changes.
func (s *Store) UpdateDivision(div model.IncomeDivision) error {
	finalized, err := s.divisionFinalized(div.ID)
	if err != nil {
		return err
	}
	if finalized {
		return fmt.Errorf("division %q: %w", div.Name, ErrFinalized)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`UPDATE income_divisions SET name = ?, amount = ?, kind = ?, deposit_to = ?
		WHERE id = ?`,
		div.Name, div.Amount.String(), string(div.Kind), uuidPtrValue(div.DepositTo), div.ID.String(),
	)
	if err != nil {
		return err
	}
	if err := requireRow(res); err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM income_devotions WHERE division_id = ?", div.ID.String()); err != nil {
		return err
	}
	for i := range div.Devotions {
		dev := &div.Devotions[i]
		dev.DivisionID = div.ID
		if err := insertDevotion(tx, dev); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// FinalizeDivision locks a division against further edits.
func (s *Store) FinalizeDivision(id uuid.UUID) error {
	res, err := s.db.Exec("UPDATE income_divisions SET finalized = 1 WHERE id = ?", id.String())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteDivision removes a division and cascades to its devotions.
// Finalized divisions refuse.
func (s *Store) DeleteDivision(id uuid.UUID) error {
	finalized, err := s.divisionFinalized(id)
	if err != nil {
		return err
	}
	if finalized {
		return ErrFinalized
	}
	res, err := s.db.Exec("DELETE FROM income_divisions WHERE id = ?", id.String())
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *Store) divisionFinalized(id uuid.UUID) (bool, error) {
	var finalized int
	err := s.db.QueryRow("SELECT finalized FROM income_divisions WHERE id = ?", id.String()).Scan(&finalized)
	if err == sql.ErrNoRows {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}
	return finalized != 0, nil
}

// LoadDivisions fetches the divisions of one budget month with devotions.
func (s *Store) LoadDivisions(year int, month time.Month) ([]model.IncomeDivision, error) {
	rows, err := s.db.Query(`SELECT id, name, amount, kind, deposit_to, finalized
		FROM income_divisions WHERE budget_year = ? AND budget_month = ? ORDER BY rowid`,
		year, int(month))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var divisions []model.IncomeDivision
	byID := make(map[uuid.UUID]int)
	for rows.Next() {
		var div model.IncomeDivision
		var idStr, kind string
		var depositTo sql.NullString
		var finalized int
		if err := rows.Scan(&idStr, &div.Name, &div.Amount, &kind, &depositTo, &finalized); err != nil {
			return nil, err
		}
		div.ID = uuid.MustParse(idStr)
		div.Kind = model.IncomeKind(kind)
		div.DepositTo = uuidPtrScan(depositTo)
		div.Finalized = finalized != 0
		byID[div.ID] = len(divisions)
		divisions = append(divisions, div)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	devRows, err := s.db.Query(`SELECT id, division_id, name, kind, grp, amount, percent, target_account
		FROM income_devotions ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = devRows.Close() }()

	for devRows.Next() {
		var dev model.IncomeDevotion
		var idStr, divStr, kind, grp, percentStr string
		var target sql.NullString
		if err := devRows.Scan(&idStr, &divStr, &dev.Name, &kind, &grp, &dev.Amount, &percentStr, &target); err != nil {
			return nil, err
		}
		dev.ID = uuid.MustParse(idStr)
		dev.DivisionID = uuid.MustParse(divStr)
		dev.Kind = model.DevotionKind(kind)
		dev.Group = model.DevotionGroup(grp)
		dev.TargetAccount = uuidPtrScan(target)
		if dev.Percent, err = decimal.NewFromString(percentStr); err != nil {
			return nil, fmt.Errorf("devotion %s percent: %w", idStr, err)
		}
		if idx, ok := byID[dev.DivisionID]; ok {
			divisions[idx].Devotions = append(divisions[idx].Devotions, dev)
		}
	}
	return divisions, devRows.Err()
}

func insertDevotion(tx *sql.Tx, dev *model.IncomeDevotion) error {
	if dev.ID == uuid.Nil {
		dev.ID = uuid.New()
	}
	_, err := tx.Exec(`INSERT INTO income_devotions
		(id, division_id, name, kind, grp, amount, percent, target_account)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		dev.ID.String(), dev.DivisionID.String(), dev.Name, string(dev.Kind), string(dev.Group),
		dev.Amount.String(), dev.Percent.String(), uuidPtrValue(dev.TargetAccount),
	)
	return err
}

func uuidPtrValue(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

func uuidPtrScan(ns sql.NullString) *uuid.UUID {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	id, err := uuid.Parse(ns.String)
	if err != nil {
		return nil
	}
	return &id
}
