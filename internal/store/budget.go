package store

import (
	"time"

	"github.com/google/uuid"

	"pocketbook/internal/model"
	"pocketbook/internal/schedule"
)

// AddSpendingGoal attaches a category spending goal to a budget month.
func (s *Store) AddSpendingGoal(g *model.SpendingGoal, year int, month time.Month) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	_, err := s.db.Exec(`INSERT INTO spending_goals (id, budget_year, budget_month, category_id, amount, period)
		VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID.String(), year, int(month), g.CategoryID.String(), g.Amount.String(), string(g.Period))
	return err
}

// AddSavingsGoal attaches an account savings goal to a budget month.
func (s *Store) AddSavingsGoal(g *model.SavingsGoal, year int, month time.Month) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	_, err := s.db.Exec(`INSERT INTO savings_goals (id, budget_year, budget_month, account_id, amount, period)
		VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID.String(), year, int(month), g.AccountID.String(), g.Amount.String(), string(g.Period))
	return err
}

// DeleteSpendingGoal removes one spending goal.
func (s *Store) DeleteSpendingGoal(id uuid.UUID) error {
	res, err := s.db.Exec("DELETE FROM spending_goals WHERE id = ?", id.String())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteSavingsGoal removes one savings goal.
func (s *Store) DeleteSavingsGoal(id uuid.UUID) error {
	res, err := s.db.Exec("DELETE FROM savings_goals WHERE id = ?", id.String())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// BudgetMonths lists every year/month pair that carries divisions or goals,
// oldest first, each loaded in full.
func (s *Store) BudgetMonths() ([]model.BudgetMonth, error) {
	rows, err := s.db.Query(`SELECT budget_year, budget_month FROM income_divisions
		UNION SELECT budget_year, budget_month FROM spending_goals
		UNION SELECT budget_year, budget_month FROM savings_goals
		ORDER BY budget_year, budget_month`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	type key struct {
		year  int
		month int
	}
	var keys []key
	for rows.Next() {
		var k key
		if err := rows.Scan(&k.year, &k.month); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	months := make([]model.BudgetMonth, 0, len(keys))
	for _, k := range keys {
		bm, err := s.LoadBudgetMonth(k.year, time.Month(k.month))
		if err != nil {
			return nil, err
		}
		months = append(months, bm)
	}
	return months, nil
}

// LoadBudgetMonth assembles one month's plan: its income divisions and both
// goal collections.
func (s *Store) LoadBudgetMonth(year int, month time.Month) (model.BudgetMonth, error) {
	bm := model.BudgetMonth{Year: year, Month: month}

	divisions, err := s.LoadDivisions(year, month)
	if err != nil {
		return bm, err
	}
	bm.Divisions = divisions

	rows, err := s.db.Query(`SELECT id, category_id, amount, period FROM spending_goals
		WHERE budget_year = ? AND budget_month = ? ORDER BY rowid`, year, int(month))
	if err != nil {
		return bm, err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var g model.SpendingGoal
		var idStr, catStr, periodStr string
		if err := rows.Scan(&idStr, &catStr, &g.Amount, &periodStr); err != nil {
			return bm, err
		}
		g.ID = uuid.MustParse(idStr)
		g.CategoryID = uuid.MustParse(catStr)
		g.Period = schedule.Period(periodStr)
		bm.SpendingGoal = append(bm.SpendingGoal, g)
	}
	if err := rows.Err(); err != nil {
		return bm, err
	}

	saveRows, err := s.db.Query(`SELECT id, account_id, amount, period FROM savings_goals
		WHERE budget_year = ? AND budget_month = ? ORDER BY rowid`, year, int(month))
	if err != nil {
		return bm, err
	}
	defer func() { _ = saveRows.Close() }()
	for saveRows.Next() {
		var g model.SavingsGoal
		var idStr, acctStr, periodStr string
		if err := saveRows.Scan(&idStr, &acctStr, &g.Amount, &periodStr); err != nil {
			return bm, err
		}
		g.ID = uuid.MustParse(idStr)
		g.AccountID = uuid.MustParse(acctStr)
		g.Period = schedule.Period(periodStr)
		bm.SavingsGoal = append(bm.SavingsGoal, g)
	}
	return bm, saveRows.Err()
}
