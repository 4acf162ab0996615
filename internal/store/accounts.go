package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"pocketbook/internal/model"
	"pocketbook/internal/money"
)

// CreateAccount inserts a new account. The name must be unique; the check
// runs before anything is written. Assigns an ID when the caller left it nil.
func (s *Store) CreateAccount(a *model.Account) error {
	a.Normalize()

	taken, err := s.exists("SELECT COUNT(*) FROM accounts WHERE name = ?", a.Name)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("account %q: %w", a.Name, ErrDuplicate)
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	_, err = s.db.Exec(`INSERT INTO accounts (id, name, kind, credit_limit, interest_rate, location)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID.String(), a.Name, string(a.Kind), moneyPtrValue(a.CreditLimit), moneyPtrValue(a.InterestRate), a.Location,
	)
	return err
}

// RenameAccount changes an account's unique name, rejecting collisions
// before applying anything.
func (s *Store) RenameAccount(id uuid.UUID, newName string) error {
	taken, err := s.exists("SELECT COUNT(*) FROM accounts WHERE name = ? AND id != ?", newName, id.String())
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("account %q: %w", newName, ErrDuplicate)
	}

	res, err := s.db.Exec("UPDATE accounts SET name = ? WHERE id = ?", newName, id.String())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// UpdateAccount rewrites an account's mutable attributes.
func (s *Store) UpdateAccount(a model.Account) error {
	a.Normalize()
	res, err := s.db.Exec(`UPDATE accounts SET kind = ?, credit_limit = ?, interest_rate = ?, location = ?
		WHERE id = ?`,
		string(a.Kind), moneyPtrValue(a.CreditLimit), moneyPtrValue(a.InterestRate), a.Location, a.ID.String(),
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteAccount removes an account; sub-accounts and their ledger entries go
// with it via the schema's cascade rules.
func (s *Store) DeleteAccount(id uuid.UUID) error {
	res, err := s.db.Exec("DELETE FROM accounts WHERE id = ?", id.String())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// AccountByName looks up a bare account record (no sub-accounts attached).
func (s *Store) AccountByName(name string) (model.Account, error) {
	row := s.db.QueryRow(`SELECT id, name, kind, credit_limit, interest_rate, location
		FROM accounts WHERE name = ?`, name)
	return scanAccount(row)
}

// CreateSubAccount inserts a sub-account under its parent account. The
// (account, name) pair must be unique system-wide.
func (s *Store) CreateSubAccount(sub *model.SubAccount) error {
	taken, err := s.exists("SELECT COUNT(*) FROM sub_accounts WHERE account_id = ? AND name = ?",
		sub.AccountID.String(), sub.Name)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("sub-account %q: %w", sub.Name, ErrDuplicate)
	}

	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	_, err = s.db.Exec("INSERT INTO sub_accounts (id, account_id, name) VALUES (?, ?, ?)",
		sub.ID.String(), sub.AccountID.String(), sub.Name)
	return err
}

// DeleteSubAccount removes a sub-account and, by cascade, its entries.
func (s *Store) DeleteSubAccount(id uuid.UUID) error {
	res, err := s.db.Exec("DELETE FROM sub_accounts WHERE id = ?", id.String())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// LoadAccounts fetches the full account graph: every account with its
// sub-accounts and their ledger entries, ready to hand to the pipeline.
func (s *Store) LoadAccounts() ([]model.Account, error) {
	rows, err := s.db.Query(`SELECT id, name, kind, credit_limit, interest_rate, location
		FROM accounts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var accounts []model.Account
	byID := make(map[uuid.UUID]int)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		byID[a.ID] = len(accounts)
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	subRows, err := s.db.Query("SELECT id, account_id, name FROM sub_accounts ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer func() { _ = subRows.Close() }()

	subIndex := make(map[uuid.UUID]struct {
		account int
		sub     int
	})
	for subRows.Next() {
		var idStr, accountStr, name string
		if err := subRows.Scan(&idStr, &accountStr, &name); err != nil {
			return nil, err
		}
		id, accountID := uuid.MustParse(idStr), uuid.MustParse(accountStr)
		idx, ok := byID[accountID]
		if !ok {
			continue
		}
		accounts[idx].SubAccounts = append(accounts[idx].SubAccounts, model.SubAccount{
			ID:          id,
			Name:        name,
			AccountID:   accountID,
			AccountName: accounts[idx].Name,
		})
		subIndex[id] = struct {
			account int
			sub     int
		}{idx, len(accounts[idx].SubAccounts) - 1}
	}
	if err := subRows.Err(); err != nil {
		return nil, err
	}

	entryRows, err := s.db.Query(`SELECT id, memo, credit, debit, tx_date, recorded_on, location,
		sub_account_id, sub_category_id, voided FROM ledger_entries ORDER BY tx_date, rowid`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = entryRows.Close() }()

	for entryRows.Next() {
		e, subID, err := scanEntry(entryRows)
		if err != nil {
			return nil, err
		}
		loc, ok := subIndex[subID]
		if !ok {
			continue
		}
		sub := &accounts[loc.account].SubAccounts[loc.sub]
		sub.Entries = append(sub.Entries, e)
	}
	return accounts, entryRows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (model.Account, error) {
	var a model.Account
	var idStr, kind string
	var limit, rate sql.NullString
	if err := row.Scan(&idStr, &a.Name, &kind, &limit, &rate, &a.Location); err != nil {
		if err == sql.ErrNoRows {
			return model.Account{}, ErrNotFound
		}
		return model.Account{}, err
	}
	a.ID = uuid.MustParse(idStr)
	a.Kind = model.AccountKind(kind)

	var err error
	if a.CreditLimit, err = scanMoneyPtr(limit); err != nil {
		return model.Account{}, err
	}
	if a.InterestRate, err = scanMoneyPtr(rate); err != nil {
		return model.Account{}, err
	}
	return a, nil
}

func moneyPtrValue(m *money.Money) any {
	if m == nil {
		return nil
	}
	return m.String()
}

func scanMoneyPtr(ns sql.NullString) (*money.Money, error) {
	if !ns.Valid {
		return nil, nil
	}
	m, err := money.Parse(ns.String)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// requireRow converts a zero-row UPDATE/DELETE into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
