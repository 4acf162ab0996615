package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"pocketbook/internal/model"
	"pocketbook/internal/schedule"
)

// CreateBill inserts a recurring bill. Bill names are unique.
func (s *Store) CreateBill(b *model.Bill) error {
	taken, err := s.exists("SELECT COUNT(*) FROM bills WHERE name = ?", b.Name)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("bill %q: %w", b.Name, ErrDuplicate)
	}

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	_, err = s.db.Exec(`INSERT INTO bills (id, name, company, location, start_date, end_date, period, amount, auto_pay)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID.String(), b.Name, b.Company, b.Location, formatDate(b.Start), formatDatePtr(b.End),
		string(b.Period), b.Amount.String(), boolToInt(b.AutoPay),
	)
	return err
}

// UpdateBill rewrites a bill's attributes.
func (s *Store) UpdateBill(b model.Bill) error {
	res, err := s.db.Exec(`UPDATE bills SET company = ?, location = ?, start_date = ?, end_date = ?,
		period = ?, amount = ?, auto_pay = ? WHERE id = ?`,
		b.Company, b.Location, formatDate(b.Start), formatDatePtr(b.End),
		string(b.Period), b.Amount.String(), boolToInt(b.AutoPay), b.ID.String(),
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteBill removes a bill.
func (s *Store) DeleteBill(id uuid.UUID) error {
	res, err := s.db.Exec("DELETE FROM bills WHERE id = ?", id.String())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// LoadBills fetches every bill.
func (s *Store) LoadBills() ([]model.Bill, error) {
	rows, err := s.db.Query(`SELECT id, name, company, location, start_date, end_date, period, amount, auto_pay
		FROM bills ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var bills []model.Bill
	for rows.Next() {
		var b model.Bill
		var idStr, startStr, periodStr string
		var endStr sql.NullString
		var autoPay int
		if err := rows.Scan(&idStr, &b.Name, &b.Company, &b.Location, &startStr, &endStr,
			&periodStr, &b.Amount, &autoPay); err != nil {
			return nil, err
		}
		b.ID = uuid.MustParse(idStr)
		b.Start = parseDate(startStr)
		b.End = parseDatePtr(endStr)
		b.Period = schedule.Period(periodStr)
		b.AutoPay = autoPay != 0
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

// CreateUtility inserts a recurring utility. Utility names are unique.
func (s *Store) CreateUtility(u *model.Utility) error {
	taken, err := s.exists("SELECT COUNT(*) FROM utilities WHERE name = ?", u.Name)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("utility %q: %w", u.Name, ErrDuplicate)
	}

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	_, err = s.db.Exec(`INSERT INTO utilities (id, name, company, location, start_date, end_date, period, auto_pay)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID.String(), u.Name, u.Company, u.Location, formatDate(u.Start), formatDatePtr(u.End),
		string(u.Period), boolToInt(u.AutoPay),
	)
	return err
}

// DeleteUtility removes a utility and cascades to its readings.
func (s *Store) DeleteUtility(id uuid.UUID) error {
	res, err := s.db.Exec("DELETE FROM utilities WHERE id = ?", id.String())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// AddUtilityReading appends one observed charge to a utility's history.
func (s *Store) AddUtilityReading(r *model.UtilityReading) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	_, err := s.db.Exec("INSERT INTO utility_readings (id, utility_id, read_date, amount) VALUES (?, ?, ?, ?)",
		r.ID.String(), r.UtilityID.String(), formatDate(r.Date), r.Amount.String())
	return err
}

// LoadUtilities fetches every utility with its readings, oldest first.
func (s *Store) LoadUtilities() ([]model.Utility, error) {
	rows, err := s.db.Query(`SELECT id, name, company, location, start_date, end_date, period, auto_pay
		FROM utilities ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var utilities []model.Utility
	byID := make(map[uuid.UUID]int)
	for rows.Next() {
		var u model.Utility
		var idStr, startStr, periodStr string
		var endStr sql.NullString
		var autoPay int
		if err := rows.Scan(&idStr, &u.Name, &u.Company, &u.Location, &startStr, &endStr,
			&periodStr, &autoPay); err != nil {
			return nil, err
		}
		u.ID = uuid.MustParse(idStr)
		u.Start = parseDate(startStr)
		u.End = parseDatePtr(endStr)
		u.Period = schedule.Period(periodStr)
		u.AutoPay = autoPay != 0
		byID[u.ID] = len(utilities)
		utilities = append(utilities, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	readingRows, err := s.db.Query("SELECT id, utility_id, read_date, amount FROM utility_readings ORDER BY read_date, rowid")
	if err != nil {
		return nil, err
	}
	defer func() { _ = readingRows.Close() }()

	for readingRows.Next() {
		var r model.UtilityReading
		var idStr, utilityStr, dateStr string
		if err := readingRows.Scan(&idStr, &utilityStr, &dateStr, &r.Amount); err != nil {
			return nil, err
		}
		r.ID = uuid.MustParse(idStr)
		r.UtilityID = uuid.MustParse(utilityStr)
		r.Date = parseDate(dateStr)
		if idx, ok := byID[r.UtilityID]; ok {
			utilities[idx].Readings = append(utilities[idx].Readings, r)
		}
	}
	return utilities, readingRows.Err()
}
