package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"pocketbook/internal/model"
)

// CreateJob inserts an income source. Job names are unique.
func (s *Store) CreateJob(j *model.Job) error {
	taken, err := s.exists("SELECT COUNT(*) FROM jobs WHERE name = ?", j.Name)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("job %q: %w", j.Name, ErrDuplicate)
	}

	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	_, err = s.db.Exec("INSERT INTO jobs (id, name, employer, hourly_rate, salary) VALUES (?, ?, ?, ?, ?)",
		j.ID.String(), j.Name, j.Employer, moneyPtrValue(j.HourlyRate), moneyPtrValue(j.Salary))
	return err
}

// DeleteJob removes a job and cascades to its paychecks.
func (s *Store) DeleteJob(id uuid.UUID) error {
	res, err := s.db.Exec("DELETE FROM jobs WHERE id = ?", id.String())
	if err != nil {
		return err
	}
	return requireRow(res)
}

// AddPaycheck records one received payment against a job.
func (s *Store) AddPaycheck(p *model.Paycheck) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := s.db.Exec("INSERT INTO paychecks (id, job_id, pay_date, gross, net, hours) VALUES (?, ?, ?, ?, ?, ?)",
		p.ID.String(), p.JobID.String(), formatDate(p.PayDate), p.Gross.String(), p.Net.String(), p.Hours)
	return err
}

// LoadJobs fetches every job.
func (s *Store) LoadJobs() ([]model.Job, error) {
	rows, err := s.db.Query("SELECT id, name, employer, hourly_rate, salary FROM jobs ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var jobs []model.Job
	for rows.Next() {
		var j model.Job
		var idStr string
		var rate, salary sql.NullString
		if err := rows.Scan(&idStr, &j.Name, &j.Employer, &rate, &salary); err != nil {
			return nil, err
		}
		j.ID = uuid.MustParse(idStr)
		if j.HourlyRate, err = scanMoneyPtr(rate); err != nil {
			return nil, err
		}
		if j.Salary, err = scanMoneyPtr(salary); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// LoadPaychecks fetches a job's paychecks, newest first.
func (s *Store) LoadPaychecks(jobID uuid.UUID) ([]model.Paycheck, error) {
	rows, err := s.db.Query(`SELECT id, job_id, pay_date, gross, net, hours FROM paychecks
		WHERE job_id = ? ORDER BY pay_date DESC`, jobID.String())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var checks []model.Paycheck
	for rows.Next() {
		var p model.Paycheck
		var idStr, jobStr, dateStr string
		if err := rows.Scan(&idStr, &jobStr, &dateStr, &p.Gross, &p.Net, &p.Hours); err != nil {
			return nil, err
		}
		p.ID = uuid.MustParse(idStr)
		p.JobID = uuid.MustParse(jobStr)
		p.PayDate = parseDate(dateStr)
		checks = append(checks, p)
	}
	return checks, rows.Err()
}
