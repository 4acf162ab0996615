package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS accounts (
    id             TEXT PRIMARY KEY,
    name           TEXT NOT NULL UNIQUE,
    kind           TEXT NOT NULL,
    credit_limit   TEXT,
    interest_rate  TEXT,
    location       TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS sub_accounts (
    id             TEXT PRIMARY KEY,
    account_id     TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
    name           TEXT NOT NULL,
    UNIQUE (account_id, name)
);

CREATE TABLE IF NOT EXISTS categories (
    id             TEXT PRIMARY KEY,
    name           TEXT NOT NULL UNIQUE,
    locked         INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS sub_categories (
    id             TEXT PRIMARY KEY,
    category_id    TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
    name           TEXT NOT NULL,
    UNIQUE (category_id, name)
);

CREATE TABLE IF NOT EXISTS ledger_entries (
    id               TEXT PRIMARY KEY,
    memo             TEXT NOT NULL DEFAULT '',
    credit           TEXT NOT NULL,
    debit            TEXT NOT NULL,
    tx_date          TEXT NOT NULL,
    recorded_on      TEXT NOT NULL,
    location         TEXT NOT NULL DEFAULT '',
    sub_account_id   TEXT NOT NULL REFERENCES sub_accounts(id) ON DELETE CASCADE,
    sub_category_id  TEXT NOT NULL REFERENCES sub_categories(id) ON DELETE CASCADE,
    voided           INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS bills (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE,
    company     TEXT NOT NULL DEFAULT '',
    location    TEXT NOT NULL DEFAULT '',
    start_date  TEXT NOT NULL,
    end_date    TEXT,
    period      TEXT NOT NULL,
    amount      TEXT NOT NULL,
    auto_pay    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS utilities (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE,
    company     TEXT NOT NULL DEFAULT '',
    location    TEXT NOT NULL DEFAULT '',
    start_date  TEXT NOT NULL,
    end_date    TEXT,
    period      TEXT NOT NULL,
    auto_pay    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS utility_readings (
    id          TEXT PRIMARY KEY,
    utility_id  TEXT NOT NULL REFERENCES utilities(id) ON DELETE CASCADE,
    read_date   TEXT NOT NULL,
    amount      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS income_divisions (
    id            TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    amount        TEXT NOT NULL,
    kind          TEXT NOT NULL,
    deposit_to    TEXT REFERENCES accounts(id) ON DELETE SET NULL,
    finalized     INTEGER NOT NULL DEFAULT 0,
    budget_year   INTEGER NOT NULL,
    budget_month  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS income_devotions (
    id              TEXT PRIMARY KEY,
    division_id     TEXT NOT NULL REFERENCES income_divisions(id) ON DELETE CASCADE,
    name            TEXT NOT NULL,
    kind            TEXT NOT NULL,
    grp             TEXT NOT NULL,
    amount          TEXT NOT NULL,
    percent         TEXT NOT NULL,
    target_account  TEXT REFERENCES accounts(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS spending_goals (
    id            TEXT PRIMARY KEY,
    budget_year   INTEGER NOT NULL,
    budget_month  INTEGER NOT NULL,
    category_id   TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
    amount        TEXT NOT NULL,
    period        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS savings_goals (
    id            TEXT PRIMARY KEY,
    budget_year   INTEGER NOT NULL,
    budget_month  INTEGER NOT NULL,
    account_id    TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
    amount        TEXT NOT NULL,
    period        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS jobs (
    id           TEXT PRIMARY KEY,
    name         TEXT NOT NULL UNIQUE,
    employer     TEXT NOT NULL DEFAULT '',
    hourly_rate  TEXT,
    salary       TEXT
);

CREATE TABLE IF NOT EXISTS paychecks (
    id        TEXT PRIMARY KEY,
    job_id    TEXT NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
    pay_date  TEXT NOT NULL,
    gross     TEXT NOT NULL,
    net       TEXT NOT NULL,
    hours     REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_entries_sub_account ON ledger_entries(sub_account_id);
CREATE INDEX IF NOT EXISTS idx_entries_tx_date ON ledger_entries(tx_date);
CREATE INDEX IF NOT EXISTS idx_readings_utility ON utility_readings(utility_id);
CREATE INDEX IF NOT EXISTS idx_divisions_month ON income_divisions(budget_year, budget_month);
`
