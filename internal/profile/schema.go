package profile

const schemaSQL = `
CREATE TABLE IF NOT EXISTS profile (
    id          INTEGER PRIMARY KEY CHECK (id = 1),
    income      REAL NOT NULL DEFAULT 0,
    updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
    category    TEXT PRIMARY KEY,
    amount      REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS balances (
    kind        TEXT NOT NULL CHECK (kind IN ('asset', 'liability')),
    name        TEXT NOT NULL,
    amount      REAL NOT NULL,
    PRIMARY KEY (kind, name)
);

CREATE TABLE IF NOT EXISTS categories (
    name        TEXT PRIMARY KEY,
    pct         REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    target      REAL NOT NULL,
    saved       REAL NOT NULL DEFAULT 0,
    deadline    TEXT,
    created     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS investments (
    id            TEXT PRIMARY KEY,
    type          TEXT NOT NULL,
    name          TEXT NOT NULL,
    amount        REAL NOT NULL,
    current_value REAL NOT NULL,
    ticker        TEXT,
    notes         TEXT,
    date          TEXT
);

CREATE INDEX IF NOT EXISTS idx_goals_created ON goals(created);
CREATE INDEX IF NOT EXISTS idx_investments_date ON investments(date);
`
