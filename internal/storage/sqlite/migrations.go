package sqlite

// schema contains the database schema DDL.
const schema = `
-- Key-value namespace; each value is a JSON document
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`
