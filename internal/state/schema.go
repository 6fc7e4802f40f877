package state

const schema = `
CREATE TABLE IF NOT EXISTS custom_jars (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    path TEXT NOT NULL,
    added_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS play_times (
    entry TEXT PRIMARY KEY,
    last_played TEXT NOT NULL
);
`
