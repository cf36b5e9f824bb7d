package db

// Dialect identifies the SQL engine behind a *sql.DB.
type Dialect string

const (
	// Postgres is PostgreSQL through lib/pq.
	Postgres Dialect = "postgres"
	// SQLite is a SQLite file through modernc.org/sqlite.
	SQLite Dialect = "sqlite"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username VARCHAR(25) NOT NULL UNIQUE,
    email VARCHAR(120) NOT NULL UNIQUE,
    password VARCHAR(80) NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS people (
    id SERIAL PRIMARY KEY,
    name VARCHAR(150) NOT NULL,
    lastname VARCHAR(150) NOT NULL,
    side VARCHAR(150) NOT NULL
);

CREATE TABLE IF NOT EXISTS planets (
    id SERIAL PRIMARY KEY,
    name VARCHAR(150) NOT NULL,
    terrain VARCHAR(150) NOT NULL,
    population BIGINT NOT NULL,
    galaxy VARCHAR(150) NOT NULL
);

CREATE TABLE IF NOT EXISTS favorites (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    planet_id INTEGER REFERENCES planets(id) ON DELETE CASCADE,
    people_id INTEGER REFERENCES people(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS favorites_user_id_idx ON favorites (user_id);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username VARCHAR(25) NOT NULL UNIQUE,
    email VARCHAR(120) NOT NULL UNIQUE,
    password VARCHAR(80) NOT NULL,
    is_active BOOLEAN NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS people (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name VARCHAR(150) NOT NULL,
    lastname VARCHAR(150) NOT NULL,
    side VARCHAR(150) NOT NULL
);

CREATE TABLE IF NOT EXISTS planets (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name VARCHAR(150) NOT NULL,
    terrain VARCHAR(150) NOT NULL,
    population INTEGER NOT NULL,
    galaxy VARCHAR(150) NOT NULL
);

CREATE TABLE IF NOT EXISTS favorites (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    planet_id INTEGER REFERENCES planets(id) ON DELETE CASCADE,
    people_id INTEGER REFERENCES people(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS favorites_user_id_idx ON favorites (user_id);
`

func schemaFor(d Dialect) string {
	if d == Postgres {
		return postgresSchema
	}
	return sqliteSchema
}
