package db

// Schema statements executed on open. FTS5 shadow tables mirror the searched
// columns of works/terms and are kept in sync by triggers, so the full-text
// predicate is a plain MATCH against an external-content index.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS works (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		composer    TEXT NOT NULL,
		work_title  TEXT NOT NULL,
		category    TEXT NOT NULL DEFAULT '',
		subcategory TEXT,
		file_path   TEXT NOT NULL DEFAULT '',
		file_size   INTEGER NOT NULL DEFAULT 0,
		created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_works_composer ON works(composer)`,
	`CREATE INDEX IF NOT EXISTS idx_works_category ON works(category)`,

	`CREATE VIRTUAL TABLE IF NOT EXISTS works_fts USING fts5(
		composer, work_title, category, subcategory,
		content='works', content_rowid='id'
	)`,
	`CREATE TRIGGER IF NOT EXISTS works_ai AFTER INSERT ON works BEGIN
		INSERT INTO works_fts(rowid, composer, work_title, category, subcategory)
		VALUES (new.id, new.composer, new.work_title, new.category, new.subcategory);
	END`,
	`CREATE TRIGGER IF NOT EXISTS works_ad AFTER DELETE ON works BEGIN
		INSERT INTO works_fts(works_fts, rowid, composer, work_title, category, subcategory)
		VALUES ('delete', old.id, old.composer, old.work_title, old.category, old.subcategory);
	END`,
	`CREATE TRIGGER IF NOT EXISTS works_au AFTER UPDATE ON works BEGIN
		INSERT INTO works_fts(works_fts, rowid, composer, work_title, category, subcategory)
		VALUES ('delete', old.id, old.composer, old.work_title, old.category, old.subcategory);
		INSERT INTO works_fts(rowid, composer, work_title, category, subcategory)
		VALUES (new.id, new.composer, new.work_title, new.category, new.subcategory);
	END`,

	`CREATE TABLE IF NOT EXISTS terms (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		term       TEXT NOT NULL UNIQUE,
		definition TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE VIRTUAL TABLE IF NOT EXISTS terms_fts USING fts5(
		term, definition,
		content='terms', content_rowid='id'
	)`,
	`CREATE TRIGGER IF NOT EXISTS terms_ai AFTER INSERT ON terms BEGIN
		INSERT INTO terms_fts(rowid, term, definition)
		VALUES (new.id, new.term, new.definition);
	END`,
	`CREATE TRIGGER IF NOT EXISTS terms_ad AFTER DELETE ON terms BEGIN
		INSERT INTO terms_fts(terms_fts, rowid, term, definition)
		VALUES ('delete', old.id, old.term, old.definition);
	END`,
	`CREATE TRIGGER IF NOT EXISTS terms_au AFTER UPDATE ON terms BEGIN
		INSERT INTO terms_fts(terms_fts, rowid, term, definition)
		VALUES ('delete', old.id, old.term, old.definition);
		INSERT INTO terms_fts(rowid, term, definition)
		VALUES (new.id, new.term, new.definition);
	END`,
}

func (s *Store) migrate() error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err //nolint:wrapcheck // Open wraps with context
		}
	}
	return nil
}
