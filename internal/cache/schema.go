package cache

// schemaSQL defines the SQLite schema for the skeleton cache.
// One row per source file; the skeleton column holds the JSON-encoded
// class skeletons extracted from that file.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS skeletons (
    file_path TEXT PRIMARY KEY,
    content_hash TEXT NOT NULL,
    skeleton BLOB NOT NULL,
    extracted_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_skeletons_hash ON skeletons(content_hash);
`

// initSchema creates the database tables and indexes if they don't exist.
func (c *Cache) initSchema() error {
	_, err := c.db.Exec(schemaSQL)
	return err
}
