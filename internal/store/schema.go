package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS collections (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT,
	parent_id   TEXT REFERENCES collections(id),
	color       TEXT,
	icon        TEXT,
	sort_order  INTEGER NOT NULL DEFAULT 0,
	created_at  DATETIME NOT NULL,
	updated_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
	id              TEXT PRIMARY KEY,
	title           TEXT NOT NULL,
	content         TEXT NOT NULL,
	collection_id   TEXT REFERENCES collections(id),
	tags            TEXT NOT NULL DEFAULT '[]',
	created_at      DATETIME NOT NULL,
	updated_at      DATETIME NOT NULL,
	word_count      INTEGER NOT NULL DEFAULT 0,
	character_count INTEGER NOT NULL DEFAULT 0,
	is_archived     BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS images (
	id            TEXT PRIMARY KEY,
	filename      TEXT NOT NULL,
	original_name TEXT NOT NULL,
	file_path     TEXT NOT NULL,
	size          INTEGER NOT NULL,
	mime_type     TEXT NOT NULL,
	created_at    DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS note_images (
	note_id    TEXT NOT NULL REFERENCES notes(id) ON DELETE CASCADE,
	image_id   TEXT NOT NULL REFERENCES images(id) ON DELETE CASCADE,
	created_at DATETIME NOT NULL,
	PRIMARY KEY (note_id, image_id)
);

CREATE INDEX IF NOT EXISTS idx_collections_parent ON collections(parent_id, sort_order);
CREATE INDEX IF NOT EXISTS idx_notes_collection ON notes(collection_id);
CREATE INDEX IF NOT EXISTS idx_notes_updated ON notes(updated_at);
`
