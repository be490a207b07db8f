// ABOUTME: SQLite schema definition and migration for rigbook data.
// ABOUTME: Foreign keys encode ownership cascades and the weak template link.
package storage

import "fmt"

const schema = `
CREATE TABLE IF NOT EXISTS boats (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS rig_templates (
	id TEXT PRIMARY KEY,
	boat_id TEXT NOT NULL,
	name TEXT NOT NULL,
	unit TEXT NOT NULL DEFAULT '',
	category TEXT NOT NULL DEFAULT '',
	options TEXT NOT NULL DEFAULT '[]',
	position INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	FOREIGN KEY (boat_id) REFERENCES boats(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS rig_logs (
	id TEXT PRIMARY KEY,
	boat_id TEXT NOT NULL,
	date TEXT NOT NULL,
	memo TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	FOREIGN KEY (boat_id) REFERENCES boats(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS rig_items (
	id TEXT PRIMARY KEY,
	rig_log_id TEXT NOT NULL,
	template_id TEXT,
	name TEXT NOT NULL,
	unit TEXT NOT NULL DEFAULT '',
	value REAL NOT NULL DEFAULT 0,
	string_value TEXT,
	status TEXT NOT NULL DEFAULT 'normal',
	position INTEGER NOT NULL DEFAULT 0,
	FOREIGN KEY (rig_log_id) REFERENCES rig_logs(id) ON DELETE CASCADE,
	FOREIGN KEY (template_id) REFERENCES rig_templates(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS checklist_items (
	id TEXT PRIMARY KEY,
	boat_id TEXT NOT NULL,
	task TEXT NOT NULL,
	done INTEGER NOT NULL DEFAULT 0,
	category TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0,
	FOREIGN KEY (boat_id) REFERENCES boats(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS workout_templates (
	id TEXT PRIMARY KEY,
	boat_id TEXT,
	name TEXT NOT NULL,
	session_type TEXT NOT NULL,
	category TEXT,
	seed INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL,
	FOREIGN KEY (boat_id) REFERENCES boats(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS metric_templates (
	id TEXT PRIMARY KEY,
	workout_template_id TEXT NOT NULL,
	name TEXT NOT NULL,
	unit TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0,
	FOREIGN KEY (workout_template_id) REFERENCES workout_templates(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS training_sessions (
	id TEXT PRIMARY KEY,
	boat_id TEXT,
	shared INTEGER NOT NULL DEFAULT 0,
	date TEXT NOT NULL,
	session_type TEXT NOT NULL,
	memo TEXT NOT NULL DEFAULT '',
	workout_template_id TEXT,
	image BLOB,
	created_at TEXT NOT NULL,
	FOREIGN KEY (boat_id) REFERENCES boats(id) ON DELETE CASCADE,
	FOREIGN KEY (workout_template_id) REFERENCES workout_templates(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS training_metrics (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	name TEXT NOT NULL,
	unit TEXT NOT NULL DEFAULT '',
	value REAL NOT NULL DEFAULT 0,
	position INTEGER NOT NULL DEFAULT 0,
	FOREIGN KEY (session_id) REFERENCES training_sessions(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS workout_summaries (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL UNIQUE,
	total_distance REAL NOT NULL DEFAULT 0,
	total_seconds REAL NOT NULL DEFAULT 0,
	avg_pace REAL NOT NULL DEFAULT 0,
	avg_stroke_rate REAL NOT NULL DEFAULT 0,
	avg_power REAL NOT NULL DEFAULT 0,
	category TEXT,
	target_value REAL NOT NULL DEFAULT 0,
	rest_seconds INTEGER,
	FOREIGN KEY (session_id) REFERENCES training_sessions(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS splits (
	id TEXT PRIMARY KEY,
	summary_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	distance REAL NOT NULL DEFAULT 0,
	seconds REAL NOT NULL DEFAULT 0,
	pace REAL NOT NULL DEFAULT 0,
	stroke_rate REAL NOT NULL DEFAULT 0,
	power REAL NOT NULL DEFAULT 0,
	FOREIGN KEY (summary_id) REFERENCES workout_summaries(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_rig_templates_boat ON rig_templates(boat_id, position);
CREATE INDEX IF NOT EXISTS idx_rig_logs_boat_date ON rig_logs(boat_id, date);
CREATE INDEX IF NOT EXISTS idx_rig_items_log ON rig_items(rig_log_id, position);
CREATE INDEX IF NOT EXISTS idx_checklist_boat ON checklist_items(boat_id, position);
CREATE INDEX IF NOT EXISTS idx_workout_templates_boat ON workout_templates(boat_id);
CREATE INDEX IF NOT EXISTS idx_metric_templates_workout ON metric_templates(workout_template_id, position);
CREATE INDEX IF NOT EXISTS idx_sessions_boat_date ON training_sessions(boat_id, date);
CREATE INDEX IF NOT EXISTS idx_training_metrics_session ON training_metrics(session_id, position);
CREATE INDEX IF NOT EXISTS idx_splits_summary ON splits(summary_id, position);
`

// initSchema creates all tables and indexes if they don't exist.
func (d *DB) initSchema() error {
	if _, err := d.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
