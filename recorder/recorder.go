// Package recorder stores session transcripts in a SQLite database so
// they can be searched and replayed after the session ends.
package recorder

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// For now this is a magic number - we seem to save bytes when
// payload is 100 bytes or more.
const COMPRESS_THRESHOLD = 100

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    started INTEGER NOT NULL,
    shell TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS chunks (
    session_id INTEGER NOT NULL,
    at INTEGER NOT NULL,
    compressed INTEGER NOT NULL DEFAULT 0,
    data BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS titles (
    session_id INTEGER NOT NULL,
    at INTEGER NOT NULL,
    title TEXT NOT NULL
);

-- Trigram tokens allow substring matches on history lines.
CREATE VIRTUAL TABLE IF NOT EXISTS lines USING fts5(
    text,
    session_id UNINDEXED,
    at UNINDEXED,
    tokenize='trigram'
);
`

// Recorder appends one session's output to the transcript store.
type Recorder struct {
	db      *sql.DB
	session int64
}

// Hit is one line matched by Search.
type Hit struct {
	Session int64
	At      time.Time
	Text    string
}

func Open(path string) (*Recorder, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("couldn't open transcript store %q: %v", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("couldn't create transcript schema: %v", err)
	}

	return &Recorder{db: db}, nil
}

// Begin registers a new session; Chunk, Title and Line attach to it.
func (r *Recorder) Begin(shell string) error {
	res, err := r.db.Exec("INSERT INTO sessions (started, shell) VALUES (?, ?)",
		time.Now().UnixMilli(), shell)
	if err != nil {
		return fmt.Errorf("couldn't register session: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("couldn't register session: %v", err)
	}

	r.session = id
	return nil
}

// Chunk appends one raw output read. Recording never interrupts the
// session, so failures only log.
func (r *Recorder) Chunk(p []byte) {
	if len(p) == 0 {
		return
	}

	data := p
	var comp int
	if len(p) > COMPRESS_THRESHOLD {
		data = compress(p)
		comp = 1
	}

	if _, err := r.db.Exec("INSERT INTO chunks (session_id, at, compressed, data) VALUES (?, ?, ?, ?)",
		r.session, time.Now().UnixMilli(), comp, data); err != nil {
		slog.Error("couldn't store chunk", "err", err)
	}
}

// Title records a title change reported by the child.
func (r *Recorder) Title(title string) {
	if title == "" {
		return
	}

	if _, err := r.db.Exec("INSERT INTO titles (session_id, at, title) VALUES (?, ?, ?)",
		r.session, time.Now().UnixMilli(), title); err != nil {
		slog.Error("couldn't store title", "err", err)
	}
}

// Line indexes one finished line of output for search. Blank lines
// carry nothing worth finding.
func (r *Recorder) Line(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	if _, err := r.db.Exec("INSERT INTO lines (text, session_id, at) VALUES (?, ?, ?)",
		text, r.session, time.Now().UnixMilli()); err != nil {
		slog.Error("couldn't index line", "err", err)
	}
}

// Search matches q as a literal substring against indexed lines,
// newest first.
func (r *Recorder) Search(q string) ([]Hit, error) {
	if q == "" {
		return nil, nil
	}

	// Double quoted FTS5 terms match literally.
	quoted := `"` + strings.ReplaceAll(q, `"`, `""`) + `"`

	rows, err := r.db.Query("SELECT session_id, at, text FROM lines WHERE lines MATCH ? ORDER BY at DESC",
		quoted)
	if err != nil {
		return nil, fmt.Errorf("couldn't search transcripts: %v", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		var at int64
		if err := rows.Scan(&h.Session, &at, &h.Text); err != nil {
			return nil, err
		}
		h.At = time.UnixMilli(at)
		hits = append(hits, h)
	}

	return hits, rows.Err()
}

// Replay writes a session's raw output to w in arrival order. Session
// 0 means the most recent one.
func (r *Recorder) Replay(w io.Writer, session int64) error {
	if session == 0 {
		if err := r.db.QueryRow("SELECT id FROM sessions ORDER BY id DESC LIMIT 1").Scan(&session); err != nil {
			return fmt.Errorf("couldn't find a session to replay: %v", err)
		}
	}

	rows, err := r.db.Query("SELECT compressed, data FROM chunks WHERE session_id = ? ORDER BY at, rowid",
		session)
	if err != nil {
		return fmt.Errorf("couldn't read session %d: %v", session, err)
	}
	defer rows.Close()

	for rows.Next() {
		var comp int
		var data []byte
		if err := rows.Scan(&comp, &data); err != nil {
			return err
		}

		if comp != 0 {
			if data, err = decompress(data); err != nil {
				return fmt.Errorf("couldn't decompress chunk: %v", err)
			}
		}

		if _, err := w.Write(data); err != nil {
			return err
		}
	}

	return rows.Err()
}

func (r *Recorder) Close() error {
	return r.db.Close()
}

func compress(buf []byte) []byte {
	var gbuf bytes.Buffer
	gz := gzip.NewWriter(&gbuf)

	n, err := gz.Write(buf)
	if err != nil || n != len(buf) {
		slog.Error("failed to compress data", "err", err, "n", n)
	}
	gz.Close()
	return gbuf.Bytes()
}

func decompress(buf []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewBuffer(buf))
	if err != nil {
		return nil, err
	}

	var obuf bytes.Buffer
	if _, err := io.Copy(&obuf, gz); err != nil {
		return nil, err
	}

	return obuf.Bytes(), nil
}
