package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/speechdrill/internal/phoneme"
	"github.com/abhisek/speechdrill/internal/practice"
	"github.com/abhisek/speechdrill/internal/wordpool"
)

// sqlite builds every statement with SQLite quoting and placeholders.
var sqlite = entsql.Dialect(dialect.SQLite)

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type querier interface {
	Query() (string, []any)
}

func exec(ctx context.Context, db execer, q querier) (sql.Result, error) {
	query, args := q.Query()
	return db.ExecContext(ctx, query, args...)
}

// listRepo implements ListRepo with ent's SQL builder over database/sql.
type listRepo struct {
	db  *sql.DB
	now func() time.Time
}

var (
	listColumns    = []string{colID, "name", "description", colCreatedAt, "last_practiced_at"}
	configColumns  = []string{colID, "phoneme_symbol", "phoneme_name", "language", "position", "level", colCreatedAt, colListID}
	wordColumns    = []string{colID, "text", "phoneme_index", "position", colConfigurationID}
	sessionColumns = []string{colID, "date", "total_words", "correct_count", "incorrect_count", "skipped_count", colListID}
	resultColumns  = []string{colID, colConfigurationID, "phoneme_symbol", "total_words", "correct_count", "incorrect_count", "skipped_count", colSessionID}
)

func (r *listRepo) CreateList(ctx context.Context, name, description string) (*practice.List, error) {
	name, description = strings.TrimSpace(name), strings.TrimSpace(description)
	if err := check(listInput{Name: name, Description: description}); err != nil {
		return nil, err
	}

	l := &practice.List{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   r.now(),
	}
	_, err := exec(ctx, r.db, sqlite.Insert(tableLists).
		Columns(colID, "name", "description", colCreatedAt).
		Values(l.ID, l.Name, l.Description, l.CreatedAt.UnixNano()))
	if err != nil {
		return nil, fmt.Errorf("insert list: %w", err)
	}
	return l, nil
}

func (r *listRepo) RenameList(ctx context.Context, id, name, description string) error {
	name, description = strings.TrimSpace(name), strings.TrimSpace(description)
	if err := check(listInput{Name: name, Description: description}); err != nil {
		return err
	}
	res, err := exec(ctx, r.db, sqlite.Update(tableLists).
		Set("name", name).
		Set("description", description).
		Where(entsql.EQ(colID, id)))
	if err != nil {
		return fmt.Errorf("update list: %w", err)
	}
	return requireAffected(res, "list", id)
}

func (r *listRepo) DeleteList(ctx context.Context, id string) error {
	res, err := exec(ctx, r.db, sqlite.Delete(tableLists).Where(entsql.EQ(colID, id)))
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return requireAffected(res, "list", id)
}

func (r *listRepo) GetList(ctx context.Context, id string) (*practice.List, error) {
	lists, err := r.queryLists(ctx, entsql.EQ(colID, id))
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return nil, fmt.Errorf("list %s: %w", id, ErrNotFound)
	}
	return &lists[0], nil
}

func (r *listRepo) Lists(ctx context.Context) ([]practice.List, error) {
	return r.queryLists(ctx, nil)
}

// queryLists reads list rows first and loads children afterwards; the
// store keeps a single connection, so rows must be closed before the
// next query.
func (r *listRepo) queryLists(ctx context.Context, where *entsql.Predicate) ([]practice.List, error) {
	sel := sqlite.Select(listColumns...).From(sqlite.Table(tableLists)).OrderBy(entsql.Desc(colCreatedAt))
	if where != nil {
		sel.Where(where)
	}
	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}

	var lists []practice.List
	for rows.Next() {
		var (
			l             practice.List
			created       int64
			lastPracticed sql.NullInt64
		)
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &created, &lastPracticed); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan list: %w", err)
		}
		l.CreatedAt = time.Unix(0, created)
		if lastPracticed.Valid {
			t := time.Unix(0, lastPracticed.Int64)
			l.LastPracticedAt = &t
		}
		lists = append(lists, l)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("read lists: %w", err)
	}

	for i := range lists {
		if lists[i].Configurations, err = r.Configurations(ctx, lists[i].ID); err != nil {
			return nil, err
		}
		if lists[i].Sessions, err = r.Sessions(ctx, lists[i].ID); err != nil {
			return nil, err
		}
	}
	return lists, nil
}

func (r *listRepo) AddConfiguration(ctx context.Context, listID string, p phoneme.Phoneme, pos phoneme.Position, level phoneme.Level) (*practice.Configuration, error) {
	in := configurationInput{
		ListID:   listID,
		Symbol:   p.Symbol,
		Name:     p.Name,
		Language: string(p.Language),
		Position: string(pos),
		Level:    level.String(),
	}
	if err := check(in); err != nil {
		return nil, err
	}

	c := &practice.Configuration{
		ID:            uuid.NewString(),
		ListID:        listID,
		PhonemeSymbol: p.Symbol,
		PhonemeName:   p.Name,
		Language:      p.Language,
		Position:      pos,
		Level:         level,
		CreatedAt:     r.now(),
	}
	_, err := exec(ctx, r.db, sqlite.Insert(tableConfigs).
		Columns(configColumns...).
		Values(c.ID, c.PhonemeSymbol, c.PhonemeName, string(c.Language), string(c.Position), c.Level.String(), c.CreatedAt.UnixNano(), c.ListID))
	if err != nil {
		if isForeignKeyErr(err) {
			return nil, fmt.Errorf("list %s: %w", listID, ErrNotFound)
		}
		return nil, fmt.Errorf("insert configuration: %w", err)
	}
	return c, nil
}

func (r *listRepo) GetConfiguration(ctx context.Context, id string) (*practice.Configuration, error) {
	configs, err := r.queryConfigurations(ctx, entsql.EQ(colID, id))
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, fmt.Errorf("configuration %s: %w", id, ErrNotFound)
	}
	return &configs[0], nil
}

func (r *listRepo) DeleteConfiguration(ctx context.Context, id string) error {
	res, err := exec(ctx, r.db, sqlite.Delete(tableConfigs).Where(entsql.EQ(colID, id)))
	if err != nil {
		return fmt.Errorf("delete configuration: %w", err)
	}
	return requireAffected(res, "configuration", id)
}

func (r *listRepo) Configurations(ctx context.Context, listID string) ([]practice.Configuration, error) {
	return r.queryConfigurations(ctx, entsql.EQ(colListID, listID))
}

func (r *listRepo) queryConfigurations(ctx context.Context, where *entsql.Predicate) ([]practice.Configuration, error) {
	query, args := sqlite.Select(configColumns...).
		From(sqlite.Table(tableConfigs)).
		Where(where).
		OrderBy("phoneme_symbol", colCreatedAt).
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query configurations: %w", err)
	}

	var (
		configs []practice.Configuration
		ids     []any
	)
	for rows.Next() {
		var (
			c                practice.Configuration
			lang, pos, level string
			created          int64
		)
		if err := rows.Scan(&c.ID, &c.PhonemeSymbol, &c.PhonemeName, &lang, &pos, &level, &created, &c.ListID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan configuration: %w", err)
		}
		c.Language = phoneme.Language(lang)
		c.Position = phoneme.Position(pos)
		lvl, err := phoneme.ParseLevel(level)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("configuration %s: %w", c.ID, err)
		}
		c.Level = lvl
		c.CreatedAt = time.Unix(0, created)
		configs = append(configs, c)
		ids = append(ids, c.ID)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("read configurations: %w", err)
	}
	if len(configs) == 0 {
		return nil, nil
	}

	words, err := r.wordsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range configs {
		configs[i].Words = words[configs[i].ID]
	}
	return configs, nil
}

// wordsFor loads the words of the given configurations, ordered by text.
func (r *listRepo) wordsFor(ctx context.Context, configIDs []any) (map[string][]wordpool.PracticeWord, error) {
	query, args := sqlite.Select(wordColumns...).
		From(sqlite.Table(tableWords)).
		Where(entsql.In(colConfigurationID, configIDs...)).
		OrderBy("text", colID).
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]wordpool.PracticeWord)
	for rows.Next() {
		var (
			w        wordpool.PracticeWord
			pos      string
			configID string
		)
		if err := rows.Scan(&w.ID, &w.Text, &w.PhonemeIndex, &pos, &configID); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		w.Position = phoneme.Position(pos)
		w.Included = true
		out[configID] = append(out[configID], w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return out, nil
}

func (r *listRepo) AddWord(ctx context.Context, configID string, w wordpool.PracticeWord) (*wordpool.PracticeWord, error) {
	return insertWord(ctx, r.db, configID, w)
}

func insertWord(ctx context.Context, db execer, configID string, w wordpool.PracticeWord) (*wordpool.PracticeWord, error) {
	w.Text = strings.TrimSpace(w.Text)
	in := wordInput{ConfigurationID: configID, Text: w.Text, PhonemeIndex: w.PhonemeIndex, Position: string(w.Position)}
	if err := check(in); err != nil {
		return nil, err
	}

	w.ID = uuid.NewString()
	w.Included = true
	_, err := exec(ctx, db, sqlite.Insert(tableWords).
		Columns(wordColumns...).
		Values(w.ID, w.Text, w.PhonemeIndex, string(w.Position), configID))
	if err != nil {
		if isForeignKeyErr(err) {
			return nil, fmt.Errorf("configuration %s: %w", configID, ErrNotFound)
		}
		return nil, fmt.Errorf("insert word: %w", err)
	}
	return &w, nil
}

func (r *listRepo) RemoveWord(ctx context.Context, wordID string) error {
	res, err := exec(ctx, r.db, sqlite.Delete(tableWords).Where(entsql.EQ(colID, wordID)))
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	return requireAffected(res, "word", wordID)
}

func (r *listRepo) ReplaceWords(ctx context.Context, configID string, words []wordpool.PracticeWord) error {
	if _, err := r.GetConfiguration(ctx, configID); err != nil {
		return err
	}
	return r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := exec(ctx, tx, sqlite.Delete(tableWords).Where(entsql.EQ(colConfigurationID, configID))); err != nil {
			return fmt.Errorf("clear words: %w", err)
		}
		for _, w := range words {
			if !w.Included {
				continue
			}
			if _, err := insertWord(ctx, tx, configID, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *listRepo) Sessions(ctx context.Context, listID string) ([]practice.SessionRecord, error) {
	query, args := sqlite.Select(sessionColumns...).
		From(sqlite.Table(tableSessions)).
		Where(entsql.EQ(colListID, listID)).
		OrderBy(entsql.Desc("date")).
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	var (
		sessions []practice.SessionRecord
		ids      []any
	)
	for rows.Next() {
		var (
			s    practice.SessionRecord
			date int64
		)
		if err := rows.Scan(&s.ID, &date, &s.TotalWords, &s.Correct, &s.Incorrect, &s.Skipped, &s.ListID); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.Date = time.Unix(0, date)
		sessions = append(sessions, s)
		ids = append(ids, s.ID)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("read sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil, nil
	}

	results, err := r.resultsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		sessions[i].Results = results[sessions[i].ID]
	}
	return sessions, nil
}

// resultsFor loads result rows for the given sessions, ordered by symbol.
func (r *listRepo) resultsFor(ctx context.Context, sessionIDs []any) (map[string][]practice.ConfigurationResult, error) {
	query, args := sqlite.Select(resultColumns...).
		From(sqlite.Table(tableResults)).
		Where(entsql.In(colSessionID, sessionIDs...)).
		OrderBy("phoneme_symbol", colConfigurationID).
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]practice.ConfigurationResult)
	for rows.Next() {
		var (
			res       practice.ConfigurationResult
			id        string
			sessionID string
		)
		if err := rows.Scan(&id, &res.ConfigurationID, &res.PhonemeSymbol, &res.Total, &res.Correct, &res.Incorrect, &res.Skipped, &sessionID); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		out[sessionID] = append(out[sessionID], res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	return out, nil
}

func (r *listRepo) SaveSession(ctx context.Context, rec practice.SessionRecord) (*practice.SessionRecord, error) {
	if rec.Correct+rec.Incorrect+rec.Skipped != rec.TotalWords {
		return nil, fmt.Errorf("%w: session counts do not add up to %d", ErrInvalidInput, rec.TotalWords)
	}
	for _, res := range rec.Results {
		if res.Correct+res.Incorrect+res.Skipped != res.Total {
			return nil, fmt.Errorf("%w: result counts for %s do not add up to %d", ErrInvalidInput, res.PhonemeSymbol, res.Total)
		}
	}

	rec.ID = uuid.NewString()
	if rec.Date.IsZero() {
		rec.Date = r.now()
	}
	rec.Results = append([]practice.ConfigurationResult(nil), rec.Results...)

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		res, err := exec(ctx, tx, sqlite.Update(tableLists).
			Set("last_practiced_at", rec.Date.UnixNano()).
			Where(entsql.EQ(colID, rec.ListID)))
		if err != nil {
			return fmt.Errorf("stamp list: %w", err)
		}
		if err := requireAffected(res, "list", rec.ListID); err != nil {
			return err
		}

		_, err = exec(ctx, tx, sqlite.Insert(tableSessions).
			Columns(sessionColumns...).
			Values(rec.ID, rec.Date.UnixNano(), rec.TotalWords, rec.Correct, rec.Incorrect, rec.Skipped, rec.ListID))
		if err != nil {
			return fmt.Errorf("insert session: %w", err)
		}

		for _, res := range rec.Results {
			_, err := exec(ctx, tx, sqlite.Insert(tableResults).
				Columns(resultColumns...).
				Values(uuid.NewString(), res.ConfigurationID, res.PhonemeSymbol, res.Total, res.Correct, res.Incorrect, res.Skipped, rec.ID))
			if err != nil {
				return fmt.Errorf("insert result: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *listRepo) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func requireAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return nil
}

func closeRows(rows *sql.Rows) error {
	err := rows.Err()
	if cerr := rows.Close(); err == nil {
		err = cerr
	}
	return err
}

func isForeignKeyErr(err error) bool {
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
