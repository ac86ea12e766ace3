package sqlite

import (
	"context"
	"database/sql"

	"dictapi/internal/model"
	"dictapi/internal/repository"
)

// DictionarySQLite is a SQLite implementation of repository.DictionaryRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DictionarySQLite struct {
	db *sql.DB
}

// NewDictionarySQLite creates a new DictionarySQLite repository.
func NewDictionarySQLite(db *sql.DB) *DictionarySQLite {
	return &DictionarySQLite{db: db}
}

var _ repository.DictionaryRepository = (*DictionarySQLite)(nil)

const (
	qInsertWordIgnore   = `INSERT OR IGNORE INTO word (name, user_id) VALUES (?, ?)`
	qInsertPhraseIgnore = `INSERT OR IGNORE INTO phrase (name, user_id) VALUES (?, ?)`
	qInsertWordLink     = `
		INSERT OR IGNORE INTO rel (main_word_id, phrase_word_id, user_id)
		SELECT m.id, p.id, m.user_id
		FROM word m
		JOIN word p ON p.user_id = m.user_id
		WHERE m.user_id = ? AND m.name = ? AND p.name = ?`
	qInsertPhraseLink = `
		INSERT OR IGNORE INTO phrel (phrase_id, word_id, user_id)
		SELECT phrase.id, word.id, word.user_id
		FROM phrase
		JOIN word ON word.user_id = phrase.user_id
		WHERE word.user_id = ? AND phrase.name = ? AND word.name = ?`
)

// ListWords returns words ordered by name using LIMIT/OFFSET pagination and a total count.
func (r *DictionarySQLite) ListWords(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Word], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM word`).Scan(&total); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, user_id
		FROM word
		ORDER BY name, id
		LIMIT ? OFFSET ?`, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Word, 0)
	for rows.Next() {
		var w model.Word
		if err := rows.Scan(&w.ID, &w.Name, &w.UserID); err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Word]{Items: items, Total: total}, nil
}

// FindWordByID fetches a single word by its ID.
func (r *DictionarySQLite) FindWordByID(ctx context.Context, id int64) (*model.Word, error) {
	var w model.Word
	err := r.db.QueryRowContext(ctx, `SELECT id, name, user_id FROM word WHERE id = ?`, id).
		Scan(&w.ID, &w.Name, &w.UserID)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *DictionarySQLite) PhrasesForWord(ctx context.Context, wordID int64) ([]model.Phrase, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT phrase.id, phrase.name
		FROM phrel
		JOIN phrase ON phrel.phrase_id = phrase.id
		WHERE phrel.word_id = ?
		ORDER BY phrase.name`, wordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Phrase, 0)
	for rows.Next() {
		var p model.Phrase
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *DictionarySQLite) FindPhraseForWord(ctx context.Context, wordID, phraseID int64) (*model.Phrase, error) {
	var p model.Phrase
	err := r.db.QueryRowContext(ctx, `
		SELECT phrase.id, phrase.name
		FROM phrel
		JOIN phrase ON phrel.phrase_id = phrase.id
		WHERE phrel.word_id = ? AND phrel.phrase_id = ?`, wordID, phraseID).
		Scan(&p.ID, &p.Name)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *DictionarySQLite) PhraseWordsForWord(ctx context.Context, wordID int64) ([]model.PhraseWord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT pw.id, pw.name
		FROM rel
		JOIN word pw ON rel.phrase_word_id = pw.id
		WHERE rel.main_word_id = ?
		ORDER BY pw.name`, wordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PhraseWord, 0)
	for rows.Next() {
		var pw model.PhraseWord
		if err := rows.Scan(&pw.ID, &pw.Name); err != nil {
			return nil, err
		}
		items = append(items, pw)
	}
	return items, rows.Err()
}

// CreateWord inserts a word and returns the stored record.
func (r *DictionarySQLite) CreateWord(ctx context.Context, userID int64, name string) (*model.Word, error) {
	var w model.Word
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO word (name, user_id) VALUES (?, ?)
		RETURNING id, name, user_id`, name, userID).
		Scan(&w.ID, &w.Name, &w.UserID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &w, nil
}

func (r *DictionarySQLite) RenameWord(ctx context.Context, id int64, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE word SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return mapErr(err)
	}
	if affected(res) == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *DictionarySQLite) SaveExtraction(ctx context.Context, ex *model.Extraction) (*model.ExtractionSummary, error) {
	var sum model.ExtractionSummary
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, w := range ex.Words {
			res, err := tx.ExecContext(ctx, qInsertWordIgnore, w, ex.UserID)
			if err != nil {
				return err
			}
			sum.Words += affected(res)
		}
		for _, p := range ex.Phrases {
			res, err := tx.ExecContext(ctx, qInsertPhraseIgnore, p, ex.UserID)
			if err != nil {
				return err
			}
			sum.Phrases += affected(res)
		}
		for _, l := range ex.WordLinks {
			res, err := tx.ExecContext(ctx, qInsertWordLink, ex.UserID, l.Main, l.Related)
			if err != nil {
				return err
			}
			sum.WordLinks += affected(res)
		}
		for _, l := range ex.PhraseLinks {
			res, err := tx.ExecContext(ctx, qInsertPhraseLink, ex.UserID, l.Phrase, l.Word)
			if err != nil {
				return err
			}
			sum.PhraseLinks += affected(res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sum, nil
}

func (r *DictionarySQLite) LinkPhraseWord(ctx context.Context, userID, wordID int64, name string) (*model.Word, error) {
	var pw model.Word
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, qInsertWordIgnore, name, userID); err != nil {
			return err
		}
		if err := tx.QueryRowContext(ctx, `SELECT id, name, user_id FROM word WHERE name = ? AND user_id = ?`, name, userID).
			Scan(&pw.ID, &pw.Name, &pw.UserID); err != nil {
			return err
		}
		if pw.ID == wordID {
			return nil
		}
		return linkBoth(ctx, tx, userID, wordID, pw.ID)
	})
	if err != nil {
		return nil, err
	}
	return &pw, nil
}

func linkBoth(ctx context.Context, ex execer, userID, a, b int64) error {
	const q = `INSERT OR IGNORE INTO rel (main_word_id, phrase_word_id, user_id) VALUES (?, ?, ?)`
	if _, err := ex.ExecContext(ctx, q, a, b, userID); err != nil {
		return err
	}
	_, err := ex.ExecContext(ctx, q, b, a, userID)
	return err
}

// DeleteWord removes the word, then its relations and phrase memberships, atomically.
func (r *DictionarySQLite) DeleteWord(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM word WHERE id = ?`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM rel WHERE main_word_id = ? OR phrase_word_id = ?`, id, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM phrel WHERE word_id = ?`, id)
		return err
	})
}

func (r *DictionarySQLite) DeletePhrase(ctx context.Context, phraseID int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM phrase WHERE id = ?`, phraseID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM phrel WHERE phrase_id = ?`, phraseID)
		return err
	})
}

func (r *DictionarySQLite) DeletePhraseWordLink(ctx context.Context, wordID, phraseWordID int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM rel
		WHERE (main_word_id = ? AND phrase_word_id = ?) OR (main_word_id = ? AND phrase_word_id = ?)`,
		wordID, phraseWordID, phraseWordID, wordID)
	return err
}
