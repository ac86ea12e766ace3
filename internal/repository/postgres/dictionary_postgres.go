package postgres

import (
	"context"
	"database/sql"

	"dictapi/internal/model"
	"dictapi/internal/repository"
)

// DictionaryPostgres is a PostgreSQL implementation of repository.DictionaryRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DictionaryPostgres struct {
	db *sql.DB
}

// NewDictionaryPostgres creates a new DictionaryPostgres repository.
func NewDictionaryPostgres(db *sql.DB) *DictionaryPostgres {
	return &DictionaryPostgres{db: db}
}

var _ repository.DictionaryRepository = (*DictionaryPostgres)(nil)

const (
	qInsertWordIgnore   = `INSERT INTO word (name, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	qInsertPhraseIgnore = `INSERT INTO phrase (name, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	qInsertWordLink     = `
		INSERT INTO rel (main_word_id, phrase_word_id, user_id)
		SELECT m.id, p.id, m.user_id
		FROM word m
		JOIN word p ON p.user_id = m.user_id
		WHERE m.user_id = $1 AND m.name = $2 AND p.name = $3
		ON CONFLICT DO NOTHING`
	qInsertPhraseLink = `
		INSERT INTO phrel (phrase_id, word_id, user_id)
		SELECT phrase.id, word.id, word.user_id
		FROM phrase
		JOIN word ON word.user_id = phrase.user_id
		WHERE word.user_id = $1 AND phrase.name = $2 AND word.name = $3
		ON CONFLICT DO NOTHING`
	qInsertRel = `INSERT INTO rel (main_word_id, phrase_word_id, user_id) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`
)

// ListWords returns words ordered by name using LIMIT/OFFSET pagination and a total count.
func (r *DictionaryPostgres) ListWords(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Word], error) {
	// Count total rows
	const qCount = `SELECT COUNT(*) FROM word`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	// Fetch page
	const qList = `
		SELECT id, name, user_id
		FROM word
		ORDER BY name, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
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

	return &repository.PageResult[model.Word]{
		Items: items,
		Total: total,
	}, nil
}

// FindWordByID fetches a single word by its ID.
func (r *DictionaryPostgres) FindWordByID(ctx context.Context, id int64) (*model.Word, error) {
	const q = `
		SELECT id, name, user_id
		FROM word
		WHERE id = $1
	`
	var w model.Word
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&w.ID, &w.Name, &w.UserID); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *DictionaryPostgres) PhrasesForWord(ctx context.Context, wordID int64) ([]model.Phrase, error) {
	const q = `
		SELECT DISTINCT phrase.id, phrase.name
		FROM phrel
		JOIN phrase ON phrel.phrase_id = phrase.id
		WHERE phrel.word_id = $1
		ORDER BY phrase.name
	`
	rows, err := r.db.QueryContext(ctx, q, wordID)
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

func (r *DictionaryPostgres) FindPhraseForWord(ctx context.Context, wordID, phraseID int64) (*model.Phrase, error) {
	const q = `
		SELECT phrase.id, phrase.name
		FROM phrel
		JOIN phrase ON phrel.phrase_id = phrase.id
		WHERE phrel.word_id = $1 AND phrel.phrase_id = $2
	`
	var p model.Phrase
	if err := r.db.QueryRowContext(ctx, q, wordID, phraseID).Scan(&p.ID, &p.Name); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *DictionaryPostgres) PhraseWordsForWord(ctx context.Context, wordID int64) ([]model.PhraseWord, error) {
	const q = `
		SELECT DISTINCT pw.id, pw.name
		FROM rel
		JOIN word pw ON rel.phrase_word_id = pw.id
		WHERE rel.main_word_id = $1
		ORDER BY pw.name
	`
	rows, err := r.db.QueryContext(ctx, q, wordID)
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

// CreateWord inserts a new word row and returns the stored record.
func (r *DictionaryPostgres) CreateWord(ctx context.Context, userID int64, name string) (*model.Word, error) {
	const q = `
		INSERT INTO word (name, user_id)
		VALUES ($1, $2)
		RETURNING id, name, user_id
	`
	var w model.Word
	if err := r.db.QueryRowContext(ctx, q, name, userID).Scan(&w.ID, &w.Name, &w.UserID); err != nil {
		return nil, mapErr(err)
	}
	return &w, nil
}

func (r *DictionaryPostgres) RenameWord(ctx context.Context, id int64, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE word SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return mapErr(err)
	}
	if affected(res) == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *DictionaryPostgres) SaveExtraction(ctx context.Context, ex *model.Extraction) (*model.ExtractionSummary, error) {
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

func (r *DictionaryPostgres) LinkPhraseWord(ctx context.Context, userID, wordID int64, name string) (*model.Word, error) {
	var pw model.Word
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, qInsertWordIgnore, name, userID); err != nil {
			return err
		}
		const q = `SELECT id, name, user_id FROM word WHERE name = $1 AND user_id = $2`
		if err := tx.QueryRowContext(ctx, q, name, userID).Scan(&pw.ID, &pw.Name, &pw.UserID); err != nil {
			return err
		}
		if pw.ID == wordID {
			return nil
		}
		if _, err := tx.ExecContext(ctx, qInsertRel, wordID, pw.ID, userID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, qInsertRel, pw.ID, wordID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &pw, nil
}

// DeleteWord removes the word, then its relations and phrase memberships, atomically.
func (r *DictionaryPostgres) DeleteWord(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM word WHERE id = $1`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM rel WHERE main_word_id = $1 OR phrase_word_id = $1`, id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM phrel WHERE word_id = $1`, id)
		return err
	})
}

func (r *DictionaryPostgres) DeletePhrase(ctx context.Context, phraseID int64) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM phrase WHERE id = $1`, phraseID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM phrel WHERE phrase_id = $1`, phraseID)
		return err
	})
}

func (r *DictionaryPostgres) DeletePhraseWordLink(ctx context.Context, wordID, phraseWordID int64) error {
	const q = `
		DELETE FROM rel
		WHERE (main_word_id = $1 AND phrase_word_id = $2) OR (main_word_id = $2 AND phrase_word_id = $1)
	`
	_, err := r.db.ExecContext(ctx, q, wordID, phraseWordID)
	return err
}
