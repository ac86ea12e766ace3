package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dictapi/internal/database/migration"
	"dictapi/internal/model"
	"dictapi/internal/repository"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migration.EnsureMigrated(context.Background(), db, "sqlite", zap.NewNop(), "test"))
	return db
}

func foxExtraction(userID int64) *model.Extraction {
	return &model.Extraction{
		UserID:  userID,
		Words:   []string{"quick", "fox", "jump", "lazy", "dog"},
		Phrases: []string{"the quick fox", "jump over the lazy dog", "the lazy dog"},
		WordLinks: []model.WordLink{
			{Main: "quick", Related: "fox"}, {Main: "fox", Related: "quick"},
			{Main: "jump", Related: "lazy"}, {Main: "lazy", Related: "jump"},
			{Main: "jump", Related: "dog"}, {Main: "dog", Related: "jump"},
			{Main: "lazy", Related: "dog"}, {Main: "dog", Related: "lazy"},
		},
		PhraseLinks: []model.PhraseLink{
			{Phrase: "the quick fox", Word: "quick"},
			{Phrase: "the quick fox", Word: "fox"},
			{Phrase: "jump over the lazy dog", Word: "jump"},
			{Phrase: "jump over the lazy dog", Word: "lazy"},
			{Phrase: "the lazy dog", Word: "lazy"},
			{Phrase: "jump over the lazy dog", Word: "dog"},
			{Phrase: "the lazy dog", Word: "dog"},
		},
	}
}

func wordID(t *testing.T, db *sql.DB, name string, userID int64) int64 {
	t.Helper()
	var id int64
	require.NoError(t, db.QueryRow(`SELECT id FROM word WHERE name = ? AND user_id = ?`, name, userID).Scan(&id))
	return id
}

func count(t *testing.T, db *sql.DB, q string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(q, args...).Scan(&n))
	return n
}

func TestDictionarySQLite_SaveExtraction(t *testing.T) {
	db := newTestDB(t)
	repo := NewDictionarySQLite(db)
	ctx := context.Background()

	sum, err := repo.SaveExtraction(ctx, foxExtraction(1))
	require.NoError(t, err)
	assert.Equal(t, &model.ExtractionSummary{Words: 5, Phrases: 3, WordLinks: 8, PhraseLinks: 7}, sum)

	t.Run("saving again adds nothing", func(t *testing.T) {
		sum, err := repo.SaveExtraction(ctx, foxExtraction(1))
		require.NoError(t, err)
		assert.Equal(t, &model.ExtractionSummary{}, sum)
	})

	t.Run("relations stay within one user", func(t *testing.T) {
		ex := &model.Extraction{
			UserID:    2,
			Words:     []string{"fox"},
			WordLinks: []model.WordLink{{Main: "fox", Related: "quick"}},
		}
		sum, err := repo.SaveExtraction(ctx, ex)
		require.NoError(t, err)
		assert.Equal(t, 1, sum.Words)
		// user 2 has no "quick", so no relation to user 1's word
		assert.Equal(t, 0, sum.WordLinks)
	})

	fox := wordID(t, db, "fox", 1)
	dog := wordID(t, db, "dog", 1)

	phrases, err := repo.PhrasesForWord(ctx, dog)
	require.NoError(t, err)
	require.Len(t, phrases, 2)
	assert.Equal(t, "jump over the lazy dog", phrases[0].Name)
	assert.Equal(t, "the lazy dog", phrases[1].Name)

	pws, err := repo.PhraseWordsForWord(ctx, fox)
	require.NoError(t, err)
	require.Len(t, pws, 1)
	assert.Equal(t, "quick", pws[0].Name)

	p, err := repo.FindPhraseForWord(ctx, dog, phrases[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "the lazy dog", p.Name)

	_, err = repo.FindPhraseForWord(ctx, fox, phrases[1].ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDictionarySQLite_ListWords(t *testing.T) {
	db := newTestDB(t)
	repo := NewDictionarySQLite(db)
	ctx := context.Background()

	_, err := repo.SaveExtraction(ctx, foxExtraction(1))
	require.NoError(t, err)

	res, err := repo.ListWords(ctx, repository.PageQuery{Limit: 3, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
	require.Len(t, res.Items, 3)
	assert.Equal(t, []string{"dog", "fox", "jump"}, []string{res.Items[0].Name, res.Items[1].Name, res.Items[2].Name})

	res, err = repo.ListWords(ctx, repository.PageQuery{Limit: 3, Offset: 3})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "quick", res.Items[1].Name)
}

func TestDictionarySQLite_CreateAndRename(t *testing.T) {
	db := newTestDB(t)
	repo := NewDictionarySQLite(db)
	ctx := context.Background()

	w, err := repo.CreateWord(ctx, 1, "cat")
	require.NoError(t, err)
	assert.NotZero(t, w.ID)
	assert.Equal(t, "cat", w.Name)
	assert.Equal(t, int64(1), w.UserID)

	_, err = repo.CreateWord(ctx, 1, "cat")
	assert.ErrorIs(t, err, repository.ErrConflict)

	// same name for another user is fine
	_, err = repo.CreateWord(ctx, 2, "cat")
	assert.NoError(t, err)

	require.NoError(t, repo.RenameWord(ctx, w.ID, "kitten"))
	got, err := repo.FindWordByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "kitten", got.Name)

	_, err = repo.CreateWord(ctx, 1, "dog")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.RenameWord(ctx, w.ID, "dog"), repository.ErrConflict)

	assert.ErrorIs(t, repo.RenameWord(ctx, 999, "x"), sql.ErrNoRows)

	_, err = repo.FindWordByID(ctx, 999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDictionarySQLite_LinkPhraseWord(t *testing.T) {
	db := newTestDB(t)
	repo := NewDictionarySQLite(db)
	ctx := context.Background()

	cat, err := repo.CreateWord(ctx, 1, "cat")
	require.NoError(t, err)

	pw, err := repo.LinkPhraseWord(ctx, 1, cat.ID, "whisker")
	require.NoError(t, err)
	assert.Equal(t, "whisker", pw.Name)

	// linking again reuses the word and the relation
	again, err := repo.LinkPhraseWord(ctx, 1, cat.ID, "whisker")
	require.NoError(t, err)
	assert.Equal(t, pw.ID, again.ID)

	assert.Equal(t, 2, count(t, db, `SELECT COUNT(*) FROM rel`))
	pws, err := repo.PhraseWordsForWord(ctx, pw.ID)
	require.NoError(t, err)
	require.Len(t, pws, 1)
	assert.Equal(t, cat.ID, pws[0].ID)

	// a word is never related to itself
	_, err = repo.LinkPhraseWord(ctx, 1, cat.ID, "cat")
	require.NoError(t, err)
	assert.Equal(t, 2, count(t, db, `SELECT COUNT(*) FROM rel`))

	require.NoError(t, repo.DeletePhraseWordLink(ctx, cat.ID, pw.ID))
	assert.Equal(t, 0, count(t, db, `SELECT COUNT(*) FROM rel`))
}

func TestDictionarySQLite_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewDictionarySQLite(db)
	ctx := context.Background()

	_, err := repo.SaveExtraction(ctx, foxExtraction(1))
	require.NoError(t, err)

	dog := wordID(t, db, "dog", 1)
	require.NoError(t, repo.DeleteWord(ctx, dog))

	assert.Equal(t, 0, count(t, db, `SELECT COUNT(*) FROM word WHERE id = ?`, dog))
	assert.Equal(t, 0, count(t, db, `SELECT COUNT(*) FROM rel WHERE main_word_id = ? OR phrase_word_id = ?`, dog, dog))
	assert.Equal(t, 0, count(t, db, `SELECT COUNT(*) FROM phrel WHERE word_id = ?`, dog))
	assert.Equal(t, 4, count(t, db, `SELECT COUNT(*) FROM rel`))

	lazy := wordID(t, db, "lazy", 1)
	phrases, err := repo.PhrasesForWord(ctx, lazy)
	require.NoError(t, err)
	require.NotEmpty(t, phrases)

	require.NoError(t, repo.DeletePhrase(ctx, phrases[0].ID))
	assert.Equal(t, 0, count(t, db, `SELECT COUNT(*) FROM phrase WHERE id = ?`, phrases[0].ID))
	assert.Equal(t, 0, count(t, db, `SELECT COUNT(*) FROM phrel WHERE phrase_id = ?`, phrases[0].ID))
}

func TestUserSQLite(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserSQLite(db)
	ctx := context.Background()

	u, err := repo.CreateUser(ctx, "alice", "hash")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "hash", u.PasswordHash)
	assert.False(t, u.CreatedAt.IsZero())

	_, err = repo.CreateUser(ctx, "alice", "other")
	assert.ErrorIs(t, err, repository.ErrConflict)

	byName, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byID, err := repo.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = repo.FindUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
