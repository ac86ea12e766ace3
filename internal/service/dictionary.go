package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-shiori/go-readability"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"dictapi/internal/extract"
	"dictapi/internal/model"
	"dictapi/internal/repository"
	"dictapi/internal/storage"
)

// maxPageBytes bounds the HTML read from an imported URL.
const maxPageBytes = 10 << 20

var tracer = otel.Tracer("dictapi/internal/service")

// WordListResult is the service-level DTO for paginated words.
type WordListResult struct {
	Items  []model.Word `json:"data"`
	Total  int          `json:"total"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

// ExtractionResult describes what one submitted text contributed to the dictionary.
type ExtractionResult struct {
	Lemmas     []string                `json:"lemmas"`
	Phrases    []string                `json:"phrases"`
	Added      model.ExtractionSummary `json:"added"`
	ArchiveKey string                  `json:"archive_key,omitempty"`
	// Title and Source are set for texts imported from a URL.
	Title  string `json:"title,omitempty"`
	Source string `json:"source,omitempty"`
}

// DictionaryService defines the use cases of a personal dictionary.
// Mutations take the acting user; reads are public.
type DictionaryService interface {
	// ListWords returns words ordered by name. A non-positive limit selects the configured page size.
	ListWords(ctx context.Context, limit, offset int) (*WordListResult, error)

	// ViewWord returns a word with the phrases containing it and its related words.
	ViewWord(ctx context.Context, id int64) (*model.WordDetail, error)

	// AddFromText extracts lemmas, phrases and relations from text and stores them for the user.
	// When an archive is configured the text is stored first and removed again if persistence fails.
	AddFromText(ctx context.Context, userID int64, text string) (*ExtractionResult, error)

	// AddFromURL fetches an article, keeps its readable text and runs AddFromText on it.
	AddFromURL(ctx context.Context, userID int64, rawURL string) (*ExtractionResult, error)

	// AddWord stores the first lemma of word. An existing word is a conflict.
	AddWord(ctx context.Context, userID int64, word string) (*model.Word, error)

	// EditWord renames a word as given, without lemmatization.
	EditWord(ctx context.Context, userID, id int64, name string) (*model.Word, error)

	// AddPhraseWord relates the first lemma of word to the word id in both directions.
	AddPhraseWord(ctx context.Context, userID, id int64, word string) (*model.Word, error)

	DeleteWord(ctx context.Context, userID, id int64) error

	DeletePhrase(ctx context.Context, userID, wordID, phraseID int64) error

	DeletePhraseWord(ctx context.Context, userID, wordID, phraseWordID int64) error
}

// Options tune a DictionaryService.
type Options struct {
	// EnforceOwnership rejects mutations of words owned by another user.
	EnforceOwnership bool
	MaxTextBytes     int
	PageSize         int
	FetchTimeout     time.Duration
	// HTTPClient fetches URLs. Defaults to a traced client bounded by FetchTimeout that refuses non-public addresses.
	HTTPClient *http.Client
	// Registerer receives the extraction metrics. Nil skips registration.
	Registerer prometheus.Registerer
}

type dictionaryService struct {
	ex    *extract.Extractor
	repo  repository.DictionaryRepository
	store storage.Storage
	opts  Options

	client    *http.Client
	extracted *prometheus.CounterVec
}

// NewDictionaryService constructs a new DictionaryService. store may be nil to disable archiving.
func NewDictionaryService(ex *extract.Extractor, repo repository.DictionaryRepository, store storage.Storage, opts Options) (DictionaryService, error) {
	if opts.PageSize <= 0 {
		opts.PageSize = 100
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 15 * time.Second
	}
	client := opts.HTTPClient
	if client == nil {
		client = newFetchClient(opts.FetchTimeout)
	}

	s := &dictionaryService{
		ex:     ex,
		repo:   repo,
		store:  store,
		opts:   opts,
		client: client,
		extracted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dictionary_extracted_terms_total",
				Help: "Total number of lemmas and phrases extracted from submitted texts.",
			},
			[]string{"kind"},
		),
	}
	if opts.Registerer != nil {
		if err := opts.Registerer.Register(s.extracted); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *dictionaryService) ListWords(ctx context.Context, limit, offset int) (*WordListResult, error) {
	if limit <= 0 {
		limit = s.opts.PageSize
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.ListWords(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &WordListResult{Items: res.Items, Total: res.Total, Limit: limit, Offset: offset}, nil
}

func (s *dictionaryService) ViewWord(ctx context.Context, id int64) (*model.WordDetail, error) {
	w, err := s.word(ctx, id)
	if err != nil {
		return nil, err
	}
	phrases, err := s.repo.PhrasesForWord(ctx, id)
	if err != nil {
		return nil, err
	}
	related, err := s.repo.PhraseWordsForWord(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.WordDetail{Word: *w, Phrases: phrases, PhraseWords: related}, nil
}

func (s *dictionaryService) AddFromText(ctx context.Context, userID int64, text string) (res *ExtractionResult, err error) {
	ctx, span := tracer.Start(ctx, "DictionaryService.AddFromText", trace.WithAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int("text.bytes", len(text)),
	))
	defer func() { endSpan(span, err) }()

	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}
	if s.opts.MaxTextBytes > 0 && len(text) > s.opts.MaxTextBytes {
		return nil, ErrTextTooLarge
	}

	result := s.ex.Extract(text)
	span.SetAttributes(
		attribute.Int("extract.lemmas", len(result.Lemmas)),
		attribute.Int("extract.phrases", len(result.Phrases)),
	)
	s.extracted.WithLabelValues("lemma").Add(float64(len(result.Lemmas)))
	s.extracted.WithLabelValues("phrase").Add(float64(len(result.Phrases)))

	ex := buildExtraction(userID, result)

	if s.store != nil {
		key := storage.TextKey(userID)
		if _, err := s.store.Put(ctx, key, strings.NewReader(text), storage.PutObjectOptions{
			Size:        int64(len(text)),
			ContentType: storage.TextContentType,
			Metadata:    map[string]string{"user-id": strconv.FormatInt(userID, 10)},
		}); err != nil {
			return nil, fmt.Errorf("archive text: %w", err)
		}
		ex.ArchiveKey = key
	}

	sum, err := s.repo.SaveExtraction(ctx, ex)
	if err != nil {
		if ex.ArchiveKey != "" {
			// Rollback: the archived text has no dictionary entries.
			if delErr := s.store.Delete(ctx, ex.ArchiveKey); delErr != nil {
				return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
			}
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	return &ExtractionResult{
		Lemmas:     result.Lemmas,
		Phrases:    result.Phrases,
		Added:      *sum,
		ArchiveKey: ex.ArchiveKey,
	}, nil
}

// buildExtraction turns an extraction result into the rows to persist for userID.
func buildExtraction(userID int64, r extract.Result) *model.Extraction {
	ex := &model.Extraction{
		UserID:  userID,
		Words:   r.Lemmas,
		Phrases: r.Phrases,
	}
	for _, p := range r.WordPairs() {
		ex.WordLinks = append(ex.WordLinks, model.WordLink{Main: p.Main, Related: p.Related})
	}
	for _, m := range r.PhraseMembers() {
		ex.PhraseLinks = append(ex.PhraseLinks, model.PhraseLink{Phrase: m.Phrase, Word: m.Word})
	}
	return ex
}

func (s *dictionaryService) AddFromURL(ctx context.Context, userID int64, rawURL string) (res *ExtractionResult, err error) {
	ctx, span := tracer.Start(ctx, "DictionaryService.AddFromURL", trace.WithAttributes(
		attribute.Int64("user.id", userID),
		attribute.String("url.full", rawURL),
	))
	defer func() { endSpan(span, err) }()

	u, err := url.ParseRequestURI(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidURL
	}

	body, err := s.fetch(ctx, u)
	if err != nil {
		return nil, err
	}

	article, err := readability.FromReader(bytes.NewReader(body), u)
	if err != nil {
		return nil, fmt.Errorf("%w: extract article: %v", ErrFetchFailed, err)
	}

	res, err = s.AddFromText(ctx, userID, article.TextContent)
	if err != nil {
		return nil, err
	}
	res.Title = article.Title
	res.Source = u.String()
	return res, nil
}

// fetch downloads u, rejecting non-200 responses and bodies over maxPageBytes.
func (s *dictionaryService) fetch(ctx context.Context, u *url.URL) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, ErrInvalidURL
	}
	req.Header.Set("User-Agent", "dictapi/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, errNonPublicAddress) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}
	if resp.ContentLength > maxPageBytes {
		return nil, fmt.Errorf("%w: content length %d exceeds %d bytes", ErrFetchFailed, resp.ContentLength, maxPageBytes)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFetchFailed, err)
	}
	if len(body) > maxPageBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrFetchFailed, maxPageBytes)
	}
	return body, nil
}

var errNonPublicAddress = errors.New("address is not publicly routable")

// newFetchClient builds the traced client used for URL imports. Every connection,
// redirects included, is checked after name resolution so users cannot reach
// loopback, link-local or private addresses through the server.
func newFetchClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{Timeout: timeout, Control: publicAddressOnly}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	// A proxy would be the only address the dialer sees.
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(transport),
	}
}

func publicAddressOnly(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	ip, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %s", errNonPublicAddress, host)
	}
	ip = ip.Unmap()
	if !ip.IsGlobalUnicast() || ip.IsPrivate() {
		return fmt.Errorf("%w: %s", errNonPublicAddress, ip)
	}
	return nil
}

func (s *dictionaryService) AddWord(ctx context.Context, userID int64, word string) (*model.Word, error) {
	lemma, err := s.firstLemma(word)
	if err != nil {
		return nil, err
	}
	w, err := s.repo.CreateWord(ctx, userID, lemma)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return w, nil
}

func (s *dictionaryService) EditWord(ctx context.Context, userID, id int64, name string) (*model.Word, error) {
	w, err := s.ownedWord(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrWordRequired
	}
	if err := s.repo.RenameWord(ctx, id, name); err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return nil, ErrConflict
		case errors.Is(err, sql.ErrNoRows):
			return nil, &NotFoundError{Entity: EntityWord, ID: id}
		}
		return nil, err
	}
	w.Name = name
	return w, nil
}

func (s *dictionaryService) AddPhraseWord(ctx context.Context, userID, id int64, word string) (*model.Word, error) {
	if _, err := s.ownedWord(ctx, userID, id); err != nil {
		return nil, err
	}
	lemma, err := s.firstLemma(word)
	if err != nil {
		return nil, err
	}
	return s.repo.LinkPhraseWord(ctx, userID, id, lemma)
}

func (s *dictionaryService) DeleteWord(ctx context.Context, userID, id int64) error {
	if _, err := s.ownedWord(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.DeleteWord(ctx, id)
}

func (s *dictionaryService) DeletePhrase(ctx context.Context, userID, wordID, phraseID int64) error {
	if _, err := s.ownedWord(ctx, userID, wordID); err != nil {
		return err
	}
	if _, err := s.repo.FindPhraseForWord(ctx, wordID, phraseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &NotFoundError{Entity: EntityPhrase, ID: phraseID}
		}
		return err
	}
	return s.repo.DeletePhrase(ctx, phraseID)
}

func (s *dictionaryService) DeletePhraseWord(ctx context.Context, userID, wordID, phraseWordID int64) error {
	if _, err := s.ownedWord(ctx, userID, wordID); err != nil {
		return err
	}
	if _, err := s.word(ctx, phraseWordID); err != nil {
		return err
	}
	return s.repo.DeletePhraseWordLink(ctx, wordID, phraseWordID)
}

// firstLemma validates word and returns its first acceptable lemma.
func (s *dictionaryService) firstLemma(word string) (string, error) {
	if strings.TrimSpace(word) == "" {
		return "", ErrWordRequired
	}
	lemmas := s.ex.Lemmas(word)
	if len(lemmas) == 0 {
		return "", ErrNoLemma
	}
	return lemmas[0], nil
}

func (s *dictionaryService) word(ctx context.Context, id int64) (*model.Word, error) {
	w, err := s.repo.FindWordByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: EntityWord, ID: id}
		}
		return nil, err
	}
	return w, nil
}

// ownedWord loads a word the user may modify.
func (s *dictionaryService) ownedWord(ctx context.Context, userID, id int64) (*model.Word, error) {
	w, err := s.word(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.opts.EnforceOwnership && w.UserID != userID {
		return nil, ErrForbidden
	}
	return w, nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
