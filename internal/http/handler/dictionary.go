package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"dictapi/internal/http/middleware"
	"dictapi/internal/service"
)

// textForm is accepted as JSON, urlencoded or multipart form.
type textForm struct {
	Text string `json:"text" form:"text"`
}

type urlForm struct {
	URL string `json:"url" form:"url"`
}

type wordForm struct {
	Word string `json:"word" form:"word"`
}

type phraseWordForm struct {
	PhraseWord string `json:"phrase_word" form:"phrase_word"`
}

// formField describes one input of a form descriptor.
type formField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// formDescriptor tells a client how to submit a mutation.
type formDescriptor struct {
	Action string      `json:"action"`
	Method string      `json:"method"`
	Fields []formField `json:"fields"`
}

// mutationResponse reports a successful mutation and where a browser would go next.
type mutationResponse struct {
	Redirect string `json:"redirect"`
	Data     any    `json:"data,omitempty"`
}

func done(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(mutationResponse{Redirect: "/", Data: data})
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

func invalidID(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
}

// ListWords lists dictionary words ordered by name.
// @Summary List words
// @Tags dictionary
// @Produce json
// @Param limit query int false "page size (default from config)"
// @Param offset query int false "offset"
// @Success 200 {object} service.WordListResult
// @Failure 400 {object} errorPayload
// @Router / [get]
func ListWords(svc service.DictionaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.ListWords(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ViewWord returns a word with its phrases and phrase words.
// It also serves the edit page data.
// @Summary View word
// @Tags dictionary
// @Produce json
// @Param id path int true "word id"
// @Success 200 {object} model.WordDetail
// @Failure 404 {object} errorPayload
// @Router /{id}/ [get]
func ViewWord(svc service.DictionaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return invalidID(c)
		}
		d, err := svc.ViewWord(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

// AddTextForm describes the add_text form.
func AddTextForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(formDescriptor{
			Action: "/add_text",
			Method: fiber.MethodPost,
			Fields: []formField{{Name: "text", Type: "textarea", Required: true}},
		})
	}
}

// AddText extracts words and phrases from a pasted text.
// @Summary Add text
// @Tags dictionary
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param text formData string true "free text"
// @Success 201 {object} mutationResponse
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 413 {object} errorPayload
// @Router /add_text [post]
func AddText(svc service.DictionaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f textForm
		if err := c.BodyParser(&f); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "bad request")
		}
		res, err := svc.AddFromText(c.UserContext(), middleware.UserID(c), f.Text)
		if err != nil {
			return writeServiceError(c, err)
		}
		return done(c, fiber.StatusCreated, res)
	}
}

// AddURL imports the readable text of a web page.
// @Summary Add text from URL
// @Tags dictionary
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param url formData string true "article URL"
// @Success 201 {object} mutationResponse
// @Failure 400 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Router /add_url [post]
func AddURL(svc service.DictionaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f urlForm
		if err := c.BodyParser(&f); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "bad request")
		}
		res, err := svc.AddFromURL(c.UserContext(), middleware.UserID(c), f.URL)
		if err != nil {
			return writeServiceError(c, err)
		}
		return done(c, fiber.StatusCreated, res)
	}
}

// AddWordForm describes the add_word form.
func AddWordForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(formDescriptor{
			Action: "/add_word",
			Method: fiber.MethodPost,
			Fields: []formField{{Name: "word", Type: "text", Required: true}},
		})
	}
}

// AddWord adds the lemma of a single word.
// @Summary Add word
// @Tags dictionary
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param word formData string true "word"
// @Success 201 {object} mutationResponse
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /add_word [post]
func AddWord(svc service.DictionaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f wordForm
		if err := c.BodyParser(&f); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "bad request")
		}
		w, err := svc.AddWord(c.UserContext(), middleware.UserID(c), f.Word)
		if err != nil {
			return writeServiceError(c, err)
		}
		return done(c, fiber.StatusCreated, w)
	}
}

// EditWord renames a word.
// @Summary Rename word
// @Tags dictionary
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param id path int true "word id"
// @Param word formData string true "new name"
// @Success 200 {object} mutationResponse
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /{id}/edit [post]
func EditWord(svc service.DictionaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return invalidID(c)
		}
		var f wordForm
		if err := c.BodyParser(&f); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "bad request")
		}
		w, err := svc.EditWord(c.UserContext(), middleware.UserID(c), id, f.Word)
		if err != nil {
			return writeServiceError(c, err)
		}
		return done(c, fiber.StatusOK, w)
	}
}

// AddPhraseWordForm returns the word a phrase word will be linked to.
func AddPhraseWordForm(svc service.DictionaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return invalidID(c)
		}
		d, err := svc.ViewWord(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"word": d.Word,
			"form": formDescriptor{
				Action: "/" + strconv.FormatInt(id, 10) + "/add_phrase_word",
				Method: fiber.MethodPost,
				Fields: []formField{{Name: "phrase_word", Type: "text", Required: true}},
			},
		})
	}
}

// AddPhraseWord relates another word to this one in both directions.
// @Summary Link phrase word
// @Tags dictionary
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param id path int true "word id"
// @Param phrase_word formData string true "related word"
// @Success 200 {object} mutationResponse
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /{id}/add_phrase_word [post]
func AddPhraseWord(svc service.DictionaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return invalidID(c)
		}
		var f phraseWordForm
		if err := c.BodyParser(&f); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "bad request")
		}
		w, err := svc.AddPhraseWord(c.UserContext(), middleware.UserID(c), id, f.PhraseWord)
		if err != nil {
			return writeServiceError(c, err)
		}
		return done(c, fiber.StatusOK, w)
	}
}

// DeleteWord removes a word with its relations.
// @Summary Delete word
// @Tags dictionary
// @Produce json
// @Param id path int true "word id"
// @Success 200 {object} mutationResponse
// @Failure 404 {object} errorPayload
// @Router /{id}/delete [post]
func DeleteWord(svc service.DictionaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return invalidID(c)
		}
		if err := svc.DeleteWord(c.UserContext(), middleware.UserID(c), id); err != nil {
			return writeServiceError(c, err)
		}
		return done(c, fiber.StatusOK, nil)
	}
}

// DeletePhrase removes a phrase linked to the word.
// @Summary Delete phrase
// @Tags dictionary
// @Produce json
// @Param id path int true "word id"
// @Param phrase_id path int true "phrase id"
// @Success 200 {object} mutationResponse
// @Failure 404 {object} errorPayload
// @Router /{id}/phrases/{phrase_id}/delete [post]
func DeletePhrase(svc service.DictionaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return invalidID(c)
		}
		phraseID, err := paramID(c, "phrase_id")
		if err != nil {
			return invalidID(c)
		}
		if err := svc.DeletePhrase(c.UserContext(), middleware.UserID(c), id, phraseID); err != nil {
			return writeServiceError(c, err)
		}
		return done(c, fiber.StatusOK, nil)
	}
}

// DeletePhraseWord removes the relation between two words.
// @Summary Delete phrase word link
// @Tags dictionary
// @Produce json
// @Param id path int true "word id"
// @Param phrase_word_id path int true "related word id"
// @Success 200 {object} mutationResponse
// @Failure 404 {object} errorPayload
// @Router /{id}/phrase_words/{phrase_word_id}/delete [post]
func DeletePhraseWord(svc service.DictionaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return invalidID(c)
		}
		pwID, err := paramID(c, "phrase_word_id")
		if err != nil {
			return invalidID(c)
		}
		if err := svc.DeletePhraseWord(c.UserContext(), middleware.UserID(c), id, pwID); err != nil {
			return writeServiceError(c, err)
		}
		return done(c, fiber.StatusOK, nil)
	}
}
