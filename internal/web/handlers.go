package web

import (
	"net/http"
	"strconv"

	"github.com/hpungsan/wordly/internal/errors"
	"github.com/hpungsan/wordly/internal/ops"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	src      ops.WordSource
	store    ops.HistoryStore
	renderer *Renderer
}

// HandleToday handles GET /today: show the current word.
// The most recently saved word is shown; an empty history fetches a first one.
func (h *Handlers) HandleToday(w http.ResponseWriter, r *http.Request) {
	latest, err := ops.Latest(r.Context(), h.store)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	if latest.Item != nil {
		h.renderToday(w, r, http.StatusOK, TodayPageData{Word: latest.Item})
		return
	}

	h.fetchAndRender(w, r)
}

// HandleNewWord handles POST /today: fetch and record a new word.
func (h *Handlers) HandleNewWord(w http.ResponseWriter, r *http.Request) {
	h.fetchAndRender(w, r)
}

func (h *Handlers) fetchAndRender(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Today(r.Context(), h.src, h.store, ops.TodayInput{})
	if err != nil {
		// The word is still shown; only recording it failed.
		if result == nil || wantsJSON(r) {
			h.renderer.renderError(w, r, err)
			return
		}
		message := err.Error()
		if wErr, ok := errors.As(err); ok {
			message = wErr.Message
		}
		h.renderToday(w, r, http.StatusInternalServerError, TodayPageData{
			Word:      result.Word,
			SaveError: message,
		})
		return
	}

	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, result)
		return
	}
	h.renderToday(w, r, http.StatusOK, TodayPageData{Word: result.Word})
}

func (h *Handlers) renderToday(w http.ResponseWriter, r *http.Request, status int, data TodayPageData) {
	data.PageData = h.renderer.page("Word of the Day", "today")
	data.Card = renderCard(data.Word)
	h.renderer.renderPageStatus(w, r, status, "today", data)
}

// HandleHistory handles GET /history: list saved words.
func (h *Handlers) HandleHistory(w http.ResponseWriter, r *http.Request) {
	result, err := ops.History(r.Context(), h.store, ops.HistoryInput{
		Limit:  parseIntParam(r, "limit", 0),
		Offset: parseIntParam(r, "offset", 0),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "history", HistoryPageData{
		PageData:   h.renderer.page("History", "history"),
		Items:      result.Items,
		Pagination: result.Pagination,
	})
}

// HandleDetail handles GET /history/{word}: view a saved word.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	headword := r.PathValue("word")

	saved, err := ops.Show(r.Context(), h.store, ops.ShowInput{Headword: headword})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "detail", DetailPageData{
		PageData: h.renderer.page(saved.Word, "history"),
		Word:     saved,
		Card:     renderCard(saved),
	})
}

// HandleClear handles POST /history/clear: delete all saved words.
func (h *Handlers) HandleClear(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	if r.FormValue("confirm") != "true" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("confirm parameter must be \"true\""))
		return
	}

	result, err := ops.Clear(r.Context(), h.store)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	// htmx request: redirect via HX-Redirect header
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/history")
		w.WriteHeader(http.StatusOK)
		return
	}

	// JSON request
	if wantsJSON(r) {
		renderJSON(w, http.StatusOK, result)
		return
	}

	// Default: redirect
	http.Redirect(w, r, "/history", http.StatusSeeOther)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
