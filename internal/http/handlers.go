package http

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"splitbook/internal/core"
	"splitbook/internal/services"
)

// summaryResponse is the JSON shape of a balance query. Monetary values are
// decimal units, not cents.
type summaryResponse struct {
	User          string  `json:"user,omitempty"`
	Window        string  `json:"window"`
	TotalSpending float64 `json:"totalSpending"`
	Transactions  int     `json:"transactions"`
	BalanceOwed   float64 `json:"balanceOwed"`
}

func toSummaryResponse(user, window string, sum core.UserSummary) summaryResponse {
	return summaryResponse{
		User:          user,
		Window:        window,
		TotalSpending: sum.TotalSpending.Units(),
		Transactions:  sum.Transactions,
		BalanceOwed:   sum.BalanceOwed.Units(),
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	email := userEmail(r)
	result := s.access.Check(email)
	if !result.Authorized {
		w.WriteHeader(http.StatusForbidden)
		data := struct {
			Email   string
			Message string
		}{Email: result.Email, Message: result.Message}
		if err := s.templates.ExecuteTemplate(w, "unauthorized.html", data); err != nil {
			slog.ErrorContext(r.Context(), "Unauthorized template execution failed", "error", err)
		}
		return
	}

	month := s.monthSummary(r, "")
	data := struct {
		Email   string
		Message string
		Users   []string
		Month   summaryResponse
		Recent  []services.RecordView
	}{
		Email:   result.Email,
		Message: result.Message,
		Users:   s.summaries.Users(r.Context()),
		Month:   month,
		Recent:  s.recent(r, 0),
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleMonthSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	user := sanitizeInput(r.URL.Query().Get("user"))
	writeJSON(w, http.StatusOK, s.monthSummary(r, user))
}

func (s *Server) handleAllTimeSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	user := sanitizeInput(r.URL.Query().Get("user"))

	key := "all|" + user
	if cached, found := s.summaryCache.Get(key); found {
		writeJSON(w, http.StatusOK, cached)
		return
	}
	resp := toSummaryResponse(user, "all", s.summaries.AllTimeSummary(r.Context(), user))
	s.summaryCache.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

// monthSummary resolves the current-month summary through the cache.
func (s *Server) monthSummary(r *http.Request, user string) summaryResponse {
	key := "month|" + user
	if cached, found := s.summaryCache.Get(key); found {
		return cached
	}
	resp := toSummaryResponse(user, "month", s.summaries.MonthlySummary(r.Context(), user))
	s.summaryCache.Set(key, resp)
	return resp
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{
		"users": s.summaries.Users(r.Context()),
	})
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	// A zero limit lets the service apply its configured page size
	limit := parseLimit(r, 0)
	writeJSON(w, http.StatusOK, map[string][]services.RecordView{
		"expenses": s.recent(r, limit),
	})
}

func (s *Server) recent(r *http.Request, limit int) []services.RecordView {
	key := "recent|" + strconv.Itoa(limit)
	if cached, found := s.recentCache.Get(key); found {
		return cached
	}
	views := s.summaries.Recent(r.Context(), limit)
	s.recentCache.Set(key, views)
	return views
}

type createRecordRequest struct {
	Date       string      `json:"date"`
	Item       string      `json:"item"`
	Amount     json.Number `json:"amount"`
	Payer      string      `json:"payer"`
	SplitRatio string      `json:"splitRatio"`
	Category   string      `json:"category"`
	Notes      string      `json:"notes"`
}

// decodeCreateRequest accepts both JSON bodies and classic form posts, so
// the page's form and API clients share one endpoint.
func decodeCreateRequest(w http.ResponseWriter, r *http.Request) (createRecordRequest, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseForm(); err != nil {
			return createRecordRequest{}, err
		}
		return createRecordRequest{
			Date:       r.Form.Get("date"),
			Item:       r.Form.Get("item"),
			Amount:     json.Number(strings.TrimSpace(r.Form.Get("amount"))),
			Payer:      r.Form.Get("payer"),
			SplitRatio: r.Form.Get("splitRatio"),
			Category:   r.Form.Get("category"),
			Notes:      r.Form.Get("notes"),
		}, nil
	}

	var req createRecordRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return createRecordRequest{}, err
	}
	return req, nil
}

func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	req, err := decodeCreateRequest(w, r)
	if err != nil {
		slog.ErrorContext(r.Context(), "Decode record request failed", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	cents, err := core.ParseDecimalToCents(req.Amount.String())
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "invalid amount"})
		return
	}

	rec := core.Record{
		Item:       sanitizeInput(req.Item),
		Amount:     core.Money{Cents: cents},
		Payer:      sanitizeInput(req.Payer),
		SplitRatio: sanitizeInput(req.SplitRatio),
		Category:   sanitizeInput(req.Category),
		Notes:      sanitizeInput(req.Notes),
	}
	if strings.TrimSpace(req.Date) != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "invalid date, want YYYY-MM-DD"})
			return
		}
		rec.Date = d
	} else {
		now := time.Now()
		rec.Date = core.NewDate(now.Year(), int(now.Month()), now.Day())
	}

	ref, err := s.intake.Create(r.Context(), rec)
	if err != nil {
		slog.ErrorContext(r.Context(), "Record create failed", "error", err, "item", rec.Item, "payer", rec.Payer)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": template.HTMLEscapeString(err.Error()),
		})
		return
	}

	// Any cached summary may be stale now
	s.summaryCache.Purge()
	s.recentCache.Purge()

	writeJSON(w, http.StatusCreated, map[string]string{
		"ref":   ref,
		"item":  rec.Item,
		"payer": rec.Payer,
	})
}
