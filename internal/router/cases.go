package router

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/veslaw/casefolio/internal/apperr"
	"github.com/veslaw/casefolio/internal/auth"
	"github.com/veslaw/casefolio/internal/domain"
	"github.com/veslaw/casefolio/internal/richtext"
	"github.com/veslaw/casefolio/internal/search"
	"github.com/veslaw/casefolio/internal/storage"
)

type CaseRouter struct {
	e         *echo.Echo
	store     storage.CaseStore
	gate      *auth.Gate
	sanitizer *richtext.Sanitizer
}

func NewCaseRouter(e *echo.Echo, store storage.CaseStore, gate *auth.Gate) *CaseRouter {
	return &CaseRouter{
		e:         e,
		store:     store,
		gate:      gate,
		sanitizer: richtext.NewSanitizer(),
	}
}

func (r *CaseRouter) Bind() {
	r.e.GET("/api/cases", r.listHandler)
	r.e.GET("/api/cases/search", r.searchHandler)
	r.e.GET("/api/cases/years", r.yearsHandler)
	r.e.GET("/api/cases/courts", r.courtsHandler)
	r.e.GET("/api/cases/:id", r.getHandler)

	admin := r.gate.Middleware()
	r.e.POST("/api/cases", r.createHandler, admin)
	r.e.PUT("/api/cases/:id", r.updateHandler, admin)
	r.e.DELETE("/api/cases/:id", r.deleteHandler, admin)
	r.e.PUT("/api/cases/:id/timeline", r.timelineHandler, admin)
}

// CaseRequest is the writable field set of a case: everything except the
// identifier and the server-managed timestamps.
type CaseRequest struct {
	Title          string                 `json:"title"`
	CaseNumber     string                 `json:"caseNumber"`
	Court          string                 `json:"court"`
	ConclusionDate string                 `json:"conclusionDate"`
	OriginalLink   string                 `json:"originalLink"`
	Summary        string                 `json:"summary"`
	Comments       string                 `json:"comments"`
	Keywords       []string               `json:"keywords"`
	RelatedCases   []domain.RelatedCase   `json:"relatedCases"`
	Timeline       []domain.TimelineEvent `json:"timeline"`
}

func (req *CaseRequest) toDomain() domain.Case {
	c := domain.Case{
		Title:          strings.TrimSpace(req.Title),
		CaseNumber:     req.CaseNumber,
		Court:          req.Court,
		ConclusionDate: req.ConclusionDate,
		OriginalLink:   req.OriginalLink,
		Summary:        req.Summary,
		Comments:       req.Comments,
		Keywords:       req.Keywords,
		RelatedCases:   req.RelatedCases,
		Timeline:       req.Timeline,
	}
	c.Normalize()
	return c
}

func (r *CaseRouter) listHandler(c echo.Context) error {
	limit := parseLimit(c.QueryParam("limit"), search.SearchFetchLimit)

	cases, err := r.store.List(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if cases == nil {
		cases = []domain.Case{}
	}

	return c.JSON(http.StatusOK, cases)
}

func (r *CaseRouter) searchHandler(c echo.Context) error {
	q := search.CaseQuery{
		Term:  c.QueryParam("term"),
		Court: c.QueryParam("court"),
		Sort:  search.ParseSortKey(c.QueryParam("sort")),
	}

	if yearParam := c.QueryParam("year"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			return apperr.NewValidationWrap("year must be a number", err)
		}
		q.Year = year
	}

	var err error
	if q.StartDate, err = parseDateParam(c.QueryParam("startDate")); err != nil {
		return err
	}
	if q.EndDate, err = parseDateParam(c.QueryParam("endDate")); err != nil {
		return err
	}

	// Bounded fetch: the pipeline only ever sees a capped prefix.
	all, err := r.store.List(c.Request().Context(), search.SearchFetchLimit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, search.Cases(all, q))
}

func (r *CaseRouter) getHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	found, err := r.store.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, found)
}

func (r *CaseRouter) createHandler(c echo.Context) error {
	var req CaseRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid case payload", err)
	}

	doc := req.toDomain()
	if doc.Title == "" {
		return apperr.NewValidation("title is required")
	}
	r.sanitizer.CleanCase(&doc)
	doc.Timeline = search.SortTimeline(doc.Timeline)

	id, err := r.store.Create(c.Request().Context(), doc)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": id.String()})
}

func (r *CaseRouter) updateHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	var req CaseRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid case payload", err)
	}

	doc := req.toDomain()
	if doc.Title == "" {
		return apperr.NewValidation("title is required")
	}
	r.sanitizer.CleanCase(&doc)
	doc.Timeline = search.SortTimeline(doc.Timeline)

	if err := r.store.Update(c.Request().Context(), id, doc); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *CaseRouter) deleteHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := r.store.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// timelineHandler replaces the whole event list. Events are persisted
// newest-first; the stored order is the display order.
func (r *CaseRouter) timelineHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	var events []domain.TimelineEvent
	if err := c.Bind(&events); err != nil {
		return apperr.NewValidationWrap("invalid timeline payload", err)
	}
	for _, ev := range events {
		if strings.TrimSpace(ev.Date) == "" || strings.TrimSpace(ev.Title) == "" {
			return apperr.NewValidation("timeline events need a date and a title")
		}
	}

	r.sanitizer.CleanTimeline(events)
	sorted := search.SortTimeline(events)

	if err := r.store.ReplaceTimeline(c.Request().Context(), id, sorted); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sorted)
}

func (r *CaseRouter) yearsHandler(c echo.Context) error {
	years, err := r.store.DistinctYears(c.Request().Context())
	if err != nil {
		return err
	}
	if years == nil {
		years = []int{}
	}
	return c.JSON(http.StatusOK, years)
}

func (r *CaseRouter) courtsHandler(c echo.Context) error {
	courts, err := r.store.DistinctCourts(c.Request().Context())
	if err != nil {
		return err
	}
	if courts == nil {
		courts = []string{}
	}
	return c.JSON(http.StatusOK, courts)
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.NewValidationWrap("invalid id", err)
	}
	return id, nil
}

func parseLimit(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return fallback
	}
	if limit > search.SearchFetchLimit {
		return search.SearchFetchLimit
	}
	return limit
}

// parseDateParam turns an ISO date into inclusive millisecond bounds.
func parseDateParam(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return 0, apperr.NewValidationWrap("dates must look like YYYY-MM-DD", err)
	}
	return t.UnixMilli(), nil
}
