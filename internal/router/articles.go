package router

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/veslaw/casefolio/internal/apperr"
	"github.com/veslaw/casefolio/internal/auth"
	"github.com/veslaw/casefolio/internal/domain"
	"github.com/veslaw/casefolio/internal/richtext"
	"github.com/veslaw/casefolio/internal/search"
	"github.com/veslaw/casefolio/internal/storage"
)

type ArticleRouter struct {
	e         *echo.Echo
	store     storage.ArticleStore
	gate      *auth.Gate
	sanitizer *richtext.Sanitizer
}

func NewArticleRouter(e *echo.Echo, store storage.ArticleStore, gate *auth.Gate) *ArticleRouter {
	return &ArticleRouter{
		e:         e,
		store:     store,
		gate:      gate,
		sanitizer: richtext.NewSanitizer(),
	}
}

func (r *ArticleRouter) Bind() {
	r.e.GET("/api/articles", r.listHandler)
	r.e.GET("/api/articles/search", r.searchHandler)
	r.e.GET("/api/articles/:id", r.getHandler)

	admin := r.gate.Middleware()
	r.e.POST("/api/articles", r.createHandler, admin)
	r.e.PUT("/api/articles/:id", r.updateHandler, admin)
	r.e.DELETE("/api/articles/:id", r.deleteHandler, admin)
}

// ArticleRequest is the writable field set of an article.
type ArticleRequest struct {
	Title        string               `json:"title"`
	Excerpt      string               `json:"excerpt"`
	Intro        string               `json:"intro"`
	Content      string               `json:"content"`
	Keywords     []string             `json:"keywords"`
	RelatedCases []domain.RelatedCase `json:"relatedCases"`
}

func (req *ArticleRequest) toDomain() domain.Article {
	a := domain.Article{
		Title:        strings.TrimSpace(req.Title),
		Excerpt:      req.Excerpt,
		Intro:        req.Intro,
		Content:      req.Content,
		Keywords:     req.Keywords,
		RelatedCases: req.RelatedCases,
	}
	a.Normalize()
	return a
}

func (r *ArticleRouter) listHandler(c echo.Context) error {
	limit := parseLimit(c.QueryParam("limit"), search.ArticleFetchLimit)

	articles, err := r.store.List(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if articles == nil {
		articles = []domain.Article{}
	}

	return c.JSON(http.StatusOK, articles)
}

func (r *ArticleRouter) searchHandler(c echo.Context) error {
	q := search.ArticleQuery{
		Term: c.QueryParam("term"),
		Sort: search.ParseSortKey(c.QueryParam("sort")),
	}

	var err error
	if q.StartDate, err = parseDateParam(c.QueryParam("startDate")); err != nil {
		return err
	}
	if q.EndDate, err = parseDateParam(c.QueryParam("endDate")); err != nil {
		return err
	}

	all, err := r.store.List(c.Request().Context(), search.SearchFetchLimit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, search.Articles(all, q))
}

func (r *ArticleRouter) getHandler(c echo.Context) error {
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

func (r *ArticleRouter) createHandler(c echo.Context) error {
	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid article payload", err)
	}

	doc := req.toDomain()
	if doc.Title == "" {
		return apperr.NewValidation("title is required")
	}
	r.sanitizer.CleanArticle(&doc)

	id, err := r.store.Create(c.Request().Context(), doc)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": id.String()})
}

func (r *ArticleRouter) updateHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid article payload", err)
	}

	doc := req.toDomain()
	if doc.Title == "" {
		return apperr.NewValidation("title is required")
	}
	r.sanitizer.CleanArticle(&doc)

	if err := r.store.Update(c.Request().Context(), id, doc); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *ArticleRouter) deleteHandler(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := r.store.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
