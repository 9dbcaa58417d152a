package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veslaw/casefolio/internal/apperr"
	"github.com/veslaw/casefolio/internal/domain"
)

type ArticleStore struct {
	db *pgxpool.Pool
}

func NewArticleStore(pool *ConnectionPool) *ArticleStore {
	return &ArticleStore{db: pool.conn}
}

const articleColumns = `id, title, excerpt, intro, content, keywords, related_cases,
		published_at, updated_at`

func (s *ArticleStore) List(ctx context.Context, limit int) ([]domain.Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM articles
		ORDER BY published_at DESC
		LIMIT $1
	`, articleColumns)

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}

	return articles, nil
}

func (s *ArticleStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM articles WHERE id = $1`, articleColumns)

	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return domain.Article{}, fmt.Errorf("failed to get article: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Article{}, fmt.Errorf("failed to get article: %w", err)
		}
		return domain.Article{}, apperr.NewNotFound("article")
	}

	return scanArticle(rows)
}

func (s *ArticleStore) Create(ctx context.Context, a domain.Article) (uuid.UUID, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	now := time.Now().UnixMilli()
	a.PublishedAt = now
	a.UpdatedAt = now
	a.Normalize()

	relatedJSON, err := json.Marshal(a.RelatedCases)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal related cases: %w", err)
	}

	cmd := `
		INSERT INTO articles (id, title, excerpt, intro, content, keywords, related_cases,
			published_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	var id uuid.UUID
	err = s.db.QueryRow(ctx, cmd,
		a.ID, a.Title, a.Excerpt, a.Intro, a.Content, a.Keywords, relatedJSON,
		a.PublishedAt, a.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert article: %w", err)
	}

	return id, nil
}

func (s *ArticleStore) Update(ctx context.Context, id uuid.UUID, a domain.Article) error {
	a.Normalize()

	relatedJSON, err := json.Marshal(a.RelatedCases)
	if err != nil {
		return fmt.Errorf("failed to marshal related cases: %w", err)
	}

	cmd := `
		UPDATE articles
		SET title = $2, excerpt = $3, intro = $4, content = $5,
			keywords = $6, related_cases = $7, updated_at = $8
		WHERE id = $1
	`
	tag, err := s.db.Exec(ctx, cmd,
		id, a.Title, a.Excerpt, a.Intro, a.Content,
		a.Keywords, relatedJSON, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("article")
	}

	return nil
}

func (s *ArticleStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("article")
	}
	return nil
}

func scanArticle(rows pgx.Rows) (domain.Article, error) {
	var (
		a           domain.Article
		relatedJSON []byte
	)
	if err := rows.Scan(
		&a.ID, &a.Title, &a.Excerpt, &a.Intro, &a.Content, &a.Keywords, &relatedJSON,
		&a.PublishedAt, &a.UpdatedAt,
	); err != nil {
		return domain.Article{}, fmt.Errorf("failed to scan article: %w", err)
	}

	if err := json.Unmarshal(relatedJSON, &a.RelatedCases); err != nil {
		return domain.Article{}, fmt.Errorf("failed to unmarshal related cases: %w", err)
	}

	a.Normalize()
	return a, nil
}
