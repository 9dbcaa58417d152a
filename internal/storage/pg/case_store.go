package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veslaw/casefolio/internal/apperr"
	"github.com/veslaw/casefolio/internal/domain"
)

type CaseStore struct {
	db *pgxpool.Pool
}

func NewCaseStore(pool *ConnectionPool) *CaseStore {
	return &CaseStore{db: pool.conn}
}

const caseColumns = `id, title, case_number, court, conclusion_date, original_link,
		summary, comments, keywords, related_cases, timeline,
		published_at, created_at, updated_at`

func (s *CaseStore) List(ctx context.Context, limit int) ([]domain.Case, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM cases
		ORDER BY published_at DESC
		LIMIT $1
	`, caseColumns)

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	defer rows.Close()

	var cases []domain.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating case rows: %w", err)
	}

	return cases, nil
}

func (s *CaseStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Case, error) {
	query := fmt.Sprintf(`SELECT %s FROM cases WHERE id = $1`, caseColumns)

	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		return domain.Case{}, fmt.Errorf("failed to get case: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Case{}, fmt.Errorf("failed to get case: %w", err)
		}
		return domain.Case{}, apperr.NewNotFound("case")
	}

	return scanCase(rows)
}

func (s *CaseStore) Create(ctx context.Context, c domain.Case) (uuid.UUID, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UnixMilli()
	c.PublishedAt = now
	c.CreatedAt = now
	c.UpdatedAt = now
	c.Normalize()

	relatedJSON, timelineJSON, err := marshalCaseLists(c)
	if err != nil {
		return uuid.Nil, err
	}

	cmd := `
		INSERT INTO cases (id, title, case_number, court, conclusion_date, original_link,
			summary, comments, keywords, related_cases, timeline,
			published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id;
	`
	var id uuid.UUID
	err = s.db.QueryRow(ctx, cmd,
		c.ID, c.Title, c.CaseNumber, c.Court, c.ConclusionDate, c.OriginalLink,
		c.Summary, c.Comments, c.Keywords, relatedJSON, timelineJSON,
		c.PublishedAt, c.CreatedAt, c.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert case: %w", err)
	}

	return id, nil
}

func (s *CaseStore) Update(ctx context.Context, id uuid.UUID, c domain.Case) error {
	c.Normalize()

	relatedJSON, timelineJSON, err := marshalCaseLists(c)
	if err != nil {
		return err
	}

	cmd := `
		UPDATE cases
		SET title = $2, case_number = $3, court = $4, conclusion_date = $5,
			original_link = $6, summary = $7, comments = $8, keywords = $9,
			related_cases = $10, timeline = $11, updated_at = $12
		WHERE id = $1
	`
	tag, err := s.db.Exec(ctx, cmd,
		id, c.Title, c.CaseNumber, c.Court, c.ConclusionDate,
		c.OriginalLink, c.Summary, c.Comments, c.Keywords,
		relatedJSON, timelineJSON, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to update case: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("case")
	}

	return nil
}

func (s *CaseStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM cases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete case: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("case")
	}
	return nil
}

func (s *CaseStore) ReplaceTimeline(ctx context.Context, id uuid.UUID, events []domain.TimelineEvent) error {
	if events == nil {
		events = []domain.TimelineEvent{}
	}
	timelineJSON, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to marshal timeline: %w", err)
	}

	cmd := `UPDATE cases SET timeline = $2, updated_at = $3 WHERE id = $1`
	tag, err := s.db.Exec(ctx, cmd, id, timelineJSON, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to update timeline: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NewNotFound("case")
	}

	return nil
}

// DistinctYears parses years in the application rather than SQL so that the
// same lenient date handling applies here and in the year facet.
func (s *CaseStore) DistinctYears(ctx context.Context) ([]int, error) {
	rows, err := s.db.Query(ctx, `SELECT conclusion_date FROM cases`)
	if err != nil {
		return nil, fmt.Errorf("failed to scan conclusion dates: %w", err)
	}
	defer rows.Close()

	seen := make(map[int]struct{})
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan conclusion date: %w", err)
		}
		c := domain.Case{ConclusionDate: date}
		if y, ok := c.ConclusionYear(); ok {
			seen[y] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conclusion dates: %w", err)
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

func (s *CaseStore) DistinctCourts(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `SELECT DISTINCT court FROM cases WHERE court <> '' ORDER BY court`)
	if err != nil {
		return nil, fmt.Errorf("failed to scan courts: %w", err)
	}
	defer rows.Close()

	courts := make([]string, 0)
	for rows.Next() {
		var court string
		if err := rows.Scan(&court); err != nil {
			return nil, fmt.Errorf("failed to scan court: %w", err)
		}
		courts = append(courts, court)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courts: %w", err)
	}

	return courts, nil
}

func marshalCaseLists(c domain.Case) ([]byte, []byte, error) {
	relatedJSON, err := json.Marshal(c.RelatedCases)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal related cases: %w", err)
	}
	timelineJSON, err := json.Marshal(c.Timeline)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal timeline: %w", err)
	}
	return relatedJSON, timelineJSON, nil
}

func scanCase(rows pgx.Rows) (domain.Case, error) {
	var (
		c            domain.Case
		relatedJSON  []byte
		timelineJSON []byte
	)
	if err := rows.Scan(
		&c.ID, &c.Title, &c.CaseNumber, &c.Court, &c.ConclusionDate, &c.OriginalLink,
		&c.Summary, &c.Comments, &c.Keywords, &relatedJSON, &timelineJSON,
		&c.PublishedAt, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return domain.Case{}, fmt.Errorf("failed to scan case: %w", err)
	}

	if err := json.Unmarshal(relatedJSON, &c.RelatedCases); err != nil {
		return domain.Case{}, fmt.Errorf("failed to unmarshal related cases: %w", err)
	}
	if err := json.Unmarshal(timelineJSON, &c.Timeline); err != nil {
		return domain.Case{}, fmt.Errorf("failed to unmarshal timeline: %w", err)
	}

	c.Normalize()
	return c, nil
}
