package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/andriskumpel/combate-desinformacao/internal/domain"
)

const verificationColumns = `id, content, content_type, source_url, status,
	analysis_result, classification_result, created_at, updated_at`

type verificationRow struct {
	ID                   string         `db:"id"`
	Content              string         `db:"content"`
	ContentType          string         `db:"content_type"`
	SourceURL            sql.NullString `db:"source_url"`
	Status               string         `db:"status"`
	AnalysisResult       []byte         `db:"analysis_result"`
	ClassificationResult []byte         `db:"classification_result"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
}

func (r *verificationRow) toDomain() (*domain.Verification, error) {
	v := &domain.Verification{
		ID:          r.ID,
		Content:     r.Content,
		ContentType: domain.ContentType(r.ContentType),
		Status:      domain.Status(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.SourceURL.Valid {
		v.SourceURL = &r.SourceURL.String
	}
	if len(r.AnalysisResult) > 0 {
		v.AnalysisResult = new(domain.Analysis)
		if err := json.Unmarshal(r.AnalysisResult, v.AnalysisResult); err != nil {
			return nil, fmt.Errorf("decode analysis_result: %w", err)
		}
	}
	if len(r.ClassificationResult) > 0 {
		v.ClassificationResult = new(domain.Classification)
		if err := json.Unmarshal(r.ClassificationResult, v.ClassificationResult); err != nil {
			return nil, fmt.Errorf("decode classification_result: %w", err)
		}
	}
	return v, nil
}

type VerificationStore struct {
	db *sqlx.DB
}

func NewVerificationStore(db *sqlx.DB) *VerificationStore {
	return &VerificationStore{db: db}
}

func (s *VerificationStore) Create(ctx context.Context, v *domain.Verification) (*domain.Verification, error) {
	analysis, err := jsonParam(v.AnalysisResult)
	if err != nil {
		return nil, err
	}
	classification, err := jsonParam(v.ClassificationResult)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO verifications (
			id, content, content_type, source_url, status,
			analysis_result, classification_result, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		RETURNING ` + verificationColumns

	var row verificationRow
	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query,
		v.ID,
		v.Content,
		string(v.ContentType),
		v.SourceURL,
		string(v.Status),
		analysis,
		classification,
		v.CreatedAt,
		v.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: insert verification: %w", domain.ErrStore, err)
	}

	return row.toDomain()
}

// Get returns nil, nil when no record has the given id. Inside a transaction
// the row stays locked until commit.
func (s *VerificationStore) Get(ctx context.Context, id string) (*domain.Verification, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	query := `SELECT ` + verificationColumns + ` FROM verifications WHERE id = $1`
	if GetTxFromContext(ctx) != nil {
		query += ` FOR UPDATE`
	}

	var row verificationRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get verification: %w", domain.ErrStore, err)
	}

	return row.toDomain()
}

// Update applies the present fields of u and refreshes updated_at. It returns
// nil, nil when no record has the given id.
func (s *VerificationStore) Update(ctx context.Context, id string, u domain.VerificationUpdate) (*domain.Verification, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now().UTC()}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if u.Status != nil {
		add("status", string(*u.Status))
	}
	if u.AnalysisResult != nil {
		analysis, err := jsonParam(u.AnalysisResult)
		if err != nil {
			return nil, err
		}
		add("analysis_result", analysis)
	}
	if u.ClassificationResult != nil {
		classification, err := jsonParam(u.ClassificationResult)
		if err != nil {
			return nil, err
		}
		add("classification_result", classification)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE verifications SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), verificationColumns)

	var row verificationRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: update verification: %w", domain.ErrStore, err)
	}

	return row.toDomain()
}

func (s *VerificationStore) List(ctx context.Context, offset, limit int) ([]*domain.Verification, error) {
	query := `SELECT ` + verificationColumns + `
		FROM verifications
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2`

	return s.selectMany(ctx, "list verifications", query, limit, offset)
}

// ListPending returns up to limit pending records created before the given time, oldest first.
func (s *VerificationStore) ListPending(ctx context.Context, before time.Time, limit int) ([]*domain.Verification, error) {
	query := `SELECT ` + verificationColumns + `
		FROM verifications
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at
		LIMIT $3`

	return s.selectMany(ctx, "list pending verifications", query, string(domain.StatusPending), before, limit)
}

func (s *VerificationStore) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM verifications WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("%w: delete verification: %w", domain.ErrStore, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: delete verification: %w", domain.ErrStore, err)
	}
	return n > 0, nil
}

func (s *VerificationStore) selectMany(ctx context.Context, op, query string, args ...interface{}) ([]*domain.Verification, error) {
	var rows []verificationRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrStore, op, err)
	}

	result := make([]*domain.Verification, 0, len(rows))
	for i := range rows {
		v, err := rows[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrStore, op, err)
		}
		result = append(result, v)
	}
	return result, nil
}

// jsonParam encodes v for a JSONB parameter. lib/pq sends []byte as bytea,
// so the document goes over the wire as a string.
func jsonParam[T any](v *T) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return string(b), nil
}
