package repository

import (
	"context"
	"encoding/json"

	"resume-builder/internal/domain"

	"github.com/jackc/pgx/v4/pgxpool"
)

// ExportsRepo records generated documents. A nil pool turns every call into
// a no-op so the service runs without a database.
type ExportsRepo struct {
	pool *pgxpool.Pool
}

func NewExportsRepo(pool *pgxpool.Pool) *ExportsRepo {
	return &ExportsRepo{pool: pool}
}

func (r *ExportsRepo) Enabled() bool { return r != nil && r.pool != nil }

func (r *ExportsRepo) Save(ctx context.Context, rec *domain.ExportRecord) error {
	if !r.Enabled() {
		return nil
	}

	metaB, err := json.Marshal(rec.Metadata)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `INSERT INTO resume_exports (id, file_name, location, file_size, status, full_name, metadata, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (id) DO UPDATE SET location = EXCLUDED.location, file_size = EXCLUDED.file_size, status = EXCLUDED.status, metadata = EXCLUDED.metadata`,
		rec.ID, rec.FileName, rec.Location, rec.FileSize, rec.Status, rec.FullName, metaB, rec.CreatedAt)
	return err
}
