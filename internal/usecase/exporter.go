package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"resume-builder/internal/adapter/storage"
	"resume-builder/internal/domain"
	"resume-builder/internal/logger"
	"resume-builder/internal/model"
	"resume-builder/internal/render"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html []byte) ([]byte, error)
}

type ExportsRepo interface {
	Save(ctx context.Context, rec *domain.ExportRecord) error
}

// Result describes a document that was written successfully.
type Result struct {
	ID       uuid.UUID `json:"id"`
	FileName string    `json:"fileName"`
	Location string    `json:"location"`
	Size     int       `json:"size"`
}

// Exporter renders snapshots to PDF and hands the bytes to storage.
type Exporter struct {
	renderer Renderer
	storage  storage.Writer
	repo     ExportsRepo
	attempts int
	backoff  time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

type Option func(*Exporter)

// WithAttempts sets how many times printing is tried before giving up.
func WithAttempts(n int) Option {
	return func(e *Exporter) {
		if n > 0 {
			e.attempts = n
		}
	}
}

// WithBackoff sets the base delay between attempts; it doubles each retry.
func WithBackoff(d time.Duration) Option {
	return func(e *Exporter) { e.backoff = d }
}

func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

func WithExportsRepo(r ExportsRepo) Option {
	return func(e *Exporter) { e.repo = r }
}

func NewExporter(r Renderer, w storage.Writer, opts ...Option) *Exporter {
	e := &Exporter{
		renderer: r,
		storage:  w,
		attempts: 3,
		backoff:  time.Second,
		now:      time.Now,
		log:      logger.Component("exporter"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FileName returns the output name for a document generated at t.
func FileName(t time.Time) string {
	return "Resume_" + strconv.FormatInt(t.UnixMilli(), 10) + ".pdf"
}

// HTML renders the snapshot to the printable page used for both preview and PDF.
func HTML(snap model.Snapshot) ([]byte, error) {
	return render.RenderHTML(render.Render(snap))
}

// Export renders snap, prints it to PDF and writes it to storage. The
// snapshot is only read.
func (e *Exporter) Export(ctx context.Context, snap model.Snapshot) (*Result, error) {
	createdAt := e.now()
	name := FileName(createdAt)
	log := e.log.With().Str("file", name).Logger()

	html, err := HTML(snap)
	if err != nil {
		return nil, newRenderError(name, "layout", err)
	}

	pdf, err := e.print(ctx, log, html)
	if err != nil {
		e.record(ctx, log, &domain.ExportRecord{
			ID: uuid.New(), FileName: name, Status: domain.ExportStatusFailed, FullName: snap.FullName,
			Metadata: map[string]interface{}{"error": err.Error()}, CreatedAt: createdAt,
		})
		return nil, newRenderError(name, "print", err)
	}

	location, err := e.storage.Write(ctx, name, pdf)
	if err != nil {
		log.Error().Err(err).Msg("storage write failed")
		e.record(ctx, log, &domain.ExportRecord{
			ID: uuid.New(), FileName: name, FileSize: len(pdf), Status: domain.ExportStatusFailed, FullName: snap.FullName,
			Metadata: map[string]interface{}{"error": err.Error()}, CreatedAt: createdAt,
		})
		return nil, newStorageError(name, err)
	}

	res := &Result{ID: uuid.New(), FileName: name, Location: location, Size: len(pdf)}
	e.record(ctx, log, &domain.ExportRecord{
		ID: res.ID, FileName: name, Location: location, FileSize: len(pdf), Status: domain.ExportStatusCompleted,
		FullName: snap.FullName, Metadata: sectionCounts(snap), CreatedAt: createdAt,
	})
	log.Info().Str("location", location).Int("bytes", len(pdf)).Msg("resume exported")
	return res, nil
}

// print produces PDF with retry and validation
func (e *Exporter) print(ctx context.Context, log zerolog.Logger, html []byte) ([]byte, error) {
	var lastErr error
	for i := 0; i < e.attempts; i++ {
		pdf, err := e.renderer.RenderHTMLToPDF(ctx, html)
		if err == nil {
			if bytes.HasPrefix(pdf, []byte("%PDF")) {
				return pdf, nil
			}
			err = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", i+1).Msg("render attempt failed")

		if i < e.attempts-1 {
			select {
			case <-time.After(e.delay(i)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("rendering failed after %d attempts: %w", e.attempts, lastErr)
}

// maxBackoffShift caps the doubling so the wait cannot overflow.
const maxBackoffShift = 6

// delay is the wait after failed attempt i (zero based).
func (e *Exporter) delay(i int) time.Duration {
	if i > maxBackoffShift {
		i = maxBackoffShift
	}
	return e.backoff << i
}

// record persists the export outcome; failures are logged and otherwise ignored.
func (e *Exporter) record(ctx context.Context, log zerolog.Logger, rec *domain.ExportRecord) {
	if e.repo == nil {
		return
	}
	if err := e.repo.Save(ctx, rec); err != nil {
		log.Warn().Err(err).Msg("unable to record export (non-fatal)")
	}
}

func sectionCounts(s model.Snapshot) map[string]interface{} {
	return map[string]interface{}{
		"education":  len(s.Education),
		"experience": len(s.Experience),
		"skills":     len(s.Skills),
	}
}
