package http

import (
	"context"
	"errors"
	"time"

	"resume-builder/internal/logger"
	"resume-builder/internal/model"
	"resume-builder/internal/store"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Exporter is the generate-PDF action.
type Exporter interface {
	Export(ctx context.Context, snap model.Snapshot) (*usecase.Result, error)
}

// Handler exposes the form sections, the preview and the generate action.
// The store is the only state it touches; validation here is advisory and a
// rejected request leaves the store unchanged.
type Handler struct {
	store         *store.Store
	exporter      Exporter
	exportTimeout time.Duration
	log           zerolog.Logger
}

func NewHandler(s *store.Store, e Exporter, exportTimeout time.Duration) *Handler {
	if exportTimeout <= 0 {
		exportTimeout = 2 * time.Minute
	}
	return &Handler{store: s, exporter: e, exportTimeout: exportTimeout, log: logger.Component("http")}
}

// Register mounts the resume routes on r.
func (h *Handler) Register(r fiber.Router) {
	g := r.Group("/resume")
	g.Get("/", h.GetSnapshot)
	g.Put("/", h.ImportSnapshot)
	g.Put("/personal", h.SetPersonalInfo)
	g.Post("/education", h.AddEducation)
	g.Post("/experience", h.AddExperience)
	g.Post("/skills", h.AddSkill)
	g.Get("/preview", h.Preview)
	g.Post("/pdf", h.GeneratePDF)
}

type personalReq struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Summary  string `json:"summary"`
}

type skillReq struct {
	Skill string `json:"skill"`
}

func invalid(c *fiber.Ctx, err error) error {
	var verrs model.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input", "fields": verrs})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func badPayload(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
}

func (h *Handler) GetSnapshot(c *fiber.Ctx) error {
	return c.JSON(h.store.Snapshot())
}

// ImportSnapshot replaces the whole resume with a schema-validated document.
func (h *Handler) ImportSnapshot(c *fiber.Ctx) error {
	snap, err := model.DecodeSnapshot(c.Body())
	if err != nil {
		return invalid(c, err)
	}
	h.store.Replace(snap)
	return c.JSON(fiber.Map{"message": "Resume imported", "resume": h.store.Snapshot()})
}

func (h *Handler) SetPersonalInfo(c *fiber.Ctx) error {
	var req personalReq
	if err := c.BodyParser(&req); err != nil {
		return badPayload(c)
	}
	if err := model.ValidatePersonal(req.FullName, req.Email); err != nil {
		return invalid(c, err)
	}
	h.store.SetPersonalInfo(req.FullName, req.Email, req.Phone, req.Summary)
	return c.JSON(fiber.Map{
		"message":       "Personal information saved",
		"summaryLength": len([]rune(req.Summary)),
		"summaryLimit":  model.SummaryHint,
	})
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	var req model.EducationEntry
	if err := c.BodyParser(&req); err != nil {
		return badPayload(c)
	}
	if err := model.ValidateEducation(req); err != nil {
		return invalid(c, err)
	}
	h.store.AddEducation(req)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Education added"})
}

func (h *Handler) AddExperience(c *fiber.Ctx) error {
	var req model.ExperienceEntry
	if err := c.BodyParser(&req); err != nil {
		return badPayload(c)
	}
	if err := model.ValidateExperience(req); err != nil {
		return invalid(c, err)
	}
	h.store.AddExperience(req)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Experience added"})
}

func (h *Handler) AddSkill(c *fiber.Ctx) error {
	var req skillReq
	if err := c.BodyParser(&req); err != nil {
		return badPayload(c)
	}
	if err := model.ValidateSkill(req.Skill); err != nil {
		return invalid(c, err)
	}
	h.store.AddSkill(req.Skill)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Skill added"})
}

// Preview returns the same page the PDF is printed from.
func (h *Handler) Preview(c *fiber.Ctx) error {
	page, err := usecase.HTML(h.store.Snapshot())
	if err != nil {
		h.log.Error().Err(err).Msg("preview failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error rendering preview"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(page)
}

// GeneratePDF exports the current snapshot. The export is bounded by the
// request context, so a shutdown or dropped client cancels the print.
func (h *Handler) GeneratePDF(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.exportTimeout)
	defer cancel()

	res, err := h.exporter.Export(ctx, h.store.Snapshot())
	if err != nil {
		h.log.Error().Err(err).Msg("generate pdf failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error generating PDF"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "PDF saved to " + res.Location,
		"export":  res,
	})
}
