package handler

import (
	"quizgrade/internal/domain"
	"quizgrade/internal/dto"
	"quizgrade/internal/middleware"
	"quizgrade/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PaperHandler serves papers, drafts, grading and reports.
type PaperHandler struct {
	paperService service.PaperService
	draftService service.DraftService
}

// NewPaperHandler creates a new instance of PaperHandler
func NewPaperHandler(paperService service.PaperService, draftService service.DraftService) *PaperHandler {
	return &PaperHandler{
		paperService: paperService,
		draftService: draftService,
	}
}

// CreatePaper godoc
// @Summary Import a paper document
// @Description Validates and stores a new paper; requires the admin key
// @Tags papers
// @Accept json
// @Produce json
// @Param paper body dto.CreatePaperRequest true "Paper document"
// @Success 201 {object} dto.CreatePaperResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/papers [post]
func (h *PaperHandler) CreatePaper(c *fiber.Ctx) error {
	var req dto.CreatePaperRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid paper document body")
	}
	resp, err := h.paperService.CreatePaper(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetPaper godoc
// @Summary Fetch a paper for taking
// @Description Returns the paper without answers or grading rules
// @Tags papers
// @Produce json
// @Param id path string true "Paper ID"
// @Success 200 {object} dto.PaperResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/papers/{id} [get]
func (h *PaperHandler) GetPaper(c *fiber.Ctx) error {
	resp, err := h.paperService.GetPaper(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeletePaper godoc
// @Summary Remove a paper
// @Tags papers
// @Param id path string true "Paper ID"
// @Success 204
// @Router /api/papers/{id} [delete]
func (h *PaperHandler) DeletePaper(c *fiber.Ctx) error {
	if err := h.paperService.DeletePaper(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SaveDraft godoc
// @Summary Save an in-progress answer sheet
// @Tags drafts
// @Accept json
// @Param id path string true "Paper ID"
// @Param sheet body dto.AnswerSheetRequest true "Answer sheet"
// @Success 204
// @Security BearerAuth
// @Router /api/papers/{id}/draft [put]
func (h *PaperHandler) SaveDraft(c *fiber.Ctx) error {
	var req dto.AnswerSheetRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid answer sheet body")
	}
	err := h.draftService.SaveDraft(c.Context(), c.Params("id"), middleware.SessionID(c), req.ToDomain())
	if err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetDraft godoc
// @Summary Load the saved draft for this session
// @Tags drafts
// @Produce json
// @Param id path string true "Paper ID"
// @Success 200 {object} domain.AnswerSheet
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/papers/{id}/draft [get]
func (h *PaperHandler) GetDraft(c *fiber.Ctx) error {
	sheet, err := h.draftService.GetDraft(c.Context(), c.Params("id"), middleware.SessionID(c))
	if err != nil {
		return err
	}
	if sheet == nil {
		return domain.NewNotFoundError("no draft saved for this paper")
	}
	return c.JSON(sheet)
}

// Grade godoc
// @Summary Grade a submitted answer sheet
// @Description Scores the sheet, persists the submission and clears the draft
// @Tags grading
// @Accept json
// @Produce json
// @Param id path string true "Paper ID"
// @Param sheet body dto.AnswerSheetRequest true "Answer sheet"
// @Success 200 {object} dto.GradeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/papers/{id}/grade [post]
func (h *PaperHandler) Grade(c *fiber.Ctx) error {
	var req dto.AnswerSheetRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid answer sheet body")
	}
	resp, err := h.paperService.Grade(c.Context(), c.Params("id"), middleware.SessionID(c), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetReport godoc
// @Summary Export a plaintext report for a submission
// @Tags grading
// @Produce plain
// @Param id path string true "Submission ID"
// @Success 200 {string} string
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/submissions/{id}/report [get]
func (h *PaperHandler) GetReport(c *fiber.Ctx) error {
	report, err := h.paperService.GetReport(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(report)
}
