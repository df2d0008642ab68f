package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(api *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := api.Group("/resumes")
	{
		resumes.GET("", handler.List)
		resumes.POST("", handler.Create)
		resumes.GET("/:id", handler.Get)
		resumes.PUT("/:id", handler.Update)
		resumes.DELETE("/:id", handler.Delete)

		resumes.PUT("/:id/config", handler.UpdateConfig)
		resumes.PUT("/:id/section-order", handler.Reorder)
		resumes.POST("/:id/sections", handler.AddSection)
		resumes.PUT("/:id/sections/:sectionId", handler.UpdateSectionContent)
		resumes.PUT("/:id/sections/:sectionId/title", handler.UpdateSectionTitle)
		resumes.DELETE("/:id/sections/:sectionId", handler.RemoveSection)
	}
}

// storeError maps store/usecase failures onto client-facing app errors.
func storeError(err error) *apperror.AppError {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, domain.ErrResumeNotFound):
		return apperror.NotFound("Resume not found")
	case errors.Is(err, domain.ErrSectionNotFound):
		return apperror.NotFound("Section not found")
	case errors.Is(err, domain.ErrDuplicateSection), errors.Is(err, domain.ErrBadSectionOrder):
		return apperror.BadRequest(err.Error())
	default:
		return apperror.Internal(err)
	}
}

// List godoc
// @Summary      List resumes
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /resumes [get]
func (h *ResumeHandler) List(c *gin.Context) {
	resumes := h.resumeUC.ListResumes(c.Request.Context())
	response.Success(c, http.StatusOK, "Resumes retrieved", resumes)
}

type CreateResumeRequest struct {
	Title string `json:"title"`
}

// Create godoc
// @Summary      Create a resume from the default template
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        resume  body      CreateResumeRequest  true  "Resume JSON"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /resumes [post]
func (h *ResumeHandler) Create(c *gin.Context) {
	var req CreateResumeRequest
	// an empty body creates a default-titled resume
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	resume, err := h.resumeUC.CreateResume(c.Request.Context(), req.Title)
	if err != nil {
		c.Error(storeError(err))
		return
	}
	response.Success(c, http.StatusCreated, "Resume created", resume)
}

// Get godoc
// @Summary      Get a resume by id
// @Tags         resumes
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [get]
func (h *ResumeHandler) Get(c *gin.Context) {
	resume, err := h.resumeUC.GetResume(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(storeError(err))
		return
	}
	response.Success(c, http.StatusOK, "Resume retrieved", resume)
}

// Update godoc
// @Summary      Update resume fields
// @Description  Merges the provided fields into the resume; omitted fields are untouched.
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        id     path      string             true  "Resume ID"
// @Param        patch  body      domain.ResumePatch true  "Fields to update"
// @Success      200    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /resumes/{id} [put]
func (h *ResumeHandler) Update(c *gin.Context) {
	var patch domain.ResumePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	resume, err := h.resumeUC.UpdateResume(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		c.Error(storeError(err))
		return
	}
	response.Success(c, http.StatusOK, "Resume updated", resume)
}

// Delete godoc
// @Summary      Delete a resume
// @Tags         resumes
// @Produce      json
// @Param        id   path      string  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [delete]
func (h *ResumeHandler) Delete(c *gin.Context) {
	if err := h.resumeUC.DeleteResume(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(storeError(err))
		return
	}
	response.Success(c, http.StatusOK, "Resume deleted", nil)
}

func (h *ResumeHandler) UpdateConfig(c *gin.Context) {
	var patch domain.ResumeConfigPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.resumeUC.UpdateConfig(c.Request.Context(), c.Param("id"), patch); err != nil {
		c.Error(storeError(err))
		return
	}
	response.Success(c, http.StatusOK, "Resume config updated", nil)
}

type ReorderSectionsRequest struct {
	Order []string `json:"order" binding:"required"`
}

func (h *ResumeHandler) Reorder(c *gin.Context) {
	var req ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.resumeUC.ReorderSections(c.Request.Context(), c.Param("id"), req.Order); err != nil {
		c.Error(storeError(err))
		return
	}
	response.Success(c, http.StatusOK, "Sections reordered", nil)
}

func (h *ResumeHandler) AddSection(c *gin.Context) {
	var section domain.ResumeSection
	if err := c.ShouldBindJSON(&section); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	created, err := h.resumeUC.AddSection(c.Request.Context(), c.Param("id"), section)
	if err != nil {
		c.Error(storeError(err))
		return
	}
	response.Success(c, http.StatusCreated, "Section added", created)
}

type UpdateSectionContentRequest struct {
	Content json.RawMessage `json:"content" binding:"required"`
}

func (h *ResumeHandler) UpdateSectionContent(c *gin.Context) {
	var req UpdateSectionContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	err := h.resumeUC.UpdateSectionContent(c.Request.Context(), c.Param("id"), c.Param("sectionId"), req.Content)
	if err != nil {
		c.Error(storeError(err))
		return
	}
	response.Success(c, http.StatusOK, "Section content updated", nil)
}

type UpdateSectionTitleRequest struct {
	Title string `json:"title" binding:"required"`
}

func (h *ResumeHandler) UpdateSectionTitle(c *gin.Context) {
	var req UpdateSectionTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	err := h.resumeUC.UpdateSectionTitle(c.Request.Context(), c.Param("id"), c.Param("sectionId"), req.Title)
	if err != nil {
		c.Error(storeError(err))
		return
	}
	response.Success(c, http.StatusOK, "Section title updated", nil)
}

func (h *ResumeHandler) RemoveSection(c *gin.Context) {
	err := h.resumeUC.RemoveSection(c.Request.Context(), c.Param("id"), c.Param("sectionId"))
	if err != nil {
		c.Error(storeError(err))
		return
	}
	response.Success(c, http.StatusOK, "Section removed", nil)
}
