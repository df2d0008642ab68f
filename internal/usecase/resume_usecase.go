package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/repository/store"
	"go-resume-backend/pkg/apperror"
)

type resumeUsecase struct {
	store    domain.ResumeStore
	validate *validator.Validate
}

func NewResumeUsecase(resumeStore domain.ResumeStore, validate *validator.Validate) domain.ResumeUsecase {
	return &resumeUsecase{
		store:    resumeStore,
		validate: validate,
	}
}

func (uc *resumeUsecase) ListResumes(_ context.Context) []domain.Resume {
	return uc.store.ListResumes()
}

// CreateResume builds a resume from the default template. An empty title
// falls back to the "我的简历 <id>" naming the seed data uses.
func (uc *resumeUsecase) CreateResume(ctx context.Context, title string) (*domain.Resume, error) {
	resume := store.NewDefaultResume(store.ShortID(), strings.TrimSpace(title), store.Today())
	if err := uc.store.AddResume(ctx, resume); err != nil {
		return nil, err
	}
	return &resume, nil
}

func (uc *resumeUsecase) GetResume(_ context.Context, id string) (*domain.Resume, error) {
	return uc.store.GetResumeByID(id)
}

func (uc *resumeUsecase) UpdateResume(ctx context.Context, id string, patch domain.ResumePatch) (*domain.Resume, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, apperror.BadRequest("title must not be empty")
	}
	return uc.store.UpdateResume(ctx, id, patch)
}

func (uc *resumeUsecase) DeleteResume(ctx context.Context, id string) error {
	return uc.store.DeleteResume(ctx, id)
}

func (uc *resumeUsecase) UpdateSectionContent(ctx context.Context, resumeID, sectionID string, content json.RawMessage) error {
	// Content is opaque rich text; it only has to be valid JSON
	if !json.Valid(content) {
		return apperror.BadRequest("section content is not valid JSON")
	}
	return uc.store.UpdateResumeSection(ctx, resumeID, sectionID, content)
}

func (uc *resumeUsecase) UpdateSectionTitle(ctx context.Context, resumeID, sectionID, title string) error {
	if strings.TrimSpace(title) == "" {
		return apperror.BadRequest("section title must not be empty")
	}
	return uc.store.UpdateSectionTitle(ctx, resumeID, sectionID, title)
}

func (uc *resumeUsecase) AddSection(ctx context.Context, resumeID string, section domain.ResumeSection) (*domain.ResumeSection, error) {
	if section.ID == "" {
		section.ID = store.ShortID()
	}
	if section.Content == nil {
		section.Content = json.RawMessage(`""`)
	}
	if err := uc.validate.Struct(section); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if err := uc.store.AddResumeSection(ctx, resumeID, section); err != nil {
		return nil, err
	}
	return &section, nil
}

func (uc *resumeUsecase) RemoveSection(ctx context.Context, resumeID, sectionID string) error {
	return uc.store.RemoveResumeSection(ctx, resumeID, sectionID)
}

func (uc *resumeUsecase) ReorderSections(ctx context.Context, resumeID string, orderedIDs []string) error {
	return uc.store.ReorderResumeSections(ctx, resumeID, orderedIDs)
}

func (uc *resumeUsecase) UpdateConfig(ctx context.Context, resumeID string, patch domain.ResumeConfigPatch) error {
	return uc.store.UpdateResumeConfig(ctx, resumeID, patch)
}

func (uc *resumeUsecase) GetAIConfig(_ context.Context) domain.AIConfig {
	return uc.store.GetAIConfig()
}

func (uc *resumeUsecase) UpdateAIConfig(ctx context.Context, patch domain.AIConfigPatch) (domain.AIConfig, error) {
	if err := uc.validate.Struct(patch); err != nil {
		return domain.AIConfig{}, apperror.BadRequest(err.Error())
	}
	return uc.store.UpdateAIConfig(ctx, patch)
}

func (uc *resumeUsecase) GetTheme(_ context.Context) string {
	return uc.store.GetTheme()
}

func (uc *resumeUsecase) SetTheme(ctx context.Context, theme string) error {
	if strings.TrimSpace(theme) == "" {
		return apperror.BadRequest("theme must not be empty")
	}
	return uc.store.SetTheme(ctx, theme)
}
