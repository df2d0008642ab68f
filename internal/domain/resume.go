package domain

import (
	"context"
	"encoding/json"
	"errors"
)

type SectionType string

const (
	SectionBasic      SectionType = "basic"
	SectionSummary    SectionType = "summary"
	SectionExperience SectionType = "experience"
	SectionProject    SectionType = "project"
	SectionEducation  SectionType = "education"
	SectionSkills     SectionType = "skills"
	SectionCustom     SectionType = "custom"
)

type LayoutConfig struct {
	LineHeight           float64 `json:"lineHeight"`
	BaseFontSize         int     `json:"baseFontSize"`
	TitleFontSize        int     `json:"titleFontSize"`
	SectionTitleFontSize int     `json:"sectionTitleFontSize"`
	PageMargin           int     `json:"pageMargin"`
	SectionMargin        int     `json:"sectionMargin"`
	ParagraphMargin      int     `json:"paragraphMargin"`
}

type ResumeConfig struct {
	ThemeColor string       `json:"themeColor"`
	Template   string       `json:"template"`
	Language   string       `json:"language"`
	Layout     LayoutConfig `json:"layout"`
}

// ResumeSection is a named, independently toggleable block of resume
// content. Content is opaque to the backend: rich-text HTML for most section
// types, a structured object for the basic-info section.
type ResumeSection struct {
	ID        string          `json:"id"`
	Type      SectionType     `json:"type" validate:"required,oneof=basic summary experience project education skills custom"`
	Title     string          `json:"title" validate:"required"`
	IsVisible bool            `json:"isVisible"`
	Content   json.RawMessage `json:"content"`
}

type Resume struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Date     string          `json:"date"`
	Config   ResumeConfig    `json:"config"`
	Sections []ResumeSection `json:"sections"`
}

// AIConfig is the user's provider preference. One instance per store;
// outlives individual resumes.
type AIConfig struct {
	Provider ProviderID `json:"provider"`
	Model    string     `json:"model,omitempty"`
}

// Patch types carry partial updates; nil fields are left untouched
// (last-writer-wins, no conflict detection).

type AIConfigPatch struct {
	Provider *ProviderID `json:"provider,omitempty" validate:"omitempty,oneof=doubao openai deepseek moonshot"`
	Model    *string     `json:"model,omitempty"`
}

type ResumePatch struct {
	Title  *string       `json:"title,omitempty"`
	Date   *string       `json:"date,omitempty"`
	Config *ResumeConfig `json:"config,omitempty"`
}

type ResumeConfigPatch struct {
	ThemeColor *string       `json:"themeColor,omitempty"`
	Template   *string       `json:"template,omitempty"`
	Language   *string       `json:"language,omitempty"`
	Layout     *LayoutConfig `json:"layout,omitempty"`
}

var (
	ErrResumeNotFound   = errors.New("resume not found")
	ErrSectionNotFound  = errors.New("section not found")
	ErrDuplicateSection = errors.New("section id already exists in resume")
	ErrBadSectionOrder  = errors.New("section order is not a permutation of existing sections")
)

// ResumeStore holds the working set of resume documents, the AI provider
// preference, and the theme record. Every mutation is flushed to the
// persistence backend before it returns; a restart observes the latest
// committed state.
type ResumeStore interface {
	GetAIConfig() AIConfig
	UpdateAIConfig(ctx context.Context, patch AIConfigPatch) (AIConfig, error)

	ListResumes() []Resume
	GetResumeByID(id string) (*Resume, error)
	AddResume(ctx context.Context, resume Resume) error
	UpdateResume(ctx context.Context, id string, patch ResumePatch) (*Resume, error)
	DeleteResume(ctx context.Context, id string) error

	UpdateResumeSection(ctx context.Context, resumeID, sectionID string, content json.RawMessage) error
	UpdateSectionTitle(ctx context.Context, resumeID, sectionID, title string) error
	AddResumeSection(ctx context.Context, resumeID string, section ResumeSection) error
	RemoveResumeSection(ctx context.Context, resumeID, sectionID string) error
	ReorderResumeSections(ctx context.Context, resumeID string, orderedIDs []string) error
	UpdateResumeConfig(ctx context.Context, resumeID string, patch ResumeConfigPatch) error

	GetTheme() string
	SetTheme(ctx context.Context, theme string) error
}

type ResumeUsecase interface {
	ListResumes(ctx context.Context) []Resume
	CreateResume(ctx context.Context, title string) (*Resume, error)
	GetResume(ctx context.Context, id string) (*Resume, error)
	UpdateResume(ctx context.Context, id string, patch ResumePatch) (*Resume, error)
	DeleteResume(ctx context.Context, id string) error

	UpdateSectionContent(ctx context.Context, resumeID, sectionID string, content json.RawMessage) error
	UpdateSectionTitle(ctx context.Context, resumeID, sectionID, title string) error
	AddSection(ctx context.Context, resumeID string, section ResumeSection) (*ResumeSection, error)
	RemoveSection(ctx context.Context, resumeID, sectionID string) error
	ReorderSections(ctx context.Context, resumeID string, orderedIDs []string) error
	UpdateConfig(ctx context.Context, resumeID string, patch ResumeConfigPatch) error

	GetAIConfig(ctx context.Context) AIConfig
	UpdateAIConfig(ctx context.Context, patch AIConfigPatch) (AIConfig, error)
	GetTheme(ctx context.Context) string
	SetTheme(ctx context.Context, theme string) error
}
