package store_test

import (
	"context"
	"encoding/json"
	"testing"

	"go-resume-backend/internal/domain"
	"go-resume-backend/internal/repository/store"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(context.Background(), store.NewMemoryBackend(), "ep-test")
	assert.NoError(t, err)
	return s
}

func TestSeedState(t *testing.T) {
	s := newTestStore(t)

	resumes := s.ListResumes()
	assert.Len(t, resumes, 1, "exactly one resume at initialization")
	assert.Len(t, resumes[0].Sections, 5)
	assert.Equal(t, "basic", resumes[0].Sections[0].ID)

	cfg := s.GetAIConfig()
	assert.Equal(t, domain.ProviderDoubao, cfg.Provider)
	assert.Equal(t, "ep-test", cfg.Model)

	assert.Equal(t, "dark", s.GetTheme())
}

func TestUpdateAIConfigPartialMerge(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	openai := domain.ProviderOpenAI
	merged, err := s.UpdateAIConfig(ctx, domain.AIConfigPatch{Provider: &openai})
	assert.NoError(t, err)

	assert.Equal(t, domain.ProviderOpenAI, merged.Provider)
	assert.Equal(t, "ep-test", merged.Model, "unset fields stay untouched")

	got := s.GetAIConfig()
	assert.Equal(t, merged, got)
}

func TestResumeCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := store.NewDefaultResume("abc123", "", "2026/8/28")
	assert.NoError(t, s.AddResume(ctx, r))
	assert.Equal(t, "我的简历 abc123", r.Title)

	t.Run("duplicate id rejected", func(t *testing.T) {
		assert.Error(t, s.AddResume(ctx, store.NewDefaultResume("abc123", "", "2026/8/28")))
	})

	t.Run("partial update", func(t *testing.T) {
		title := "后端简历"
		updated, err := s.UpdateResume(ctx, "abc123", domain.ResumePatch{Title: &title})
		assert.NoError(t, err)
		assert.Equal(t, "后端简历", updated.Title)
		assert.Equal(t, "2026/8/28", updated.Date)
	})

	t.Run("get unknown id", func(t *testing.T) {
		_, err := s.GetResumeByID("nope")
		assert.ErrorIs(t, err, domain.ErrResumeNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		assert.NoError(t, s.DeleteResume(ctx, "abc123"))
		_, err := s.GetResumeByID("abc123")
		assert.ErrorIs(t, err, domain.ErrResumeNotFound)
		assert.ErrorIs(t, s.DeleteResume(ctx, "abc123"), domain.ErrResumeNotFound)
	})
}

func TestSectionOperations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	resumeID := s.ListResumes()[0].ID

	t.Run("update content replaces whole section content", func(t *testing.T) {
		content := json.RawMessage(`"<p>polished</p>"`)
		assert.NoError(t, s.UpdateResumeSection(ctx, resumeID, "skills", content))
		r, err := s.GetResumeByID(resumeID)
		assert.NoError(t, err)
		assert.JSONEq(t, `"<p>polished</p>"`, string(r.Sections[1].Content))
	})

	t.Run("retitle", func(t *testing.T) {
		assert.NoError(t, s.UpdateSectionTitle(ctx, resumeID, "skills", "核心技能"))
		r, _ := s.GetResumeByID(resumeID)
		assert.Equal(t, "核心技能", r.Sections[1].Title)
	})

	t.Run("add and remove", func(t *testing.T) {
		sec := domain.ResumeSection{ID: "awards", Type: domain.SectionCustom, Title: "获奖经历", IsVisible: true, Content: json.RawMessage(`""`)}
		assert.NoError(t, s.AddResumeSection(ctx, resumeID, sec))
		assert.ErrorIs(t, s.AddResumeSection(ctx, resumeID, sec), domain.ErrDuplicateSection)
		assert.NoError(t, s.RemoveResumeSection(ctx, resumeID, "awards"))
		assert.ErrorIs(t, s.RemoveResumeSection(ctx, resumeID, "awards"), domain.ErrSectionNotFound)
	})

	t.Run("unknown section", func(t *testing.T) {
		err := s.UpdateResumeSection(ctx, resumeID, "ghost", json.RawMessage(`""`))
		assert.ErrorIs(t, err, domain.ErrSectionNotFound)
	})
}

func TestReorderSections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	resumeID := s.ListResumes()[0].ID

	t.Run("valid permutation", func(t *testing.T) {
		order := []string{"education", "project", "experience", "skills", "basic"}
		assert.NoError(t, s.ReorderResumeSections(ctx, resumeID, order))
		r, _ := s.GetResumeByID(resumeID)
		got := []string{}
		for _, sec := range r.Sections {
			got = append(got, sec.ID)
		}
		assert.Equal(t, order, got)
	})

	t.Run("wrong length", func(t *testing.T) {
		err := s.ReorderResumeSections(ctx, resumeID, []string{"basic"})
		assert.ErrorIs(t, err, domain.ErrBadSectionOrder)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := s.ReorderResumeSections(ctx, resumeID, []string{"basic", "skills", "experience", "project", "ghost"})
		assert.ErrorIs(t, err, domain.ErrBadSectionOrder)
	})

	t.Run("duplicated id", func(t *testing.T) {
		err := s.ReorderResumeSections(ctx, resumeID, []string{"basic", "basic", "experience", "project", "education"})
		assert.ErrorIs(t, err, domain.ErrBadSectionOrder)
	})
}

func TestUpdateResumeConfig(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	resumeID := s.ListResumes()[0].ID

	template := "minimalist"
	color := "#336699"
	assert.NoError(t, s.UpdateResumeConfig(ctx, resumeID, domain.ResumeConfigPatch{
		Template:   &template,
		ThemeColor: &color,
	}))

	r, _ := s.GetResumeByID(resumeID)
	assert.Equal(t, "minimalist", r.Config.Template)
	assert.Equal(t, "#336699", r.Config.ThemeColor)
	assert.Equal(t, "zh", r.Config.Language, "unpatched fields keep defaults")
}

// A restart against the same backend must observe the last committed state.
func TestFileBackendDurability(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	backend, err := store.NewFileBackend(dir)
	assert.NoError(t, err)
	s, err := store.New(ctx, backend, "ep-test")
	assert.NoError(t, err)

	resumeID := s.ListResumes()[0].ID
	openai := domain.ProviderOpenAI
	_, err = s.UpdateAIConfig(ctx, domain.AIConfigPatch{Provider: &openai})
	assert.NoError(t, err)
	assert.NoError(t, s.UpdateSectionTitle(ctx, resumeID, "skills", "核心技能"))
	assert.NoError(t, s.SetTheme(ctx, "light"))

	// simulate restart
	backend2, err := store.NewFileBackend(dir)
	assert.NoError(t, err)
	s2, err := store.New(ctx, backend2, "ep-test")
	assert.NoError(t, err)

	assert.Equal(t, domain.ProviderOpenAI, s2.GetAIConfig().Provider)
	assert.Equal(t, "light", s2.GetTheme())
	r, err := s2.GetResumeByID(resumeID)
	assert.NoError(t, err)
	assert.Equal(t, "核心技能", r.Sections[1].Title)
}

func TestSQLiteBackendDurability(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	backend, err := store.NewSQLiteBackend(dir)
	assert.NoError(t, err)
	s, err := store.New(ctx, backend, "ep-test")
	assert.NoError(t, err)

	resumeID := s.ListResumes()[0].ID
	assert.NoError(t, s.UpdateSectionTitle(ctx, resumeID, "education", "教育背景"))
	assert.NoError(t, backend.Close())

	backend2, err := store.NewSQLiteBackend(dir)
	assert.NoError(t, err)
	defer backend2.Close()
	s2, err := store.New(ctx, backend2, "ep-test")
	assert.NoError(t, err)

	r, err := s2.GetResumeByID(resumeID)
	assert.NoError(t, err)
	assert.Equal(t, "教育背景", r.Sections[4].Title)
}
