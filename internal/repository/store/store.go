package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-resume-backend/internal/domain"
)

// resumeState is the resume-storage record layout: the AI provider
// preference plus the ordered resume collection, persisted as one blob.
type resumeState struct {
	AIConfig domain.AIConfig `json:"aiConfig"`
	Resumes  []domain.Resume `json:"resumes"`
}

type themeState struct {
	Theme string `json:"theme"`
}

// Store implements domain.ResumeStore. It is single-writer from the
// perspective of one session; every mutation is flushed to the backend
// before the call returns, and a failed flush leaves the in-memory state
// untouched.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	state   resumeState
	theme   themeState
}

var _ domain.ResumeStore = (*Store)(nil)

// ShortID returns a 6-hex-char identifier in the style the original seed
// data uses for resume ids.
func ShortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}

// Today formats the current date the way resume cards display it.
func Today() string {
	return time.Now().Format("2006/1/2")
}

// New loads both records from the backend, seeding them on first run:
// exactly one default resume and a doubao AI preference.
func New(ctx context.Context, backend Backend, defaultModel string) (*Store, error) {
	s := &Store{backend: backend}

	blob, err := backend.Load(ctx, ResumeRecord)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		s.state = resumeState{
			AIConfig: domain.AIConfig{Provider: domain.DefaultProvider, Model: defaultModel},
			Resumes:  []domain.Resume{NewDefaultResume(ShortID(), "", Today())},
		}
		if err := s.saveResumeLocked(ctx, s.state); err != nil {
			return nil, err
		}
	} else if err := json.Unmarshal(blob, &s.state); err != nil {
		return nil, fmt.Errorf("decoding resume record: %w", err)
	}

	blob, err = backend.Load(ctx, ThemeRecord)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		s.theme = themeState{Theme: "dark"}
		if err := s.saveThemeLocked(ctx, s.theme); err != nil {
			return nil, err
		}
	} else if err := json.Unmarshal(blob, &s.theme); err != nil {
		return nil, fmt.Errorf("decoding theme record: %w", err)
	}

	return s, nil
}

func (s *Store) saveResumeLocked(ctx context.Context, st resumeState) error {
	blob, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding resume record: %w", err)
	}
	return s.backend.Save(ctx, ResumeRecord, blob)
}

func (s *Store) saveThemeLocked(ctx context.Context, st themeState) error {
	blob, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding theme record: %w", err)
	}
	return s.backend.Save(ctx, ThemeRecord, blob)
}

// mutate applies fn to a deep copy of the state, persists it, then swaps it
// in. The copy keeps callers from observing half-applied mutations when the
// backend write fails.
func (s *Store) mutate(ctx context.Context, fn func(st *resumeState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := cloneState(s.state)
	if err != nil {
		return err
	}
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.saveResumeLocked(ctx, next); err != nil {
		return err
	}
	s.state = next
	return nil
}

func cloneState(st resumeState) (resumeState, error) {
	blob, err := json.Marshal(st)
	if err != nil {
		return resumeState{}, err
	}
	var out resumeState
	if err := json.Unmarshal(blob, &out); err != nil {
		return resumeState{}, err
	}
	return out, nil
}

func cloneResume(r domain.Resume) domain.Resume {
	blob, _ := json.Marshal(r)
	var out domain.Resume
	_ = json.Unmarshal(blob, &out)
	return out
}

func (s *Store) GetAIConfig() domain.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.AIConfig
}

// UpdateAIConfig merges set fields into the existing config;
// last-writer-wins, no conflict detection.
func (s *Store) UpdateAIConfig(ctx context.Context, patch domain.AIConfigPatch) (domain.AIConfig, error) {
	var merged domain.AIConfig
	err := s.mutate(ctx, func(st *resumeState) error {
		if patch.Provider != nil {
			st.AIConfig.Provider = *patch.Provider
		}
		if patch.Model != nil {
			st.AIConfig.Model = *patch.Model
		}
		merged = st.AIConfig
		return nil
	})
	return merged, err
}

func (s *Store) ListResumes() []domain.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Resume, 0, len(s.state.Resumes))
	for _, r := range s.state.Resumes {
		out = append(out, cloneResume(r))
	}
	return out
}

func (s *Store) GetResumeByID(id string) (*domain.Resume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.state.Resumes {
		if r.ID == id {
			c := cloneResume(r)
			return &c, nil
		}
	}
	return nil, domain.ErrResumeNotFound
}

func (s *Store) AddResume(ctx context.Context, resume domain.Resume) error {
	return s.mutate(ctx, func(st *resumeState) error {
		for _, r := range st.Resumes {
			if r.ID == resume.ID {
				return fmt.Errorf("resume id %s already exists", resume.ID)
			}
		}
		st.Resumes = append(st.Resumes, resume)
		return nil
	})
}

func (s *Store) UpdateResume(ctx context.Context, id string, patch domain.ResumePatch) (*domain.Resume, error) {
	var updated domain.Resume
	err := s.mutate(ctx, func(st *resumeState) error {
		r := findResume(st, id)
		if r == nil {
			return domain.ErrResumeNotFound
		}
		if patch.Title != nil {
			r.Title = *patch.Title
		}
		if patch.Date != nil {
			r.Date = *patch.Date
		}
		if patch.Config != nil {
			r.Config = *patch.Config
		}
		updated = cloneResume(*r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) DeleteResume(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *resumeState) error {
		for i, r := range st.Resumes {
			if r.ID == id {
				st.Resumes = append(st.Resumes[:i], st.Resumes[i+1:]...)
				return nil
			}
		}
		return domain.ErrResumeNotFound
	})
}

func (s *Store) UpdateResumeSection(ctx context.Context, resumeID, sectionID string, content json.RawMessage) error {
	return s.mutateSection(ctx, resumeID, sectionID, func(sec *domain.ResumeSection) {
		sec.Content = content
	})
}

func (s *Store) UpdateSectionTitle(ctx context.Context, resumeID, sectionID, title string) error {
	return s.mutateSection(ctx, resumeID, sectionID, func(sec *domain.ResumeSection) {
		sec.Title = title
	})
}

func (s *Store) mutateSection(ctx context.Context, resumeID, sectionID string, fn func(sec *domain.ResumeSection)) error {
	return s.mutate(ctx, func(st *resumeState) error {
		r := findResume(st, resumeID)
		if r == nil {
			return domain.ErrResumeNotFound
		}
		for i := range r.Sections {
			if r.Sections[i].ID == sectionID {
				fn(&r.Sections[i])
				return nil
			}
		}
		return domain.ErrSectionNotFound
	})
}

func (s *Store) AddResumeSection(ctx context.Context, resumeID string, section domain.ResumeSection) error {
	return s.mutate(ctx, func(st *resumeState) error {
		r := findResume(st, resumeID)
		if r == nil {
			return domain.ErrResumeNotFound
		}
		for _, sec := range r.Sections {
			if sec.ID == section.ID {
				return domain.ErrDuplicateSection
			}
		}
		r.Sections = append(r.Sections, section)
		return nil
	})
}

func (s *Store) RemoveResumeSection(ctx context.Context, resumeID, sectionID string) error {
	return s.mutate(ctx, func(st *resumeState) error {
		r := findResume(st, resumeID)
		if r == nil {
			return domain.ErrResumeNotFound
		}
		for i, sec := range r.Sections {
			if sec.ID == sectionID {
				r.Sections = append(r.Sections[:i], r.Sections[i+1:]...)
				return nil
			}
		}
		return domain.ErrSectionNotFound
	})
}

// ReorderResumeSections rearranges sections to match orderedIDs, which must
// be a permutation of the existing section ids.
func (s *Store) ReorderResumeSections(ctx context.Context, resumeID string, orderedIDs []string) error {
	return s.mutate(ctx, func(st *resumeState) error {
		r := findResume(st, resumeID)
		if r == nil {
			return domain.ErrResumeNotFound
		}
		if len(orderedIDs) != len(r.Sections) {
			return domain.ErrBadSectionOrder
		}
		byID := make(map[string]domain.ResumeSection, len(r.Sections))
		for _, sec := range r.Sections {
			byID[sec.ID] = sec
		}
		reordered := make([]domain.ResumeSection, 0, len(orderedIDs))
		for _, id := range orderedIDs {
			sec, ok := byID[id]
			if !ok {
				return domain.ErrBadSectionOrder
			}
			delete(byID, id)
			reordered = append(reordered, sec)
		}
		r.Sections = reordered
		return nil
	})
}

func (s *Store) UpdateResumeConfig(ctx context.Context, resumeID string, patch domain.ResumeConfigPatch) error {
	return s.mutate(ctx, func(st *resumeState) error {
		r := findResume(st, resumeID)
		if r == nil {
			return domain.ErrResumeNotFound
		}
		if patch.ThemeColor != nil {
			r.Config.ThemeColor = *patch.ThemeColor
		}
		if patch.Template != nil {
			r.Config.Template = *patch.Template
		}
		if patch.Language != nil {
			r.Config.Language = *patch.Language
		}
		if patch.Layout != nil {
			r.Config.Layout = *patch.Layout
		}
		return nil
	})
}

func (s *Store) GetTheme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme.Theme
}

func (s *Store) SetTheme(ctx context.Context, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := themeState{Theme: theme}
	if err := s.saveThemeLocked(ctx, next); err != nil {
		return err
	}
	s.theme = next
	return nil
}

func findResume(st *resumeState, id string) *domain.Resume {
	for i := range st.Resumes {
		if st.Resumes[i].ID == id {
			return &st.Resumes[i]
		}
	}
	return nil
}
