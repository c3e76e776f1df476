// Package templates resolves which tour a user gets: a registry of named
// step-sequence templates, experiment variants layered on top of them, and
// sticky per-user assignment.
package templates

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/studyloop/studyloop/internal/tour"
)

// Audience tags a template with the user population it targets.
type Audience string

const (
	AudienceNewUser       Audience = "new_user"
	AudienceReturningUser Audience = "returning_user"
	AudienceAccessibility Audience = "accessibility"
	AudiencePowerUser     Audience = "power_user"
)

// Template is a named, immutable tour definition.
type Template struct {
	ID          string
	Name        string
	Description string
	Audience    Audience
	Steps       []tour.StepConfig
	Config      tour.Config
}

// Generated is the concrete (steps, config) pair the orchestrator runs.
type Generated struct {
	TemplateID string
	VariantID  string // empty when no variant applied
	Steps      []tour.StepConfig
	Config     tour.Config
}

// Characteristics feed automatic variant assignment.
type Characteristics struct {
	HasAccessibilityNeeds bool
	IsReturningUser       bool
	PreferredPace         string // "fast", "slow" or empty
}

// Preferences are caller-supplied config overrides. They are applied last
// and win over every template and variant setting.
type Preferences = ConfigOverride

// Manager is the template/variant registry. Zero value is not usable;
// construct with NewManager.
type Manager struct {
	logger *zap.Logger

	mu          sync.RWMutex
	templates   map[string]*Template
	variants    map[string]*Variant
	assignments map[string]string // userID -> variantID
}

// NewManager creates a registry seeded with the built-in templates and
// variants. logger may be nil.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		logger:      logger,
		templates:   make(map[string]*Template),
		variants:    make(map[string]*Variant),
		assignments: make(map[string]string),
	}
	for _, t := range builtinTemplates() {
		m.templates[t.ID] = t
	}
	for _, v := range builtinVariants() {
		m.variants[v.ID] = v
	}
	return m
}

// Template returns the template with the given id, or nil.
func (m *Manager) Template(id string) *Template {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.templates[id]
}

// AllTemplates returns every registered template, sorted by id.
func (m *Manager) AllTemplates() []*Template {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Template, 0, len(m.templates))
	for _, t := range m.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TemplatesForAudience returns the templates tagged for the audience,
// sorted by id.
func (m *Manager) TemplatesForAudience(a Audience) []*Template {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*Template
	for _, t := range m.templates {
		if t.Audience == a {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RegisterTemplate adds a template. Duplicate ids are rejected.
func (m *Manager) RegisterTemplate(t *Template) error {
	if t.ID == "" {
		return fmt.Errorf("template id is required")
	}
	if len(t.Steps) == 0 {
		return fmt.Errorf("template %q has no steps", t.ID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.templates[t.ID]; exists {
		return fmt.Errorf("template %q already registered", t.ID)
	}
	m.templates[t.ID] = t
	return nil
}

// RegisterVariant adds a variant. Registration fails when the id is taken
// or the base template is unknown.
func (m *Manager) RegisterVariant(v *Variant) error {
	if v.ID == "" {
		return fmt.Errorf("variant id is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.variants[v.ID]; exists {
		return fmt.Errorf("variant %q already registered", v.ID)
	}
	if _, ok := m.templates[v.BaseTemplate]; !ok {
		return fmt.Errorf("variant %q references unknown template %q", v.ID, v.BaseTemplate)
	}
	m.variants[v.ID] = v
	return nil
}

// Variant returns the variant with the given id, or nil.
func (m *Manager) Variant(id string) *Variant {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.variants[id]
}

// AssignVariant pins a user to a variant. Assignment is sticky: a user
// who already has one keeps it.
func (m *Manager) AssignVariant(userID, variantID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.variants[variantID]; !ok {
		return fmt.Errorf("unknown variant %q", variantID)
	}
	if existing, ok := m.assignments[userID]; ok {
		if existing != variantID {
			return fmt.Errorf("user %s already assigned to variant %q", userID, existing)
		}
		return nil
	}
	m.assignments[userID] = variantID
	return nil
}

// UserVariant returns the user's assigned variant, or nil.
func (m *Manager) UserVariant(userID string) *Variant {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.assignments[userID]
	if !ok {
		return nil
	}
	return m.variants[id]
}

// Generate resolves the tour a user should run. Resolution order: the
// user's assigned variant's base template, then the explicitly requested
// template, then the default. Returns nil when no base resolves.
//
// Overrides stack lowest to highest: variant config, variant per-step
// fields, variant step removals, variant step additions, caller prefs.
func (m *Manager) Generate(userID, templateID string, prefs *Preferences) *Generated {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var variant *Variant
	if id, ok := m.assignments[userID]; ok {
		variant = m.variants[id]
	}

	var base *Template
	switch {
	case variant != nil:
		base = m.templates[variant.BaseTemplate]
	case templateID != "":
		base = m.templates[templateID]
	default:
		base = m.templates[DefaultTemplateID]
	}
	if base == nil {
		m.logger.Warn("no base template resolved",
			zap.String("user_id", userID),
			zap.String("template_id", templateID),
		)
		return nil
	}

	gen := &Generated{
		TemplateID: base.ID,
		Steps:      cloneSteps(base.Steps),
		Config:     base.Config,
	}
	if variant != nil {
		gen.VariantID = variant.ID
		applyVariant(gen, variant)
	}
	if prefs != nil {
		applyConfigOverride(&gen.Config, prefs)
	}
	return gen
}

// AutoAssign picks a template by fixed product priority: accessibility
// need beats returning-user status beats pace preference beats default.
// When a registered variant bases on the chosen template, the user is
// sticky-assigned to it. Returns the chosen template id.
func (m *Manager) AutoAssign(userID string, ch Characteristics) string {
	templateID := DefaultTemplateID
	switch {
	case ch.HasAccessibilityNeeds:
		templateID = AccessibilityTemplateID
	case ch.IsReturningUser:
		templateID = ReturningTemplateID
	case ch.PreferredPace == "fast":
		templateID = ExpressTemplateID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.assignments[userID]; ok {
		return templateID
	}

	ids := make([]string, 0, len(m.variants))
	for id := range m.variants {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if m.variants[id].BaseTemplate == templateID {
			m.assignments[userID] = id
			break
		}
	}
	return templateID
}

func cloneSteps(steps []tour.StepConfig) []tour.StepConfig {
	out := make([]tour.StepConfig, len(steps))
	copy(out, steps)
	for i := range out {
		if out[i].Detection != nil {
			det := *out[i].Detection
			out[i].Detection = &det
		}
	}
	return out
}
