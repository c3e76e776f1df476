package templates

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"

	"github.com/studyloop/studyloop/internal/tour"
)

//go:embed pack_schema.json
var packSchemaJSON []byte

// packSchema compiles the embedded schema once.
var packSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(packSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse pack schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://template_pack.json", parsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile("schema://template_pack.json")
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// Wire shapes for JSON template packs. Durations ride as milliseconds.
type packFile struct {
	Templates []packTemplate `json:"templates"`
	Variants  []packVariant  `json:"variants"`
}

type packTemplate struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Audience    string      `json:"audience"`
	Steps       []packStep  `json:"steps"`
	Config      *packConfig `json:"config"`
}

type packStep struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Narrator    string         `json:"narrator"`
	Mood        string         `json:"mood"`
	DurationMs  int64          `json:"duration_ms"`
	TargetTab   *int           `json:"target_tab"`
	Skippable   bool           `json:"skippable"`
	AutoAdvance bool           `json:"auto_advance"`
	Action      string         `json:"action"`
	Detection   *packDetection `json:"detection"`
}

type packDetection struct {
	PrimarySelectors    []string `json:"primary_selectors"`
	FallbackSelectors   []string `json:"fallback_selectors"`
	EventKinds          []string `json:"event_kinds"`
	Signal              string   `json:"signal"`
	TimeoutMs           int64    `json:"timeout_ms"`
	Retries             *int     `json:"retries"`
	RequiresInteraction bool     `json:"requires_interaction"`
}

type packConfig struct {
	DetectionTimeoutMs       *int64 `json:"detection_timeout_ms"`
	DetectionRetries         *int   `json:"detection_retries"`
	FetchAttempts            *int   `json:"fetch_attempts"`
	AnalyticsBatchSize       *int   `json:"analytics_batch_size"`
	AnalyticsFlushIntervalMs *int64 `json:"analytics_flush_interval_ms"`
}

type packVariant struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	BaseTemplate    string             `json:"base_template"`
	ConfigOverrides *packConfig        `json:"config_overrides"`
	StepOverrides   []packStepOverride `json:"step_overrides"`
	RemoveSteps     []string           `json:"remove_steps"`
	AddSteps        []packAddedStep    `json:"add_steps"`
}

type packStepOverride struct {
	Step        string  `json:"step"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Narrator    *string `json:"narrator"`
	Mood        *string `json:"mood"`
	DurationMs  *int64  `json:"duration_ms"`
	TargetTab   *int    `json:"target_tab"`
	Skippable   *bool   `json:"skippable"`
	AutoAdvance *bool   `json:"auto_advance"`
}

type packAddedStep struct {
	After string   `json:"after"`
	Step  packStep `json:"step"`
}

// LoadPack validates raw against the pack schema and registers its
// templates and variants. Templates register before variants so a pack
// can ship both together.
func (m *Manager) LoadPack(raw []byte) error {
	schema, err := packSchema()
	if err != nil {
		return err
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	var pack packFile
	if err := json.Unmarshal(raw, &pack); err != nil {
		return fmt.Errorf("decode pack: %w", err)
	}

	for _, pt := range pack.Templates {
		if err := m.RegisterTemplate(convertTemplate(pt)); err != nil {
			return err
		}
	}
	for _, pv := range pack.Variants {
		if err := m.RegisterVariant(convertVariant(pv)); err != nil {
			return err
		}
	}
	m.logger.Info("template pack loaded",
		zap.Int("templates", len(pack.Templates)),
		zap.Int("variants", len(pack.Variants)),
	)
	return nil
}

// LoadDir loads every *.json pack in dir, in name order. A missing dir is
// not an error; packs are optional.
func (m *Manager) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read pack dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("read pack %s: %w", name, err)
		}
		if err := m.LoadPack(raw); err != nil {
			return fmt.Errorf("pack %s: %w", name, err)
		}
	}
	return nil
}

func convertTemplate(pt packTemplate) *Template {
	t := &Template{
		ID:          pt.ID,
		Name:        pt.Name,
		Description: pt.Description,
		Audience:    Audience(pt.Audience),
		Config:      tour.DefaultConfig(),
	}
	if pt.Config != nil {
		applyConfigOverride(&t.Config, convertConfig(pt.Config))
	}
	for _, ps := range pt.Steps {
		t.Steps = append(t.Steps, convertStep(ps))
	}
	return t
}

func convertStep(ps packStep) tour.StepConfig {
	s := tour.StepConfig{
		ID:          tour.Step(ps.ID),
		Title:       ps.Title,
		Description: ps.Description,
		Narrator:    ps.Narrator,
		Mood:        tour.Mood(ps.Mood),
		Duration:    time.Duration(ps.DurationMs) * time.Millisecond,
		TargetTab:   -1,
		Skippable:   ps.Skippable,
		AutoAdvance: ps.AutoAdvance,
		Action:      tour.Action(ps.Action),
	}
	if ps.TargetTab != nil {
		s.TargetTab = *ps.TargetTab
	}
	if ps.Detection != nil {
		s.Detection = &tour.DetectionConfig{
			PrimarySelectors:    ps.Detection.PrimarySelectors,
			FallbackSelectors:   ps.Detection.FallbackSelectors,
			EventKinds:          ps.Detection.EventKinds,
			Signal:              ps.Detection.Signal,
			Timeout:             time.Duration(ps.Detection.TimeoutMs) * time.Millisecond,
			Retries:             -1,
			RequiresInteraction: ps.Detection.RequiresInteraction,
		}
		if ps.Detection.Retries != nil {
			s.Detection.Retries = *ps.Detection.Retries
		}
	}
	return s
}

func convertConfig(pc *packConfig) *ConfigOverride {
	ov := &ConfigOverride{
		DetectionRetries:   pc.DetectionRetries,
		FetchAttempts:      pc.FetchAttempts,
		AnalyticsBatchSize: pc.AnalyticsBatchSize,
	}
	if pc.DetectionTimeoutMs != nil {
		d := time.Duration(*pc.DetectionTimeoutMs) * time.Millisecond
		ov.DetectionTimeout = &d
	}
	if pc.AnalyticsFlushIntervalMs != nil {
		d := time.Duration(*pc.AnalyticsFlushIntervalMs) * time.Millisecond
		ov.AnalyticsFlushInterval = &d
	}
	return ov
}

func convertVariant(pv packVariant) *Variant {
	v := &Variant{
		ID:           pv.ID,
		Name:         pv.Name,
		Description:  pv.Description,
		BaseTemplate: pv.BaseTemplate,
	}
	if pv.ConfigOverrides != nil {
		v.ConfigOverrides = convertConfig(pv.ConfigOverrides)
	}
	for _, po := range pv.StepOverrides {
		ov := StepOverride{
			Step:        tour.Step(po.Step),
			Title:       po.Title,
			Description: po.Description,
			Narrator:    po.Narrator,
			TargetTab:   po.TargetTab,
			Skippable:   po.Skippable,
			AutoAdvance: po.AutoAdvance,
		}
		if po.Mood != nil {
			m := tour.Mood(*po.Mood)
			ov.Mood = &m
		}
		if po.DurationMs != nil {
			d := time.Duration(*po.DurationMs) * time.Millisecond
			ov.Duration = &d
		}
		v.StepOverrides = append(v.StepOverrides, ov)
	}
	for _, rm := range pv.RemoveSteps {
		v.RemoveSteps = append(v.RemoveSteps, tour.Step(rm))
	}
	for _, add := range pv.AddSteps {
		v.AddSteps = append(v.AddSteps, AddedStep{
			After: tour.Step(add.After),
			Step:  convertStep(add.Step),
		})
	}
	return v
}
