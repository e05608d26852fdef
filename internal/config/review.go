package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/models"
)

// ReviewTemplates is the file format of -review-templates:
//
//	configs:
//	  - id: baseline
//	    title: Baseline
//	    enabled: true
//	    resources: [environments/prod]
//	    rules:
//	      - type: statement.where.require
//	        level: ERROR
//	      - type: naming.table
//	        level: WARNING
//	        engine: MYSQL
//	        payload: '{"format": "^[a-z]+(_[a-z]+)*$", "maxLength": 64}'
type ReviewTemplates struct {
	Configs []ReviewTemplate `yaml:"configs"`
}

type ReviewTemplate struct {
	ID        string       `yaml:"id"`
	Title     string       `yaml:"title"`
	Enabled   bool         `yaml:"enabled"`
	Resources []string     `yaml:"resources"`
	Rules     []ReviewRule `yaml:"rules"`
}

type ReviewRule struct {
	Type    string `yaml:"type"`
	Level   string `yaml:"level"`
	Engine  string `yaml:"engine"`
	Payload string `yaml:"payload"`
	Comment string `yaml:"comment"`
}

// LoadReviewTemplates reads and converts the review configs in path.
func LoadReviewTemplates(path string) ([]*v1pb.ReviewConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseReviewTemplates(raw)
}

func ParseReviewTemplates(raw []byte) ([]*v1pb.ReviewConfig, error) {
	var file ReviewTemplates
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse review templates: %w", err)
	}
	configs := make([]*v1pb.ReviewConfig, 0, len(file.Configs))
	seen := make(map[string]bool, len(file.Configs))
	for _, t := range file.Configs {
		if err := models.ValidateResourceID(t.ID); err != nil {
			return nil, err
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate review config %q", t.ID)
		}
		seen[t.ID] = true
		cfg, err := t.ReviewConfig()
		if err != nil {
			return nil, fmt.Errorf("review config %q: %w", t.ID, err)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

func (t ReviewTemplate) ReviewConfig() (*v1pb.ReviewConfig, error) {
	cfg := &v1pb.ReviewConfig{
		Name:      models.ReviewConfigPrefix + t.ID,
		Title:     t.Title,
		Enabled:   t.Enabled,
		Resources: t.Resources,
	}
	for _, r := range t.Rules {
		level, ok := v1pb.SQLReviewRuleLevel_value[r.Level]
		if !ok {
			return nil, fmt.Errorf("rule %s: unknown level %q", r.Type, r.Level)
		}
		var engine int32
		if r.Engine != "" {
			if engine, ok = v1pb.Engine_value[r.Engine]; !ok {
				return nil, fmt.Errorf("rule %s: unknown engine %q", r.Type, r.Engine)
			}
		}
		cfg.Rules = append(cfg.Rules, &v1pb.SQLReviewRule{
			Type:    r.Type,
			Level:   v1pb.SQLReviewRuleLevel(level),
			Payload: r.Payload,
			Engine:  v1pb.Engine(engine),
			Comment: r.Comment,
		})
	}
	return cfg, nil
}
