package sheets

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/diegoclair/gpns-planner/internal/domain"
	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type defaultTemplate struct {
	Name     string     `yaml:"name"`
	Rotation string     `yaml:"rotation"`
	Header   []string   `yaml:"header"`
	Rows     [][]string `yaml:"rows"`
}

type defaultsFile struct {
	Templates []defaultTemplate `yaml:"templates"`
}

// Defaults returns the built-in dataset. reference anchors the six-phase
// templates; zero means the default Monday.
func Defaults(reference time.Time) ([]*entity.Template, error) {
	var file defaultsFile
	if err := yaml.Unmarshal(defaultsYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse default templates: %w", err)
	}

	if reference.IsZero() {
		reference = domain.DefaultCycleReference
	}

	templates := make([]*entity.Template, 0, len(file.Templates))
	for _, d := range file.Templates {
		kind, err := entity.ParseRotationKind(d.Rotation)
		if err != nil {
			return nil, fmt.Errorf("default template %s: %w", d.Name, err)
		}

		r := entity.Rotation{Kind: kind}
		if kind == entity.RotationSixPhase {
			r.Reference = reference
		}

		cells := make([][]string, 0, len(d.Rows)+1)
		cells = append(cells, append([]string{""}, d.Header...))
		cells = append(cells, d.Rows...)

		t, err := entity.NewTemplate(d.Name, r, cells)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	return templates, nil
}
