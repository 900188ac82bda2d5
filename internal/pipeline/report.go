// Copyright Kieran C., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/Kieran-C/truekey-migrate/pkg/types"
)

// Report is the on-disk record of one conversion run. Written next to the
// output files so a migration can be audited after the fact without the
// history database.
type Report struct {
	RunID     string               `yaml:"run_id"`
	StartedAt time.Time            `yaml:"started_at"`
	Options   types.ConvertOptions `yaml:"options"`
	Summary   types.Summary        `yaml:"summary"`
}

// WriteReport saves the run result as YAML at path.
func WriteReport(path string, res *Result) error {
	rep := Report{
		RunID:     res.RunID,
		StartedAt: res.StartedAt,
		Options:   res.Options,
		Summary:   res.Summary,
	}
	data, err := yaml.Marshal(&rep)
	if err != nil {
		return fmt.Errorf("marshaling run report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run report: %w", err)
	}
	return nil
}

// ReadReport loads a previously written run report.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run report: %w", err)
	}
	var rep Report
	if err := yaml.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("parsing run report: %w", err)
	}
	return &rep, nil
}
