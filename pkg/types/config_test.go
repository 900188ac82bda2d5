// Copyright Kieran C., 2026. All rights reserved.

package types

import "testing"

func TestConvertOptionsValidate(t *testing.T) {
	valid := ConvertOptions{
		InputFile:  "export.csv",
		OutputFile: "out.csv",
		Format:     FormatProton,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid options rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ConvertOptions)
	}{
		{"missing input", func(o *ConvertOptions) { o.InputFile = "" }},
		{"missing output", func(o *ConvertOptions) { o.OutputFile = "" }},
		{"missing format", func(o *ConvertOptions) { o.Format = "" }},
		{"unknown format", func(o *ConvertOptions) { o.Format = "keepass" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)
			if err := opts.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestHistoryConfigValidate(t *testing.T) {
	if err := (HistoryConfig{Dir: ".truekey-migrate"}).Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
	if err := (HistoryConfig{}).Validate(); err == nil {
		t.Error("expected error for missing dir")
	}
}
