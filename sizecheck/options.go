package sizecheck

import "github.com/wireumb/umb/internal/options"

// CompareConfig holds the tunables for Compare.
type CompareConfig struct {
	// ReportShrinkage includes KindSizeShrank findings in the report. Off by
	// default since shrinkage is never a regression; callers that want a
	// full before/after diff (e.g. cmd/umbc's check --report-shrinkage) can
	// turn it on.
	ReportShrinkage bool
}

func defaultCompareConfig() CompareConfig {
	return CompareConfig{ReportShrinkage: false}
}

// CompareOption is a functional option for Compare.
type CompareOption = options.Option[*CompareConfig]

// WithShrinkageReported makes Compare also report messages whose footprint
// decreased.
func WithShrinkageReported() CompareOption {
	return options.NoError(func(cfg *CompareConfig) {
		cfg.ReportShrinkage = true
	})
}
