package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/eth-easl/indexplot/pkg/common"
)

const (
	DefaultOutput     = "benchmark-index.png"
	DefaultWidthInch  = 8.0
	DefaultHeightInch = 6.0
	DefaultVerbosity  = "info"
)

var (
	ValidVerbosity    = []string{"info", "debug", "trace"}
	ValidOutputFormat = []string{"png", "svg", "pdf", "jpg", "jpeg", "tif", "tiff", "eps", "tex"}
)

type PlotConfiguration struct {
	RuntimeFile string `mapstructure:"runtime_file" json:"runtime_file"`
	MemoryFile  string `mapstructure:"memory_file" json:"memory_file"`

	Output     string  `mapstructure:"output" json:"output"`
	WidthInch  float64 `mapstructure:"width_inch" json:"width_inch"`
	HeightInch float64 `mapstructure:"height_inch" json:"height_inch"`
	Title      string  `mapstructure:"title" json:"title"`

	Show      bool `mapstructure:"show" json:"show"`
	ErrorBars bool `mapstructure:"error_bars" json:"error_bars"`

	// TablePrefix enables the CSV export of the plotted values when set.
	TablePrefix string `mapstructure:"table_prefix" json:"table_prefix"`

	Verbosity string `mapstructure:"verbosity" json:"verbosity"`
}

func (c *PlotConfiguration) OutputFormat() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(c.Output), "."))
}

func (c *PlotConfiguration) Validate() error {
	if c.RuntimeFile == "" || c.MemoryFile == "" {
		return fmt.Errorf("both runtime and memory files are required")
	}
	if c.WidthInch <= 0 || c.HeightInch <= 0 {
		return fmt.Errorf("invalid chart size %gx%g inch", c.WidthInch, c.HeightInch)
	}
	if !slices.Contains(ValidOutputFormat, c.OutputFormat()) {
		return fmt.Errorf("unsupported output format %q for %s", c.OutputFormat(), c.Output)
	}
	if !slices.Contains(ValidVerbosity, c.Verbosity) {
		return fmt.Errorf("invalid verbosity %q - choose from %v", c.Verbosity, ValidVerbosity)
	}
	return nil
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"runtime_file": common.DefaultRuntimeFile,
		"memory_file":  common.DefaultMemoryFile,
		"output":       DefaultOutput,
		"width_inch":   DefaultWidthInch,
		"height_inch":  DefaultHeightInch,
		"title":        "",
		"show":         true,
		"error_bars":   false,
		"table_prefix": "",
		"verbosity":    DefaultVerbosity,
	}
}
