package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"data-gate/internal/project"
	"data-gate/internal/reconcile"
	"data-gate/internal/source"
	"data-gate/internal/types"
)

// VocabularyConfig is one named data type vocabulary from the config file:
//
//	vocabularies:
//	  - name: warehouse
//	    active: true
//	    types:
//	      varchar: unicode
//	      number: float
type VocabularyConfig struct {
	Name   string            `mapstructure:"name"`
	Active bool              `mapstructure:"active"`
	Types  map[string]string `mapstructure:"types"`
}

// OutputConfig controls exported files.
type OutputConfig struct {
	Separator string `mapstructure:"separator"`
	Quoting   string `mapstructure:"quoting"`
}

func init() {
	viper.SetDefault("output.separator", ",")
	viper.SetDefault("output.quoting", "double")
	viper.SetDefault("engine.legacy_length_gate", false)
	viper.SetDefault("sample.rows", 100)
}

// GetActiveVocabulary returns the vocabulary named by --vocabulary, or the
// configured vocabulary marked active, or the default vocabulary.
func GetActiveVocabulary() (*types.Vocabulary, error) {
	var configs []VocabularyConfig
	if err := viper.UnmarshalKey("vocabularies", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse vocabularies config: %w", err)
	}

	if name := strings.TrimSpace(viper.GetString("vocabulary")); name != "" {
		for i := range configs {
			if strings.EqualFold(configs[i].Name, name) {
				return types.NewVocabulary(configs[i].Name, configs[i].Types)
			}
		}
		switch strings.ToLower(name) {
		case "default":
			return types.DefaultVocabulary(), nil
		case "reduced":
			return types.ReducedVocabulary(), nil
		}
		return nil, fmt.Errorf("unknown vocabulary %q", name)
	}

	var active *VocabularyConfig
	count := 0
	for i := range configs {
		if configs[i].Active {
			active = &configs[i]
			count++
		}
	}

	if count > 1 {
		return nil, fmt.Errorf("multiple active vocabularies found (only one can be active)")
	}
	if count == 0 {
		return types.DefaultVocabulary(), nil
	}
	return types.NewVocabulary(active.Name, active.Types)
}

// GetInputOptions returns the CSV parse options (flag > env > config >
// default).
func GetInputOptions() source.Options {
	return source.Options{
		Encoding:  viper.GetString("input.encoding"),
		Separator: viper.GetString("input.separator"),
		Quoting:   viper.GetString("input.quoting"),
	}
}

// GetExportOptions resolves the output separator and quoting mode.
func GetExportOptions() (project.ExportOptions, error) {
	out := OutputConfig{
		Separator: viper.GetString("output.separator"),
		Quoting:   viper.GetString("output.quoting"),
	}

	q, err := project.ParseQuoting(out.Quoting)
	if err != nil {
		return project.ExportOptions{}, err
	}
	sep := []rune(out.Separator)
	switch {
	case out.Separator == `\t` || out.Separator == "tab":
		sep = []rune{'\t'}
	case len(sep) != 1:
		return project.ExportOptions{}, fmt.Errorf("invalid output separator %q", out.Separator)
	}
	return project.ExportOptions{Separator: sep[0], Quoting: q}, nil
}

// GetEngineOptions returns the reconciliation options from configuration.
func GetEngineOptions() []reconcile.Option {
	return []reconcile.Option{
		reconcile.WithLegacyLengthGate(viper.GetBool("engine.legacy_length_gate")),
	}
}
