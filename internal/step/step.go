package step

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultEditor is used for git_config steps that don't set default_editor.
const DefaultEditor = "vim"

// Kind selects which main action a step performs. The set is closed: every
// switch over Kind should handle all four values.
type Kind int

const (
	KindScript Kind = iota
	KindAddText
	KindGitConfig
	KindAppSelection
)

// String returns the YAML tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindAddText:
		return "add_text"
	case KindGitConfig:
		return "git_config"
	case KindAppSelection:
		return "app_selection"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// AddTextParams configures an add_text step.
type AddTextParams struct {
	File    string `yaml:"file"`
	Content string `yaml:"content"`
}

// GitConfigParams configures a git_config step.
type GitConfigParams struct {
	DefaultEditor string `yaml:"default_editor"`
}

// AppDefinition is one installable application within an app_selection step.
type AppDefinition struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	// Install is the shell command used to install this app (package
	// manager invocation or custom script).
	Install string `yaml:"install"`
}

// AppSelectionParams configures an app_selection step.
type AppSelectionParams struct {
	Apps []AppDefinition `yaml:"apps"`
}

// Step is one unit of provisioning work. Exactly one of the params pointers
// is non-nil, matching Kind; KindScript uses only the script fields.
type Step struct {
	Name string
	Kind Kind

	PreScript  string
	Script     string
	PostScript string

	AddText      *AddTextParams
	GitConfig    *GitConfigParams
	AppSelection *AppSelectionParams
}

// File is the top-level step file document.
type File struct {
	Steps []Step `yaml:"steps"`
}

// UnmarshalYAML decodes a step, dispatching the params block on the "type"
// tag so each kind gets its own strongly typed params.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Name       string    `yaml:"name"`
		Type       string    `yaml:"type"`
		PreScript  string    `yaml:"pre_script"`
		Script     string    `yaml:"script"`
		PostScript string    `yaml:"post_script"`
		Params     yaml.Node `yaml:"params"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	s.Name = raw.Name
	s.PreScript = raw.PreScript
	s.Script = raw.Script
	s.PostScript = raw.PostScript

	switch raw.Type {
	case "script":
		s.Kind = KindScript

	case "add_text":
		s.Kind = KindAddText
		params := &AddTextParams{}
		if !raw.Params.IsZero() {
			if err := raw.Params.Decode(params); err != nil {
				return fmt.Errorf("step %q: invalid add_text params: %w", raw.Name, err)
			}
		}
		s.AddText = params

	case "git_config":
		s.Kind = KindGitConfig
		params := &GitConfigParams{}
		if !raw.Params.IsZero() {
			if err := raw.Params.Decode(params); err != nil {
				return fmt.Errorf("step %q: invalid git_config params: %w", raw.Name, err)
			}
		}
		if params.DefaultEditor == "" {
			params.DefaultEditor = DefaultEditor
		}
		s.GitConfig = params

	case "app_selection":
		s.Kind = KindAppSelection
		params := &AppSelectionParams{}
		if !raw.Params.IsZero() {
			if err := raw.Params.Decode(params); err != nil {
				return fmt.Errorf("step %q: invalid app_selection params: %w", raw.Name, err)
			}
		}
		s.AppSelection = params

	case "":
		return fmt.Errorf("step %q is missing the 'type' field", raw.Name)

	default:
		return fmt.Errorf("step %q has unknown type %q", raw.Name, raw.Type)
	}

	return nil
}
