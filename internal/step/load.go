package step

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, and validates a step file. The returned file is
// treated as immutable for the rest of the run.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read step file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates a step file document.
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse step file: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("step file failed validation: %w", err)
	}
	return &file, nil
}

// Validate checks the structural rules every step file must satisfy before
// the runner accepts it. The executor and dashboard rely on these holding.
func (f *File) Validate() error {
	if len(f.Steps) == 0 {
		return fmt.Errorf("step file must contain at least one step")
	}

	for i, s := range f.Steps {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("step %d has an empty name", i)
		}

		switch s.Kind {
		case KindScript:
			if s.Script == "" {
				return fmt.Errorf("step %q (script) is missing the 'script' field", s.Name)
			}

		case KindAddText:
			if strings.TrimSpace(s.AddText.File) == "" {
				return fmt.Errorf("step %q (add_text) has an empty 'file' param", s.Name)
			}
			if s.AddText.Content == "" {
				return fmt.Errorf("step %q (add_text) has an empty 'content' param", s.Name)
			}

		case KindGitConfig:
			// Nothing mandatory; default_editor is filled during decoding.

		case KindAppSelection:
			if len(s.AppSelection.Apps) == 0 {
				return fmt.Errorf("step %q (app_selection) must have at least one app", s.Name)
			}
			for _, app := range s.AppSelection.Apps {
				if strings.TrimSpace(app.Name) == "" {
					return fmt.Errorf("step %q (app_selection) has an app with an empty name", s.Name)
				}
				if strings.TrimSpace(app.Install) == "" {
					return fmt.Errorf("step %q (app_selection) app %q has an empty install command", s.Name, app.Name)
				}
			}
		}
	}

	return nil
}
