// Package step defines the provisioning step model shared by the executor
// and the dashboard.
//
// A step file is a YAML document with an ordered list of steps. Each step has
// a name, optional pre/post scripts, and exactly one kind selected by the
// "type" field:
//   - script: runs pre_script, script, post_script in order
//   - add_text: appends text to a file
//   - git_config: interactively collects name/email/editor and applies them
//   - app_selection: interactively selects apps and runs their installers
//
// Steps are loaded once, validated, and then treated as immutable for the
// rest of the run. Mutable per-step state (status and transcript) lives in
// Runtime, allocated one-to-one with the step list.
//
// # Usage Example
//
//	file, err := step.Load("steps.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	runtimes := step.NewRuntimes(len(file.Steps))
package step
