// Provisr is a terminal dashboard for running machine provisioning steps.
//
// It loads a YAML step file, primes a sudo session, and opens a full-screen
// dashboard where steps are run one at a time under user control. Shell
// steps stream to the terminal natively; app selection and git identity
// steps are handled with interactive overlays.
//
// Usage:
//
//	provisr [--file steps.yaml]
//
// Running without arguments loads steps.yaml from the working directory.
// See 'provisr --help' for available commands.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"provisr/internal/executor"
	"provisr/internal/logging"
	"provisr/internal/step"
	"provisr/internal/tui"
	"provisr/internal/version"
)

var stepFile string

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Sync()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "provisr",
	Short: "Interactive provisioning step runner",
	Long: `A terminal dashboard for provisioning a machine from a YAML step file.

Each step is run on demand: shell steps execute their pre/main/post scripts
with output captured into a per-step log, app selection steps open a
checklist of installable apps, and git config steps open an identity form.

If no command is specified, the dashboard launches with steps.yaml.`,
	Version:      version.Version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&stepFile, "file", "f", "steps.yaml", "step file to load")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

func runDashboard() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("provisr requires an interactive terminal")
	}

	file, err := step.Load(stepFile)
	if err != nil {
		return err
	}
	logging.Info("loaded step file", zap.String("file", stepFile), zap.Int("steps", len(file.Steps)))

	logger := logging.GetLogger()
	exec := executor.New(executor.NewRunner(logger), logger)

	// Prime sudo before bubbletea takes the terminal, so the password
	// prompt happens in cooked mode.
	sessionLog, err := exec.PrimeSudo()
	if err != nil {
		fmt.Fprint(os.Stderr, sessionLog)
		return err
	}
	fmt.Print(sessionLog)

	model := tui.New(file.Steps, sessionLog, exec)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a step file without running anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := step.Load(stepFile)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d steps OK\n", stepFile, len(file.Steps))
		for i, st := range file.Steps {
			fmt.Printf("  %d. %s (%s)\n", i+1, st.Name, st.Kind)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("provisr %s (commit: %s)\n", version.Version, version.Commit)
	},
}
