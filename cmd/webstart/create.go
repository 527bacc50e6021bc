package main

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"webstart/internal/materialize"
	"webstart/internal/ui"
	"webstart/internal/wizard"
	"webstart/pkg/catalog"
	"webstart/pkg/config"
	"webstart/pkg/git"
	"webstart/pkg/history"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project from a template",
	Example: `  webstart create                       # full interactive wizard
  webstart create --template 0 --name "My Cool App" --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		templateIndex, _ := cmd.Flags().GetInt("template")
		name, _ := cmd.Flags().GetString("name")
		yes, _ := cmd.Flags().GetBool("yes")

		gitCLI := git.NewCLI()
		client := catalog.NewClient(cfg.Registry.APIURL, cfg.Registry.Owner, cfg.Registry.Topic, cfg.Registry.Token)
		mat := materialize.New(gitCLI, os.Stderr)
		prompter := wizard.NewConsolePrompter(os.Stdin, os.Stdout)

		w := wizard.New(client, prompter, gitCLI, mat, os.Stdout, wizard.Options{
			TemplateIndex: templateIndex,
			ProjectName:   name,
			Yes:           yes,
		})
		if ui.Interactive() && templateIndex < 0 {
			w.SetPicker(wizard.PickTemplate)
		}

		start := time.Now()
		result, runErr := w.Run(cmd.Context())
		recordHistory(cfg, result, time.Since(start), runErr)
		return runErr
	},
}

func init() {
	createCmd.Flags().Int("template", -1, "Template index (skips the selection prompt)")
	createCmd.Flags().String("name", "", "Project name (skips the name prompt)")
	createCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(createCmd)
}

// recordHistory saves the attempt to the local history database. Recording
// is best-effort: a failure here never affects the run's outcome.
func recordHistory(cfg *config.Config, result *wizard.Result, elapsed time.Duration, runErr error) {
	if cfg.History.Disabled || result == nil || result.Template == "" {
		return
	}
	if runErr == nil && !result.Created {
		// Operator aborted at the confirmation step.
		return
	}

	store, err := history.Open(config.DefaultHistoryPath())
	if err != nil {
		return
	}
	defer store.Close()

	store.SaveRecord(history.Record{
		CreatedAt: time.Now(),
		Template:  result.Template,
		ProjectID: result.ProjectID,
		Duration:  elapsed,
		Success:   result.Created,
		ErrorKind: errorKind(runErr),
	})
}

func errorKind(err error) string {
	if err == nil {
		return ""
	}

	var (
		validationErr *wizard.ValidationError
		conflictErr   *materialize.DirectoryConflictError
		fetchErr      *materialize.FetchError
		manifestErr   *materialize.ManifestError
		networkErr    *catalog.NetworkError
	)
	switch {
	case errors.As(err, &validationErr):
		return "validation"
	case errors.As(err, &conflictErr):
		return "directory-conflict"
	case errors.As(err, &fetchErr):
		return "fetch"
	case errors.As(err, &manifestErr):
		return "manifest"
	case errors.As(err, &networkErr):
		return "network"
	}
	return "unknown"
}
