package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dsa-notes/internal/config"
	"dsa-notes/internal/di"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dsanotes",
		Short: "Keep a DSA and system design notes repository up to date",
		Long: `dsanotes fetches accepted LeetCode submissions, files them into a
categorized notes tree and refreshes architecture diagrams in system design
write-ups.

Configuration comes from the environment (LEETCODE_SESSION,
LEETCODE_CSRF_TOKEN, DSA_DIR, ...). Flags override it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download accepted submissions with problem details",
		Args:  cobra.NoArgs,
		RunE:  runFetch,
	}
	fetchCmd.Flags().StringP("output", "o", "", "submissions file to write (default $SUBMISSIONS_FILE)")

	organizeCmd := &cobra.Command{
		Use:   "organize",
		Short: "Write a markdown note and solution file per unique problem",
		Args:  cobra.NoArgs,
		RunE:  runOrganize,
	}
	organizeCmd.Flags().StringP("input", "i", "", "submissions file to read (default $SUBMISSIONS_FILE)")
	organizeCmd.Flags().String("dir", "", "notes output root (default $DSA_DIR)")
	organizeCmd.Flags().Bool("overwrite", false, "rewrite notes that already exist")

	diagramsCmd := &cobra.Command{
		Use:   "diagrams",
		Short: "Strip references and insert architecture diagrams into design docs",
		Args:  cobra.NoArgs,
		RunE:  runDiagrams,
	}
	diagramsCmd.Flags().String("dir", "", "system design examples root (default $DESIGN_BASE_DIR)")

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch then organize, once or on a cron schedule",
		Args:  cobra.NoArgs,
		RunE:  runSync,
	}
	syncCmd.Flags().StringP("output", "o", "", "submissions file (default $SUBMISSIONS_FILE)")
	syncCmd.Flags().String("dir", "", "notes output root (default $DSA_DIR)")
	syncCmd.Flags().String("schedule", "", "cron expression, empty runs once (default $SCHEDULE_CRON)")
	syncCmd.Flags().Bool("overwrite", false, "rewrite notes that already exist")

	root.AddCommand(fetchCmd, organizeCmd, diagramsCmd, syncCmd)
	return root
}

// loadConfig reads the environment and applies the flags that were set on cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	changed := func(name string) bool {
		return flags.Lookup(name) != nil && flags.Changed(name)
	}

	if changed("output") {
		cfg.SubmissionsFile, _ = flags.GetString("output")
	}
	if changed("input") {
		cfg.SubmissionsFile, _ = flags.GetString("input")
	}
	if changed("dir") {
		dir, _ := flags.GetString("dir")
		if cmd.Name() == "diagrams" {
			cfg.DesignBaseDir = dir
		} else {
			cfg.DSADir = dir
		}
	}
	if changed("schedule") {
		cfg.ScheduleCron, _ = flags.GetString("schedule")
	}
	if changed("overwrite") {
		cfg.Overwrite, _ = flags.GetBool("overwrite")
	}
	return cfg, nil
}

func runFetch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fetch, cleanup, err := di.InitializeFetch(cfg)
	if err != nil {
		return fmt.Errorf("initialize fetch: %w", err)
	}
	defer cleanup()

	result, err := fetch.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d accepted submissions (%d with details) to %s\n",
		result.Accepted, result.Enriched, cfg.SubmissionsFile)
	if result.Incomplete {
		fmt.Fprintln(cmd.OutOrStdout(), "Listing stopped early; the file holds a partial result.")
	}
	return nil
}

func runOrganize(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	result, err := di.InitializeOrganize(cfg).Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Organized %d unique problems into %s: %d created, %d skipped, %d failed\n",
		result.Unique, cfg.DSADir, result.Created, result.Skipped, result.Failed)
	return nil
}

func runDiagrams(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	result, err := di.InitializeDiagrams(cfg).Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d diagrams, stripped %d READMEs, %d failed\n",
		result.Diagrams, result.Stripped, result.Failed)
	return nil
}

func runSync(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	application, cleanup, err := di.InitializeSync(cfg)
	if err != nil {
		return fmt.Errorf("initialize sync: %w", err)
	}
	defer cleanup()

	return application.Run(cmd.Context())
}
