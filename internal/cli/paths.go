package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xrpicker/xrpicker/internal/manifest"
)

func init() {
	pathsCmd.AddCommand(pathsAddCmd)
	pathsCmd.AddCommand(pathsRemoveCmd)
	pathsCmd.AddCommand(pathsListCmd)
	rootCmd.AddCommand(pathsCmd)
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Manage extra manifest paths",
	Long: `Extra paths are manifest files outside the standard search directories,
such as a runtime built from source. They are remembered between runs.`,
}

var pathsAddCmd = &cobra.Command{
	Use:   "add <manifest>...",
	Short: "Remember one or more manifest files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := loadPersistentState()
		if err != nil {
			return err
		}

		var added []string
		for _, arg := range args {
			abs, err := filepath.Abs(arg)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", arg, err)
			}
			if _, err := os.Stat(abs); err != nil {
				return fmt.Errorf("checking %s: %w", arg, err)
			}
			if !loadsAsManifest(abs) {
				logger.Warn("file does not load as a runtime or API layer manifest", "path", abs)
			}
			added = append(added, abs)
		}

		state.AppendNewExtraPaths(added...)
		if err := state.Save(statePath()); err != nil {
			return err
		}
		for _, p := range added {
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s\n", markOK, p)
		}
		return nil
	},
}

var pathsRemoveCmd = &cobra.Command{
	Use:   "remove <manifest>",
	Short: "Forget a manifest file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := loadPersistentState()
		if err != nil {
			return err
		}

		path := args[0]
		if !state.RemoveExtraPath(path) {
			abs, err := filepath.Abs(path)
			if err != nil || !state.RemoveExtraPath(abs) {
				return fmt.Errorf("%s is not an extra path", path)
			}
			path = abs
		}
		if err := state.Save(statePath()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %s\n", markOK, path)
		return nil
	},
}

var pathsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the remembered manifest files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := loadPersistentState()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if len(state.Paths) == 0 {
			fmt.Fprintln(w, mutedStyle.Render("No extra paths."))
			return nil
		}
		for p := range state.ExtraPaths() {
			mark := markOK
			if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
				mark = markFail
			}
			fmt.Fprintf(w, "%s %s\n", mark, p)
		}
		return nil
	},
}

func loadsAsManifest(path string) bool {
	if _, err := manifest.LoadRuntime(path); err == nil {
		return true
	}
	_, err := manifest.LoadAPILayer(path)
	return err == nil
}
