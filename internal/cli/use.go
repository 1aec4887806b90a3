package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var useCmd = &cobra.Command{
	Use:   "use <runtime>",
	Short: "Make a runtime the active one",
	Long: `Point your active_runtime.json at a runtime. Select the runtime by its
number in 'list', its name, or its manifest path. Any previous active_runtime.json
that was a regular file is kept next to it as a timestamped backup.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, app, err := loadAppState()
		if err != nil {
			return err
		}
		r, err := app.FindRuntime(args[0])
		if err != nil {
			return err
		}
		if err := r.MakeActive(); err != nil {
			return fmt.Errorf("activating %s: %w", r.Name(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Active runtime: %s\n", markOK, nameStyle.Render(r.Name()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
