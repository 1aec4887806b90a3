package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xrpicker/xrpicker/internal/openxr"
)

func init() {
	layerCmd.AddCommand(newLayerCmd("toggle", "Enable a disabled layer or disable an enabled one", (*openxr.APILayer).ToggleLayer))
	layerCmd.AddCommand(newLayerCmd("enable", "Enable an API layer", (*openxr.APILayer).Enable))
	layerCmd.AddCommand(newLayerCmd("disable", "Disable an API layer", (*openxr.APILayer).Disable))
	rootCmd.AddCommand(layerCmd)
}

var layerCmd = &cobra.Command{
	Use:   "layer",
	Short: "Enable or disable implicit API layers",
	Long: `Implicit API layers are turned off by renaming their manifest from
<name>.json to <name>.disabled, and back on by renaming it again.`,
}

func newLayerCmd(name, short string, apply func(*openxr.APILayer) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <layer>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, app, err := loadAppState()
			if err != nil {
				return err
			}
			l, err := app.FindAPILayer(args[0])
			if err != nil {
				return err
			}
			if err := apply(l); err != nil {
				return fmt.Errorf("%s %s: %w", name, l.Name(), err)
			}

			state := mutedStyle.Render("disabled")
			if p.APILayerActiveState(l).IsActive() {
				state = successStyle.Render("enabled")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now %s\n", markOK, nameStyle.Render(l.Name()), state)
			return nil
		},
	}
}
