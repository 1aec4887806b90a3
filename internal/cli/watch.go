package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/xrpicker/xrpicker/internal/openxr"
	"github.com/xrpicker/xrpicker/internal/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the list up to date as manifests change",
	Long: `Print the runtime and API layer list, then print it again whenever a
manifest or active_runtime.json changes in any search directory. Runtimes keep
their numbers across refreshes. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		p, state, app, err := loadAppState()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		printList(w, p, app)

		roots := p.Roots()
		dirs := append(roots.Dirs(openxr.PathSuffix), roots.Dirs(openxr.ImplicitLayerSuffix)...)
		for extra := range state.ExtraPaths() {
			dirs = append(dirs, filepath.Dir(extra))
		}

		watcher, err := watch.New(watch.Config{
			Dirs:     dirs,
			Debounce: watchDebounce,
			Logger:   logger,
			OnChange: func(_ context.Context, changed []string) error {
				if err := app.Refresh(p, state); err != nil {
					return fmt.Errorf("refreshing: %w", err)
				}
				fmt.Fprintln(w)
				fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("-- %d change(s) at %s --", len(changed), time.Now().Format(time.TimeOnly))))
				printList(w, p, app)
				return nil
			},
		})
		if err != nil {
			return err
		}
		return watcher.Run(ctx)
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "Quiet period before refreshing")
	rootCmd.AddCommand(watchCmd)
}
