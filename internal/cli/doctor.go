package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xrpicker/xrpicker/internal/appstate"
	"github.com/xrpicker/xrpicker/internal/manifest"
	"github.com/xrpicker/xrpicker/internal/openxr"
	"github.com/xrpicker/xrpicker/internal/platform"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose OpenXR runtime configuration",
	Long: `Show the directories searched, the state of your active_runtime.json, and
why any manifest failed to load.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, state, app, err := loadAppState()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		checkSearchRoots(w, p.Roots())
		checkExtraPaths(w, state)
		checkMarker(w, p, app)
		checkManifestErrors(w, app)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func checkSearchRoots(w io.Writer, roots openxr.SearchRoots) {
	fmt.Fprintln(w, titleStyle.Render("Search directories"))
	for _, dir := range append(roots.Dirs(openxr.PathSuffix), roots.Dirs(openxr.ImplicitLayerSuffix)...) {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			fmt.Fprintf(w, " %s %s\n", markOK, dir)
		} else {
			fmt.Fprintf(w, " %s %s\n", mutedStyle.Render("-"), mutedStyle.Render(dir+" (missing)"))
		}
	}
	fmt.Fprintln(w)
}

func checkExtraPaths(w io.Writer, state *appstate.PersistentState) {
	if len(state.Paths) == 0 {
		return
	}
	fmt.Fprintln(w, titleStyle.Render("Extra paths"))
	for p := range state.ExtraPaths() {
		if _, err := os.Stat(p); err != nil {
			fmt.Fprintf(w, " %s %s: %v\n", markFail, p, err)
			continue
		}
		fmt.Fprintf(w, " %s %s\n", markOK, p)
	}
	fmt.Fprintln(w)
}

func checkMarker(w io.Writer, p *openxr.XDGPlatform, app *appstate.AppState) {
	fmt.Fprintln(w, titleStyle.Render("Active runtime"))
	marker := p.MarkerPath()
	switch {
	case marker == "":
		fmt.Fprintf(w, " %s no user config directory; cannot set an active runtime\n", markFail)
	case platform.IsDangling(marker):
		target, _ := platform.ReadSymlinkTarget(marker)
		fmt.Fprintf(w, " %s %s points at missing %s\n", markFail, marker, target)
	case platform.IsSymlink(marker):
		target, _ := platform.ReadSymlinkTarget(marker)
		fmt.Fprintf(w, " %s %s%s%s\n", markOK, marker, openxr.FileIndirectionArrow, target)
	default:
		if _, err := os.Stat(marker); err == nil {
			fmt.Fprintf(w, " %s %s is a regular file\n", markOK, marker)
		} else {
			fmt.Fprintf(w, " %s %s does not exist\n", mutedStyle.Render("-"), marker)
		}
	}

	manifests := app.ActiveRuntimeData.Manifests()
	if len(manifests) == 0 {
		fmt.Fprintf(w, " %s no active runtime in any search directory\n", markWarn)
	} else if r := app.ActiveRuntime(); r != nil {
		fmt.Fprintf(w, " %s active: %s (%s)\n", markOK, nameStyle.Render(r.Name()), manifests[0])
	} else {
		fmt.Fprintf(w, " %s active manifest %s did not load\n", markFail, manifests[0])
	}
	fmt.Fprintln(w)
}

func checkManifestErrors(w io.Writer, app *appstate.AppState) {
	fmt.Fprintln(w, titleStyle.Render("Manifests"))
	fmt.Fprintf(w, " %d runtime(s), %d API layer(s)\n", len(app.Runtimes), len(app.APILayers))
	if len(app.RuntimeErrors)+len(app.APILayerErrors) == 0 {
		fmt.Fprintf(w, " %s all manifests loaded\n", markOK)
		return
	}
	for _, e := range app.RuntimeErrors {
		reportManifestError(w, manifest.KindRuntime, e)
	}
	for _, e := range app.APILayerErrors {
		reportManifestError(w, manifest.KindAPILayer, e)
	}
}

func reportManifestError(w io.Writer, kind manifest.Kind, e openxr.ManifestError) {
	fmt.Fprintf(w, " %s %s\n", markFail, e.Path)
	fmt.Fprintf(w, "     %s\n", e.Err)

	result, err := manifest.ValidateFile(kind, e.Path)
	if err != nil || result.Valid {
		return
	}
	for _, issue := range result.Issues {
		loc := issue.Path
		if loc == "" {
			loc = "/"
		}
		fmt.Fprintf(w, "     %s %s: %s\n", mutedStyle.Render(issue.Keyword), loc, issue.Message)
	}
}
