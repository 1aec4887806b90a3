package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/xrpicker/xrpicker/internal/appstate"
	"github.com/xrpicker/xrpicker/internal/openxr"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List runtimes and API layers",
	Long: `List every OpenXR runtime and implicit API layer found in the XDG config
directories, the system configuration directory, and your extra paths.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

type runtimeEntry struct {
	Index        int      `json:"index"`
	Name         string   `json:"name"`
	Active       bool     `json:"active"`
	ManifestPath string   `json:"manifest_path"`
	OriginalPath string   `json:"original_path"`
	Libraries    []string `json:"libraries"`
}

type layerEntry struct {
	Index        int      `json:"index"`
	Name         string   `json:"name"`
	Enabled      bool     `json:"enabled"`
	ManifestPath string   `json:"manifest_path"`
	OriginalPath string   `json:"original_path"`
	Libraries    []string `json:"libraries"`
	Description  string   `json:"description,omitempty"`
}

type errorEntry struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

type listOutput struct {
	Runtimes                []runtimeEntry `json:"runtimes"`
	APILayers               []layerEntry   `json:"api_layers"`
	RuntimeErrors           []errorEntry   `json:"runtime_errors"`
	APILayerErrors          []errorEntry   `json:"api_layer_errors"`
	ActiveRuntimeManifests  []string       `json:"active_runtime_manifests"`
	ActiveAPILayerManifests []string       `json:"active_api_layer_manifests"`
}

func runList(cmd *cobra.Command, args []string) error {
	p, _, app, err := loadAppState()
	if err != nil {
		return err
	}
	if listJSON {
		return printListJSON(cmd.OutOrStdout(), p, app)
	}
	printList(cmd.OutOrStdout(), p, app)
	return nil
}

func buildListOutput(p openxr.Platform, app *appstate.AppState) listOutput {
	out := listOutput{
		Runtimes:                []runtimeEntry{},
		APILayers:               []layerEntry{},
		RuntimeErrors:           errorEntries(app.RuntimeErrors),
		APILayerErrors:          errorEntries(app.APILayerErrors),
		ActiveRuntimeManifests:  app.ActiveRuntimeData.Manifests(),
		ActiveAPILayerManifests: p.ActiveAPILayerManifests(),
	}
	for i, r := range app.Runtimes {
		out.Runtimes = append(out.Runtimes, runtimeEntry{
			Index:        i + 1,
			Name:         r.Name(),
			Active:       p.RuntimeActiveState(r, app.ActiveRuntimeData).IsActive(),
			ManifestPath: r.ManifestPath(),
			OriginalPath: r.OriginalPath(),
			Libraries:    r.Libraries(),
		})
	}
	for i, l := range app.APILayers {
		out.APILayers = append(out.APILayers, layerEntry{
			Index:        i + 1,
			Name:         l.Name(),
			Enabled:      p.APILayerActiveState(l).IsActive(),
			ManifestPath: l.ManifestPath(),
			OriginalPath: l.OriginalPath(),
			Libraries:    l.Libraries(),
			Description:  l.Manifest().APILayer.Description,
		})
	}
	if out.ActiveRuntimeManifests == nil {
		out.ActiveRuntimeManifests = []string{}
	}
	if out.ActiveAPILayerManifests == nil {
		out.ActiveAPILayerManifests = []string{}
	}
	return out
}

func errorEntries(errs []openxr.ManifestError) []errorEntry {
	entries := make([]errorEntry, 0, len(errs))
	for _, e := range errs {
		entries = append(entries, errorEntry{Path: e.Path, Error: e.Err.Error()})
	}
	return entries
}

func printListJSON(w io.Writer, p openxr.Platform, app *appstate.AppState) error {
	data, err := json.MarshalIndent(buildListOutput(p, app), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printList(w io.Writer, p openxr.Platform, app *appstate.AppState) {
	fmt.Fprintln(w, titleStyle.Render("Runtimes"))
	if len(app.Runtimes) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  No runtimes found."))
	}
	for i, r := range app.Runtimes {
		marker := "   "
		if p.RuntimeActiveState(r, app.ActiveRuntimeData).IsActive() {
			marker = " " + markOK + " "
		}
		fmt.Fprintf(w, "%s%2d. %s", marker, i+1, nameStyle.Render(r.Name()))
		if marker != "   " {
			fmt.Fprint(w, successStyle.Render(" (active)"))
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, detailStyle.Render(r.Describe()))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("API layers"))
	if len(app.APILayers) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  No implicit API layers found."))
	}
	for i, l := range app.APILayers {
		state := mutedStyle.Render(" (disabled)")
		marker := "   "
		if p.APILayerActiveState(l).IsActive() {
			state = successStyle.Render(" (enabled)")
			marker = " " + markOK + " "
		}
		fmt.Fprintf(w, "%s%2d. %s%s\n", marker, i+1, nameStyle.Render(l.Name()), state)
		fmt.Fprintln(w, detailStyle.Render(l.Describe()))
	}

	if len(app.RuntimeErrors)+len(app.APILayerErrors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, warningStyle.Render("Problems"))
		for e := range app.Errors() {
			fmt.Fprintf(w, " %s %s\n", markWarn, e.Error())
		}
	}
}
