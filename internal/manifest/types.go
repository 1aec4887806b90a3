package manifest

// Kind identifies which flavour of manifest a file is. Its value doubles as
// the name of the JSON object that holds the manifest body.
type Kind string

const (
	KindRuntime  Kind = "runtime"
	KindAPILayer Kind = "api_layer"
)

// Manifest is the view shared by runtime and API layer manifests.
type Manifest interface {
	// LibraryPath is the library path exactly as written, which may be
	// relative to the manifest's directory.
	LibraryPath() string
	// DeclaredName is the self-reported name, empty if the manifest has none.
	DeclaredName() string
	// FormatVersion is the raw file_format_version string.
	FormatVersion() string
}

// RuntimeManifest is a parsed OpenXR runtime manifest.
type RuntimeManifest struct {
	FileFormatVersion string         `json:"file_format_version"`
	Runtime           RuntimeSection `json:"runtime"`
}

// RuntimeSection is the "runtime" object of a runtime manifest.
type RuntimeSection struct {
	LibraryPath string            `json:"library_path"`
	Name        string            `json:"name,omitempty"`
	Functions   map[string]string `json:"functions,omitempty"`
}

func (m *RuntimeManifest) LibraryPath() string   { return m.Runtime.LibraryPath }
func (m *RuntimeManifest) DeclaredName() string  { return m.Runtime.Name }
func (m *RuntimeManifest) FormatVersion() string { return m.FileFormatVersion }

// APILayerManifest is a parsed OpenXR API layer manifest.
type APILayerManifest struct {
	FileFormatVersion string          `json:"file_format_version"`
	APILayer          APILayerSection `json:"api_layer"`
}

// APILayerSection is the "api_layer" object of an API layer manifest.
type APILayerSection struct {
	Name                  string            `json:"name,omitempty"`
	LibraryPath           string            `json:"library_path"`
	APIVersion            string            `json:"api_version,omitempty"`
	ImplementationVersion string            `json:"implementation_version,omitempty"`
	Description           string            `json:"description,omitempty"`
	DisableEnvironment    string            `json:"disable_environment,omitempty"`
	EnableEnvironment     string            `json:"enable_environment,omitempty"`
	Functions             map[string]string `json:"functions,omitempty"`
}

func (m *APILayerManifest) LibraryPath() string   { return m.APILayer.LibraryPath }
func (m *APILayerManifest) DeclaredName() string  { return m.APILayer.Name }
func (m *APILayerManifest) FormatVersion() string { return m.FileFormatVersion }
