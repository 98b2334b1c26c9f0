package resolver

import "fmt"

// Upload-oriented module identifiers with an overview page.
const (
	ModuleFiles  = "files"
	ModuleVideos = "videos"
	ModuleImages = "images"
)

// uploadModules is the fixed iteration order for overview checks.
var uploadModules = []string{ModuleFiles, ModuleVideos, ModuleImages}

// overviewRouteNames maps each upload module to the route generating
// its overview page. This table must stay in sync with the module
// registry; a miss is an internal consistency failure, not bad input.
var overviewRouteNames = map[string]string{
	ModuleFiles:  "overview_files",
	ModuleVideos: "overview_videos",
	ModuleImages: "overview_images",
}

// UnsupportedModuleNameError reports a module identifier with no known
// overview route. It signals the module-to-route table is out of sync
// with the module registry and should abort the calling operation.
type UnsupportedModuleNameError struct {
	Module string
}

// Error implements the error interface.
func (e *UnsupportedModuleNameError) Error() string {
	return fmt.Sprintf("resolver: unsupported module name %q", e.Module)
}

// Is checks if the error matches the target.
func (e *UnsupportedModuleNameError) Is(target error) bool {
	_, ok := target.(*UnsupportedModuleNameError)
	return ok
}

// OverviewRouteName returns the overview route registered for the given
// upload module. Unknown modules fail with *UnsupportedModuleNameError.
func OverviewRouteName(module string) (string, error) {
	name, ok := overviewRouteNames[module]
	if !ok {
		return "", &UnsupportedModuleNameError{Module: module}
	}
	return name, nil
}
