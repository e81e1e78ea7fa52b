package models

// View describes a resource view: a path pattern plus the URL of the
// viewer resource that renders matching resources.
type View struct {
	// ID uniquely identifies the view.
	ID string `json:"id,omitempty"`

	// Title is an optional display title for the view.
	Title string `json:"title,omitempty"`

	// Path is the glob-style pattern a resource path must match for the
	// view to apply (e.g. "**.json").
	Path string `json:"path"`

	// Viewer is the URL of the viewer resource opened for matching
	// resources.
	Viewer string `json:"viewer"`
}

// Plugin describes a custom plugin contributed through the project
// configuration. The resolver carries plugins through untouched; the UI
// layer interprets them.
type Plugin struct {
	// ID uniquely identifies the plugin.
	ID string `json:"id"`

	// Title is the display title of the plugin.
	Title string `json:"title,omitempty"`

	// URL is the resource loaded when the plugin is activated.
	URL string `json:"url,omitempty"`

	// Event is an optional event name fired instead of loading URL.
	Event string `json:"event,omitempty"`

	// Environments restricts the plugin to the named environments
	// (e.g. "edit", "preview", "live"). Empty means all.
	Environments []string `json:"environments,omitempty"`

	// ExcludePaths hides the plugin on matching resource paths.
	ExcludePaths []string `json:"excludePaths,omitempty"`

	// IncludePaths shows the plugin only on matching resource paths.
	IncludePaths []string `json:"includePaths,omitempty"`
}
