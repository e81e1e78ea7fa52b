// Package viewer locates the bundled viewer resources referenced by the
// built-in resource views.
package viewer

// JSONViewURL returns the URL of the bundled JSON viewer resource used
// by the default view descriptor.
func JSONViewURL() string {
	return "/views/json/json.html"
}
