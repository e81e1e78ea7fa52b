// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 hlxtools authors

package models

// Options is the caller-supplied project options record consumed by the
// configuration resolver. Every field is optional; Owner and Repo together
// unlock remote-fetch behavior and standard hostname derivation.
//
// The JSON tags serve two purposes: decoding a remote per-project
// configuration document fetched from the admin service, and decoding a
// local options file passed on the command line. Both use the same keys.
type Options struct {
	// Owner is the organization or user owning the project repository.
	Owner string `json:"owner,omitempty" env:"OWNER"`

	// Repo is the project repository name.
	Repo string `json:"repo,omitempty" env:"REPO"`

	// Ref is the git branch or reference. Defaults to "main" when empty.
	Ref string `json:"ref,omitempty" env:"REF"`

	// GitURL is the URL of the project's git repository.
	GitURL string `json:"giturl,omitempty" env:"GITURL"`

	// MountPoints lists the content-source mount points of the project,
	// in priority order. The first entry is the primary mount point.
	MountPoints []string `json:"mountpoints,omitempty" env:"MOUNTPOINTS"`

	// Project is the human-readable project name shown in the UI.
	Project string `json:"project,omitempty" env:"PROJECT"`

	// Host is the public production hostname. May be supplied as a full
	// URL; the resolver reduces it to its hostname component.
	Host string `json:"host,omitempty" env:"HOST"`

	// PreviewHost is an optional custom preview ("inner") hostname that
	// takes precedence over the derived standard inner host.
	PreviewHost string `json:"previewHost,omitempty" env:"PREVIEW_HOST"`

	// LiveHost is an optional custom live ("outer") hostname that takes
	// precedence over the derived standard outer host.
	LiveHost string `json:"liveHost,omitempty" env:"LIVE_HOST"`

	// Outer is the legacy name for LiveHost, still accepted from older
	// remote configuration documents. Consulted only when LiveHost is
	// empty.
	Outer string `json:"outer,omitempty"`

	// OuterHost is the effective live hostname of a previously resolved
	// snapshot, decoded from its serialized record. Consulted after
	// LiveHost and Outer so that re-deriving from serialized fields
	// reproduces the same outer host even when it originated from the
	// legacy alias.
	OuterHost string `json:"outerHost,omitempty"`

	// DevMode routes the remote configuration fetch to the local
	// development origin instead of the admin service.
	DevMode bool `json:"devMode,omitempty" env:"DEV_MODE"`

	// DevOrigin is the local development origin. Defaults to
	// http://localhost:3000 when empty.
	DevOrigin string `json:"devOrigin,omitempty" env:"DEV_ORIGIN"`

	// AdminVersion optionally pins the admin service API version used
	// for the configuration fetch.
	AdminVersion string `json:"adminVersion,omitempty" env:"ADMIN_VERSION"`

	// Lang is the UI language. When empty the resolver falls back to the
	// runtime-detected system language.
	Lang string `json:"lang,omitempty" env:"LANG"`

	// Views lists custom special views. They are prepended to the
	// built-in default view and therefore matched first.
	Views []View `json:"specialViews,omitempty"`

	// Plugins lists custom plugin descriptors contributed by the remote
	// configuration document or the caller.
	Plugins []Plugin `json:"plugins,omitempty"`

	// Extended is the extension marker carried over from a previously
	// resolved snapshot. When non-empty the resolver treats the remote
	// configuration as already merged and does not fetch again.
	Extended string `json:"_extended,omitempty"`
}
