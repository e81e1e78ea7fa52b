// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 hlxtools authors

package models

import "slices"

// Snapshot is the resolved, immutable-for-the-session project
// configuration. It is constructed once per resolver call and never
// mutated afterwards.
//
// The JSON form of a Snapshot is a stable contract relied on by external
// tooling: it contains exactly the tagged fields below, with optional
// fields omitted when the corresponding derivation produced no value.
// Resolution state (Authorized, Extended, Ready) is not part of the
// serialized record.
type Snapshot struct {
	// Owner, Repo and Ref identify the project.
	Owner string `json:"owner,omitempty"`
	Repo  string `json:"repo,omitempty"`
	Ref   string `json:"ref"`

	// GitURL is the project's git repository URL.
	GitURL string `json:"giturl,omitempty"`

	// DevURL is the absolute URL form of DevOrigin.
	DevURL string `json:"devUrl"`

	// MountPoint is the primary content-source mount point; empty when
	// MountPoints is empty.
	MountPoint string `json:"mountpoint,omitempty"`

	// MountPoints lists all configured mount points in priority order.
	// Always present, possibly empty.
	MountPoints []string `json:"mountpoints"`

	// Project is the human-readable project name.
	Project string `json:"project,omitempty"`

	// Host is the public production hostname (hostname component only).
	Host string `json:"host,omitempty"`

	// PreviewHost is the custom preview hostname, when configured.
	PreviewHost string `json:"previewHost,omitempty"`

	// InnerHost is the effective preview hostname: PreviewHost when
	// configured, the standard inner host otherwise.
	InnerHost string `json:"innerHost,omitempty"`

	// StdInnerHost is the derived standard preview hostname. Present
	// only when both Owner and Repo are set.
	StdInnerHost string `json:"stdInnerHost,omitempty"`

	// LiveHost is the custom live hostname, when configured.
	LiveHost string `json:"liveHost,omitempty"`

	// OuterHost is the effective live hostname: LiveHost when
	// configured, else the legacy alias, else the standard outer host.
	OuterHost string `json:"outerHost,omitempty"`

	// StdOuterHost is the derived standard live hostname. Present only
	// when both Owner and Repo are set.
	StdOuterHost string `json:"stdOuterHost,omitempty"`

	// DevMode and DevOrigin describe the local development environment.
	DevMode   bool   `json:"devMode"`
	DevOrigin string `json:"devOrigin"`

	// AdminVersion is the pinned admin service API version, if any.
	AdminVersion string `json:"adminVersion,omitempty"`

	// Lang is the resolved UI language.
	Lang string `json:"lang"`

	// Views lists the resource views in match order: custom views first,
	// the built-in default view last.
	Views []View `json:"views"`

	// Plugins lists custom plugin descriptors. Not part of the
	// serialized snapshot record.
	Plugins []Plugin `json:"-"`

	// Authorized reports whether the remote configuration fetch was
	// answered with HTTP 200. A missing remote configuration (404) does
	// not change it.
	Authorized bool `json:"-"`

	// Extended is the extension marker: a millisecond timestamp stamped
	// when the remote configuration document was merged. Non-empty means
	// the snapshot is already resolved and later resolver calls with the
	// same base identity skip the fetch.
	Extended string `json:"-"`

	// Ready reports that resolution completed. Transitions false to
	// true exactly once.
	Ready bool `json:"-"`
}

// BaseOptions returns the options record a caller passes to resolve the
// same project again. The extension marker is carried over so the
// resolver does not repeat the remote fetch, and re-resolution must
// reproduce the snapshot's derived fields: the effective outer host is
// carried (it may originate from the legacy alias, which the snapshot
// does not record separately) and so are the custom views. The built-in
// default view is re-appended on resolution and therefore excluded.
func (s *Snapshot) BaseOptions() Options {
	var customViews []View
	if n := len(s.Views); n > 1 {
		customViews = slices.Clone(s.Views[:n-1])
	}

	return Options{
		Owner:        s.Owner,
		Repo:         s.Repo,
		Ref:          s.Ref,
		GitURL:       s.GitURL,
		MountPoints:  s.MountPoints,
		Project:      s.Project,
		Host:         s.Host,
		PreviewHost:  s.PreviewHost,
		LiveHost:     s.LiveHost,
		OuterHost:    s.OuterHost,
		DevMode:      s.DevMode,
		DevOrigin:    s.DevOrigin,
		AdminVersion: s.AdminVersion,
		Lang:         s.Lang,
		Views:        customViews,
		Plugins:      s.Plugins,
		Extended:     s.Extended,
	}
}
