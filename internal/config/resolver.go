// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 hlxtools authors

package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"

	"github.com/hlxtools/sidekick/internal/admin"
	"github.com/hlxtools/sidekick/internal/i18n"
	"github.com/hlxtools/sidekick/internal/logger"
	"github.com/hlxtools/sidekick/internal/viewer"
	"github.com/hlxtools/sidekick/models"
)

const (
	defaultRef       = "main"
	defaultDevOrigin = "http://localhost:3000"
)

// Deps are the resolver's collaborators. Zero-value fields fall back to
// production defaults, so Resolve(ctx, opts, Deps{}) is valid.
type Deps struct {
	// Fetcher fetches the remote project configuration document.
	// Defaults to a production admin client.
	Fetcher admin.Client

	// Detector supplies the fallback UI language. Defaults to the
	// system language detector.
	Detector i18n.Detector

	// Log receives debug entries for swallowed fetch failures.
	// Defaults to a no-op logger.
	Log *logger.Logger

	// Now supplies the extension-marker timestamp. Defaults to
	// time.Now.
	Now func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Fetcher == nil {
		d.Fetcher = admin.NewClient(admin.ClientConfig{}, d.Log)
	}
	if d.Detector == nil {
		d.Detector = i18n.SystemDetector{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// Resolve produces the session configuration snapshot for opts.
//
// When owner and repo are both set and opts is not already extended, at
// most one remote configuration fetch is issued. Fetch failures never
// propagate: a missing document (404) is a normal condition, any other
// non-200 status only clears the Authorized flag, and transport-level
// failures are logged at debug level and otherwise ignored. Resolve
// always returns a ready snapshot.
//
// Apart from the fetch, resolution is a pure function of opts: calling
// Resolve again with the returned snapshot's BaseOptions re-derives the
// same hostnames without touching the network.
func Resolve(ctx context.Context, opts models.Options, deps Deps) *models.Snapshot {
	return newSnapshotBuilder(opts, deps.withDefaults()).
		withDefaults().
		withRemote(ctx).
		withHosts().
		withViews().
		withMounts().
		withLang().
		build()
}

type snapshotBuilder struct {
	opts models.Options // working record; the remote document merges in
	base models.Options // protected identity fields, never overridden
	deps Deps

	snap models.Snapshot
}

func newSnapshotBuilder(opts models.Options, deps Deps) *snapshotBuilder {
	return &snapshotBuilder{opts: opts, base: opts, deps: deps}
}

func (b *snapshotBuilder) withDefaults() *snapshotBuilder {
	if b.opts.Ref == "" {
		b.opts.Ref = defaultRef
	}
	if b.opts.DevOrigin == "" {
		b.opts.DevOrigin = defaultDevOrigin
	}
	b.base.Ref = b.opts.Ref
	b.snap.Extended = b.opts.Extended
	return b
}

// withRemote performs the single configuration fetch and merges the
// returned document over the base options. Guarded by the extension
// marker: an already-extended record is treated as resolved.
func (b *snapshotBuilder) withRemote(ctx context.Context) *snapshotBuilder {
	if b.opts.Owner == "" || b.opts.Repo == "" || b.opts.Extended != "" {
		return b
	}

	body, err := b.deps.Fetcher.FetchConfig(ctx, b.opts)
	switch {
	case err == nil:
		b.snap.Authorized = true
		if mergeErr := b.mergeRemote(body); mergeErr != nil {
			b.deps.Log.Debug().Err(mergeErr).Msg("ignoring undecodable project config")
		}
	case errors.Is(err, admin.ErrNotFound):
		// No custom configuration; not an error.
	case errors.Is(err, admin.ErrUnauthorized), errors.Is(err, admin.ErrStatus):
		b.snap.Authorized = false
	default:
		b.deps.Log.Debug().Err(err).Msg("project config fetch failed")
	}

	return b
}

// mergeRemote merges the fetched document's fields over the working
// options. Owner, repo, ref, dev mode and the admin version pin always
// come from the base options, then the extension marker is stamped.
func (b *snapshotBuilder) mergeRemote(body []byte) error {
	var doc models.Options
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("decode project config: %w", err)
	}

	if err := mergo.Merge(&b.opts, doc, mergo.WithOverride); err != nil {
		return fmt.Errorf("merge project config: %w", err)
	}

	b.opts.Owner = b.base.Owner
	b.opts.Repo = b.base.Repo
	b.opts.Ref = b.base.Ref
	b.opts.DevMode = b.base.DevMode
	b.opts.AdminVersion = b.base.AdminVersion

	b.snap.Extended = strconv.FormatInt(b.deps.Now().UnixMilli(), 10)
	return nil
}

func (b *snapshotBuilder) withHosts() *snapshotBuilder {
	b.snap.Host = hostnameOf(b.opts.Host)
	b.snap.PreviewHost = b.opts.PreviewHost
	b.snap.LiveHost = b.opts.LiveHost

	domain := "hlx"
	if strings.HasSuffix(b.opts.PreviewHost, ".aem.page") {
		domain = "aem"
	}

	if prefix := hostPrefix(b.opts); prefix != "" {
		b.snap.StdInnerHost = fmt.Sprintf("%s.%s.page", prefix, domain)
		b.snap.StdOuterHost = fmt.Sprintf("%s.%s.live", prefix, domain)
	}

	b.snap.InnerHost = b.opts.PreviewHost
	if b.snap.InnerHost == "" {
		b.snap.InnerHost = b.snap.StdInnerHost
	}

	switch {
	case b.opts.LiveHost != "":
		b.snap.OuterHost = b.opts.LiveHost
	case b.opts.Outer != "":
		b.snap.OuterHost = b.opts.Outer
	case b.opts.OuterHost != "":
		// Carried over from a previously serialized snapshot.
		b.snap.OuterHost = b.opts.OuterHost
	default:
		b.snap.OuterHost = b.snap.StdOuterHost
	}

	return b
}

func (b *snapshotBuilder) withViews() *snapshotBuilder {
	// Custom views come first so they are matched before the built-in
	// default view.
	b.snap.Views = append(slices.Clone(b.opts.Views), models.View{
		ID:     "json",
		Path:   "**.json",
		Viewer: viewer.JSONViewURL(),
	})
	b.snap.Plugins = slices.Clone(b.opts.Plugins)
	return b
}

func (b *snapshotBuilder) withMounts() *snapshotBuilder {
	b.snap.MountPoints = slices.Clone(b.opts.MountPoints)
	if b.snap.MountPoints == nil {
		b.snap.MountPoints = []string{}
	}
	if len(b.snap.MountPoints) > 0 {
		b.snap.MountPoint = b.snap.MountPoints[0]
	}
	return b
}

func (b *snapshotBuilder) withLang() *snapshotBuilder {
	b.snap.Lang = b.opts.Lang
	if b.snap.Lang == "" {
		b.snap.Lang = b.deps.Detector.Detect()
	}
	return b
}

func (b *snapshotBuilder) build() *models.Snapshot {
	b.snap.Owner = b.opts.Owner
	b.snap.Repo = b.opts.Repo
	b.snap.Ref = b.opts.Ref
	b.snap.GitURL = b.opts.GitURL
	b.snap.Project = b.opts.Project
	b.snap.DevMode = b.opts.DevMode
	b.snap.DevOrigin = b.opts.DevOrigin
	b.snap.DevURL = devURL(b.opts.DevOrigin)
	b.snap.AdminVersion = b.opts.AdminVersion
	b.snap.Ready = true

	snap := b.snap
	return &snap
}

// hostPrefix returns "{ref}--{repo}--{owner}", or "" when owner or repo
// is missing and no standard hostname can be derived.
func hostPrefix(opts models.Options) string {
	if opts.Owner == "" || opts.Repo == "" {
		return ""
	}
	return fmt.Sprintf("%s--%s--%s", opts.Ref, opts.Repo, opts.Owner)
}

// hostnameOf reduces a host given as a full URL to its hostname
// component. Plain hostnames pass through untouched.
func hostnameOf(host string) string {
	if host == "" || !strings.Contains(host, "://") {
		return host
	}
	u, err := url.Parse(host)
	if err != nil || u.Hostname() == "" {
		return host
	}
	return u.Hostname()
}

// devURL normalizes the development origin into an absolute URL string.
func devURL(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Scheme == "" {
		return origin
	}
	return u.String()
}
