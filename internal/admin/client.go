// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 hlxtools authors

package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/hlxtools/sidekick/internal/logger"
	"github.com/hlxtools/sidekick/models"
)

var (
	// ErrNotFound means the project has no custom configuration
	// document. Callers treat this as a normal, non-error condition.
	ErrNotFound = errors.New("project configuration not found")

	// ErrUnauthorized means the admin service refused the request
	// (HTTP 401 or 403).
	ErrUnauthorized = errors.New("configuration fetch unauthorized")

	// ErrStatus wraps any other unexpected response status.
	ErrStatus = errors.New("unexpected admin response")
)

// DefaultBaseURL is the production admin service endpoint.
const DefaultBaseURL = "https://admin.hlx.page"

const defaultTimeout = 15 * time.Second

// ClientConfig holds the settings for the admin HTTP client.
type ClientConfig struct {
	// BaseURL of the admin service. Defaults to DefaultBaseURL.
	BaseURL string

	// Timeout for a single configuration fetch. Defaults to 15s.
	Timeout time.Duration
}

type adminClient struct {
	client *resty.Client
	log    *logger.Logger
}

// NewClient builds an admin service Client from cfg. Zero-value fields
// fall back to production defaults, so NewClient(ClientConfig{}, log) is
// a valid production client.
func NewClient(cfg ClientConfig, log *logger.Logger) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &adminClient{client: cli, log: log}
}

func (a *adminClient) FetchConfig(ctx context.Context, opts models.Options) ([]byte, error) {
	req := a.client.R().
		SetContext(ctx).
		SetHeader("x-request-id", uuid.NewString())
	if opts.AdminVersion != "" {
		req.SetQueryParam("version", opts.AdminVersion)
	}

	target := configURL(opts)
	resp, err := req.Get(target)
	if err != nil {
		return nil, fmt.Errorf("fetch project config: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	a.log.Debug().
		Str("url", target).
		Int("bytes", len(resp.Body())).
		Msg("fetched project config")

	return resp.Body(), nil
}

// configURL returns the fetch target: the local development route when
// dev mode is set, the admin service route otherwise. Absolute URLs
// bypass the client's base URL.
func configURL(opts models.Options) string {
	if opts.DevMode {
		return strings.TrimRight(opts.DevOrigin, "/") + "/tools/sidekick/config.json"
	}
	return fmt.Sprintf("/sidekick/%s/%s/%s/config.json",
		url.PathEscape(opts.Owner),
		url.PathEscape(opts.Repo),
		url.PathEscape(opts.Ref),
	)
}

func mapHTTPError(resp *resty.Response) error {
	switch code := resp.StatusCode(); {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	default:
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrStatus, resp.StatusCode(), body)
	}
}
