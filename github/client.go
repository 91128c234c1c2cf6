// Package github retrieves release name lists from the GitHub releases API.
//
// It is the network-owning collaborator of the relq engine: all it produces
// is a plain []string of release names for the engine to match against.
// Timeouts, status handling and retries live here; pagination is not
// implemented (the first page is enough for per-repository release counts).
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// repoRe validates OWNER/REPO terms; the whole term must match.
var repoRe = regexp.MustCompile(`^([^/]+)/([^/]+)$`)

const (
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 30 * time.Second
	defaultRetries = 2
)

// Options configures a Client. The zero value targets the public GitHub API
// with a 30s timeout and 2 retries on transient failures.
type Options struct {
	// BaseURL overrides the API endpoint (useful for GitHub Enterprise
	// and for tests). Defaults to https://api.github.com.
	BaseURL string

	// Token is an optional bearer token for private repositories and
	// higher rate limits.
	Token string

	// Timeout bounds each HTTP request including retries of a single
	// attempt. Defaults to 30s.
	Timeout time.Duration

	// Retries is the number of retry attempts on transient failures.
	// Zero means the default (2); negative disables retries.
	Retries int

	// Logger receives debug-level request logging. Nil disables it.
	Logger *zerolog.Logger
}

// Client fetches release lists. Safe for concurrent use.
type Client struct {
	http  *retryablehttp.Client
	base  string
	token string
	log   zerolog.Logger
}

// NewClient builds a Client with defaults applied.
func NewClient(opt Options) *Client {
	if opt.BaseURL == "" {
		opt.BaseURL = defaultBaseURL
	}

	if opt.Timeout <= 0 {
		opt.Timeout = defaultTimeout
	}

	switch {
	case opt.Retries == 0:
		opt.Retries = defaultRetries
	case opt.Retries < 0:
		opt.Retries = 0
	}

	if opt.Logger == nil {
		nop := zerolog.Nop()
		opt.Logger = &nop
	}

	hc := retryablehttp.NewClient()
	hc.RetryMax = opt.Retries
	hc.HTTPClient.Timeout = opt.Timeout
	hc.Logger = nil

	return &Client{
		http:  hc,
		base:  strings.TrimSuffix(opt.BaseURL, "/"),
		token: opt.Token,
		log:   *opt.Logger,
	}
}

// release is the slice of the GitHub release object this package cares about.
type release struct {
	Name    string `json:"name"`
	TagName string `json:"tag_name"`
}

// Releases returns the release names of a repository given as "OWNER/REPO".
// A release's name field is used when set, falling back to its tag name
// (names are frequently blank); releases with neither are skipped.
// The returned labels are raw strings; parsing belongs to the engine.
func (c *Client) Releases(ctx context.Context, repo string) ([]string, error) {
	m := repoRe.FindStringSubmatch(repo)
	if m == nil {
		return nil, errors.Errorf("repository must be OWNER/REPO, got %q", repo)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases", c.base, m[1], m[2])

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build releases request")
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.log.Debug().Str("repo", repo).Str("url", url).Msg("fetching releases")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "get releases for %s", repo)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.Errorf("no such repository %s", repo)

	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return nil, errors.Errorf("received response code %d from GET %s", resp.StatusCode, url)
	}

	// A non-array payload (e.g. an error object) fails the decode here,
	// which is exactly the malformed-payload contract.
	var releases []release
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, errors.Wrapf(err, "decode releases for %s", repo)
	}

	out := make([]string, 0, len(releases))
	for _, r := range releases {
		name := r.Name
		if name == "" {
			name = r.TagName
		}

		if name == "" {
			continue
		}

		out = append(out, name)
	}

	c.log.Debug().Str("repo", repo).Int("count", len(out)).Msg("releases fetched")

	return out, nil
}
