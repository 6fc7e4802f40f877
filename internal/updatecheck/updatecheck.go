// Package updatecheck queries the release feed for a newer launcher build.
// The whole feature compiles out with -tags noupdatecheck, matching builds
// distributed through package managers that handle updates themselves.
package updatecheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEndpoint = "https://api.github.com/repos/Mrmayman/quantumlauncher/releases/latest"
	userAgent       = "QuantumLauncher/1.0"
)

// Result describes the outcome of a completed update check.
type Result struct {
	UpdateAvailable bool
	Current         string
	Latest          string
	URL             string
}

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Checker queries a release feed over HTTP.
type Checker struct {
	endpoint string
	client   *http.Client
}

// NewChecker builds a checker against the default release feed.
func NewChecker() *Checker {
	return NewCheckerWithEndpoint(defaultEndpoint)
}

// NewCheckerWithEndpoint builds a checker against a custom feed (tests).
func NewCheckerWithEndpoint(endpoint string) *Checker {
	return &Checker{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Check fetches the latest release and compares it to the current version.
func (c *Checker) Check(ctx context.Context, current string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build update request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch release feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release feed returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read release feed: %w", err)
	}

	var rel release
	if err := json.Unmarshal(body, &rel); err != nil {
		return nil, fmt.Errorf("parse release feed: %w", err)
	}
	if strings.TrimSpace(rel.TagName) == "" {
		return nil, fmt.Errorf("release feed missing tag name")
	}

	return &Result{
		UpdateAvailable: CompareVersions(current, rel.TagName) < 0,
		Current:         current,
		Latest:          rel.TagName,
		URL:             rel.HTMLURL,
	}, nil
}

// CompareVersions compares dotted numeric versions, tolerating a leading
// "v" and differing segment counts. It returns -1, 0, or 1.
func CompareVersions(a, b string) int {
	as := splitVersion(a)
	bs := splitVersion(b)
	for i := 0; i < len(as) || i < len(bs); i++ {
		var av, bv int
		if i < len(as) {
			av = as[i]
		}
		if i < len(bs) {
			bv = bs[i]
		}
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
	}
	return 0
}

func splitVersion(v string) []int {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ".")
	nums := make([]int, 0, len(parts))
	for _, part := range parts {
		// Trailing pre-release labels ("1.2.3-beta") count as the number
		// before the dash.
		if dash := strings.IndexByte(part, '-'); dash >= 0 {
			part = part[:dash]
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			n = 0
		}
		nums = append(nums, n)
	}
	return nums
}
