package librespot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the minimal diagnostic capability the client needs. It is
// satisfied by *logrus.Logger and logrus.FieldLogger, so callers can hand
// the client their own logger or capture output in tests.
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Client talks to the librespot-java player API.
//
// The host and port are fixed for the lifetime of the client. The underlying
// http.Client is caller-owned and shared across calls; each operation is a
// single independent request with no retries and no local state.
type Client struct {
	baseURL string
	http    *http.Client
	logger  Logger
}

// NewClient builds a Client for the API at host:port. A nil httpClient uses
// http.DefaultClient; pass a configured client to control timeouts.
func NewClient(httpClient *http.Client, host string, port int) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: "http://" + net.JoinHostPort(host, strconv.Itoa(port)),
		http:    httpClient,
		logger:  logrus.StandardLogger(),
	}
}

// SetLogger replaces the client's logger. The default is the logrus
// standard logger.
func (c *Client) SetLogger(logger Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// Soft-failure statuses the API emits for session problems. They are
// reported to the caller unchanged, never as errors.
func softFailureReason(status int) string {
	switch status {
	case http.StatusNoContent:
		return "No active session"
	case http.StatusInternalServerError:
		return "Invalid session"
	case http.StatusServiceUnavailable:
		return "Session is reconnecting"
	}
	return ""
}

// postRequest issues one POST to the given endpoint. The endpoint string is
// inserted into the URL verbatim; path segments that need escaping must be
// escaped by the caller.
func (c *Client) postRequest(ctx context.Context, endpoint string, payload url.Values) (*http.Response, error) {
	reqURL := c.baseURL + "/" + endpoint
	c.logger.Debugf("POST request to %s with payload %v.", reqURL, payload)

	var body io.Reader
	if payload != nil {
		body = strings.NewReader(payload.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{URL: reqURL, Err: err}
	}
	return resp, nil
}

// postStatus runs a write-type operation: the response body is discarded and
// the raw status is returned. failureBase prefixes the debug line logged for
// soft-failure statuses.
func (c *Client) postStatus(ctx context.Context, endpoint, failureBase string, payload url.Values) (int, error) {
	resp, err := c.postRequest(ctx, endpoint, payload)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if reason := softFailureReason(resp.StatusCode); reason != "" {
		c.logger.Debugf("%s %s", failureBase, reason)
	}
	return resp.StatusCode, nil
}

// postJSON runs a read-type operation: the body is decoded exactly once,
// regardless of status, because the server may emit a body alongside a
// soft-failure status. No content type is required. Decode failures
// propagate to the caller.
func (c *Client) postJSON(ctx context.Context, endpoint, failureBase string) (map[string]any, error) {
	resp, err := c.postRequest(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if reason := softFailureReason(resp.StatusCode); reason != "" {
		c.logger.Debugf("%s %s", failureBase, reason)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}

// PlayerLoad loads a track from uri, starting playback when play is true.
func (c *Client) PlayerLoad(ctx context.Context, uri string, play bool) (int, error) {
	payload := url.Values{
		"uri":  {uri},
		"play": {strconv.FormatBool(play)},
	}
	return c.postStatus(ctx, "player/load", "Unable to load track.", payload)
}

// PlayerPause pauses playback.
func (c *Client) PlayerPause(ctx context.Context) (int, error) {
	return c.postStatus(ctx, "player/pause", "Unable to pause player.", nil)
}

// PlayerResume resumes playback.
func (c *Client) PlayerResume(ctx context.Context) (int, error) {
	return c.postStatus(ctx, "player/resume", "Unable to resume player.", nil)
}

// PlayerNext skips to the next track.
func (c *Client) PlayerNext(ctx context.Context) (int, error) {
	return c.postStatus(ctx, "player/next", "Unable to skip to the next track.", nil)
}

// PlayerPrev skips to the previous track.
func (c *Client) PlayerPrev(ctx context.Context) (int, error) {
	return c.postStatus(ctx, "player/prev", "Unable to skip to the previous track.", nil)
}

// PlayerSetVolume sets the volume. The server accepts values between 0 and
// 65536; out-of-range values are passed through unmodified and the server's
// response status governs the outcome.
func (c *Client) PlayerSetVolume(ctx context.Context, volume int) (int, error) {
	payload := url.Values{"volume": {strconv.Itoa(volume)}}
	return c.postStatus(ctx, "player/set-volume", "Unable to set the volume.", payload)
}

// PlayerVolumeUp turns up the volume a little bit.
func (c *Client) PlayerVolumeUp(ctx context.Context) (int, error) {
	return c.postStatus(ctx, "player/volume-up", "Unable to turn the volume up.", nil)
}

// PlayerVolumeDown turns down the volume a little bit.
func (c *Client) PlayerVolumeDown(ctx context.Context) (int, error) {
	return c.postStatus(ctx, "player/volume-down", "Unable to turn the volume down.", nil)
}

// PlayerCurrent retrieves information about the current track.
func (c *Client) PlayerCurrent(ctx context.Context) (map[string]any, error) {
	return c.postJSON(ctx, "player/current",
		"Unable to retrieve information about the current track.")
}

// Metadata retrieves metadata for uri.
func (c *Client) Metadata(ctx context.Context, uri string) (map[string]any, error) {
	return c.postJSON(ctx, "metadata/"+uri,
		fmt.Sprintf("Unable to get metadata for %s.", uri))
}

// Search runs a search for query.
func (c *Client) Search(ctx context.Context, query string) (map[string]any, error) {
	return c.postJSON(ctx, "search/"+query,
		fmt.Sprintf("Unable to search for %s.", query))
}

// Token requests an access token for the given scope.
func (c *Client) Token(ctx context.Context, scope string) (map[string]any, error) {
	return c.postJSON(ctx, "token/"+scope,
		fmt.Sprintf("Unable to get token for %s.", scope))
}
