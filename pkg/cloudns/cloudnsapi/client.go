// Package cloudnsapi provides a cloudns.Client implementation backed by the
// ClouDNS HTTP API.
package cloudnsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/AgileWorksZA/cloudns-tools/pkg/cloudns"
	"github.com/AgileWorksZA/cloudns-tools/pkg/domain"
	"github.com/AgileWorksZA/cloudns-tools/pkg/logger"
	"github.com/AgileWorksZA/cloudns-tools/pkg/serrors"

	"go.uber.org/zap"
)

// DefaultBaseURL is the production ClouDNS API endpoint.
const DefaultBaseURL = "https://api.cloudns.net"

// RetryPolicy controls how transport-class failures (connection errors,
// timeouts, 5xx responses, unparseable bodies) are retried. Well-formed
// API rejections are never retried. Tests substitute a zero-delay policy.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// BaseDelay is the wait before the first retry.
	BaseDelay time.Duration
	// Multiplier scales the delay after each retry.
	Multiplier float64
}

// DefaultRetryPolicy is three attempts with a doubling one-second delay.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second, Multiplier: 2}
}

// delay returns the backoff to wait before retry number n (1-based).
func (p RetryPolicy) delay(n int) time.Duration {
	d := float64(p.BaseDelay)
	for i := 1; i < n; i++ {
		d *= p.Multiplier
	}

	return time.Duration(d)
}

// Client talks to the ClouDNS REST API and fulfills the cloudns.Client
// interface. It holds no credential state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the API
	baseURL    string       // baseURL is the API root, without trailing slash
	retry      RetryPolicy  // retry governs transport-failure retries
}

// statusEnvelope is the status/description pair ClouDNS returns for
// operations without a payload and for failures of any endpoint.
type statusEnvelope struct {
	Status            string `json:"status"`
	StatusDescription string `json:"statusDescription"`
}

func (e statusEnvelope) success() bool { return strings.EqualFold(e.Status, "Success") }
func (e statusEnvelope) failed() bool  { return strings.EqualFold(e.Status, "Failed") }

func (e statusEnvelope) description() string {
	if e.StatusDescription == "" {
		return "unknown error"
	}

	return e.StatusDescription
}

// failureError maps a "Failed" envelope to a semantic error, preserving the
// API's description verbatim. ClouDNS has no machine-readable error codes;
// "already shared" is recognized by its status description.
func failureError(e statusEnvelope) error {
	desc := e.description()
	if strings.Contains(strings.ToLower(desc), "already shared") {
		return serrors.With(serrors.ErrConflict, "%s", desc)
	}

	return serrors.With(serrors.ErrRejected, "%s", desc)
}

// checkEnvelope surfaces a "Failed" status envelope as a semantic error.
// Payload-bearing responses (arrays, bare numbers) do not decode into the
// envelope and pass through untouched.
func checkEnvelope(b []byte) error {
	var env statusEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil
	}
	if !env.failed() {
		return nil
	}

	return failureError(env)
}

// call POSTs form-encoded parameters to the endpoint with the credential
// pair attached, applying the retry policy to transport-class failures,
// and returns the raw response body of the first successful attempt.
func (c *Client) call(ctx context.Context,
	creds domain.Credentials,
	endpoint string,
	params url.Values) ([]byte, error) {
	if !creds.Complete() {
		return nil, serrors.With(serrors.ErrBadRequest, "missing auth-id or auth-password")
	}

	form := url.Values{}
	for k, vs := range params {
		form[k] = vs
	}
	form.Set("auth-id", creds.AuthID)
	form.Set("auth-password", creds.AuthPassword)

	var lastErr error
	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		if attempt > 1 {
			logger.Debug(ctx, "retrying request",
				zap.String("endpoint", endpoint),
				zap.Int("attempt", attempt),
				zap.Int("maxAttempts", c.retry.MaxAttempts),
				zap.Error(lastErr))

			if err := ctx.Err(); err != nil {
				return nil, serrors.Wrap(serrors.ErrUnavailable, err, "request canceled")
			}

			select {
			case <-time.After(c.retry.delay(attempt - 1)):
			case <-ctx.Done():
				return nil, serrors.Wrap(serrors.ErrUnavailable, ctx.Err(), "request canceled")
			}
		}

		body, retryable, err := c.once(ctx, endpoint, form)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}

	return nil, serrors.Wrap(serrors.ErrUnavailable,
		lastErr,
		"request failed after %d attempts", c.retry.MaxAttempts)
}

// once performs a single request attempt. The second return value reports
// whether the failure is transport-class and safe to retry.
func (c *Client) once(ctx context.Context, endpoint string, form url.Values) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/"+endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, false, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, true, fmt.Errorf("server error: %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, false, serrors.With(serrors.ErrRejected,
			"request rejected: %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}
	// A truncated or non-JSON body from a proxy is a transport fault.
	if !json.Valid(b) {
		return nil, true, fmt.Errorf("could not parse API response: %s", strings.TrimSpace(string(b)))
	}

	return b, false, nil
}

// VerifyLogin probes login/login.json. Anything other than an explicit
// success, including transport failure after retries, is reported as
// invalid credentials.
func (c *Client) VerifyLogin(ctx context.Context, creds domain.Credentials) error {
	b, err := c.call(ctx, creds, "login/login.json", url.Values{})
	if err != nil {
		return serrors.Wrap(serrors.ErrUnauthorized, err, "could not verify login")
	}

	var env statusEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return serrors.Wrap(serrors.ErrUnauthorized, err, "unexpected login response")
	}
	if !env.success() {
		return serrors.With(serrors.ErrUnauthorized, "login failed: %s", env.description())
	}

	return nil
}

// PagesCount fetches dns/get-pages-count.json for the given page size.
// The endpoint usually answers with a bare number, but some responses wrap
// it in {"count": n} or quote it as a string; all three forms are accepted.
func (c *Client) PagesCount(ctx context.Context, creds domain.Credentials, rowsPerPage int) (int, error) {
	params := url.Values{}
	params.Set("rows-per-page", strconv.Itoa(rowsPerPage))

	b, err := c.call(ctx, creds, "dns/get-pages-count.json", params)
	if err != nil {
		return 0, err
	}
	if err := checkEnvelope(b); err != nil {
		return 0, err
	}

	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		return n, nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return v, nil
		}
	}

	var wrapped struct {
		Count json.Number `json:"count"`
	}
	if err := json.Unmarshal(b, &wrapped); err == nil {
		if v, err := wrapped.Count.Int64(); err == nil {
			return int(v), nil
		}
	}

	return 0, fmt.Errorf("unexpected pages-count response: %s", strings.TrimSpace(string(b)))
}

// Zones fetches one page of dns/list-zones.json, preserving API order.
func (c *Client) Zones(ctx context.Context,
	creds domain.Credentials,
	page, rowsPerPage int) ([]domain.Zone, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("rows-per-page", strconv.Itoa(rowsPerPage))

	b, err := c.call(ctx, creds, "dns/list-zones.json", params)
	if err != nil {
		return nil, err
	}
	if err := checkEnvelope(b); err != nil {
		return nil, err
	}

	var zones []domain.Zone
	if err := json.Unmarshal(b, &zones); err != nil {
		return nil, fmt.Errorf("could not decode zone list: %w", err)
	}

	return zones, nil
}

// AddSharedAccount calls dns/add-shared-account.json for one zone/email
// pair. An "already shared" rejection surfaces as serrors.ErrConflict with
// the API's description preserved.
func (c *Client) AddSharedAccount(ctx context.Context,
	creds domain.Credentials,
	zone, email string) error {
	params := url.Values{}
	params.Set("domain-name", zone)
	params.Set("mail", email)

	b, err := c.call(ctx, creds, "dns/add-shared-account.json", params)
	if err != nil {
		return err
	}

	var env statusEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	if !env.success() {
		return failureError(env)
	}

	return nil
}

// SharedAccounts calls dns/list-shared-accounts.json for one zone. The API
// returns either plain email strings or objects carrying a mail/email key
// depending on the account type; both forms are accepted.
func (c *Client) SharedAccounts(ctx context.Context,
	creds domain.Credentials,
	zone string) ([]string, error) {
	params := url.Values{}
	params.Set("domain-name", zone)

	b, err := c.call(ctx, creds, "dns/list-shared-accounts.json", params)
	if err != nil {
		return nil, err
	}
	if err := checkEnvelope(b); err != nil {
		return nil, err
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("could not decode shared account list: %w", err)
	}

	accounts := make([]string, 0, len(raw))
	for _, m := range raw {
		var s string
		if err := json.Unmarshal(m, &s); err == nil {
			accounts = append(accounts, s)

			continue
		}

		var obj struct {
			Mail  string `json:"mail"`
			Email string `json:"email"`
		}
		if err := json.Unmarshal(m, &obj); err == nil {
			switch {
			case obj.Mail != "":
				accounts = append(accounts, obj.Mail)
			case obj.Email != "":
				accounts = append(accounts, obj.Email)
			}
		}
	}

	return accounts, nil
}

// Ensure Client conforms to the cloudns.Client interface at compile time.
var _ cloudns.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, base URL and
// retry policy to interact with the ClouDNS API.
func New(httpClient *http.Client, baseURL string, retry RetryPolicy) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		retry:      retry,
	}
}
