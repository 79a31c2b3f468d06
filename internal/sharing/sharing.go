// Package sharing implements the domain operations of the tool: credential
// verification, zone listing, sharing zones with another account and
// verifying that sharing took effect. Domains are processed sequentially
// and each domain's failure is isolated so it cannot abort the batch.
package sharing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AgileWorksZA/cloudns-tools/internal/config"
	"github.com/AgileWorksZA/cloudns-tools/pkg/cloudns"
	"github.com/AgileWorksZA/cloudns-tools/pkg/domain"
	"github.com/AgileWorksZA/cloudns-tools/pkg/logger"
	"github.com/AgileWorksZA/cloudns-tools/pkg/serrors"

	"go.uber.org/zap"
)

// Options configure zone listing.
type Options struct {
	// RowsPerPage is the page size requested from the listing endpoints.
	RowsPerPage int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		RowsPerPage: cfg.API.RowsPerPage,
	}
}

// service is the concrete implementation of the Service interface.
type service struct {
	// options holds runtime configuration affecting listing.
	options Options
	// client is the ClouDNS API client all operations go through.
	client cloudns.Client
}

// TestLogin validates the credential pair before any per-domain work. A
// missing pair is rejected without a network call; any login outcome other
// than explicit success is an unauthorized error that halts the invocation.
func (s service) TestLogin(ctx context.Context, creds domain.Credentials) error {
	if !creds.Complete() {
		return serrors.With(serrors.ErrBadRequest,
			"missing credentials: set CLOUDNS_AUTH_ID and CLOUDNS_AUTH_PASSWORD "+
				"or pass --auth-id and --auth-password")
	}

	if err := s.client.VerifyLogin(ctx, creds); err != nil {
		return fmt.Errorf("could not verify login: %w", err)
	}

	logger.Debug(ctx, "login verified")

	return nil
}

// ListDomains fetches the page count and then every page in order,
// concatenating zone names. The API's ordering is preserved.
func (s service) ListDomains(ctx context.Context, creds domain.Credentials) ([]string, error) {
	pages, err := s.client.PagesCount(ctx, creds, s.options.RowsPerPage)
	if err != nil {
		return nil, fmt.Errorf("could not get pages count: %w", err)
	}

	logger.Debug(ctx, "fetching zones", zap.Int("pages", pages), zap.Int("rowsPerPage", s.options.RowsPerPage))

	var names []string
	for page := 1; page <= pages; page++ {
		zones, err := s.client.Zones(ctx, creds, page, s.options.RowsPerPage)
		if err != nil {
			return nil, fmt.Errorf("could not list zones on page %d: %w", page, err)
		}
		for _, z := range zones {
			names = append(names, z.Name)
		}
	}

	return names, nil
}

// ShareDomains shares each domain with the given email, sequentially. The
// result slice has exactly one entry per input domain, in input order; a
// failure on one domain never aborts the rest. An empty email is rejected
// before any network activity.
func (s service) ShareDomains(ctx context.Context,
	creds domain.Credentials,
	domains []string,
	email string) ([]domain.OperationResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "email is required to share domains")
	}

	results := make([]domain.OperationResult, 0, len(domains))
	for _, name := range domains {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("sharing aborted: %w", err)
		}
		results = append(results, s.shareOne(ctx, creds, name, email))
	}

	return results, nil
}

// shareOne issues a single share request and classifies the outcome.
func (s service) shareOne(ctx context.Context,
	creds domain.Credentials,
	name, email string) domain.OperationResult {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.OperationResult{Domain: name, Status: domain.StatusFailed, Message: "empty domain name"}
	}

	err := s.client.AddSharedAccount(ctx, creds, name, email)
	switch {
	case err == nil:
		logger.Info(ctx, "shared domain", zap.String("domain", name), zap.String("email", email))

		return domain.OperationResult{Domain: name, Status: domain.StatusSuccess}
	case errors.Is(err, serrors.ErrConflict):
		logger.Info(ctx, "domain already shared", zap.String("domain", name), zap.String("email", email))

		return domain.OperationResult{Domain: name, Status: domain.StatusAlreadyShared, Message: err.Error()}
	default:
		logger.Warn(ctx, "could not share domain", zap.String("domain", name), zap.Error(err))

		return domain.OperationResult{Domain: name, Status: domain.StatusFailed, Message: err.Error()}
	}
}

// VerifySharing checks each domain's shared accounts, sequentially, one
// result per input domain in input order. With an email the check succeeds
// only when that exact account appears (case-insensitive, trimmed); without
// one it succeeds when the zone is shared with anyone and reports the list.
func (s service) VerifySharing(ctx context.Context,
	creds domain.Credentials,
	domains []string,
	email string) ([]domain.OperationResult, error) {
	email = strings.TrimSpace(email)

	results := make([]domain.OperationResult, 0, len(domains))
	for _, name := range domains {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("verification aborted: %w", err)
		}
		results = append(results, s.verifyOne(ctx, creds, name, email))
	}

	return results, nil
}

// verifyOne fetches the shared accounts of a single zone and classifies the
// outcome against the optional email.
func (s service) verifyOne(ctx context.Context,
	creds domain.Credentials,
	name, email string) domain.OperationResult {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.OperationResult{Domain: name, Status: domain.StatusFailed, Message: "empty domain name"}
	}

	accounts, err := s.client.SharedAccounts(ctx, creds, name)
	if err != nil {
		logger.Warn(ctx, "could not list shared accounts", zap.String("domain", name), zap.Error(err))

		return domain.OperationResult{Domain: name, Status: domain.StatusFailed, Message: err.Error()}
	}

	if len(accounts) == 0 {
		return domain.OperationResult{Domain: name, Status: domain.StatusFailed, Message: "not shared with anyone"}
	}

	if email == "" {
		return domain.OperationResult{
			Domain:  name,
			Status:  domain.StatusSuccess,
			Message: "shared with: " + strings.Join(accounts, ", "),
		}
	}

	for _, a := range accounts {
		if strings.EqualFold(strings.TrimSpace(a), email) {
			return domain.OperationResult{
				Domain:  name,
				Status:  domain.StatusSuccess,
				Message: "shared with " + email,
			}
		}
	}

	return domain.OperationResult{
		Domain:  name,
		Status:  domain.StatusFailed,
		Message: fmt.Sprintf("not shared with %s; shared with: %s", email, strings.Join(accounts, ", ")),
	}
}

// New creates a new Service backed by the provided API client and
// configured with the given options.
func New(client cloudns.Client, options Options) Service {
	return &service{
		options: options,
		client:  client,
	}
}
