package sharing

import (
	"context"

	"github.com/AgileWorksZA/cloudns-tools/pkg/domain"
)

// Service sequences ClouDNS API calls for the tool's four operations and
// maps their outcomes to per-domain results.
type Service interface {
	// TestLogin validates the credential pair with a single login probe.
	TestLogin(ctx context.Context, creds domain.Credentials) error
	// ListDomains returns every zone name in the account, in API order.
	ListDomains(ctx context.Context, creds domain.Credentials) ([]string, error)
	// ShareDomains shares each domain with the account identified by email,
	// returning one result per input domain in input order.
	ShareDomains(ctx context.Context,
		creds domain.Credentials,
		domains []string,
		email string) ([]domain.OperationResult, error)
	// VerifySharing checks each domain's shared accounts. With an email it
	// verifies that exact account; without one it reports the full list.
	VerifySharing(ctx context.Context,
		creds domain.Credentials,
		domains []string,
		email string) ([]domain.OperationResult, error)
}
