// Package cloudns defines the interface and data types used to talk to the
// ClouDNS HTTP API: credential verification, zone listing and shared-account
// management.
package cloudns

import (
	"context"

	"github.com/AgileWorksZA/cloudns-tools/pkg/domain"
)

// Client is the abstraction for the ClouDNS API. Implementations carry no
// credential state; the caller passes the credential pair to every call.
//
//go:generate mockgen -package mockcloudns -source=interface.go -destination=mock/mockcloudns.go *
type Client interface {
	// VerifyLogin probes the login endpoint and returns nil only when the
	// API signals explicit success for the credential pair.
	VerifyLogin(ctx context.Context, creds domain.Credentials) error
	// PagesCount returns the number of result pages the zone listing spans
	// at the given page size.
	PagesCount(ctx context.Context, creds domain.Credentials, rowsPerPage int) (int, error)
	// Zones returns a single page of zones, in the order the API returns
	// them.
	Zones(ctx context.Context, creds domain.Credentials, page, rowsPerPage int) ([]domain.Zone, error)
	// AddSharedAccount grants the account identified by email access to the
	// zone. Returns serrors.ErrConflict when the zone is already shared
	// with that account.
	AddSharedAccount(ctx context.Context, creds domain.Credentials, zone, email string) error
	// SharedAccounts lists the emails the zone is currently shared with.
	SharedAccounts(ctx context.Context, creds domain.Credentials, zone string) ([]string, error)
}
