package sharing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/AgileWorksZA/cloudns-tools/internal/sharing"
	mockcloudns "github.com/AgileWorksZA/cloudns-tools/pkg/cloudns/mock"
	"github.com/AgileWorksZA/cloudns-tools/pkg/domain"
	"github.com/AgileWorksZA/cloudns-tools/pkg/serrors"

	"go.uber.org/mock/gomock"
)

const email = "user@example.com"

func testCreds() domain.Credentials {
	return domain.Credentials{AuthID: "1234", AuthPassword: "secret"}
}

func newTestService(t *testing.T) (*mockcloudns.MockClient, sharing.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mockcloudns.NewMockClient(ctrl)
	s := sharing.New(client, sharing.Options{RowsPerPage: 100})

	return client, s
}

func TestService_TestLogin_MissingCredentials(t *testing.T) {
	client, s := newTestService(t)
	client.EXPECT().VerifyLogin(gomock.Any(), gomock.Any()).Times(0)

	err := s.TestLogin(context.Background(), domain.Credentials{AuthID: "1234"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestService_TestLogin_PropagatesRejection(t *testing.T) {
	client, s := newTestService(t)
	client.EXPECT().VerifyLogin(gomock.Any(), testCreds()).
		Return(serrors.With(serrors.ErrUnauthorized, "login failed: incorrect auth-id"))

	err := s.TestLogin(context.Background(), testCreds())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, serrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestService_TestLogin_Success(t *testing.T) {
	client, s := newTestService(t)
	client.EXPECT().VerifyLogin(gomock.Any(), testCreds()).Return(nil)

	if err := s.TestLogin(context.Background(), testCreds()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_ListDomains_ConcatenatesPagesInOrder(t *testing.T) {
	client, s := newTestService(t)

	client.EXPECT().PagesCount(gomock.Any(), testCreds(), 100).Return(2, nil)
	client.EXPECT().Zones(gomock.Any(), testCreds(), 1, 100).Return([]domain.Zone{
		{Name: "b.com", Kind: "master"},
		{Name: "a.com", Kind: "master"},
	}, nil)
	client.EXPECT().Zones(gomock.Any(), testCreds(), 2, 100).Return([]domain.Zone{
		{Name: "c.com", Kind: "slave"},
	}, nil)

	domains, err := s.ListDomains(context.Background(), testCreds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"b.com", "a.com", "c.com"}
	if len(domains) != len(want) {
		t.Fatalf("expected %d domains, got %d", len(want), len(domains))
	}
	for i := range want {
		if domains[i] != want[i] {
			t.Fatalf("expected %q at index %d, got %q", want[i], i, domains[i])
		}
	}
}

func TestService_ListDomains_PagesCountError(t *testing.T) {
	client, s := newTestService(t)
	client.EXPECT().PagesCount(gomock.Any(), testCreds(), 100).Return(0, errors.New("boom"))
	client.EXPECT().Zones(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	if _, err := s.ListDomains(context.Background(), testCreds()); err == nil {
		t.Fatalf("expected error from PagesCount")
	}
}

func TestService_ShareDomains_OneResultPerDomainInOrder(t *testing.T) {
	client, s := newTestService(t)

	// a.com shared, b.com already shared, c.com rejected
	client.EXPECT().AddSharedAccount(gomock.Any(), testCreds(), "a.com", email).Return(nil)
	client.EXPECT().AddSharedAccount(gomock.Any(), testCreds(), "b.com", email).
		Return(serrors.With(serrors.ErrConflict, "The domain is already shared with this mail."))
	client.EXPECT().AddSharedAccount(gomock.Any(), testCreds(), "c.com", email).
		Return(serrors.With(serrors.ErrRejected, "invalid email"))

	results, err := s.ShareDomains(context.Background(), testCreds(), []string{"a.com", "b.com", "c.com"}, email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if results[0].Domain != "a.com" || results[0].Status != domain.StatusSuccess {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
	if results[1].Domain != "b.com" || results[1].Status != domain.StatusAlreadyShared {
		t.Fatalf("unexpected second result: %+v", results[1])
	}
	if results[2].Domain != "c.com" || results[2].Status != domain.StatusFailed {
		t.Fatalf("unexpected third result: %+v", results[2])
	}
	if results[2].Message != "invalid email" {
		t.Fatalf("expected verbatim API message, got %q", results[2].Message)
	}
}

func TestService_ShareDomains_FailureDoesNotAbortBatch(t *testing.T) {
	client, s := newTestService(t)

	client.EXPECT().AddSharedAccount(gomock.Any(), testCreds(), "a.com", email).
		Return(serrors.With(serrors.ErrUnavailable, "request failed after 3 attempts: connection refused"))
	client.EXPECT().AddSharedAccount(gomock.Any(), testCreds(), "b.com", email).Return(nil)

	results, err := s.ShareDomains(context.Background(), testCreds(), []string{"a.com", "b.com"}, email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Status != domain.StatusFailed {
		t.Fatalf("expected first result failed, got %+v", results[0])
	}
	if results[1].Status != domain.StatusSuccess {
		t.Fatalf("expected second result success, got %+v", results[1])
	}
}

func TestService_ShareDomains_MissingEmail(t *testing.T) {
	client, s := newTestService(t)
	client.EXPECT().AddSharedAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.ShareDomains(context.Background(), testCreds(), []string{"a.com"}, "  ")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestService_ShareDomains_EmptyDomainFailsLocally(t *testing.T) {
	client, s := newTestService(t)

	client.EXPECT().AddSharedAccount(gomock.Any(), testCreds(), "a.com", email).Return(nil)

	results, err := s.ShareDomains(context.Background(), testCreds(), []string{"  ", "a.com"}, email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Status != domain.StatusFailed {
		t.Fatalf("expected empty domain to fail, got %+v", results[0])
	}
}

func TestService_ShareDomains_CanceledContextAborts(t *testing.T) {
	client, s := newTestService(t)
	client.EXPECT().AddSharedAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.ShareDomains(ctx, testCreds(), []string{"a.com"}, email); err == nil {
		t.Fatalf("expected error on canceled context")
	}
}

func TestService_VerifySharing_WithEmail(t *testing.T) {
	client, s := newTestService(t)

	// a.com shared with the email (different case), b.com with someone else,
	// c.com rejected by the API
	client.EXPECT().SharedAccounts(gomock.Any(), testCreds(), "a.com").
		Return([]string{"User@Example.COM "}, nil)
	client.EXPECT().SharedAccounts(gomock.Any(), testCreds(), "b.com").
		Return([]string{"other@example.org"}, nil)
	client.EXPECT().SharedAccounts(gomock.Any(), testCreds(), "c.com").
		Return(nil, serrors.With(serrors.ErrRejected, "Missing domain-name"))

	results, err := s.VerifySharing(context.Background(), testCreds(), []string{"a.com", "b.com", "c.com"}, email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Status != domain.StatusSuccess {
		t.Fatalf("expected a.com success, got %+v", results[0])
	}
	if results[1].Status != domain.StatusFailed {
		t.Fatalf("expected b.com failed, got %+v", results[1])
	}
	if results[2].Status != domain.StatusFailed || results[2].Message != "Missing domain-name" {
		t.Fatalf("expected c.com failed with verbatim message, got %+v", results[2])
	}
}

func TestService_VerifySharing_WithoutEmail(t *testing.T) {
	client, s := newTestService(t)

	client.EXPECT().SharedAccounts(gomock.Any(), testCreds(), "a.com").
		Return([]string{"one@example.com", "two@example.com"}, nil)
	client.EXPECT().SharedAccounts(gomock.Any(), testCreds(), "b.com").
		Return([]string{}, nil)

	results, err := s.VerifySharing(context.Background(), testCreds(), []string{"a.com", "b.com"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Status != domain.StatusSuccess {
		t.Fatalf("expected a.com success, got %+v", results[0])
	}
	if results[0].Message != "shared with: one@example.com, two@example.com" {
		t.Fatalf("expected account list in message, got %q", results[0].Message)
	}
	if results[1].Status != domain.StatusFailed {
		t.Fatalf("expected b.com failed when shared with no one, got %+v", results[1])
	}
}
