package testutil

import (
	"testing"

	"github.com/moosflix/catalog/internal/api"
	"github.com/moosflix/catalog/internal/catalog"
	"github.com/moosflix/catalog/internal/models"
)

// ProvisionProfile creates a profile with the given scopes and returns its
// uid, ready to be sent in the X-Auth-Uid header of API test requests.
func ProvisionProfile(t *testing.T, s *api.Server, uid, username string, scopes ...models.Scope) string {
	t.Helper()

	opts := catalog.UpsertProfileOptions{UID: uid, Username: username}
	if len(scopes) > 0 {
		opts.Scopes = scopes
	}
	if _, err := s.Catalog().UpsertProfile(opts); err != nil {
		t.Fatalf("Failed to provision test profile %q: %v", uid, err)
	}
	return uid
}
