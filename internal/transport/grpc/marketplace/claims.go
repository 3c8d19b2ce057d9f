package marketplace

import (
	"context"

	"google.golang.org/grpc/metadata"

	"github.com/vintaro/marketplace-service/internal/app/listing/domain"
)

// Metadata keys stamped by the API gateway after it has verified the
// caller's identity token. This service never resolves sessions itself;
// identity and role travel explicitly with every request.
const (
	mdUserID = "x-user-id"
	mdRole   = "x-user-role"
)

// Claims is the per-request caller identity.
type Claims struct {
	UserID string
	Role   domain.Role
}

// claimsFromContext reads gateway-verified identity from request metadata.
// Absent metadata yields the anonymous role.
func claimsFromContext(ctx context.Context) Claims {
	c := Claims{Role: domain.RoleAnonymous}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return c
	}
	if vals := md.Get(mdUserID); len(vals) > 0 {
		c.UserID = vals[0]
	}
	if vals := md.Get(mdRole); len(vals) > 0 {
		c.Role = domain.ParseRole(vals[0])
	}
	return c
}
