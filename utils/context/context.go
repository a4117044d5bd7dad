package context

import (
	"context"

	"github.com/expenzo/expenzo-backend/constant"
	"github.com/expenzo/expenzo-backend/model"
)

// WithIdentity attaches the authenticated identity to the context.
func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, constant.IdentityKey, identity)
}

// GetIdentity returns the caller identity, if any. The second return is
// false for anonymous requests.
func GetIdentity(ctx context.Context) (model.Identity, bool) {
	v := ctx.Value(constant.IdentityKey)
	if v == nil {
		return model.Identity{}, false
	}
	identity, ok := v.(model.Identity)
	return identity, ok
}

func GetUserID(ctx context.Context) (uint64, bool) {
	identity, ok := GetIdentity(ctx)
	if !ok {
		return 0, false
	}
	return identity.UserID, true
}
