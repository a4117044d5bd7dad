package constant

type contextKey string

// IdentityKey carries the authenticated identity (model.Identity) in the
// request context. Absent for anonymous requests.
const IdentityKey contextKey = "identity"

// Token type discriminators. Session tokens carry an empty type for
// compatibility with tokens issued before the discriminator existed.
const (
	TokenTypeSession = ""
	TokenTypeReset   = "reset"
)

const OTPLength = 6
