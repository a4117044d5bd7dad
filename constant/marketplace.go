package constant

// Fallbacks applied when a request omits the enum field; the enum sets
// themselves are enforced by the request validation tags.
const (
	DefaultItemCondition = "Good"
	DefaultItemCategory  = "other"
)
