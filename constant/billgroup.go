package constant

const (
	DefaultGroupName = "My Group"

	SplitTypeEqual  = "equal"
	SplitTypeShares = "shares"
)
