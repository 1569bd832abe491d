package inventory

// Error message formats
const (
	ErrFmtInsufficient = "%w: %s has %d, need %d"
	ErrFmtOverflow     = "%w: %s would hold %d, limit %d"
	ErrFmtBadQuantity  = "%w: %d"
)
