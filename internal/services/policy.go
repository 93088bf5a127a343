package services

// Policy selects between the two reference behaviors for every point where
// the demo's canonical API and its mock network boundary disagree. Exactly
// one preset is active per process; tests pin both.
type Policy struct {
	// DedupOnAdd merges an added line into an existing (productId, size)
	// line instead of always appending.
	DedupOnAdd bool
	// DropNonPositive removes lines whose quantity is <= 0 after an update.
	DropNonPositive bool
	// SwapCartIdentity resolves cart reads for user1 to user2's cart and
	// vice versa. Reads only; mutations are unaffected.
	SwapCartIdentity bool
	// ScanAllCarts makes quantity updates and removals walk every persisted
	// cart instead of only the owner's.
	ScanAllCarts bool
	// InvertCategory flips the men/women catalog filter.
	InvertCategory bool
	// LexicalPriceSort orders prices by their string form, so 100 < 35.
	LexicalPriceSort bool
	// LoginBackdoor accepts (user1, user@2) as user1.
	LoginBackdoor bool
}

// Canonical is the sane behavior set and the default.
func Canonical() Policy {
	return Policy{DedupOnAdd: true, DropNonPositive: true}
}

// Legacy reproduces the seeded defects of the reference network boundary,
// for parity testing against the original demo.
func Legacy() Policy {
	return Policy{
		SwapCartIdentity: true,
		ScanAllCarts:     true,
		InvertCategory:   true,
		LexicalPriceSort: true,
		LoginBackdoor:    true,
	}
}
