package domain

// Tier is the requester's subscription level. Higher tiers see every activity
// lower tiers see, plus more, and get denser days.
type Tier string

const (
	TierFree         Tier = "free"
	TierSmart        Tier = "smart"
	TierProfessional Tier = "professional"
)

// Rank orders tiers free < smart < professional. Unknown or empty tiers rank
// as free.
func (t Tier) Rank() int {
	switch t {
	case TierSmart:
		return 1
	case TierProfessional:
		return 2
	default:
		return 0
	}
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierSmart, TierProfessional:
		return true
	}
	return false
}

// Allows reports whether a requester at tier t may see content gated at min.
func (t Tier) Allows(min Tier) bool {
	return min.Rank() <= t.Rank()
}

// Requester is the authenticated caller as asserted by the upstream gateway.
type Requester struct {
	ID   string
	Tier Tier
}
