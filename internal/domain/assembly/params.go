package assembly

import "github.com/phrazzld/knesset/internal/domain"

// Default capacities used by NewDefaultParams.
const (
	DefaultLawCapacity      = 10
	DefaultMaxLawsPerMember = 3
	// DefaultMemberCapacity matches the number of seats in the Knesset.
	DefaultMemberCapacity = 120
)

// Params defines the fixed sizing and support rules of an assembly.
type Params struct {
	// Number of law slots
	LawCapacity int
	// Number of member slots, independent of LawCapacity
	MemberCapacity int

	// Laws a single member may support. The cap check admits one more than
	// this value; see Assembly.Support.
	MaxLawsPerMember int

	// Minimum score at which a member supports a law
	EnthusiasmThreshold float64
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		LawCapacity:         DefaultLawCapacity,
		MemberCapacity:      DefaultMemberCapacity,
		MaxLawsPerMember:    DefaultMaxLawsPerMember,
		EnthusiasmThreshold: domain.DefaultEnthusiasmThreshold,
	}
}

// normalized returns a copy with negative capacities clamped to zero.
func (p Params) normalized() Params {
	if p.LawCapacity < 0 {
		p.LawCapacity = 0
	}
	if p.MemberCapacity < 0 {
		p.MemberCapacity = 0
	}
	return p
}
