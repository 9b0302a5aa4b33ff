package assembly

import (
	"github.com/phrazzld/knesset/internal/domain"
)

// InvalidID is returned wherever an identifier cannot be produced: a full
// assembly, an unregistered entity, or no suitable law.
const InvalidID = -1

// Assembly holds a fixed number of law and member slots. A slot's index is the
// public identifier of the entity occupying it. Slots are filled in order and
// never freed, so occupied slots always form a prefix of each collection.
type Assembly struct {
	params  Params
	laws    []*domain.Law
	members []*domain.Member
}

// New creates an empty assembly with the given law capacity and per-member
// support cap. The member capacity and enthusiasm threshold use their defaults.
func New(lawCapacity, maxLawsPerMember int) *Assembly {
	params := NewDefaultParams()
	params.LawCapacity = lawCapacity
	params.MaxLawsPerMember = maxLawsPerMember
	return NewWithParams(params)
}

// NewWithParams creates an empty assembly with custom parameters.
// A nil params value selects the defaults.
func NewWithParams(params *Params) *Assembly {
	if params == nil {
		params = NewDefaultParams()
	}
	p := params.normalized()

	return &Assembly{
		params:  p,
		laws:    make([]*domain.Law, p.LawCapacity),
		members: make([]*domain.Member, p.MemberCapacity),
	}
}

// Params returns a copy of the assembly's parameters.
func (a *Assembly) Params() Params {
	return a.params
}

// RegisterLaw adds the law to the assembly and records its survey result.
//
// A law that is already registered keeps its id; its survey result is still
// overwritten. Returns InvalidID, without touching the law, when the law is
// nil or no slot is free.
func (a *Assembly) RegisterLaw(law *domain.Law, surveyResult int) int {
	if law == nil {
		return InvalidID
	}

	id := a.LawID(law)
	if id == InvalidID {
		id = firstEmpty(a.laws)
		if id == InvalidID {
			return InvalidID
		}
		a.laws[id] = law
	}

	law.SetSurveyResult(surveyResult)
	return id
}

// UpdateSurvey overwrites the survey result of the law. The law does not have
// to be registered in this assembly.
func (a *Assembly) UpdateSurvey(law *domain.Law, newValue int) {
	if law == nil {
		return
	}
	law.SetSurveyResult(newValue)
}

// IsLawIDValid reports whether id refers to a registered law.
func (a *Assembly) IsLawIDValid(id int) bool {
	return id >= 0 && id < len(a.laws) && a.laws[id] != nil
}

// LawID returns the id of the law, or InvalidID if it is not registered.
func (a *Assembly) LawID(law *domain.Law) int {
	return indexOf(a.laws, law)
}

// Law returns the law registered under id, or nil.
func (a *Assembly) Law(id int) *domain.Law {
	if !a.IsLawIDValid(id) {
		return nil
	}
	return a.laws[id]
}

// LawCount returns the number of occupied law slots.
func (a *Assembly) LawCount() int {
	return occupied(a.laws)
}

// RegisterMember adds the member to the assembly. A member that is already
// registered keeps its id. Returns InvalidID when the member is nil or no
// slot is free.
func (a *Assembly) RegisterMember(member *domain.Member) int {
	if member == nil {
		return InvalidID
	}

	if id := a.MemberID(member); id != InvalidID {
		return id
	}

	id := firstEmpty(a.members)
	if id == InvalidID {
		return InvalidID
	}
	a.members[id] = member
	return id
}

// IsMemberIDValid reports whether id refers to a registered member.
func (a *Assembly) IsMemberIDValid(id int) bool {
	return id >= 0 && id < len(a.members) && a.members[id] != nil
}

// MemberID returns the id of the member, or InvalidID if it is not registered.
func (a *Assembly) MemberID(member *domain.Member) int {
	return indexOf(a.members, member)
}

// Member returns the member registered under id, or nil.
func (a *Assembly) Member(id int) *domain.Member {
	if !a.IsMemberIDValid(id) {
		return nil
	}
	return a.members[id]
}

// MemberCount returns the number of occupied member slots.
func (a *Assembly) MemberCount() int {
	return occupied(a.members)
}

// Support makes the member a supporter of the law if the member is willing
// and has not exceeded the per-member cap. It returns false, with no side
// effects, for unknown ids, an unwilling member or a capped member.
//
// Willingness is scored against the law's stored survey result. The
// surveyResult argument does not take part in the decision.
//
// The cap check admits a member whose count equals MaxLawsPerMember, so a
// member can reach MaxLawsPerMember+1 supported laws. Callers rely on this
// boundary; do not tighten it to a strict comparison.
func (a *Assembly) Support(lawID, memberID, surveyResult int) bool {
	if !a.IsLawIDValid(lawID) || !a.IsMemberIDValid(memberID) {
		return false
	}

	law := a.laws[lawID]
	member := a.members[memberID]

	if !member.WillSupportAt(law, law.SurveyResult(), a.params.EnthusiasmThreshold) {
		return false
	}

	if member.SupportedLaws() > a.params.MaxLawsPerMember {
		return false
	}

	law.AddSupporter()
	member.RecordSupport()
	return true
}

// BestScoringLawID returns the id of the law the member scores highest, using
// each law's stored survey result. Ties keep the lowest id. Returns InvalidID
// when no law scores above zero.
//
// The scan stops at the first empty slot.
func (a *Assembly) BestScoringLawID(member *domain.Member) int {
	if member == nil {
		return InvalidID
	}

	best := InvalidID
	bestScore := 0.0
	for id, law := range a.laws {
		if law == nil {
			break
		}
		if score := member.Score(law, law.SurveyResult()); score > bestScore {
			best = id
			bestScore = score
		}
	}

	return best
}

// SuggestLaw returns the best scoring law for the member with the given id,
// or nil if the id is unknown or no law scores above zero.
func (a *Assembly) SuggestLaw(memberID int) *domain.Law {
	if !a.IsMemberIDValid(memberID) {
		return nil
	}

	id := a.BestScoringLawID(a.members[memberID])
	if id == InvalidID {
		return nil
	}
	return a.laws[id]
}

// indexOf returns the slot holding exactly item, or InvalidID.
func indexOf[T any](slots []*T, item *T) int {
	if item == nil {
		return InvalidID
	}
	for i, s := range slots {
		if s == item {
			return i
		}
	}
	return InvalidID
}

func firstEmpty[T any](slots []*T) int {
	for i, s := range slots {
		if s == nil {
			return i
		}
	}
	return InvalidID
}

func occupied[T any](slots []*T) int {
	n := 0
	for _, s := range slots {
		if s != nil {
			n++
		}
	}
	return n
}
