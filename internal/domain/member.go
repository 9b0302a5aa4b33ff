package domain

import (
	"errors"
	"fmt"
)

// DefaultEnthusiasmThreshold is the minimum score at which a member is willing
// to support a law when no assembly-specific threshold is supplied.
const DefaultEnthusiasmThreshold = 5.0

// Member-specific validation errors
var (
	// ErrMemberNameEmpty is returned when a member's first or last name is empty.
	ErrMemberNameEmpty = errors.New("member name cannot be empty")

	// ErrMemberThresholdNegative is returned when a member's survey threshold is below zero.
	ErrMemberThresholdNegative = errors.New("member survey threshold cannot be negative")
)

// Member represents a Knesset member: an actor with ideological leanings that
// decides whether to back a law by scoring it against survey results.
type Member struct {
	firstName string
	lastName  string

	// Leaning weights applied to the matching law values
	socialLeaning    float64
	economyLeaning   float64
	politicalLeaning float64

	surveyThreshold int
	supportedLaws   int
}

// NewMember creates a new Member with the given identity, leanings and survey
// threshold. The member starts out supporting no laws.
func NewMember(
	firstName, lastName string,
	socialLeaning, economyLeaning, politicalLeaning float64,
	surveyThreshold int,
) *Member {
	return &Member{
		firstName:        firstName,
		lastName:         lastName,
		socialLeaning:    socialLeaning,
		economyLeaning:   economyLeaning,
		politicalLeaning: politicalLeaning,
		surveyThreshold:  surveyThreshold,
	}
}

// Validate checks if the Member has valid identity data.
func (m *Member) Validate() error {
	if m.firstName == "" || m.lastName == "" {
		return ErrMemberNameEmpty
	}

	if m.surveyThreshold < 0 {
		return ErrMemberThresholdNegative
	}

	return nil
}

// FirstName returns the member's first name.
func (m *Member) FirstName() string { return m.firstName }

// LastName returns the member's last name.
func (m *Member) LastName() string { return m.lastName }

// SurveyThreshold returns the minimal survey result a law needs before this
// member will consider it at all.
func (m *Member) SurveyThreshold() int { return m.surveyThreshold }

// Leanings returns the social, economy and political weights of the member.
func (m *Member) Leanings() (social, economy, political float64) {
	return m.socialLeaning, m.economyLeaning, m.politicalLeaning
}

// SupportedLaws returns the number of laws this member currently supports.
func (m *Member) SupportedLaws() int { return m.supportedLaws }

// RecordSupport increments the supported-law count. The assembly calls it
// after the law itself has accepted the member as a supporter.
func (m *Member) RecordSupport() {
	m.supportedLaws++
}

// Score returns the interest value this member assigns to the law.
//
// A survey result below the member's threshold zeroes the score; otherwise the
// score is the weighted sum of the law's values and the member's leanings.
func (m *Member) Score(law *Law, surveyResult int) float64 {
	if law == nil || surveyResult < m.surveyThreshold {
		return 0
	}

	politicalScore := float64(law.politicalValue) * m.politicalLeaning
	economyScore := float64(law.economyValue) * m.economyLeaning
	socialScore := float64(law.socialValue) * m.socialLeaning

	return politicalScore + economyScore + socialScore
}

// WillSupport reports whether the member would join the law at the default
// enthusiasm threshold.
func (m *Member) WillSupport(law *Law, surveyResult int) bool {
	return m.WillSupportAt(law, surveyResult, DefaultEnthusiasmThreshold)
}

// WillSupportAt reports whether the law's score reaches the given enthusiasm threshold.
func (m *Member) WillSupportAt(law *Law, surveyResult int, threshold float64) bool {
	return m.Score(law, surveyResult) >= threshold
}

// Describe returns the member's label, e.g. "Knesset Member Yehudah Glick".
func (m *Member) Describe() string {
	return fmt.Sprintf("Knesset Member %s %s", m.firstName, m.lastName)
}

// String implements fmt.Stringer.
func (m *Member) String() string {
	return m.Describe()
}
