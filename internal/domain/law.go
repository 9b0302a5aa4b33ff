package domain

import (
	"errors"
	"strconv"
	"strings"
)

// Law-specific validation errors
var (
	// ErrLawTitleEmpty is returned when a law's title is empty.
	ErrLawTitleEmpty = errors.New("law title cannot be empty")

	// ErrLawInitiatorNil is returned when a law has no initiating member.
	ErrLawInitiatorNil = errors.New("law initiator cannot be nil")

	// ErrLawPartyEmpty is returned when the initiator's party is empty.
	ErrLawPartyEmpty = errors.New("law party cannot be empty")

	// ErrLawYearInvalid is returned when the year of publication is negative.
	ErrLawYearInvalid = errors.New("law year of publication cannot be negative")
)

// Law represents a proposal discussed by an assembly. Its descriptive
// attributes are fixed at creation; the survey result and supporter count
// change over the law's lifetime.
type Law struct {
	title     string
	initiator *Member // non-owning, the member never references its laws
	party     string
	year      int

	socialValue    int
	economyValue   int
	politicalValue int

	surveyResult   int
	supporterCount int
}

// NewLaw creates a new Law. The supporter count starts at 1, which accounts
// for the initiator's own support.
func NewLaw(
	title string,
	initiator *Member,
	party string,
	year int,
	socialValue, economyValue, politicalValue int,
) *Law {
	return &Law{
		title:          title,
		initiator:      initiator,
		party:          party,
		year:           year,
		socialValue:    socialValue,
		economyValue:   economyValue,
		politicalValue: politicalValue,
		supporterCount: 1,
	}
}

// Validate checks if the Law has valid descriptive data.
func (l *Law) Validate() error {
	if l.title == "" {
		return ErrLawTitleEmpty
	}

	if l.initiator == nil {
		return ErrLawInitiatorNil
	}

	if l.party == "" {
		return ErrLawPartyEmpty
	}

	if l.year < 0 {
		return ErrLawYearInvalid
	}

	return nil
}

// Title returns the law's title.
func (l *Law) Title() string { return l.title }

// Initiator returns the member that initiated the law.
func (l *Law) Initiator() *Member { return l.initiator }

// Party returns the party of the law's initiator.
func (l *Law) Party() string { return l.party }

// Year returns the year of publication.
func (l *Law) Year() int { return l.year }

// Values returns the social, economy and political values of the law.
func (l *Law) Values() (social, economy, political int) {
	return l.socialValue, l.economyValue, l.politicalValue
}

// SurveyResult returns the most recently recorded survey result.
func (l *Law) SurveyResult() int { return l.surveyResult }

// SetSurveyResult overwrites the stored survey result.
func (l *Law) SetSurveyResult(result int) {
	l.surveyResult = result
}

// AddSupporter adds another member to the supporters of this law.
// Per-member caps are enforced by the assembly, not here.
func (l *Law) AddSupporter() {
	l.supporterCount++
}

// RemoveSupporter removes a single supporter. The initiator can never be
// removed, so a law with one supporter is left unchanged.
func (l *Law) RemoveSupporter() {
	if l.supporterCount > 1 {
		l.supporterCount--
	}
}

// SupporterCount returns the number of members currently supporting the law,
// including the initiator.
func (l *Law) SupporterCount() int { return l.supporterCount }

// Describe returns the law's label: title, initiator label, party and year
// separated by commas and enclosed in square brackets, e.g.
// "[Fix 128,Knesset Member Eli Alaluf,Kulanu,2016]".
func (l *Law) Describe() string {
	initiator := ""
	if l.initiator != nil {
		initiator = l.initiator.Describe()
	}

	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(l.title)
	b.WriteByte(',')
	b.WriteString(initiator)
	b.WriteByte(',')
	b.WriteString(l.party)
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(l.year))
	b.WriteByte(']')
	return b.String()
}

// String implements fmt.Stringer.
func (l *Law) String() string {
	return l.Describe()
}
