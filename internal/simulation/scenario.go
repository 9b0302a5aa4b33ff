package simulation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/knesset/internal/domain/assembly"
	"gopkg.in/yaml.v3"
)

// Step operations
const (
	OpSupport  = "support"
	OpSuggest  = "suggest"
	OpSurvey   = "survey"
	OpWithdraw = "withdraw"
)

// Scenario describes the members and laws of an assembly and the steps
// to run against it.
type Scenario struct {
	Assembly *AssemblyOverrides `yaml:"assembly"`
	Members  []MemberSpec       `yaml:"members" validate:"dive"`
	Laws     []LawSpec          `yaml:"laws" validate:"dive"`
	Steps    []Step             `yaml:"steps" validate:"dive"`
}

// AssemblyOverrides replaces individual assembly parameters for one scenario.
// Unset fields keep the configured values.
type AssemblyOverrides struct {
	LawCapacity         *int     `yaml:"law_capacity" validate:"omitempty,gte=0"`
	MaxLawsPerMember    *int     `yaml:"max_laws_per_member" validate:"omitempty,gte=0"`
	MemberCapacity      *int     `yaml:"member_capacity" validate:"omitempty,gt=0"`
	EnthusiasmThreshold *float64 `yaml:"enthusiasm_threshold"`
}

// MemberSpec declares a member. Key is how laws and steps refer to it.
type MemberSpec struct {
	Key             string  `yaml:"key" validate:"required"`
	FirstName       string  `yaml:"first_name" validate:"required"`
	LastName        string  `yaml:"last_name" validate:"required"`
	Social          float64 `yaml:"social"`
	Economy         float64 `yaml:"economy"`
	Political       float64 `yaml:"political"`
	SurveyThreshold int     `yaml:"survey_threshold" validate:"gte=0"`
}

// LawSpec declares a law and the survey result it is registered with.
type LawSpec struct {
	Key       string `yaml:"key" validate:"required"`
	Title     string `yaml:"title" validate:"required"`
	Initiator string `yaml:"initiator" validate:"required"`
	Party     string `yaml:"party" validate:"required"`
	Year      int    `yaml:"year" validate:"gte=0"`
	Social    int    `yaml:"social"`
	Economy   int    `yaml:"economy"`
	Political int    `yaml:"political"`
	Survey    int    `yaml:"survey"`
}

// Step is a single operation against the assembly.
//
//   - support: Member pledges support to Law; Survey is passed along
//   - suggest: find the best law for Member
//   - survey: set the survey result of Law to Survey
//   - withdraw: remove one supporter from Law
type Step struct {
	Op     string `yaml:"op" validate:"required"`
	Law    string `yaml:"law"`
	Member string `yaml:"member"`
	Survey int    `yaml:"survey"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a YAML scenario and validates it. Unknown fields are
// rejected.
func ParseScenario(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScenario
		}
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks field constraints and that every key reference resolves.
func (s *Scenario) Validate() error {
	if s == nil {
		return ErrEmptyScenario
	}

	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("scenario validation failed: %w", err)
	}

	members := make(map[string]struct{}, len(s.Members))
	for _, m := range s.Members {
		if _, ok := members[m.Key]; ok {
			return fmt.Errorf("%w: member %q", ErrDuplicateKey, m.Key)
		}
		members[m.Key] = struct{}{}
	}

	laws := make(map[string]struct{}, len(s.Laws))
	for _, l := range s.Laws {
		if _, ok := laws[l.Key]; ok {
			return fmt.Errorf("%w: law %q", ErrDuplicateKey, l.Key)
		}
		if _, ok := members[l.Initiator]; !ok {
			return fmt.Errorf("%w: %q initiates law %q", ErrUnknownMember, l.Initiator, l.Key)
		}
		laws[l.Key] = struct{}{}
	}

	for i, step := range s.Steps {
		needLaw, needMember := false, false
		switch step.Op {
		case OpSupport:
			needLaw, needMember = true, true
		case OpSuggest:
			needMember = true
		case OpSurvey, OpWithdraw:
			needLaw = true
		default:
			return fmt.Errorf("%w: step %d: %q", ErrUnknownOperation, i, step.Op)
		}

		if _, ok := laws[step.Law]; needLaw && !ok {
			return fmt.Errorf("%w: step %d: %q", ErrUnknownLaw, i, step.Law)
		}
		if _, ok := members[step.Member]; needMember && !ok {
			return fmt.Errorf("%w: step %d: %q", ErrUnknownMember, i, step.Member)
		}
	}

	return nil
}

// Apply returns a copy of base with the overrides applied.
func (o *AssemblyOverrides) Apply(base *assembly.Params) *assembly.Params {
	if base == nil {
		base = assembly.NewDefaultParams()
	}
	p := *base
	if o == nil {
		return &p
	}

	if o.LawCapacity != nil {
		p.LawCapacity = *o.LawCapacity
	}
	if o.MaxLawsPerMember != nil {
		p.MaxLawsPerMember = *o.MaxLawsPerMember
	}
	if o.MemberCapacity != nil {
		p.MemberCapacity = *o.MemberCapacity
	}
	if o.EnthusiasmThreshold != nil {
		p.EnthusiasmThreshold = *o.EnthusiasmThreshold
	}
	return &p
}
