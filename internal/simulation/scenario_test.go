package simulation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/knesset/internal/domain/assembly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalScenario = `
members:
  - {key: a, first_name: A, last_name: B, social: 1, economy: 1, political: 1}
laws:
  - {key: t, title: T, initiator: a, party: Party, year: 2020, social: 10, economy: 10, political: 10, survey: 100}
steps:
  - {op: support, law: t, member: a, survey: 100}
`

func TestParseScenario(t *testing.T) {
	t.Parallel()

	s, err := ParseScenario([]byte(minimalScenario))
	require.NoError(t, err)

	assert.Nil(t, s.Assembly)
	require.Len(t, s.Members, 1)
	assert.Equal(t, MemberSpec{Key: "a", FirstName: "A", LastName: "B", Social: 1, Economy: 1, Political: 1}, s.Members[0])
	require.Len(t, s.Laws, 1)
	assert.Equal(t, "a", s.Laws[0].Initiator)
	assert.Equal(t, 100, s.Laws[0].Survey)
	require.Len(t, s.Steps, 1)
	assert.Equal(t, Step{Op: OpSupport, Law: "t", Member: "a", Survey: 100}, s.Steps[0])
}

func TestLoadScenario(t *testing.T) {
	t.Parallel()

	s, err := LoadScenario(filepath.Join("testdata", "coalition.yaml"))
	require.NoError(t, err)

	require.NotNil(t, s.Assembly)
	require.NotNil(t, s.Assembly.LawCapacity)
	assert.Equal(t, 2, *s.Assembly.LawCapacity)
	assert.Nil(t, s.Assembly.MemberCapacity)
	assert.Len(t, s.Members, 2)
	assert.Len(t, s.Laws, 3)
	assert.Len(t, s.Steps, 9)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseScenarioErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "empty document",
			doc:     "",
			wantErr: ErrEmptyScenario,
		},
		{
			name: "duplicate member key",
			doc: `
members:
  - {key: a, first_name: A, last_name: B}
  - {key: a, first_name: C, last_name: D}
`,
			wantErr: ErrDuplicateKey,
		},
		{
			name: "duplicate law key",
			doc: `
members:
  - {key: a, first_name: A, last_name: B}
laws:
  - {key: t, title: T, initiator: a, party: P}
  - {key: t, title: U, initiator: a, party: P}
`,
			wantErr: ErrDuplicateKey,
		},
		{
			name: "unknown initiator",
			doc: `
laws:
  - {key: t, title: T, initiator: ghost, party: P}
`,
			wantErr: ErrUnknownMember,
		},
		{
			name: "unknown law in step",
			doc: `
members:
  - {key: a, first_name: A, last_name: B}
steps:
  - {op: withdraw, law: missing}
`,
			wantErr: ErrUnknownLaw,
		},
		{
			name: "unknown member in step",
			doc: `
steps:
  - {op: suggest, member: ghost}
`,
			wantErr: ErrUnknownMember,
		},
		{
			name: "unknown operation",
			doc: `
steps:
  - {op: repeal}
`,
			wantErr: ErrUnknownOperation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tc.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
		})
	}
}

func TestParseScenarioFieldValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		doc  string
	}{
		{"unknown field", "members:\n  - {key: a, first_name: A, last_name: B, nickname: C}\n"},
		{"missing first name", "members:\n  - {key: a, last_name: B}\n"},
		{"negative survey threshold", "members:\n  - {key: a, first_name: A, last_name: B, survey_threshold: -1}\n"},
		{"missing title", "members:\n  - {key: a, first_name: A, last_name: B}\nlaws:\n  - {key: t, initiator: a, party: P}\n"},
		{"negative year", "members:\n  - {key: a, first_name: A, last_name: B}\nlaws:\n  - {key: t, title: T, initiator: a, party: P, year: -5}\n"},
		{"missing op", "steps:\n  - {law: t}\n"},
		{"negative law capacity", "assembly: {law_capacity: -1}\n"},
		{"zero member capacity", "assembly: {member_capacity: 0}\n"},
		{"malformed yaml", "members: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestValidateNilScenario(t *testing.T) {
	t.Parallel()

	var s *Scenario
	assert.ErrorIs(t, s.Validate(), ErrEmptyScenario)
}

func TestAssemblyOverridesApply(t *testing.T) {
	t.Parallel()

	base := &assembly.Params{LawCapacity: 5, MemberCapacity: 50, MaxLawsPerMember: 2, EnthusiasmThreshold: 5}

	t.Run("nil overrides copy the base", func(t *testing.T) {
		var o *AssemblyOverrides
		p := o.Apply(base)
		assert.Equal(t, *base, *p)
		assert.NotSame(t, base, p)
	})

	t.Run("nil base uses defaults", func(t *testing.T) {
		var o *AssemblyOverrides
		assert.Equal(t, *assembly.NewDefaultParams(), *o.Apply(nil))
	})

	t.Run("set fields replace the base", func(t *testing.T) {
		zero := 0
		threshold := 12.5
		o := &AssemblyOverrides{MaxLawsPerMember: &zero, EnthusiasmThreshold: &threshold}

		p := o.Apply(base)

		assert.Equal(t, 5, p.LawCapacity)
		assert.Equal(t, 50, p.MemberCapacity)
		assert.Equal(t, 0, p.MaxLawsPerMember)
		assert.Equal(t, 12.5, p.EnthusiasmThreshold)
		assert.Equal(t, 2, base.MaxLawsPerMember, "the base must not be modified")
	})
}

func TestScenarioFileIsWellFormed(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(filepath.Join("testdata", "coalition.yaml"))
	require.NoError(t, err)
	_, err = ParseScenario(data)
	require.NoError(t, err)
}
