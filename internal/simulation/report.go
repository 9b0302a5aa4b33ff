package simulation

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/phrazzld/knesset/internal/domain/assembly"
)

// Report is the outcome of running a scenario.
type Report struct {
	Params  assembly.Params
	Members []MemberResult
	Laws    []LawResult
	Steps   []StepResult
}

// MemberResult is the final state of a declared member. ID is
// assembly.InvalidID if registration failed.
type MemberResult struct {
	Key           string
	ID            int
	Label         string
	SupportedLaws int
}

// LawResult is the final state of a declared law. ID is assembly.InvalidID
// if registration failed.
type LawResult struct {
	Key            string
	ID             int
	Label          string
	SurveyResult   int
	SupporterCount int
}

// StepResult records the outcome of one step. OK is false when the
// operation was not applied or, for suggest, found nothing.
type StepResult struct {
	Index  int
	Op     string
	Law    string
	Member string
	OK     bool
	Detail string
}

// Accepted counts the steps of the given op that succeeded.
func (r *Report) Accepted(op string) int {
	n := 0
	for _, s := range r.Steps {
		if s.Op == op && s.OK {
			n++
		}
	}
	return n
}

// WriteTable writes the report as aligned plain-text tables.
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "law capacity %d, member capacity %d, max laws per member %d, enthusiasm threshold %g\n\n",
		r.Params.LawCapacity, r.Params.MemberCapacity, r.Params.MaxLawsPerMember, r.Params.EnthusiasmThreshold)

	fmt.Fprintln(tw, "STEP\tOP\tLAW\tMEMBER\tOK\tDETAIL")
	for _, s := range r.Steps {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%t\t%s\n", s.Index, s.Op, dash(s.Law), dash(s.Member), s.OK, s.Detail)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "LAW\tID\tSURVEY\tSUPPORTERS\tLABEL")
	for _, l := range r.Laws {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", l.Key, formatID(l.ID), l.SurveyResult, l.SupporterCount, l.Label)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "MEMBER\tID\tSUPPORTED\tLABEL")
	for _, m := range r.Members {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", m.Key, formatID(m.ID), m.SupportedLaws, m.Label)
	}

	return tw.Flush()
}

func formatID(id int) string {
	if id == assembly.InvalidID {
		return "-"
	}
	return strconv.Itoa(id)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
