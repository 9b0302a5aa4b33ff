// Package metrics exposes prometheus counters for assembly activity.
package metrics

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Namespace prefixes every metric name registered by New.
const Namespace = "knesset"

// Label values
const (
	KindLaw    = "law"
	KindMember = "member"

	OutcomeAccepted = "accepted"
	OutcomeRefused  = "refused"
	OutcomeFound    = "found"
	OutcomeNone     = "none"
)

// Metrics holds the counters recorded while a scenario runs.
type Metrics struct {
	MembersRegistered     prometheus.Counter
	LawsRegistered        prometheus.Counter
	RegistrationsRejected *prometheus.CounterVec
	SupportRequests       *prometheus.CounterVec
	Suggestions           *prometheus.CounterVec
	SurveyUpdates         prometheus.Counter
	SupportWithdrawals    prometheus.Counter
}

// New registers the assembly counters on reg. Passing nil registers nothing,
// which suits one-off runs that never expose the counters.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		MembersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "knesset_members_registered_total",
			Help: "Total number of members registered to an assembly",
		}),
		LawsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "knesset_laws_registered_total",
			Help: "Total number of laws registered to an assembly",
		}),
		RegistrationsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "knesset_registrations_rejected_total",
			Help: "Total number of registrations rejected because the assembly was full",
		}, []string{"kind"}),
		SupportRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "knesset_support_requests_total",
			Help: "Total number of support requests by outcome",
		}, []string{"outcome"}),
		Suggestions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "knesset_suggestions_total",
			Help: "Total number of law suggestions by outcome",
		}, []string{"outcome"}),
		SurveyUpdates: factory.NewCounter(prometheus.CounterOpts{
			Name: "knesset_survey_updates_total",
			Help: "Total number of survey result updates",
		}),
		SupportWithdrawals: factory.NewCounter(prometheus.CounterOpts{
			Name: "knesset_support_withdrawals_total",
			Help: "Total number of withdrawals that removed a supporter",
		}),
	}
}

// IncrementRegistered counts a successful registration of the given kind.
func (m *Metrics) IncrementRegistered(kind string) {
	if kind == KindLaw {
		m.LawsRegistered.Inc()
		return
	}
	m.MembersRegistered.Inc()
}

// IncrementRejected counts a registration refused because the assembly was full.
func (m *Metrics) IncrementRejected(kind string) {
	m.RegistrationsRejected.WithLabelValues(kind).Inc()
}

// ObserveSupport counts a support request by outcome.
func (m *Metrics) ObserveSupport(accepted bool) {
	outcome := OutcomeRefused
	if accepted {
		outcome = OutcomeAccepted
	}
	m.SupportRequests.WithLabelValues(outcome).Inc()
}

// ObserveSuggestion counts a suggestion query by whether a law was found.
func (m *Metrics) ObserveSuggestion(found bool) {
	outcome := OutcomeNone
	if found {
		outcome = OutcomeFound
	}
	m.Suggestions.WithLabelValues(outcome).Inc()
}

// IncrementSurveyUpdates counts a survey result update.
func (m *Metrics) IncrementSurveyUpdates() {
	m.SurveyUpdates.Inc()
}

// IncrementWithdrawals counts a withdrawal that removed a supporter.
func (m *Metrics) IncrementWithdrawals() {
	m.SupportWithdrawals.Inc()
}

// WriteText gathers the knesset metric families from g and writes them to w in
// the prometheus text exposition format. Families from other collectors are
// skipped.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), Namespace+"_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric family %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
