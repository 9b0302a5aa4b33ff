package simulation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/knesset/internal/domain"
	"github.com/phrazzld/knesset/internal/domain/assembly"
	"github.com/phrazzld/knesset/internal/events"
	"github.com/phrazzld/knesset/internal/platform/metrics"
)

// Runner drives a fresh assembly through a scenario.
type Runner struct {
	params  *assembly.Params
	logger  *slog.Logger
	emitter events.EventEmitter
	metrics *metrics.Metrics
}

// NewRunner creates a Runner. params are the base assembly parameters that
// scenarios may override. The emitter and metrics are optional; a nil logger
// selects slog.Default().
func NewRunner(
	params *assembly.Params,
	logger *slog.Logger,
	emitter events.EventEmitter,
	m *metrics.Metrics,
) *Runner {
	if params == nil {
		params = assembly.NewDefaultParams()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{
		params:  params,
		logger:  logger.With("component", "simulation_runner"),
		emitter: emitter,
		metrics: m,
	}
}

// registrationPayload is the payload of registration events.
type registrationPayload struct {
	Key   string `json:"key"`
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// lawPayload is the payload of survey and withdrawal events.
type lawPayload struct {
	LawKey         string `json:"law_key"`
	LawID          int    `json:"law_id"`
	SurveyResult   int    `json:"survey_result"`
	SupporterCount int    `json:"supporter_count"`
}

// memberLawPayload is the payload of support and suggestion events.
type memberLawPayload struct {
	lawPayload
	MemberKey     string `json:"member_key"`
	MemberID      int    `json:"member_id"`
	SupportedLaws int    `json:"supported_laws"`
}

// run holds the state of a single scenario execution.
type run struct {
	*Runner
	ctx      context.Context
	assembly *assembly.Assembly
	members  map[string]*domain.Member
	laws     map[string]*domain.Law
}

// Run validates the scenario, registers its members and laws on a new
// assembly and executes its steps in order.
//
// Rejected registrations and refused support are recorded in the report,
// not returned as errors. An error is returned only for an invalid scenario
// or a cancelled context.
func (r *Runner) Run(ctx context.Context, s *Scenario) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	params := s.Assembly.Apply(r.params)
	st := &run{
		Runner:   r,
		ctx:      ctx,
		assembly: assembly.NewWithParams(params),
		members:  make(map[string]*domain.Member, len(s.Members)),
		laws:     make(map[string]*domain.Law, len(s.Laws)),
	}

	report := &Report{Params: st.assembly.Params()}

	if err := st.build(s); err != nil {
		return nil, err
	}
	for _, spec := range s.Members {
		st.registerMember(spec.Key)
	}
	for _, spec := range s.Laws {
		st.registerLaw(spec)
	}

	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scenario interrupted at step %d: %w", i, err)
		}
		report.Steps = append(report.Steps, st.execute(i, step))
	}

	for _, spec := range s.Members {
		m := st.members[spec.Key]
		report.Members = append(report.Members, MemberResult{
			Key:           spec.Key,
			ID:            st.assembly.MemberID(m),
			Label:         m.Describe(),
			SupportedLaws: m.SupportedLaws(),
		})
	}
	for _, spec := range s.Laws {
		l := st.laws[spec.Key]
		report.Laws = append(report.Laws, LawResult{
			Key:            spec.Key,
			ID:             st.assembly.LawID(l),
			Label:          l.Describe(),
			SurveyResult:   l.SurveyResult(),
			SupporterCount: l.SupporterCount(),
		})
	}

	r.logger.Info("scenario completed",
		"members", st.assembly.MemberCount(),
		"laws", st.assembly.LawCount(),
		"steps", len(report.Steps),
		"supports_accepted", report.Accepted(OpSupport))

	return report, nil
}

// build creates every declared entity and validates it before anything is
// registered.
func (st *run) build(s *Scenario) error {
	for _, spec := range s.Members {
		m := domain.NewMember(spec.FirstName, spec.LastName,
			spec.Social, spec.Economy, spec.Political, spec.SurveyThreshold)
		if err := m.Validate(); err != nil {
			return fmt.Errorf("%w: member %q: %w", domain.ErrValidation, spec.Key, err)
		}
		st.members[spec.Key] = m
	}

	for _, spec := range s.Laws {
		l := domain.NewLaw(spec.Title, st.members[spec.Initiator], spec.Party, spec.Year,
			spec.Social, spec.Economy, spec.Political)
		if err := l.Validate(); err != nil {
			return fmt.Errorf("%w: law %q: %w", domain.ErrValidation, spec.Key, err)
		}
		st.laws[spec.Key] = l
	}

	return nil
}

func (st *run) registerMember(key string) {
	m := st.members[key]
	id := st.assembly.RegisterMember(m)
	st.recordRegistration(metrics.KindMember, events.TypeMemberRegistered, key, id, m.Describe())
}

func (st *run) registerLaw(spec LawSpec) {
	l := st.laws[spec.Key]
	id := st.assembly.RegisterLaw(l, spec.Survey)
	st.recordRegistration(metrics.KindLaw, events.TypeLawRegistered, spec.Key, id, l.Describe())
}

func (st *run) recordRegistration(kind, eventType, key string, id int, label string) {
	payload := registrationPayload{Key: key, ID: id, Label: label}

	if id == assembly.InvalidID {
		st.logger.Warn("registration rejected, assembly is full", "kind", kind, "key", key)
		if st.metrics != nil {
			st.metrics.IncrementRejected(kind)
		}
		st.emit(events.TypeRegistrationFailed, payload)
		return
	}

	st.logger.Debug("registered", "kind", kind, "key", key, "id", id)
	if st.metrics != nil {
		st.metrics.IncrementRegistered(kind)
	}
	st.emit(eventType, payload)
}

func (st *run) execute(index int, step Step) StepResult {
	result := StepResult{Index: index, Op: step.Op, Law: step.Law, Member: step.Member}
	st.logger.Debug("executing step", "index", index, "op", step.Op, "law", step.Law, "member", step.Member)

	switch step.Op {
	case OpSupport:
		st.support(step, &result)
	case OpSuggest:
		st.suggest(step, &result)
	case OpSurvey:
		st.survey(step, &result)
	case OpWithdraw:
		st.withdraw(step, &result)
	}

	return result
}

func (st *run) support(step Step, result *StepResult) {
	law := st.laws[step.Law]
	member := st.members[step.Member]
	lawID := st.assembly.LawID(law)
	memberID := st.assembly.MemberID(member)

	result.OK = st.assembly.Support(lawID, memberID, step.Survey)
	if st.metrics != nil {
		st.metrics.ObserveSupport(result.OK)
	}

	payload := memberLawPayload{
		lawPayload:    st.lawPayload(step.Law, law),
		MemberKey:     step.Member,
		MemberID:      memberID,
		SupportedLaws: member.SupportedLaws(),
	}

	if result.OK {
		result.Detail = fmt.Sprintf("supporters %d", law.SupporterCount())
		st.emit(events.TypeLawSupported, payload)
		return
	}

	result.Detail = st.refusalReason(law, member, lawID, memberID)
	st.logger.Info("support refused",
		"law", step.Law,
		"member", step.Member,
		"reason", result.Detail)
	st.emit(events.TypeLawSupportRefused, payload)
}

// refusalReason explains a refused support request from the observable state.
func (st *run) refusalReason(law *domain.Law, member *domain.Member, lawID, memberID int) string {
	params := st.assembly.Params()

	switch {
	case lawID == assembly.InvalidID:
		return "law not registered"
	case memberID == assembly.InvalidID:
		return "member not registered"
	case !member.WillSupportAt(law, law.SurveyResult(), params.EnthusiasmThreshold):
		return fmt.Sprintf("score %g below %g", member.Score(law, law.SurveyResult()), params.EnthusiasmThreshold)
	default:
		return fmt.Sprintf("member supports %d laws", member.SupportedLaws())
	}
}

func (st *run) suggest(step Step, result *StepResult) {
	member := st.members[step.Member]
	memberID := st.assembly.MemberID(member)
	law := st.assembly.SuggestLaw(memberID)

	result.OK = law != nil
	if st.metrics != nil {
		st.metrics.ObserveSuggestion(result.OK)
	}
	if law == nil {
		result.Detail = "none"
		return
	}

	result.Detail = law.Describe()
	st.emit(events.TypeLawSuggested, memberLawPayload{
		lawPayload:    st.lawPayload(st.keyOf(law), law),
		MemberKey:     step.Member,
		MemberID:      memberID,
		SupportedLaws: member.SupportedLaws(),
	})
}

func (st *run) survey(step Step, result *StepResult) {
	law := st.laws[step.Law]
	st.assembly.UpdateSurvey(law, step.Survey)

	result.OK = true
	result.Detail = fmt.Sprintf("survey %d", law.SurveyResult())
	if st.metrics != nil {
		st.metrics.IncrementSurveyUpdates()
	}
	st.emit(events.TypeLawSurveyUpdated, st.lawPayload(step.Law, law))
}

// withdraw removes one supporter from the law. Member support counts are
// never decremented. A law already at its floor is left untouched and the
// withdrawal is neither counted nor announced.
func (st *run) withdraw(step Step, result *StepResult) {
	law := st.laws[step.Law]
	before := law.SupporterCount()
	law.RemoveSupporter()

	result.OK = law.SupporterCount() < before
	result.Detail = fmt.Sprintf("supporters %d", law.SupporterCount())
	if !result.OK {
		return
	}

	if st.metrics != nil {
		st.metrics.IncrementWithdrawals()
	}
	st.emit(events.TypeLawSupportWithdrawn, st.lawPayload(step.Law, law))
}

func (st *run) lawPayload(key string, law *domain.Law) lawPayload {
	return lawPayload{
		LawKey:         key,
		LawID:          st.assembly.LawID(law),
		SurveyResult:   law.SurveyResult(),
		SupporterCount: law.SupporterCount(),
	}
}

func (st *run) keyOf(law *domain.Law) string {
	for key, l := range st.laws {
		if l == law {
			return key
		}
	}
	return ""
}

// emit publishes an event. Delivery failures are logged and do not stop
// the scenario.
func (st *run) emit(eventType string, payload interface{}) {
	if st.emitter == nil {
		return
	}

	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		st.logger.Error("failed to build event", "event_type", eventType, "error", err)
		return
	}

	if err := st.emitter.EmitEvent(st.ctx, event); err != nil {
		st.logger.Warn("event delivery failed", "event_type", eventType, "error", err)
	}
}
