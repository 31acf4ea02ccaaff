package tracker

import (
	"strings"
	"time"

	"growthlog/backend/models"
)

type Page int

const (
	PageOverview Page = iota
	PageLogEntry
	PageResources
)

var pageLabels = map[Page]string{
	PageOverview:  "Overview",
	PageLogEntry:  "Log New Entry",
	PageResources: "Learning Resources",
}

var pageSlugs = map[Page]string{
	PageOverview:  "overview",
	PageLogEntry:  "log",
	PageResources: "resources",
}

// Pages lists the navigation options in display order.
var Pages = []Page{PageOverview, PageLogEntry, PageResources}

func (p Page) String() string {
	return pageLabels[p]
}

func (p Page) Slug() string {
	return pageSlugs[p]
}

// ParsePage accepts a navigation label or its URL slug.
func ParsePage(s string) (Page, bool) {
	s = strings.TrimSpace(s)
	for _, p := range Pages {
		if s == pageLabels[p] || strings.EqualFold(s, pageSlugs[p]) {
			return p, true
		}
	}
	return PageOverview, false
}

// State is everything one session owns.
type State struct {
	Page    Page
	Entries Store
}

func NewState() State {
	return State{Page: PageOverview}
}

// Action is a user command applied to a State.
type Action interface {
	isAction()
}

type Navigate struct {
	Page Page
}

type SubmitQuick struct {
	Input models.QuickLogInput
	Now   time.Time
}

type SubmitFull struct {
	Input models.FullLogInput
}

// Sequence applies its actions in order as one transition. The outcome is
// that of the last action that produced one.
type Sequence []Action

func (Navigate) isAction()    {}
func (SubmitQuick) isAction() {}
func (SubmitFull) isAction()  {}
func (Sequence) isAction()    {}

type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeSuccess
	OutcomeInvalid
)

type Form string

const (
	FormQuick Form = "quick"
	FormFull  Form = "full"
)

const (
	QuickSaved = "Quick entry saved!"
	FullSaved  = "Progress entry saved successfully!"
)

// Outcome is the transient result of one action, shown on the render that
// follows it and then dropped.
type Outcome struct {
	Kind    OutcomeKind
	Form    Form
	Message string
	Errors  []string
	Fields  map[string]string
	Entry   *models.ProgressEntry
}

func (o Outcome) Success() bool { return o.Kind == OutcomeSuccess }
func (o Outcome) Invalid() bool { return o.Kind == OutcomeInvalid }

// Apply returns the state after action along with its outcome. The input
// state is not modified.
func Apply(state State, action Action) (State, Outcome) {
	switch a := action.(type) {
	case Sequence:
		var last Outcome
		for _, step := range a {
			var outcome Outcome
			state, outcome = Apply(state, step)
			if outcome.Kind != OutcomeNone {
				last = outcome
			}
		}
		return state, last

	case Navigate:
		state.Page = a.Page
		return state, Outcome{}

	case SubmitQuick:
		entry, verr := NewQuickEntry(a.Input, a.Now)
		if verr != nil {
			return state, invalid(FormQuick, verr)
		}
		state.Entries = state.Entries.Append(entry)
		return state, Outcome{Kind: OutcomeSuccess, Form: FormQuick, Message: QuickSaved, Entry: &entry}

	case SubmitFull:
		entry, verr := NewFullEntry(a.Input)
		if verr != nil {
			return state, invalid(FormFull, verr)
		}
		state.Entries = state.Entries.Append(entry)
		return state, Outcome{Kind: OutcomeSuccess, Form: FormFull, Message: FullSaved, Entry: &entry}
	}

	return state, Outcome{}
}

func invalid(form Form, verr *ValidationError) Outcome {
	return Outcome{
		Kind:   OutcomeInvalid,
		Form:   form,
		Errors: verr.Messages,
		Fields: verr.Fields,
	}
}
