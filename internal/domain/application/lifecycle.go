package application

import (
	"errors"

	"skillbridge/internal/domain/actor"
)

// Party is the caller's relation to one application.
type Party int

const (
	PartyNone Party = iota
	PartyFreelancer
	PartyCompany
)

func PartyOf(a actor.Actor, app Application) Party {
	switch {
	case a.IsFreelancer(app.FreelancerID):
		return PartyFreelancer
	case a.IsCompany(app.CompanyID):
		return PartyCompany
	default:
		return PartyNone
	}
}

type transition struct {
	from Status
	to   Status
}

// Transitions lists every allowed move and the only party that may make it.
// PENDING -> PENDING is an edit of proposal or rate.
var Transitions = map[transition]Party{
	{StatusPending, StatusPending}:   PartyFreelancer,
	{StatusPending, StatusAccepted}:  PartyCompany,
	{StatusPending, StatusRejected}:  PartyCompany,
	{StatusPending, StatusWithdrawn}: PartyFreelancer,
}

var (
	ErrTransitionState     = errors.New("application is not pending")
	ErrTransitionForbidden = errors.New("transition not allowed for caller")
)

// DecisionError explains why Decide refused a transition. It unwraps to
// ErrTransitionState or ErrTransitionForbidden.
type DecisionError struct {
	Kind    error
	Message string
	From    Status
	To      Status
}

func (e *DecisionError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *DecisionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

// Decide checks a requested move against the transition table. The state
// check runs first: a non-pending application refuses every update
// whoever asks.
func Decide(from, to Status, party Party) error {
	if from != StatusPending {
		return &DecisionError{Kind: ErrTransitionState, Message: notPendingMessage(to), From: from, To: to}
	}

	if party == PartyNone {
		return &DecisionError{Kind: ErrTransitionForbidden, Message: "You are not authorized to update this application.", From: from, To: to}
	}

	allowed, ok := Transitions[transition{from: from, to: to}]
	if !ok {
		return &DecisionError{Kind: ErrTransitionForbidden, Message: "Invalid status transition.", From: from, To: to}
	}
	if allowed != party {
		return &DecisionError{Kind: ErrTransitionForbidden, Message: wrongPartyMessage(to), From: from, To: to}
	}
	return nil
}

func notPendingMessage(to Status) string {
	switch to {
	case StatusAccepted, StatusRejected:
		return "Only pending applications can be accepted or rejected."
	case StatusWithdrawn:
		return "Only pending applications can be withdrawn."
	default:
		return "Only pending applications can be updated."
	}
}

func wrongPartyMessage(to Status) string {
	switch to {
	case StatusAccepted, StatusRejected:
		return "Only the mission's company can accept or reject applications."
	case StatusWithdrawn:
		return "Only the freelancer can withdraw this application."
	default:
		return "Only the freelancer can modify the proposal or rate."
	}
}
