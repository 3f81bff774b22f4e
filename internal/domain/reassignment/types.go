package reassignment

// Status is the lifecycle state of a reassignment request. COMPLETED,
// ESCALATED and CANCELLED are terminal; EXPIRED is terminal only when the
// escalation policy resolves to no further action.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
	StatusExpired   Status = "EXPIRED"
	StatusCompleted Status = "COMPLETED"
	StatusEscalated Status = "ESCALATED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string { return string(s) }

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusExpired,
		StatusCompleted, StatusEscalated, StatusCancelled:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusEscalated, StatusCancelled:
		return true
	}
	return false
}

// Reason explains why the original resource became unusable.
type Reason string

const (
	ReasonMaintenance Reason = "MAINTENANCE"
	ReasonUnavailable Reason = "UNAVAILABLE"
	ReasonOverbooking Reason = "OVERBOOKING"
	ReasonUserRequest Reason = "USER_REQUEST"
	ReasonDamage      Reason = "DAMAGE"
	ReasonEmergency   Reason = "EMERGENCY"
	ReasonOther       Reason = "OTHER"
)

func (r Reason) String() string { return string(r) }

func (r Reason) Valid() bool {
	switch r {
	case ReasonMaintenance, ReasonUnavailable, ReasonOverbooking,
		ReasonUserRequest, ReasonDamage, ReasonEmergency, ReasonOther:
		return true
	}
	return false
}

// UserResponse is the affected user's answer to a suggestion.
type UserResponse string

const (
	ResponseAccept UserResponse = "ACCEPT"
	ResponseReject UserResponse = "REJECT"
)

func (u UserResponse) Valid() bool {
	return u == ResponseAccept || u == ResponseReject
}

// NextAction tells the caller what the workflow decided after a user
// response. A closed set so consumers can match exhaustively.
type NextAction string

const (
	ActionComplete         NextAction = "COMPLETE"
	ActionFindAlternatives NextAction = "FIND_ALTERNATIVES"
	ActionEscalate         NextAction = "ESCALATE"
	ActionApplyPenalty     NextAction = "APPLY_PENALTY"
	ActionNone             NextAction = "NONE"
)

// EscalationAction is the outcome chosen when a pending request expires.
type EscalationAction string

const (
	EscalationNotifySupervisor  EscalationAction = "NOTIFY_SUPERVISOR"
	EscalationAutoAssign        EscalationAction = "AUTO_ASSIGN"
	EscalationCancelReservation EscalationAction = "CANCEL_RESERVATION"
	EscalationNone              EscalationAction = "NONE"
)

// DecideRejectionOutcome maps a rejection to the workflow's next action. The
// penalty threshold takes priority; otherwise the first rejection earns a
// fresh alternatives search and later ones escalate.
func DecideRejectionOutcome(rejectionCount int, shouldPenalize bool) NextAction {
	switch {
	case shouldPenalize:
		return ActionApplyPenalty
	case rejectionCount == 1:
		return ActionFindAlternatives
	default:
		return ActionEscalate
	}
}

// DecideEscalation picks what happens to an expired request. Supervisor
// notification wins when the policy asks for it; otherwise auto-assignment
// is tried when a suggestion exists, urgent requests fall back to cancelling
// the reservation, and everything else is left for manual handling.
func DecideEscalation(escalateToSupervisor, autoApprovalEnabled, hasSuggestion, isUrgent bool) EscalationAction {
	switch {
	case escalateToSupervisor:
		return EscalationNotifySupervisor
	case autoApprovalEnabled && hasSuggestion:
		return EscalationAutoAssign
	case isUrgent:
		return EscalationCancelReservation
	default:
		return EscalationNone
	}
}
