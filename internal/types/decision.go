package types

// Action is the closed set of outcomes the decision policy can produce.
type Action string

const (
	ActionReject            Action = "REJECT"
	ActionPool              Action = "POOL"
	ActionScheduleInterview Action = "SCHEDULE_INTERVIEW"
	ActionSelectFastTrack   Action = "SELECT_FAST_TRACK"
)

// Actions lists every member of the closed action set.
var Actions = []Action{
	ActionReject,
	ActionPool,
	ActionScheduleInterview,
	ActionSelectFastTrack,
}

// Decision is the policy outcome for one candidate: the action plus the
// identity and human-readable rationale of the rule that fired.
type Decision struct {
	Action    Action `json:"action"`
	Rule      string `json:"rule"`
	Rationale string `json:"rationale"`
}

// ConfidenceBand is the discretized agreement level of the sub-scores.
// It quantifies signal consistency, not correctness.
type ConfidenceBand string

const (
	ConfidenceHigh   ConfidenceBand = "HIGH"
	ConfidenceMedium ConfidenceBand = "MEDIUM"
	ConfidenceLow    ConfidenceBand = "LOW"
)

// Counterfactual is the smallest signed change to a single sub-score that
// flips the policy's action. Features whose perturbation cannot flip the
// decision within [0,1] produce no Counterfactual.
type Counterfactual struct {
	Feature string  `json:"feature"`
	Delta   float64 `json:"delta"`
	Action  Action  `json:"resulting_action"`
}
