package domain

import "time"

// Outcome classifies how a target ended up in a run.
type Outcome string

const (
	// OutcomeBuilt means the target's build action ran and succeeded.
	OutcomeBuilt Outcome = "built"
	// OutcomeSkipped means the target was an already-existing prerequisite.
	OutcomeSkipped Outcome = "skipped"
	// OutcomePulled means the target's image was fetched by the pull fast path.
	OutcomePulled Outcome = "pulled"
	// OutcomeFailed means the build or pull action reported failure.
	OutcomeFailed Outcome = "failed"
)

// RunRecord is one journal entry: the latest outcome observed for a target.
type RunRecord struct {
	Target        string        `json:"target"`
	Tag           string        `json:"tag"`
	Outcome       Outcome       `json:"outcome"`
	OptionsDigest string        `json:"options_digest,omitempty"`
	Duration      time.Duration `json:"duration,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}
