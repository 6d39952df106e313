package submission

import "github.com/goliatone/go-keywordform/pkg/model"

// Phase names the lifecycle variants.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// Lifecycle is the state of the single outstanding request. Exactly one of
// Idle, Loading, Succeeded or Failed holds at any time; the interface is sealed
// so no other variant can exist.
type Lifecycle interface {
	Phase() Phase
	lifecycle()
}

// Idle is the initial state; nothing has been submitted yet.
type Idle struct{}

// Loading means the transport call is in flight.
type Loading struct{}

// Succeeded carries the result of the last submission.
type Succeeded struct {
	Result model.ResultData
}

// Failed carries the user-facing message of the last submission.
type Failed struct {
	Message string
}

func (Idle) Phase() Phase      { return PhaseIdle }
func (Loading) Phase() Phase   { return PhaseLoading }
func (Succeeded) Phase() Phase { return PhaseSuccess }
func (Failed) Phase() Phase    { return PhaseError }

func (Idle) lifecycle()      {}
func (Loading) lifecycle()   {}
func (Succeeded) lifecycle() {}
func (Failed) lifecycle()    {}
