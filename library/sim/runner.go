package sim

type StepCallbacks struct {
	Name string

	OnRunStart  func()
	OnRunEnd    func()
	OnStepStart func()
	OnStepEnd   func()
	StopEarly   func() bool
}

// Runner calls every registered callback around runs and steps.
type Runner struct {
	Callbacks []StepCallbacks
}

// Boiler-plate functions to prevent copy-pasting a for-loop.

func (rn *Runner) OnRunStart() {
	for _, callback := range rn.Callbacks {
		if callback.OnRunStart != nil {
			callback.OnRunStart()
		}
	}
}

func (rn *Runner) OnRunEnd() {
	for _, callback := range rn.Callbacks {
		if callback.OnRunEnd != nil {
			callback.OnRunEnd()
		}
	}
}

func (rn *Runner) OnStepStart() {
	for _, callback := range rn.Callbacks {
		if callback.OnStepStart != nil {
			callback.OnStepStart()
		}
	}
}

func (rn *Runner) OnStepEnd() {
	for _, callback := range rn.Callbacks {
		if callback.OnStepEnd != nil {
			callback.OnStepEnd()
		}
	}
}

func (rn *Runner) StopEarly() bool {
	for _, callback := range rn.Callbacks {
		if callback.StopEarly != nil && callback.StopEarly() {
			return true
		}
	}
	return false
}
