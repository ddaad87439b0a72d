// Package progress defines the hooks long-running steps report through.
// Spinners and event logs implement Observer; the core never depends on
// how (or whether) a step is displayed.
package progress

// Observer is notified around each blocking step.
type Observer interface {
	StepStart(desc string)
	StepEnd(desc string, err error)
}

// Nop ignores every notification.
type Nop struct{}

// StepStart does nothing.
func (Nop) StepStart(string) {}

// StepEnd does nothing.
func (Nop) StepEnd(string, error) {}

type multi []Observer

// Multi fans notifications out to each non-nil observer in order.
func Multi(observers ...Observer) Observer {
	var m multi
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

func (m multi) StepStart(desc string) {
	for _, o := range m {
		o.StepStart(desc)
	}
}

func (m multi) StepEnd(desc string, err error) {
	for i := len(m) - 1; i >= 0; i-- {
		m[i].StepEnd(desc, err)
	}
}

// Step runs fn between StepStart and StepEnd. A nil observer is allowed.
func Step(obs Observer, desc string, fn func() error) error {
	if obs == nil {
		obs = Nop{}
	}
	obs.StepStart(desc)
	err := fn()
	obs.StepEnd(desc, err)
	return err
}
