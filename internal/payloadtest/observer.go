// Package payloadtest provides payload types with lifecycle hooks for exercising the transition engine.
package payloadtest

//go:generate mockgen -source observer.go -destination observer_mocks.go -package payloadtest

// MovedFrom is the ID a Probe is left with after being moved out of.
const MovedFrom = -1

// Observer is told about every hook run on a Probe or a CopyProbe.
type Observer interface {
	Copied(id int) error
	Moved(id int) error
	Destroyed(id int)
}

// Probe reports its hooks to Obs. Copy and move fail when Obs says so.
type Probe struct {
	ID  int
	Obs Observer
}

func (p *Probe) CopyFrom(src *Probe) error {
	if err := src.Obs.Copied(src.ID); err != nil {
		return err
	}
	*p = *src
	return nil
}

func (p *Probe) MoveFrom(src *Probe) error {
	if err := src.Obs.Moved(src.ID); err != nil {
		return err
	}
	*p = *src
	src.ID = MovedFrom
	return nil
}

func (p *Probe) Destroy() {
	if p.Obs != nil && p.ID != MovedFrom {
		p.Obs.Destroyed(p.ID)
	}
}

// CopyProbe is a Probe without a move hook, so it relocates without failing.
type CopyProbe struct {
	ID  int
	Obs Observer
}

func (p *CopyProbe) CopyFrom(src *CopyProbe) error {
	if err := src.Obs.Copied(src.ID); err != nil {
		return err
	}
	*p = *src
	return nil
}

func (p *CopyProbe) Destroy() {
	if p.Obs != nil {
		p.Obs.Destroyed(p.ID)
	}
}
