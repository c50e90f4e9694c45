package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRangeChanged     EventType = "RangeChanged"
	EventParameterChanged EventType = "ParameterChanged"
	EventInputRejected    EventType = "InputRejected"
	EventRestored         EventType = "Restored"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventConfigChanged    EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// Source identifies which input surface produced a change
type Source string

// Input sources
const (
	SourceDrag      Source = "drag"
	SourceText      Source = "text"
	SourceSlider    Source = "slider"
	SourceTickClamp Source = "clamp"
	SourceRestore   Source = "restore"
)

// RangeChangedEvent is emitted after the selection accepted a new pair
type RangeChangedEvent struct {
	Indices Indices
	Source  Source
}

func (e RangeChangedEvent) Type() EventType { return EventRangeChanged }

// ParameterChangedEvent is emitted after a parameter value was applied
type ParameterChangedEvent struct {
	Name  ParamName
	Value float64
	Label string
}

func (e ParameterChangedEvent) Type() EventType { return EventParameterChanged }

// InputRejectedEvent is emitted when an input was dropped by validation
type InputRejectedEvent struct {
	Source Source
	Err    error
}

func (e InputRejectedEvent) Type() EventType { return EventInputRejected }

// RestoredEvent is emitted after a lifecycle restore republished the selection
type RestoredEvent struct {
	Indices        Indices
	ParamsResynced bool
}

func (e RestoredEvent) Type() EventType { return EventRestored }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent carries the state to write back to the config file
type ConfigChangedEvent struct {
	Params  map[ParamName]float64
	Indices Indices
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
