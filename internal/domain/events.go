package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventRosterLoadStarted     EventType = "RosterLoadStarted"
	EventEmployeesLoadedBatch  EventType = "EmployeesLoadedBatch"
	EventRosterLoadCompleted   EventType = "RosterLoadCompleted"
	EventRosterReloadRequested EventType = "RosterReloadRequested"
	EventError                 EventType = "Error"
	EventConfigLoaded          EventType = "ConfigLoaded"
	EventConfigSaved           EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// RosterLoadStartedEvent is emitted when roster loading begins
type RosterLoadStartedEvent struct {
	Source string
}

func (e RosterLoadStartedEvent) Type() EventType { return EventRosterLoadStarted }

// EmployeesLoadedBatchEvent carries a batch of newly loaded employees.
// Offset is the batch's position in the roster; handlers run concurrently,
// so consumers place batches by offset instead of relying on arrival order.
type EmployeesLoadedBatchEvent struct {
	Offset    int
	Employees []Employee
}

func (e EmployeesLoadedBatchEvent) Type() EventType { return EventEmployeesLoadedBatch }

// RosterLoadCompletedEvent is emitted when loading finishes
type RosterLoadCompletedEvent struct {
	EmployeesRead int
	Err           error
}

func (e RosterLoadCompletedEvent) Type() EventType { return EventRosterLoadCompleted }

// RosterReloadRequestedEvent asks the loader to re-read its source
type RosterReloadRequestedEvent struct{}

func (e RosterReloadRequestedEvent) Type() EventType { return EventRosterReloadRequested }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted after configuration has been read
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after configuration has been written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
