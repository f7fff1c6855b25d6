package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageLoaded    EventType = "PageLoaded"
	EventPageSearch    EventType = "PageSearch"
	EventPageFailed    EventType = "PageFailed"
	EventHistoryChange EventType = "HistoryChanged"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageLoadedEvent is emitted when a page becomes the current page
type PageLoadedEvent struct {
	Number int
	Lines  int
	Chunks int
}

func (e PageLoadedEvent) Type() EventType { return EventPageLoaded }

// PageSearchEvent is emitted each time a next/previous search skips an empty page
type PageSearchEvent struct {
	Skipped   int
	Direction Direction
}

func (e PageSearchEvent) Type() EventType { return EventPageSearch }

// PageFailedEvent is emitted when a load fails with an error the user should see
type PageFailedEvent struct {
	Number  int
	Message string
	Err     error
}

func (e PageFailedEvent) Type() EventType { return EventPageFailed }

// HistoryChangedEvent is emitted when a page number is appended to the history log
type HistoryChangedEvent struct {
	Number int
	Len    int
}

func (e HistoryChangedEvent) Type() EventType { return EventHistoryChange }

// ErrorEvent is emitted when an error occurs outside page loading
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path      string
	StartPage int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
