package service

// Live update event types pushed to connected storefronts.
const (
	EventThemeUpdated     = "theme.updated"
	EventAppConfigUpdated = "app_config.updated"
	EventSocialUpdated    = "social.updated"
	EventAddressUpdated   = "address.updated"
	EventMenuUpdated      = "menu.updated"
	EventStoreStatus      = "store.status"
)

// EventPublisher fans an event out to live subscribers. Publish must not block.
type EventPublisher interface {
	Publish(eventType string, payload interface{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, interface{}) {}
