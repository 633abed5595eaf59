package nsq

import (
	"fmt"

	"github.com/prasetya/kumpul/internal/pkg/constants"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/internal/pkg/nsq"
	pkgws "github.com/prasetya/kumpul/internal/pkg/websocket"
	"github.com/prasetya/kumpul/services/location"
)

// NSQHandler bridges the message bus to the realtime channel: it consumes
// location topics and fans the payloads out to eligible WebSocket clients.
type NSQHandler struct {
	locationUC location.LocationUC
	manager    *pkgws.Manager
	cfg        models.NSQConfig
	consumers  []*nsq.Consumer
}

// NewNSQHandler creates a new NSQ handler
func NewNSQHandler(locationUC location.LocationUC, manager *pkgws.Manager, cfg models.NSQConfig) *NSQHandler {
	return &NSQHandler{
		locationUC: locationUC,
		manager:    manager,
		cfg:        cfg,
	}
}

// InitConsumers starts the consumers for all location topics
func (h *NSQHandler) InitConsumers() error {
	topics := map[string]nsq.MessageHandler{
		constants.TopicLocationUpdates:  h.handleLocationUpdated,
		constants.TopicSharingLifecycle: h.handleSharingLifecycle,
		constants.TopicGeofenceAlerts:   h.handleGeofenceAlert,
	}

	for topic, handler := range topics {
		consumer, err := nsq.NewConsumer(topic, constants.ChannelLocationService, h.cfg.ProducerAddress, handler)
		if err != nil {
			return fmt.Errorf("failed to create consumer for topic %s: %w", topic, err)
		}
		if h.cfg.LookupdAddress != "" {
			if err := consumer.ConnectToLookupd([]string{h.cfg.LookupdAddress}); err != nil {
				return fmt.Errorf("failed to connect to lookupd for topic %s: %w", topic, err)
			}
		}
		h.consumers = append(h.consumers, consumer)
	}

	return nil
}

// Stop gracefully stops all consumers
func (h *NSQHandler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
}
