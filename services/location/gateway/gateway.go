package gateway

import (
	"errors"
	"time"

	httpclient "github.com/prasetya/kumpul/internal/pkg/http"
	"github.com/prasetya/kumpul/internal/pkg/logger"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/internal/pkg/retry"
)

// Publisher is the message bus surface the gateway needs. *nsq.Producer
// satisfies it.
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// LocationGW handles location gateway operations: bus publications and
// lookups against the identity and event services.
type LocationGW struct {
	producer       Publisher
	identityClient *httpclient.Client
	eventClient    *httpclient.Client
	retrier        *retry.Retrier
}

// NewLocationGW creates a new gateway instance
func NewLocationGW(producer Publisher, cfg models.ServicesConfig) *LocationGW {
	retryCfg := retry.Config{
		MaxRetries: 2,
		BaseDelay:  50 * time.Millisecond,
		MaxDelay:   500 * time.Millisecond,
		Multiplier: 2.0,
		Jitter:     true,
		// A 404 is an answer, not an outage.
		RetryableFunc: func(err error) bool {
			return !errors.Is(err, httpclient.ErrStatusNotFound)
		},
	}

	return &LocationGW{
		producer:       producer,
		identityClient: httpclient.NewClient("identity-service", cfg.IdentityServiceURL, cfg.APIKey),
		eventClient:    httpclient.NewClient("event-service", cfg.EventServiceURL, cfg.APIKey),
		retrier:        retry.New(retryCfg, logger.GetGlobalLogger()),
	}
}
