package gateway

import (
	"context"
	"errors"
	"fmt"

	httpclient "github.com/prasetya/kumpul/internal/pkg/http"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/services/location"
)

// GetEvent loads an event record, primarily for its venue coordinates.
func (g *LocationGW) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	endpoint := fmt.Sprintf("/internal/events/%s", eventID)

	var event models.Event
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.eventClient.GetJSON(ctx, endpoint, &event)
	})
	if err != nil {
		if errors.Is(err, httpclient.ErrStatusNotFound) {
			return nil, location.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	return &event, nil
}
