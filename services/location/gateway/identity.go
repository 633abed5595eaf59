package gateway

import (
	"context"
	"errors"
	"fmt"

	httpclient "github.com/prasetya/kumpul/internal/pkg/http"
	"github.com/prasetya/kumpul/internal/pkg/models"
)

type friendshipResponse struct {
	Relationship models.Relationship `json:"relationship"`
}

type profilesRequest struct {
	UserIDs []string `json:"user_ids"`
}

type profilesResponse struct {
	Users []*models.UserProfile `json:"users"`
}

// IsFriend asks the identity service whether two users are friends.
func (g *LocationGW) IsFriend(ctx context.Context, userID, otherID string) (bool, error) {
	endpoint := fmt.Sprintf("/internal/users/%s/friendship/%s", userID, otherID)

	var resp friendshipResponse
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.identityClient.GetJSON(ctx, endpoint, &resp)
	})
	if err != nil {
		if errors.Is(err, httpclient.ErrStatusNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check friendship: %w", err)
	}
	return resp.Relationship == models.RelationshipFriends, nil
}

// GetUserProfiles batch-loads public profiles, keyed by user id. Unknown ids
// are simply absent from the result.
func (g *LocationGW) GetUserProfiles(ctx context.Context, userIDs []string) (map[string]*models.UserProfile, error) {
	if len(userIDs) == 0 {
		return map[string]*models.UserProfile{}, nil
	}

	var resp profilesResponse
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.identityClient.PostJSON(ctx, "/internal/users/batch", &profilesRequest{UserIDs: userIDs}, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load user profiles: %w", err)
	}

	profiles := make(map[string]*models.UserProfile, len(resp.Users))
	for _, u := range resp.Users {
		profiles[u.ID] = u
	}
	return profiles, nil
}
