package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prasetya/kumpul/internal/pkg/constants"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/services/location"
	"github.com/stretchr/testify/assert"
)

type fakePublisher struct {
	topics   []string
	payloads []interface{}
	err      error
}

func (p *fakePublisher) Publish(topic string, message interface{}) error {
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, message)
	return nil
}

func TestPublications(t *testing.T) {
	pub := &fakePublisher{}
	gw := NewLocationGW(pub, models.ServicesConfig{})
	ctx := context.Background()

	assert.NoError(t, gw.PublishLocationUpdate(ctx, &models.LocationUpdatedEvent{UserID: "user-1"}))
	assert.NoError(t, gw.PublishSharingLifecycle(ctx, &models.SharingLifecycleEvent{UserID: "user-1"}))
	assert.NoError(t, gw.PublishGeofenceAlert(ctx, &models.GeofenceAlertEvent{UserID: "user-1"}))
	assert.NoError(t, gw.PublishPushNotification(ctx, &models.PushNotification{UserID: "user-1"}))

	assert.Equal(t, []string{
		constants.TopicLocationUpdates,
		constants.TopicSharingLifecycle,
		constants.TopicGeofenceAlerts,
		constants.TopicPushNotification,
	}, pub.topics)
}

func TestPublicationError(t *testing.T) {
	pub := &fakePublisher{err: assert.AnError}
	gw := NewLocationGW(pub, models.ServicesConfig{})

	err := gw.PublishLocationUpdate(context.Background(), &models.LocationUpdatedEvent{UserID: "user-1"})
	assert.Error(t, err)
}

func TestIsFriend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/users/user-1/friendship/user-2", r.URL.Path)
		assert.Equal(t, "api-key", r.Header.Get("X-API-Key"))
		json.NewEncoder(w).Encode(friendshipResponse{Relationship: models.RelationshipFriends})
	}))
	defer server.Close()

	gw := NewLocationGW(&fakePublisher{}, models.ServicesConfig{
		IdentityServiceURL: server.URL,
		APIKey:             "api-key",
	})

	isFriend, err := gw.IsFriend(context.Background(), "user-1", "user-2")
	assert.NoError(t, err)
	assert.True(t, isFriend)
}

func TestIsFriendUnknownUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	gw := NewLocationGW(&fakePublisher{}, models.ServicesConfig{IdentityServiceURL: server.URL})

	isFriend, err := gw.IsFriend(context.Background(), "user-1", "ghost")
	assert.NoError(t, err, "unknown pairs are not friends, not an error")
	assert.False(t, isFriend)
}

func TestGetUserProfiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/users/batch", r.URL.Path)

		var req profilesRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.ElementsMatch(t, []string{"user-1", "user-2"}, req.UserIDs)

		json.NewEncoder(w).Encode(profilesResponse{Users: []*models.UserProfile{
			{ID: "user-1", FullName: "Budi Santoso"},
		}})
	}))
	defer server.Close()

	gw := NewLocationGW(&fakePublisher{}, models.ServicesConfig{IdentityServiceURL: server.URL})

	profiles, err := gw.GetUserProfiles(context.Background(), []string{"user-1", "user-2"})
	assert.NoError(t, err)
	assert.Len(t, profiles, 1)
	assert.Equal(t, "Budi Santoso", profiles["user-1"].FullName)
	_, ok := profiles["user-2"]
	assert.False(t, ok)
}

func TestGetUserProfilesEmptyInput(t *testing.T) {
	gw := NewLocationGW(&fakePublisher{}, models.ServicesConfig{IdentityServiceURL: "http://unused"})

	profiles, err := gw.GetUserProfiles(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestGetEvent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/events/event-1", r.URL.Path)
		json.NewEncoder(w).Encode(models.Event{
			ID:             "event-1",
			Name:           "Jakarta Tech Meetup",
			HostID:         "host-1",
			VenueLatitude:  -6.2241,
			VenueLongitude: 106.8057,
		})
	}))
	defer server.Close()

	gw := NewLocationGW(&fakePublisher{}, models.ServicesConfig{EventServiceURL: server.URL})

	event, err := gw.GetEvent(context.Background(), "event-1")
	assert.NoError(t, err)
	assert.Equal(t, "Jakarta Tech Meetup", event.Name)
	assert.InDelta(t, -6.2241, event.VenueLatitude, 1e-9)
}

func TestGetEventNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	gw := NewLocationGW(&fakePublisher{}, models.ServicesConfig{EventServiceURL: server.URL})

	_, err := gw.GetEvent(context.Background(), "ghost")
	assert.ErrorIs(t, err, location.ErrNotFound)
}
