package service

import (
	"github.com/MKhiriev/go-user-hub/internal/adapter"
	"github.com/MKhiriev/go-user-hub/internal/logger"
	"github.com/MKhiriev/go-user-hub/internal/store"
)

// ClientServices bundles the client-side service layer.
type ClientServices struct {
	Broadcaster  SessionBroadcaster
	SessionSvc   SessionService
	UsersService ClientUsersService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	broadcaster := NewSessionBroadcaster()
	sessionSvc := NewSessionService(serverAdapter, localStore.SessionRepository, broadcaster, logger)

	return &ClientServices{
		Broadcaster:  broadcaster,
		SessionSvc:   sessionSvc,
		UsersService: NewClientUsersService(serverAdapter, sessionSvc, logger),
	}
}
