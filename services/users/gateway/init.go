package gateway

import (
	nsqpkg "github.com/rioatrato/transchoco/internal/pkg/nsq"
)

// UserGW publishes user domain events for the notification pipeline.
type UserGW struct {
	producer *nsqpkg.Producer
}

// NewUserGW creates a new user gateway. A nil producer disables publishing
// (events are dropped), which keeps local development free of an NSQ
// dependency.
func NewUserGW(producer *nsqpkg.Producer) *UserGW {
	return &UserGW{producer: producer}
}
