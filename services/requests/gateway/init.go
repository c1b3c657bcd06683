package gateway

import (
	nsqpkg "github.com/rioatrato/transchoco/internal/pkg/nsq"
)

// RequestGW publishes request board events for the notification pipeline.
type RequestGW struct {
	producer *nsqpkg.Producer
}

// NewRequestGW creates a new request gateway. A nil producer disables
// publishing.
func NewRequestGW(producer *nsqpkg.Producer) *RequestGW {
	return &RequestGW{producer: producer}
}
