package gateway

import (
	nsqpkg "github.com/rioatrato/transchoco/internal/pkg/nsq"
)

// SupportGW publishes support thread events for the notification pipeline.
type SupportGW struct {
	producer *nsqpkg.Producer
}

// NewSupportGW creates a new support gateway. A nil producer disables
// publishing.
func NewSupportGW(producer *nsqpkg.Producer) *SupportGW {
	return &SupportGW{producer: producer}
}
