package bus

import (
	"context"

	"github.com/yungbote/orbital-nexus-backend/internal/realtime"
)

// Bus fans frames out across backend instances.
type Bus interface {
	Publish(ctx context.Context, msg realtime.Message) error
	StartForwarder(ctx context.Context, onMsg func(m realtime.Message)) error
	Close() error
}
