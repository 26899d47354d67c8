package health

import "context"

// DBPinger checks catalog database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CachePinger checks suggestion cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}
