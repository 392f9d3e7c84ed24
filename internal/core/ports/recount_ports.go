package ports

import "context"

type CounterRepository interface {
	// RecountVotes recomputes a startup's cracked/cooked counters from the
	// votes table, overwriting the materialized values.
	RecountVotes(ctx context.Context, startupName string) error
}

type RecountService interface {
	RecountAll(ctx context.Context) error
}
