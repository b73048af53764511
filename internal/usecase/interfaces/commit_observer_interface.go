package interfaces

import "context"

// ICommitObserver is notified after every committed ledger or catalog
// mutation. The insight trigger registers itself here to react to data
// changes while the insights surface is active.
type ICommitObserver interface {
	DataChanged(ctx context.Context)
}
