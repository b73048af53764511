package interfaces

// INotifier receives the short-lived operator-facing messages emitted by
// ledger and catalog mutations.
type INotifier interface {
	Show(message string)
}
