package entities

// Tab identifies the console surface the operator is currently viewing. The
// insight trigger only refreshes while TabInsights is active.
type Tab string

const (
	TabOrders    Tab = "ORDERS"
	TabInventory Tab = "INVENTORY"
	TabInsights  Tab = "INSIGHTS"
	TabSettings  Tab = "SETTINGS"
)

// IsValid reports whether t names a known console surface.
func (t Tab) IsValid() bool {
	switch t {
	case TabOrders, TabInventory, TabInsights, TabSettings:
		return true
	}
	return false
}
