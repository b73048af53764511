package response

// InsightResponse carries the derived performance text and whether a refresh
// is still in flight.
type InsightResponse struct {
	Text       string `json:"text"`
	Refreshing bool   `json:"refreshing"`
}

// NotificationResponse is the current toast, if any.
type NotificationResponse struct {
	Message string `json:"message"`
	Active  bool   `json:"active"`
}

// ViewResponse echoes the accepted surface switch.
type ViewResponse struct {
	Tab string `json:"tab"`
}
