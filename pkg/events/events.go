package events

// StateChanged is pushed to connected dashboards after every committed
// mutation so they re-render. Scope names the part of the state that
// moved ("activities", "logs", "date", "view", "state"). This struct is
// intentionally small and versionable; changes should be additive.
type StateChanged struct {
	Type  string `json:"type"`
	Scope string `json:"scope"`
}

// NewStateChanged builds a StateChanged event for a scope.
func NewStateChanged(scope string) StateChanged {
	return StateChanged{Type: "stateChanged", Scope: scope}
}
