package types

// Unit is a measurement unit an activity can be tracked in. The set is
// closed; the icon and the per-click adjustment step are derived from the
// unit, never set independently.
type Unit struct {
	Name  string  `json:"name"`
	Icon  string  `json:"icon"`
	Label string  `json:"label"`
	Step  float64 `json:"step"`
}

var Units = []Unit{
	{Name: "reps-male", Icon: "💪", Label: "reps", Step: 5},
	{Name: "reps-female", Icon: "👩", Label: "reps", Step: 5},
	{Name: "steps", Icon: "🚶", Label: "steps", Step: 100},
	{Name: "min", Icon: "🚴", Label: "min", Step: 5},
}

func GetUnitByName(name string) *Unit {
	for _, u := range Units {
		if u.Name == name {
			return &u
		}
	}
	return nil
}

// IconForUnit returns the icon for a unit, falling back to the first
// unit's icon for unknown names so legacy snapshots still render.
func IconForUnit(name string) string {
	if u := GetUnitByName(name); u != nil {
		return u.Icon
	}
	return Units[0].Icon
}

// StepForUnit returns the per-click adjustment step for a unit.
// Steps are counted in hundreds, everything else in fives.
func StepForUnit(name string) float64 {
	if u := GetUnitByName(name); u != nil {
		return u.Step
	}
	return Units[0].Step
}
