package models

// Variable is one entry of a run's variable environment. Stored project
// globals and per-job initial variables share this shape; the merged set is
// frozen into the execution snapshot before scheduling.
type Variable struct {
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Folder      string `json:"folder,omitempty"`
}

// MergeVariables overlays override values onto base, with overrides winning.
// Neither input map is mutated.
func MergeVariables(base, overrides map[string]Variable) map[string]Variable {
	merged := make(map[string]Variable, len(base)+len(overrides))
	for name, v := range base {
		merged[name] = v
	}
	for name, v := range overrides {
		merged[name] = v
	}
	return merged
}
