package teams

// Power4Groups holds the ESPN conference group ids for the Power-4 conferences
// (ACC=1, Big 12=4, Big Ten=5, SEC=8).
var Power4Groups = map[int]struct{}{
	1: {},
	4: {},
	5: {},
	8: {},
}

// Team is the per-competitor record emitted inside a game. Order of competitors
// follows the scoreboard payload (typically home then away).
type Team struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	GroupID      *int    `json:"groupId"`
	Logo         *string `json:"logo"`
	HomeAway     string  `json:"homeAway"`
}

// IsPower4 reports whether the team's conference group is one of the Power-4.
// An absent group id means non-Power-4 or unknown.
func (t Team) IsPower4() bool {
	if t.GroupID == nil {
		return false
	}
	_, ok := Power4Groups[*t.GroupID]
	return ok
}

// TeamMeta carries the resolvable team fields before they are attached to a
// competitor: conference group, display name, abbreviation and logo. It is the
// unit both the scoreboard-embedded extraction and the core API lookup produce.
type TeamMeta struct {
	GroupID      *int
	Name         string
	Abbreviation string
	Logo         *string
}

// MergeFallback overlays a secondary-lookup result onto the embedded record.
// Non-empty fallback fields win; empty or absent fallback fields keep whatever
// the scoreboard payload carried.
func (m TeamMeta) MergeFallback(fallback TeamMeta) TeamMeta {
	merged := m
	if fallback.GroupID != nil {
		merged.GroupID = fallback.GroupID
	}
	if fallback.Name != "" {
		merged.Name = fallback.Name
	}
	if fallback.Abbreviation != "" {
		merged.Abbreviation = fallback.Abbreviation
	}
	if fallback.Logo != nil {
		merged.Logo = fallback.Logo
	}
	return merged
}
