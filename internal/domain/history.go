package domain

// ActivityHistoryItem is one activity seen from a member's point of view.
// Upcoming and Recommended are independent: a past activity is never
// recommended, and an upcoming one is never missed.
type ActivityHistoryItem struct {
	Activity      Activity     `json:"activity"`
	Participation *Participant `json:"participation,omitempty"`
	Upcoming      bool         `json:"upcoming"`
	Attended      bool         `json:"attended"`
	Missed        bool         `json:"missed"`
	Recommended   bool         `json:"recommended"`
}

// Rated returns the rating of an attended activity, if any.
func (i ActivityHistoryItem) Rated() (int, bool) {
	if !i.Attended || i.Participation == nil || i.Participation.Rate == nil {
		return 0, false
	}
	return *i.Participation.Rate, true
}
