package bankroll

// BankrollPoint is one point of the cumulative bankroll trajectory.
type BankrollPoint struct {
	Date   string
	Profit Money
	Total  Money // running sum of profit up to and including this session
}

// BankrollSeries computes the running sum of profit over the given list, one
// point per session, in order. The list is expected in the SortedView order,
// already filtered. This is the series the charting collaborator consumes.
func BankrollSeries(sessions []Session) []BankrollPoint {
	points := make([]BankrollPoint, 0, len(sessions))
	var running Money
	for _, s := range sessions {
		running = running.Add(s.Profit)
		points = append(points, BankrollPoint{
			Date:   s.Date,
			Profit: s.Profit,
			Total:  running,
		})
	}
	return points
}
