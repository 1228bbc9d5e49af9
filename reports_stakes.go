package bankroll

// UnknownStake labels the group of sessions recorded without a stake.
const UnknownStake = "Unknown"

// StakeProfit is the aggregate result for one distinct stake label.
type StakeProfit struct {
	Stake    string
	Sessions int
	Profit   Money
}

// StakeBreakdown sums profit per distinct stake value, preserving the
// first-seen stake order of the given list. Sessions without a stake are
// grouped under the UnknownStake sentinel.
func StakeBreakdown(sessions []Session) []StakeProfit {
	index := make(map[string]int)
	groups := make([]StakeProfit, 0)
	for _, s := range sessions {
		stake := s.Stake
		if stake == "" {
			stake = UnknownStake
		}
		i, ok := index[stake]
		if !ok {
			i = len(groups)
			index[stake] = i
			groups = append(groups, StakeProfit{Stake: stake})
		}
		groups[i].Sessions++
		groups[i].Profit = groups[i].Profit.Add(s.Profit)
	}
	return groups
}
