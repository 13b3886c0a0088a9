package matchCreditController

import (
	"github.com/Gameonesoft123/gameon-v2-sub001/utils"
)

// ComputeMatchAmounts derives the matched amount and total credits for a
// deposit. Both values are fixed at creation time and stored; nothing
// recomputes them later.
func ComputeMatchAmounts(initialAmount, matchPercentage float64) (matchedAmount, totalCredits float64) {
	matchedAmount = utils.Round2(initialAmount * matchPercentage / 100)
	totalCredits = utils.Round2(initialAmount + matchedAmount)
	return matchedAmount, totalCredits
}

// ResolveThreshold picks the redemption threshold for a new match credit:
// the store-configured threshold when set (>0), otherwise twice the total
// credits.
func ResolveThreshold(storeThreshold, totalCredits float64) float64 {
	if storeThreshold > 0 {
		return utils.Round2(storeThreshold)
	}
	return utils.Round2(2 * totalCredits)
}
