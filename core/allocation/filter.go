package allocation

import "github.com/tsoliveira/batchdist/core/model"

// Eligible filters the buyer set down to those allowed to receive groupings.
func Eligible(profiles []model.BuyerProfile) []model.BuyerProfile {
	var res []model.BuyerProfile
	for _, p := range profiles {
		if p.Eligible {
			res = append(res, p)
		}
	}
	return res
}
