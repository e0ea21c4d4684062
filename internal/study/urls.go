package study

import (
	"math/rand/v2"
)

// URL picks the survey URL for one delivery. The condition is zero based; a
// single shared URL list serves every condition. Day, slot and index address
// the occurrence within the category and drive the configured distribution
// strategy. Validation at load time guarantees the list is long enough for
// every strategy except DistributionRandom, which draws uniformly.
func (c Category) URL(condition, day, slot, index int, rnd *rand.Rand) string {
	list := c.urlList(condition)
	if len(list) == 0 {
		return ""
	}

	switch c.Distribution {
	case DistributionDay:
		return list[day]
	case DistributionSlot:
		return list[slot]
	case DistributionRunning:
		return list[index]
	case DistributionRandom:
		return list[rnd.IntN(len(list))]
	default:
		return list[0]
	}
}

func (c Category) urlList(condition int) []string {
	if len(c.URLs) == 0 {
		return nil
	}
	if len(c.URLs) == 1 {
		return c.URLs[0]
	}
	if condition < 0 || condition >= len(c.URLs) {
		return nil
	}
	return c.URLs[condition]
}
