package vt

// Enough for any sequence we expect to see in the wild.
const MAX_EXPECTED_PARAMS = 16

// parameters holds the numeric parameters of a CSI sequence in
// arrival order. Handlers either index them with getItem or eat them
// front to back with consumeItem, whichever reads better.
type parameters struct {
	num   int
	items []int
}

func newParams() *parameters {
	return &parameters{
		items: make([]int, 0, MAX_EXPECTED_PARAMS),
	}
}

// paramsFromGroups flattens the parser's parameter groups. A group
// carries more than one entry only for colon subparameters, which we
// treat the same as semicolons.
func paramsFromGroups(groups [][]uint16) *parameters {
	p := newParams()
	for _, g := range groups {
		if len(g) == 0 {
			p.addItem(0)
			continue
		}
		for _, v := range g {
			p.addItem(int(v))
		}
	}
	return p
}

func (p *parameters) addItem(item int) {
	p.items = append(p.items, item)
	p.num++
}

func (p *parameters) numItems() int {
	return p.num
}

// getItem returns the item at index i, or def if it's absent. An
// explicit 0 also reads as def, matching how most CSI parameters
// treat "0 or missing".
func (p *parameters) getItem(i, def int) (int, bool) {
	if i < p.num {
		item := p.items[i]
		if item == 0 {
			return def, true
		}
		return item, true
	}
	return def, false
}

// consumeItem pops the front item. The bool is false when nothing was
// left to pop.
func (p *parameters) consumeItem() (int, bool) {
	if p.num > 0 {
		item := p.items[0]
		p.items = p.items[1:]
		p.num--
		return item, true
	}
	return 0, false
}
