package aggregate

// Pager tracks a 1-based page position over a record count. The current
// page is always within [1, MaxPage]; navigation clamps rather than
// wrapping or erroring.
type Pager struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

func NewPager(pageSize, total int) Pager {
	p := Pager{Page: 1, PageSize: pageSize, Total: total}
	return p.Clamp()
}

// MaxPage is ceil(total/pageSize), and never below 1 even when the
// collection is empty.
func (p Pager) MaxPage() int {
	if p.PageSize <= 0 || p.Total <= 0 {
		return 1
	}
	max := (p.Total + p.PageSize - 1) / p.PageSize
	if max < 1 {
		return 1
	}
	return max
}

// Clamp forces the current page back into range.
func (p Pager) Clamp() Pager {
	if p.Page < 1 {
		p.Page = 1
	}
	if max := p.MaxPage(); p.Page > max {
		p.Page = max
	}
	return p
}

func (p Pager) Next() Pager {
	p.Page++
	return p.Clamp()
}

func (p Pager) Prev() Pager {
	p.Page--
	return p.Clamp()
}

// Slice returns the half-open index range [from, to) of the current page
// within a list of Total records.
func (p Pager) Slice() (from, to int) {
	p = p.Clamp()
	if p.PageSize <= 0 || p.Total <= 0 {
		return 0, 0
	}
	from = (p.Page - 1) * p.PageSize
	to = from + p.PageSize
	if to > p.Total {
		to = p.Total
	}
	if from > p.Total {
		from = p.Total
	}
	return from, to
}
