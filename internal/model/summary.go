package model

// CategoryTotal is the summed amount of one category.
type CategoryTotal struct {
	Category string  `json:"category" yaml:"category"`
	Amount   float64 `json:"amount" yaml:"amount"`
}

// Summary holds per-category sums in category order plus the grand total.
type Summary struct {
	ByCategory []CategoryTotal `json:"by_category" yaml:"by_category"`
	Total      float64         `json:"total" yaml:"total"`
}

// Amounts returns the per-category sums as a plain slice, in order.
func (s Summary) Amounts() []float64 {
	out := make([]float64, len(s.ByCategory))
	for i, ct := range s.ByCategory {
		out[i] = ct.Amount
	}
	return out
}

// Labels returns the category names in order.
func (s Summary) Labels() []string {
	out := make([]string, len(s.ByCategory))
	for i, ct := range s.ByCategory {
		out[i] = ct.Category
	}
	return out
}
