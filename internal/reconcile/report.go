package reconcile

// Report is the ordered list of verdicts for one file: actual columns in
// file order, then missing expected columns in rule order.
type Report struct {
	Sheet    string
	Verdicts []Verdict
}

// OK reports whether every verdict passed.
func (r *Report) OK() bool {
	for _, v := range r.Verdicts {
		if !v.Status.OK() {
			return false
		}
	}
	return true
}

// Passing returns the verdicts with status OK, in report order.
func (r *Report) Passing() []Verdict {
	var out []Verdict
	for _, v := range r.Verdicts {
		if v.Status.OK() {
			out = append(out, v)
		}
	}
	return out
}

// Summary counts verdicts per status code.
func (r *Report) Summary() map[StatusCode]int {
	counts := make(map[StatusCode]int)
	for _, v := range r.Verdicts {
		counts[v.Status.Code]++
	}
	return counts
}
