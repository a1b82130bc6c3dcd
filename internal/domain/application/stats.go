package application

type Stats struct {
	Total       int     `json:"total"`
	Pending     int     `json:"pending"`
	Accepted    int     `json:"accepted"`
	Rejected    int     `json:"rejected"`
	Withdrawn   int     `json:"withdrawn"`
	AverageRate float64 `json:"averageRate"`
}

// ComputeStats counts applications per status and averages their proposed
// rate. The average of an empty set is 0.
func ComputeStats(apps []Application) Stats {
	var st Stats
	var sum float64
	for _, a := range apps {
		st.Total++
		sum += a.ProposedRate
		switch a.Status {
		case StatusPending:
			st.Pending++
		case StatusAccepted:
			st.Accepted++
		case StatusRejected:
			st.Rejected++
		case StatusWithdrawn:
			st.Withdrawn++
		}
	}
	if st.Total > 0 {
		st.AverageRate = sum / float64(st.Total)
	}
	return st
}
