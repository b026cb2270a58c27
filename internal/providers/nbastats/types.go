package nbastats

// statsResponse is the envelope every stats.nba.com endpoint returns.
type statsResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

// resultSet is a named table: column headers plus positional rows.
type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

func (r statsResponse) find(name string) (resultSet, bool) {
	for _, set := range r.ResultSets {
		if set.Name == name {
			return set, true
		}
	}
	return resultSet{}, false
}

func (s resultSet) column(header string) int {
	for i, h := range s.Headers {
		if h == header {
			return i
		}
	}
	return -1
}
