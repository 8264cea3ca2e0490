package types

// ConversationTurn is one prior exchange in a chat session. History is
// caller-supplied on every request; the service keeps no session state.
type ConversationTurn struct {
	Question string `json:"question"`
	SQL      string `json:"sql,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

// ResultSet is the canonical shape of query results: column names in
// select order plus value rows. The datasource normalizes into this once
// so nothing downstream re-inspects driver row shapes.
type ResultSet struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func (r ResultSet) Empty() bool {
	return len(r.Rows) == 0
}

// Record renders row i as an ordered column/value mapping.
func (r ResultSet) Record(i int) map[string]any {
	record := make(map[string]any, len(r.Columns))
	for j, col := range r.Columns {
		if j < len(r.Rows[i]) {
			record[col] = r.Rows[i][j]
		}
	}
	return record
}

// Head returns a copy limited to the first n rows.
func (r ResultSet) Head(n int) ResultSet {
	if len(r.Rows) <= n {
		return r
	}
	return ResultSet{Columns: r.Columns, Rows: r.Rows[:n]}
}
