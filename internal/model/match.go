package model

// Match は宣言パターンに一致した 1 件の出現箇所を表します。
type Match struct {
	Name   string `json:"name"`
	Offset int    `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Text   string `json:"text"`
}

// Entry は 1 つの対象名に対する検出結果（出現順）を保持します。
type Entry struct {
	Name    string  `json:"name"`
	Matches []Match `json:"matches"`
}

// Count は出現件数を返します。
func (e Entry) Count() int {
	return len(e.Matches)
}

// Lines は出現順の行番号を返します。
func (e Entry) Lines() []int {
	if len(e.Matches) == 0 {
		return nil
	}
	out := make([]int, len(e.Matches))
	for i, m := range e.Matches {
		out[i] = m.Line
	}
	return out
}

// HasDuplicates は 2 件以上の宣言がある場合に true を返します。
func (e Entry) HasDuplicates() bool {
	return len(e.Matches) > 1
}

// Report は 1 回の実行結果です。Entries は対象名の指定順に並びます。
type Report struct {
	File     string  `json:"file"`
	Encoding string  `json:"encoding"`
	Keyword  string  `json:"keyword"`
	Entries  []Entry `json:"entries"`
}

// Duplicates は重複のあるエントリのみを返します。
func (r *Report) Duplicates() []Entry {
	if r == nil {
		return nil
	}
	var out []Entry
	for _, e := range r.Entries {
		if e.HasDuplicates() {
			out = append(out, e)
		}
	}
	return out
}
