package codesmell

import (
	"fmt"
	"sort"
)

// Report is the full set of smells for one linter run plus an externally
// computed grade. Smells are ordered by descending severity; ties keep input order.
type Report struct {
	codeSmells []*CodeSmell
	grade      any
}

// NewReport converts every record and sorts the result. The first record that
// fails to convert aborts the whole report.
func NewReport(records []Record, grade any) (*Report, error) {
	smells := make([]*CodeSmell, 0, len(records))
	for i, rec := range records {
		smell, err := New(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		smells = append(smells, smell)
	}

	sort.SliceStable(smells, func(i, j int) bool {
		return smells[i].Severity() > smells[j].Severity()
	})

	return &Report{
		codeSmells: smells,
		grade:      grade,
	}, nil
}

// CodeSmells returns the sorted smells. The slice is a copy.
func (r *Report) CodeSmells() []*CodeSmell {
	out := make([]*CodeSmell, len(r.codeSmells))
	copy(out, r.codeSmells)
	return out
}

// Grade returns the grade exactly as it was supplied.
func (r *Report) Grade() any {
	return r.grade
}

func (r *Report) Len() int {
	return len(r.codeSmells)
}

// GroupByFile splits the sorted smells into runs of consecutive entries that
// share a path. Only adjacent smells are merged, so a path interleaved with
// another one by severity appears in more than one group.
func (r *Report) GroupByFile() [][]*CodeSmell {
	var groups [][]*CodeSmell
	for _, smell := range r.codeSmells {
		last := len(groups) - 1
		if last >= 0 && groups[last][0].Location().Path() == smell.Location().Path() {
			groups[last] = append(groups[last], smell)
			continue
		}
		groups = append(groups, []*CodeSmell{smell})
	}
	return groups
}

// CountByPriority returns the number of smells per priority. Every known
// priority is present in the map, possibly with zero.
func (r *Report) CountByPriority() map[Priority]int {
	counts := make(map[Priority]int, len(priorityNames))
	for _, p := range Priorities() {
		counts[p] = 0
	}
	for _, smell := range r.codeSmells {
		counts[smell.Type()]++
	}
	return counts
}

// HasAtLeast reports whether any smell is at least as severe as p.
func (r *Report) HasAtLeast(p Priority) bool {
	// sorted descending, so the first smell is the most severe
	return len(r.codeSmells) > 0 && r.codeSmells[0].Severity() >= p.Rank()
}
