package domain

import (
	m "github.com/covmark/covmark/internal/model"
)

// GroupLines partitions an ordered, duplicate-free, increasing sequence of
// line numbers into maximal runs of consecutive integers, preserving order.
// [1,2,3,7,8,12] becomes [[1,2,3],[7,8],[12]].
func GroupLines(lines []int) []m.LineGroup {
	if len(lines) == 0 {
		return nil
	}

	groups := make([]m.LineGroup, 0, len(lines))
	group := m.LineGroup{lines[0]}

	for _, line := range lines[1:] {
		if line == group[len(group)-1]+1 {
			group = append(group, line)
			continue
		}

		groups = append(groups, group)
		group = m.LineGroup{line}
	}

	return append(groups, group)
}
