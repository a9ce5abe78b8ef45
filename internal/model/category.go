package model

// AllCategories is the pseudo-category that selects every group
const AllCategories = "All"

// CategoryGroup is the ordered list of timers sharing one category
type CategoryGroup struct {
	Category string
	Timers   []Timer
}

// GroupByCategory partitions timers by exact category string. Groups appear
// in first-seen order and timers keep their relative order inside a group.
func GroupByCategory(timers []Timer) []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	index := make(map[string]int)

	for _, timer := range timers {
		i, exists := index[timer.Category]
		if !exists {
			i = len(groups)
			index[timer.Category] = i
			groups = append(groups, CategoryGroup{Category: timer.Category})
		}
		groups[i].Timers = append(groups[i].Timers, timer)
	}
	return groups
}

// DistinctCategories returns AllCategories followed by each category once,
// in first-seen order. A user category literally named "All" is folded into
// the leading entry.
func DistinctCategories(timers []Timer) []string {
	categories := []string{AllCategories}
	seen := map[string]struct{}{AllCategories: {}}

	for _, timer := range timers {
		if _, exists := seen[timer.Category]; exists {
			continue
		}
		seen[timer.Category] = struct{}{}
		categories = append(categories, timer.Category)
	}
	return categories
}

// FilterGroups narrows groups to the selected category. AllCategories keeps
// every group; an unknown category yields a single empty group so the screen
// still shows its header.
func FilterGroups(groups []CategoryGroup, selected string) []CategoryGroup {
	if selected == AllCategories {
		return groups
	}
	for _, group := range groups {
		if group.Category == selected {
			return []CategoryGroup{group}
		}
	}
	return []CategoryGroup{{Category: selected, Timers: []Timer{}}}
}
