package model

import (
	"reflect"
	"testing"
)

func categoryFixture() []Timer {
	return []Timer{
		NewTimer("1", "Tea", "Kitchen", 5),
		NewTimer("2", "Standup", "Office", 3),
		NewTimer("3", "Eggs", "Kitchen", 10),
		NewTimer("4", "Stretch", "kitchen", 60),
	}
}

func TestGroupByCategory(t *testing.T) {
	groups := GroupByCategory(categoryFixture())

	if len(groups) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(groups))
	}

	expectedOrder := []string{"Kitchen", "Office", "kitchen"}
	for i, group := range groups {
		if group.Category != expectedOrder[i] {
			t.Errorf("Group %d: expected %s, got %s", i, expectedOrder[i], group.Category)
		}
	}

	kitchen := groups[0].Timers
	if len(kitchen) != 2 || kitchen[0].ID != "1" || kitchen[1].ID != "3" {
		t.Errorf("Kitchen group lost relative order: %+v", kitchen)
	}
}

func TestGroupByCategory_Empty(t *testing.T) {
	groups := GroupByCategory(nil)
	if groups == nil || len(groups) != 0 {
		t.Errorf("Expected empty non-nil groups, got %#v", groups)
	}
}

func TestDistinctCategories(t *testing.T) {
	result := DistinctCategories(categoryFixture())
	expected := []string{"All", "Kitchen", "Office", "kitchen"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("DistinctCategories() = %v, expected %v", result, expected)
	}

	if got := DistinctCategories(nil); !reflect.DeepEqual(got, []string{"All"}) {
		t.Errorf("DistinctCategories(nil) = %v, expected [All]", got)
	}
}

func TestDistinctCategories_FoldsLiteralAll(t *testing.T) {
	timers := []Timer{NewTimer("1", "Odd", "All", 5), NewTimer("2", "Tea", "Kitchen", 5)}
	expected := []string{"All", "Kitchen"}

	if got := DistinctCategories(timers); !reflect.DeepEqual(got, expected) {
		t.Errorf("DistinctCategories() = %v, expected %v", got, expected)
	}
}

func TestFilterGroups(t *testing.T) {
	groups := GroupByCategory(categoryFixture())

	if all := FilterGroups(groups, AllCategories); len(all) != 3 {
		t.Errorf("Expected All to keep 3 groups, got %d", len(all))
	}

	office := FilterGroups(groups, "Office")
	if len(office) != 1 || office[0].Category != "Office" || len(office[0].Timers) != 1 {
		t.Errorf("Unexpected Office filter result: %+v", office)
	}

	missing := FilterGroups(groups, "Garage")
	if len(missing) != 1 || missing[0].Category != "Garage" || len(missing[0].Timers) != 0 {
		t.Errorf("Expected one empty Garage group, got %+v", missing)
	}
}
