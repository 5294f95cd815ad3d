package listview

import (
	"reflect"
	"testing"
	"time"
)

type record struct {
	id     string
	emp    string
	name   string
	date   time.Time
	status string
	amount float64
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func testDescriptor() Descriptor[record] {
	return Descriptor[record]{
		Search: []func(record) string{
			func(r record) string { return r.name },
			func(r record) string { return r.emp },
			func(r record) string { return r.id },
		},
		EmpID:  func(r record) string { return r.emp },
		Date:   func(r record) time.Time { return r.date },
		Status: func(r record) string { return r.status },
		Sort: map[string]func(a, b record) int{
			"date":   func(a, b record) int { return CompareTimes(a.date, b.date) },
			"name":   func(a, b record) int { return CompareStrings(a.name, b.name) },
			"amount": func(a, b record) int { return CompareFloats(a.amount, b.amount) },
		},
	}
}

func sampleRecords() []record {
	return []record{
		{id: "1", emp: "E100", name: "Reyes, Ana", date: day(5), status: "pending_initial", amount: 120},
		{id: "2", emp: "E200", name: "Cruz, Ben", date: day(12), status: "approved", amount: 80},
		{id: "3", emp: "E100", name: "Reyes, Ana", date: day(20), status: "approved", amount: 200},
		{id: "4", emp: "E300", name: "Santos, Carla", date: day(8), status: "rejected", amount: 150},
		{id: "5", emp: "E100", name: "Reyes, Ana", date: time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC), status: "pending_initial", amount: 60},
	}
}

func ids(records []record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.id)
	}
	return out
}

func TestFilterReturnsOrderedSubset(t *testing.T) {
	records := sampleRecords()
	got := Filter(records, Query{Status: "approved"}, testDescriptor())

	if want := []string{"2", "3"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v in source order, got %v", want, ids(got))
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	q := Query{EmpID: "E100", Status: "pending_initial"}
	d := testDescriptor()

	once := Filter(sampleRecords(), q, d)
	twice := Filter(once, q, d)
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Fatalf("filter not idempotent: %v vs %v", ids(once), ids(twice))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := ids(records)

	Apply(records, Query{Status: "approved", SortBy: "date", Dir: Desc}, testDescriptor())
	if !reflect.DeepEqual(ids(records), before) {
		t.Fatalf("input slice mutated: %v", ids(records))
	}
}

func TestDateRangeIsInclusive(t *testing.T) {
	q := Query{
		EmpID:    "E100",
		DateFrom: day(1),
		DateTo:   day(31),
	}
	got := Filter(sampleRecords(), q, testDescriptor())

	// Record 5 belongs to E100 but falls in February.
	if want := []string{"1", "3"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	got := Filter(sampleRecords(), Query{Search: "sAnToS"}, testDescriptor())
	if len(got) != 1 || got[0].id != "4" {
		t.Fatalf("expected record 4, got %v", ids(got))
	}
}

func TestSortDescReversesStrictOrdering(t *testing.T) {
	d := testDescriptor()

	asc := Filter(sampleRecords(), Query{}, d)
	Sort(asc, Query{SortBy: "amount", Dir: Asc}, d)

	desc := Filter(sampleRecords(), Query{}, d)
	Sort(desc, Query{SortBy: "amount", Dir: Desc}, d)

	for i := range asc {
		if asc[i].id != desc[len(desc)-1-i].id {
			t.Fatalf("desc is not the exact reverse of asc: %v vs %v", ids(asc), ids(desc))
		}
	}
}

func TestSortIsStableForDuplicateKeys(t *testing.T) {
	d := testDescriptor()

	records := Filter(sampleRecords(), Query{EmpID: "E100"}, d)
	Sort(records, Query{SortBy: "name", Dir: Asc}, d)
	if want := []string{"1", "3", "5"}; !reflect.DeepEqual(ids(records), want) {
		t.Fatalf("asc duplicates reordered: got %v", ids(records))
	}

	// Stable sort keeps duplicate-key relative order even descending;
	// the relative order among duplicates does not flip.
	records = Filter(sampleRecords(), Query{EmpID: "E100"}, d)
	Sort(records, Query{SortBy: "name", Dir: Desc}, d)
	if want := []string{"1", "3", "5"}; !reflect.DeepEqual(ids(records), want) {
		t.Fatalf("desc duplicates reordered: got %v", ids(records))
	}
}

func TestPaginationBounds(t *testing.T) {
	records := make([]record, 0, 25)
	for i := 1; i <= 25; i++ {
		records = append(records, record{id: string(rune('a' + i)), emp: "E1", date: day(i%28 + 1)})
	}

	result := Apply(records, Query{Page: 3, PerPage: 10}, testDescriptor())
	if len(result.Items) != 5 {
		t.Fatalf("expected 5 items on the last page, got %d", len(result.Items))
	}
	if result.Meta.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", result.Meta.TotalPages)
	}
	if result.Meta.Total != 25 {
		t.Fatalf("expected total 25, got %d", result.Meta.Total)
	}
	if !result.Meta.HasPrev || result.Meta.HasNext {
		t.Fatalf("unexpected page links: %+v", result.Meta)
	}
}

func TestEmptyListYieldsZeroPages(t *testing.T) {
	result := Apply(nil, Query{Page: 1, PerPage: 10}, testDescriptor())
	if len(result.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(result.Items))
	}
	if result.Meta.TotalPages != 0 {
		t.Fatalf("expected 0 total pages, got %d", result.Meta.TotalPages)
	}
}

func TestPageBeyondResultResetsToFirst(t *testing.T) {
	// Page 3 of the unfiltered set exists; after filtering to one
	// employee the result shrinks and the page resets to 1.
	result := Apply(sampleRecords(), Query{EmpID: "E100", Page: 3, PerPage: 2, SortBy: "date", Dir: Asc}, testDescriptor())
	if result.Meta.Page != 1 {
		t.Fatalf("expected reset to page 1, got %d", result.Meta.Page)
	}
	if want := []string{"1", "3"}; !reflect.DeepEqual(ids(result.Items), want) {
		t.Fatalf("expected first page %v, got %v", want, ids(result.Items))
	}
}

func TestSwitchingSortRecomputesSlice(t *testing.T) {
	records := make([]record, 0, 10)
	names := []string{"j", "i", "h", "g", "f", "e", "d", "c", "b", "a"}
	for i, n := range names {
		records = append(records, record{id: n, emp: "E1", name: n, date: day(i + 1)})
	}

	byDate := Apply(records, Query{SortBy: "date", Dir: Asc, Page: 3, PerPage: 2}, testDescriptor())
	if want := []string{"f", "e"}; !reflect.DeepEqual(ids(byDate.Items), want) {
		t.Fatalf("expected %v on page 3 by date, got %v", want, ids(byDate.Items))
	}

	byName := Apply(records, Query{SortBy: "name", Dir: Asc, Page: 1, PerPage: 2}, testDescriptor())
	if want := []string{"a", "b"}; !reflect.DeepEqual(ids(byName.Items), want) {
		t.Fatalf("expected %v on page 1 by name, got %v", want, ids(byName.Items))
	}
}

func TestUnknownSortKeyKeepsFetchedOrder(t *testing.T) {
	records := sampleRecords()
	result := Apply(records, Query{SortBy: "bogus"}, testDescriptor())
	if !reflect.DeepEqual(ids(result.Items), ids(records)) {
		t.Fatalf("unknown sort key reordered records: %v", ids(result.Items))
	}
}
