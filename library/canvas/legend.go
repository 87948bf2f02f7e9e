package canvas

import "sort"

// LabelOrder reports whether legend label a sorts before b.
type LabelOrder func(a, b string) bool

// Descending sorts labels in reverse lexicographic order.
func Descending(a, b string) bool { return a > b }

// Ascending sorts labels in lexicographic order.
func Ascending(a, b string) bool { return a < b }

// LabelOrderByName returns the order named "asc"/"ascending" or
// "desc"/"descending". Anything else yields Descending and false.
func LabelOrderByName(name string) (LabelOrder, bool) {
	switch name {
	case "asc", "ascending":
		return Ascending, true
	case "", "desc", "descending":
		return Descending, true
	}
	return Descending, false
}

// SortedLabels returns a sorted copy of labels.
func SortedLabels(labels []string, order LabelOrder) []string {
	if order == nil {
		order = Descending
	}
	srt := append([]string(nil), labels...)
	sort.SliceStable(srt, func(i, j int) bool { return order(srt[i], srt[j]) })
	return srt
}
