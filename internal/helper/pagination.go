package helper

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// QuestionsPerPage is the fixed size of a pagination window.
const QuestionsPerPage = 10

// ParsePage reads a 1-based page number from a query value.
// Empty or non-integer values fall back to the first page. Integers too large
// for int clamp to math.MaxInt so they still select a page past the end.
func ParsePage(raw string) int {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 1
	}
	page, err := strconv.Atoi(v)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(v, "-") {
			return math.MinInt
		}
		return math.MaxInt
	}
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns the window of items selected by page. Windows that fall
// outside of items are empty, never an error.
func Paginate[T any](page int, items []T) []T {
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	// compare page counts before multiplying so huge pages cannot overflow
	if page < 1 || page-1 >= pages {
		return []T{}
	}

	start := (page - 1) * QuestionsPerPage
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
