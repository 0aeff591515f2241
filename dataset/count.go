package dataset

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ClassCount is one row of the class frequency table.
type ClassCount struct {
	ID    string
	Count int
}

// CountClassIDs tallies the first whitespace-delimited token of every line of
// every .txt file in dir. Files that cannot be read are reported and skipped.
func CountClassIDs(dir string) (map[string]int, error) {
	names, err := ListByExtension(dir, map[string]bool{".txt": true})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := countFile(path, counts); err != nil {
			fmt.Printf("⚠️  Error reading %s: %v\n", name, err)
		}
	}

	return counts, nil
}

func countFile(path string, counts map[string]int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		counts[fields[0]]++
	}
	return scanner.Err()
}

// SortedCounts flattens the count map into rows ordered by numeric class ID.
// Non-numeric IDs sort after the numeric ones, lexically.
func SortedCounts(counts map[string]int) []ClassCount {
	rows := make([]ClassCount, 0, len(counts))
	for id, count := range counts {
		rows = append(rows, ClassCount{ID: id, Count: count})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, aerr := strconv.Atoi(rows[i].ID)
		b, berr := strconv.Atoi(rows[j].ID)
		switch {
		case aerr == nil && berr == nil:
			return a < b
		case aerr == nil:
			return true
		case berr == nil:
			return false
		default:
			return rows[i].ID < rows[j].ID
		}
	})

	return rows
}
