package zeros

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// #region repository

// Repository holds the merged, deduplicated, ascending set of verified
// reference positions. Populated by Load, read-only afterwards.
type Repository struct {
	values       []float64
	sourceCounts map[string]int
	malformed    map[string]int
}

// NewRepository creates an empty repository. An empty repository is valid;
// consumers that need a starting position must supply one explicitly.
func NewRepository() *Repository {
	return &Repository{
		sourceCounts: map[string]int{},
		malformed:    map[string]int{},
	}
}

// #endregion repository

// #region load

// Load reads every source, merges, sorts ascending and deduplicates within
// DedupTolerance. Reloading replaces the previous contents entirely.
// Blank and unparsable lines are counted per source and skipped, never fatal.
// Lines starting with '#' are comments and ignored outright.
func (r *Repository) Load(sources []Source) (LoadReport, error) {
	report := LoadReport{
		Accepted:  map[string]int{},
		Malformed: map[string]int{},
	}

	var merged []float64
	for _, src := range sources {
		vals, malformed, err := readSource(src.Path)
		if err != nil {
			if src.Supplementary && os.IsNotExist(err) {
				log.Printf("[ZEROS] supplementary file %s not found, skipping", src.Path)
				continue
			}
			return LoadReport{}, fmt.Errorf("load source %s: %w", src.Path, err)
		}
		merged = append(merged, vals...)
		report.Accepted[src.Path] = len(vals)
		report.Malformed[src.Path] = malformed
	}

	sort.Float64s(merged)

	deduped := merged[:0]
	for _, v := range merged {
		if len(deduped) > 0 && v-deduped[len(deduped)-1] < DedupTolerance {
			report.Deduped++
			continue
		}
		deduped = append(deduped, v)
	}

	r.values = append([]float64(nil), deduped...)
	r.sourceCounts = report.Accepted
	r.malformed = report.Malformed
	report.Total = len(r.values)

	log.Printf("[ZEROS] loaded %d values from %d sources (%d deduped, %d malformed)",
		report.Total, len(sources), report.Deduped, report.MalformedTotal())
	return report, nil
}

// readSource parses one file: one real number per line, '#' comments allowed.
func readSource(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var vals []float64
	malformed := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			malformed++
			continue
		}
		vals = append(vals, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}
	return vals, malformed, nil
}

// #endregion load

// #region queries

// Len returns the number of loaded values.
func (r *Repository) Len() int {
	return len(r.values)
}

// Values returns a copy of the sorted value sequence.
func (r *Repository) Values() []float64 {
	return append([]float64(nil), r.values...)
}

// MaxKnown returns the largest loaded value. The second return is false
// when the repository is empty.
func (r *Repository) MaxKnown() (float64, bool) {
	if len(r.values) == 0 {
		return 0, false
	}
	return r.values[len(r.values)-1], true
}

// Contains reports whether some loaded value lies within tolerance of v.
// Binary search, O(log n).
func (r *Repository) Contains(v, tolerance float64) bool {
	idx := sort.SearchFloat64s(r.values, v-tolerance)
	return idx < len(r.values) && r.values[idx] <= v+tolerance
}

// SourceCounts returns per-source accepted counts from the last Load.
func (r *Repository) SourceCounts() map[string]int {
	out := make(map[string]int, len(r.sourceCounts))
	for k, v := range r.sourceCounts {
		out[k] = v
	}
	return out
}

// MalformedCount returns the total skipped-line count from the last Load.
func (r *Repository) MalformedCount() int {
	n := 0
	for _, c := range r.malformed {
		n += c
	}
	return n
}

// MeanSpacing returns the average gap over the trailing lastN values,
// used to seed search-mode start positions. False when fewer than two
// values are loaded.
func (r *Repository) MeanSpacing(lastN int) (float64, bool) {
	if len(r.values) < 2 {
		return 0, false
	}
	start := len(r.values) - lastN
	if start < 0 {
		start = 0
	}
	window := r.values[start:]
	if len(window) < 2 {
		window = r.values[len(r.values)-2:]
	}
	return (window[len(window)-1] - window[0]) / float64(len(window)-1), true
}

// #endregion queries
