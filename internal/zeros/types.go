package zeros

// #region source

// Source identifies one reference file to load.
type Source struct {
	Path          string
	Supplementary bool // missing supplementary files are skipped, missing primary is an error
}

// #endregion source

// #region dedup-tolerance

// DedupTolerance is the micro-tolerance for merging near-duplicate entries
// ingested from overlapping sources at slightly different precision.
// Far tighter than any scan epsilon; the two are unrelated.
const DedupTolerance = 1e-9

// #endregion dedup-tolerance

// #region load-report

// LoadReport summarizes one Load call for provenance and reporting.
type LoadReport struct {
	Accepted  map[string]int // per-source accepted line count
	Malformed map[string]int // per-source blank/unparsable line count
	Total     int            // values after sort + dedup
	Deduped   int            // entries dropped as near-duplicates
}

// MalformedTotal sums malformed counts across all sources.
func (r LoadReport) MalformedTotal() int {
	n := 0
	for _, c := range r.Malformed {
		n += c
	}
	return n
}

// #endregion load-report
