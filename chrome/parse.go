package chrome

import (
	"strconv"
	"strings"

	"github.com/ka2n/tojiru/log"
)

// recordFields is window, tab, url, title.
const recordFields = 4

// ParseRecords parses the pipe-delimited enumeration output into records.
//
// Each line is split on at most three delimiters so that titles containing
// "|" stay intact. A line that does not yield four fields, or whose window
// or tab field is not a number, is dropped rather than failing the whole
// listing.
func ParseRecords(raw string) []TabRecord {
	var records []TabRecord
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", recordFields)
		if len(parts) < recordFields {
			log.Debug("dropping malformed record", "line", line)
			continue
		}
		window, err := strconv.Atoi(parts[0])
		if err != nil {
			log.Debug("dropping record with bad window index", "line", line)
			continue
		}
		tab, err := strconv.Atoi(parts[1])
		if err != nil {
			log.Debug("dropping record with bad tab index", "line", line)
			continue
		}
		records = append(records, TabRecord{
			Window: window,
			Tab:    tab,
			URL:    parts[2],
			Title:  parts[3],
		})
	}
	return records
}
