package hostsfile

import "strings"

// Entry is one mapping line inside a managed block.
type Entry struct {
	Address  string
	Hostname string
}

// HasBlock reports whether the document contains a managed block for
// the marker, i.e. a header line with a footer line somewhere below it.
func HasBlock(document, marker string) bool {
	_, _, ok := locateBlock(splitLines(document), marker)
	return ok
}

// Entries returns the mappings inside the managed block for the marker,
// in file order. Blank lines and comments inside the block are skipped,
// as are lines without both an address and a hostname. Blocks written by
// older space-separated versions of the tool are still readable here.
func Entries(document, marker string) []Entry {
	lines := splitLines(document)
	start, end, ok := locateBlock(lines, marker)
	if !ok {
		return nil
	}
	var entries []Entry
	for _, line := range lines[start:end] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) < 2 {
			continue
		}
		entries = append(entries, Entry{Address: fields[0], Hostname: fields[1]})
	}
	return entries
}

// locateBlock finds the line range strictly between the first header
// and the first footer after it.
func locateBlock(lines []string, marker string) (start, end int, ok bool) {
	headerAt := indexOfLine(lines, HeaderLine(marker), 0)
	if headerAt < 0 {
		return 0, 0, false
	}
	footerAt := indexOfLine(lines, FooterLine(marker), headerAt+1)
	if footerAt < 0 {
		return 0, 0, false
	}
	return headerAt + 1, footerAt, true
}
