package hostsfile

import (
	"errors"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidMarker   = errors.New("marker must be a non-empty single line")
	ErrInvalidHostname = errors.New("hostname must be non-empty without whitespace")
	ErrInvalidAddress  = errors.New("address must be non-empty without whitespace")
)

// HeaderLine returns the comment opening the managed block for a marker.
func HeaderLine(marker string) string {
	return "# START Added by " + marker + " hosts"
}

// FooterLine returns the comment closing the managed block for a marker.
func FooterLine(marker string) string {
	return "# END " + marker + " hosts"
}

// EntryLine renders a mapping exactly as it is stored in the block.
// The rendering is the identity used for duplicate detection, so it
// must never change between releases.
func EntryLine(address, hostname string) string {
	return address + "\t" + hostname
}

// Merge ensures the managed block for marker contains the mapping for
// hostname and returns the resulting document. Lines outside the block
// pass through untouched. The boolean reports whether anything changed;
// when the entry is already present the input text is returned verbatim,
// which makes repeated application a no-op.
func Merge(document, hostname, address, marker string) (string, bool, error) {
	if err := ValidateMarker(marker); err != nil {
		return "", false, err
	}
	if !validToken(hostname) {
		return "", false, ErrInvalidHostname
	}
	if !validToken(address) {
		return "", false, ErrInvalidAddress
	}

	header := HeaderLine(marker)
	footer := FooterLine(marker)
	entry := EntryLine(address, hostname)

	lines := splitLines(document)
	headerAt := indexOfLine(lines, header, 0)
	footerAt := -1
	if headerAt >= 0 {
		footerAt = indexOfLine(lines, footer, headerAt+1)
		if footerAt < 0 {
			// Footer lost to manual editing; reinsert it right under the
			// header so the block is an empty range again.
			lines = slices.Insert(lines, headerAt+1, footer)
			footerAt = headerAt + 1
		}
	}
	log.Debug().Int("header", headerAt).Int("footer", footerAt).Str("marker", marker).Msg("located managed block")

	if headerAt >= 0 {
		if slices.Contains(lines[headerAt+1:footerAt], entry) {
			log.Debug().Str("entry", entry).Msg("entry already present")
			return document, false, nil
		}
		lines = slices.Insert(lines, footerAt, entry)
	} else {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, header, entry, footer)
	}
	log.Debug().Str("entry", entry).Msg("entry inserted")
	return strings.Join(lines, "\n") + "\n", true, nil
}

// ValidateMarker rejects markers that cannot be embedded in the
// header and footer comments. Callers check it before touching the
// file so a bad marker never triggers a read or write.
func ValidateMarker(marker string) error {
	if marker == "" || strings.ContainsAny(marker, "\r\n") {
		return ErrInvalidMarker
	}
	return nil
}

func validToken(s string) bool {
	return s != "" && !strings.ContainsAny(s, " \t\r\n")
}

// splitLines breaks a document into lines, accepting both LF and CRLF
// terminators. Trailing blank lines are dropped so the rejoined output
// ends with exactly one newline.
func splitLines(document string) []string {
	document = strings.TrimRight(document, "\r\n")
	if document == "" {
		return nil
	}
	lines := strings.Split(document, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func indexOfLine(lines []string, want string, from int) int {
	for i := from; i < len(lines); i++ {
		if lines[i] == want {
			return i
		}
	}
	return -1
}
