package mdbook

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/mod/semver"
)

// BuiltAgainst is the mdBook release this preprocessor was written and
// tested against. A host older than this triggers an advisory warning.
const BuiltAgainst = "0.4.40"

// ParseInput decodes the [context, book] array mdBook writes to a
// preprocessor's stdin.
func ParseInput(r io.Reader) (*Context, *Book, error) {
	var payload [2]json.RawMessage
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, nil, fmt.Errorf("decode preprocessor input: %w", err)
	}

	var ctx Context
	if err := json.Unmarshal(payload[0], &ctx); err != nil {
		return nil, nil, fmt.Errorf("decode preprocessor context: %w", err)
	}

	var book Book
	if err := json.Unmarshal(payload[1], &book); err != nil {
		return nil, nil, fmt.Errorf("decode book: %w", err)
	}

	return &ctx, &book, nil
}

// WriteBook serializes the (transformed) book back to w, the form mdBook
// reads from a preprocessor's stdout.
func WriteBook(w io.Writer, book *Book) error {
	if err := json.NewEncoder(w).Encode(book); err != nil {
		return fmt.Errorf("encode book: %w", err)
	}
	return nil
}

// CheckVersion compares the host's declared mdBook version against
// BuiltAgainst. A host that does not satisfy ">= BuiltAgainst" yields a
// non-empty advisory message; an unparseable version string is an error (the
// protocol contract is unknown at that point). A satisfying host yields
// neither.
func CheckVersion(hostVersion string) (string, error) {
	host := "v" + hostVersion
	// mdBook reports a full MAJOR.MINOR.PATCH version. Shorthand forms like
	// "0.4" are rejected rather than padded out.
	if !semver.IsValid(host) || semver.Canonical(host) != host {
		return "", fmt.Errorf("invalid mdbook version %q", hostVersion)
	}

	// A pre-release host never satisfies a release requirement, so it warns
	// even when its version core is newer than BuiltAgainst.
	if semver.Compare(host, "v"+BuiltAgainst) < 0 || semver.Prerelease(host) != "" {
		return fmt.Sprintf("built against mdBook %s, but running with %s", BuiltAgainst, hostVersion), nil
	}
	return "", nil
}
