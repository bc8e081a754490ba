// Package catalog loads notification catalogs from local JSON files.
//
// A catalog is the external-configuration source for displayIf trees. Loading
// validates every gate up front: a malformed condition tree (unknown clause or
// criteria variant, unparseable version) fails the whole load rather than
// lying dormant until evaluation reaches it. Nothing here performs network
// I/O or writes; distribution and storage of catalog files is the host
// platform's problem.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/solatis/noticegate/internal/rules"
	"github.com/solatis/noticegate/internal/types"
)

// SupportedSchemaMajor is the catalog schema major version this build
// evaluates. A catalog with a different major version is rejected; minor
// revisions within the major are accepted.
const SupportedSchemaMajor = "1"

// Catalog is one decoded, validated notification catalog.
type Catalog struct {
	SchemaVersion string                      `json:"schemaVersion"`
	Notifications []types.ToolkitNotification `json:"notifications"`
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes a catalog and validates every notification gate.
// Returns the first structural error encountered, annotated with the
// offending notification id.
func Parse(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	var cat Catalog
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if err := checkSchemaVersion(cat.SchemaVersion); err != nil {
		return nil, err
	}

	seen := make(map[types.NotificationID]struct{}, len(cat.Notifications))
	for i := range cat.Notifications {
		n := &cat.Notifications[i]
		if n.ID == "" {
			return nil, fmt.Errorf("%w: index %d", types.ErrMissingNotificationID, i)
		}
		if _, dup := seen[n.ID]; dup {
			return nil, fmt.Errorf("%w: %q", types.ErrDuplicateNotificationID, n.ID)
		}
		seen[n.ID] = struct{}{}

		if err := rules.Validate(&n.DisplayIf); err != nil {
			return nil, fmt.Errorf("notification %q: %w", n.ID, err)
		}
	}

	return &cat, nil
}

// checkSchemaVersion accepts "1" and any "1.x" revision.
func checkSchemaVersion(v string) error {
	major, _, _ := strings.Cut(strings.TrimSpace(v), ".")
	if major != SupportedSchemaMajor {
		return fmt.Errorf("%w: %q", types.ErrUnsupportedSchema, v)
	}
	return nil
}
