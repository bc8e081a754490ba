package host

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileProvider loads a context snapshot from a JSON file. Used for offline
// evaluation and for replaying a captured host state against a catalog.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider reading the snapshot at path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Snapshot reads and validates the snapshot file. The file is a flat JSON
// object: extensionId plus the RuleContext fields.
func (p *FileProvider) Snapshot(_ context.Context) (Snapshot, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read context snapshot: %w", err)
	}
	return ParseSnapshot(data)
}

// ParseSnapshot decodes and validates a JSON snapshot.
// Nil list fields normalize to empty lists so the engine never sees nil.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parse context snapshot: %w", err)
	}
	normalizeLists(&snap)
	if err := validateSnapshot(&snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// normalizeLists replaces nil slices with empty ones. Absent lists in the
// snapshot JSON mean "no values", not "unknown".
func normalizeLists(snap *Snapshot) {
	for _, list := range []*[]string{
		&snap.AuthTypes,
		&snap.AuthRegions,
		&snap.AuthStates,
		&snap.AuthScopes,
		&snap.InstalledExtensions,
		&snap.ActiveExtensions,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
}
