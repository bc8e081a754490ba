package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/solatis/noticegate/internal/types"
)

const validCatalogJSON = `{
	"schemaVersion": "1.0",
	"notifications": [
		{
			"id": "n-upgrade-nudge",
			"displayIf": {
				"extensionId": "dev.solatis.toolkit",
				"extensionVersion": {"type": "range", "upperExclusive": "3.0.0"}
			},
			"content": {"title": "A newer toolkit is available"}
		},
		{
			"id": "n-cloud-shell-tip",
			"displayIf": {
				"extensionId": "dev.solatis.toolkit",
				"additionalCriteria": [
					{"type": "ComputeEnv", "values": ["cloud-shell"]},
					{"type": "AuthState", "values": ["connected"]}
				]
			}
		}
	]
}`

func TestParse(t *testing.T) {
	cat, err := Parse(strings.NewReader(validCatalogJSON))
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil", err)
	}
	if len(cat.Notifications) != 2 {
		t.Fatalf("len(Notifications) = %d, want 2", len(cat.Notifications))
	}
	if cat.Notifications[0].ID != "n-upgrade-nudge" {
		t.Errorf("Notifications[0].ID = %q, want n-upgrade-nudge", cat.Notifications[0].ID)
	}
	clause := cat.Notifications[0].DisplayIf.ExtensionVersion
	if clause == nil || clause.Type != types.ClauseRange || clause.UpperExclusive != "3.0.0" {
		t.Errorf("ExtensionVersion clause = %+v, want range upper 3.0.0", clause)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "malformed json",
			data:    `{"schemaVersion": "1",`,
			wantErr: nil, // decode error, no sentinel
		},
		{
			name:    "unsupported schema major",
			data:    `{"schemaVersion": "2.0", "notifications": []}`,
			wantErr: types.ErrUnsupportedSchema,
		},
		{
			name:    "missing schema version",
			data:    `{"notifications": []}`,
			wantErr: types.ErrUnsupportedSchema,
		},
		{
			name:    "missing notification id",
			data:    `{"schemaVersion": "1", "notifications": [{"displayIf": {"extensionId": "e"}}]}`,
			wantErr: types.ErrMissingNotificationID,
		},
		{
			name: "duplicate notification id",
			data: `{"schemaVersion": "1", "notifications": [
				{"id": "dup", "displayIf": {"extensionId": "e"}},
				{"id": "dup", "displayIf": {"extensionId": "e"}}
			]}`,
			wantErr: types.ErrDuplicateNotificationID,
		},
		{
			name: "unknown clause type rejected at load",
			data: `{"schemaVersion": "1", "notifications": [
				{"id": "n", "displayIf": {"extensionId": "e", "ideVersion": {"type": "bogus"}}}
			]}`,
			wantErr: types.ErrUnknownClauseType,
		},
		{
			name: "unknown criteria type rejected at load",
			data: `{"schemaVersion": "1", "notifications": [
				{"id": "n", "displayIf": {"extensionId": "e", "additionalCriteria": [{"type": "Bogus", "values": []}]}}
			]}`,
			wantErr: types.ErrUnknownCriteriaType,
		},
		{
			name: "gate without extension id",
			data: `{"schemaVersion": "1", "notifications": [
				{"id": "n", "displayIf": {}}
			]}`,
			wantErr: types.ErrMissingExtensionID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.data))
			if err == nil {
				t.Fatalf("Parse() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckSchemaVersion(t *testing.T) {
	for _, ok := range []string{"1", "1.0", "1.7", " 1.2 "} {
		if err := checkSchemaVersion(ok); err != nil {
			t.Errorf("checkSchemaVersion(%q) error = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"", "0.9", "2", "abc"} {
		if err := checkSchemaVersion(bad); err == nil {
			t.Errorf("checkSchemaVersion(%q) error = nil, want error", bad)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notifications.json")
	if err := os.WriteFile(path, []byte(validCatalogJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if len(cat.Notifications) != 2 {
		t.Errorf("len(Notifications) = %d, want 2", len(cat.Notifications))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("Load() error = nil, want error for missing file")
	}
}
