package types

import (
	"encoding/json"
	"testing"
)

func TestToolkitNotification_Decode(t *testing.T) {
	data := `{
		"id": "n-001",
		"displayIf": {
			"extensionId": "dev.solatis.toolkit",
			"ideVersion": {
				"type": "or",
				"clauses": [
					{"type": "exactMatch", "values": ["1.49.0"]},
					{"type": "range", "lowerInclusive": "1.50.0", "upperExclusive": "2.0.0"}
				]
			},
			"additionalCriteria": [
				{"type": "OS", "values": ["linux", "darwin"]}
			]
		},
		"content": {"title": "hello"}
	}`

	var n ToolkitNotification
	if err := json.Unmarshal([]byte(data), &n); err != nil {
		t.Fatalf("Unmarshal() error = %v, want nil", err)
	}

	if n.ID != "n-001" {
		t.Errorf("ID = %q, want n-001", n.ID)
	}
	if n.DisplayIf.ExtensionID != "dev.solatis.toolkit" {
		t.Errorf("ExtensionID = %q, want dev.solatis.toolkit", n.DisplayIf.ExtensionID)
	}

	clause := n.DisplayIf.IDEVersion
	if clause == nil || clause.Type != ClauseOr || len(clause.Clauses) != 2 {
		t.Fatalf("IDEVersion = %+v, want or clause with 2 children", clause)
	}
	if clause.Clauses[0].Type != ClauseExactMatch || clause.Clauses[1].LowerInclusive != "1.50.0" {
		t.Errorf("sub-clauses = %+v, want exactMatch then range 1.50.0", clause.Clauses)
	}

	if n.DisplayIf.ExtensionVersion != nil {
		t.Errorf("ExtensionVersion = %+v, want nil (absent)", n.DisplayIf.ExtensionVersion)
	}
	if len(n.DisplayIf.AdditionalCriteria) != 1 || n.DisplayIf.AdditionalCriteria[0].Type != CriteriaOS {
		t.Errorf("AdditionalCriteria = %+v, want one OS criterion", n.DisplayIf.AdditionalCriteria)
	}

	// content stays opaque bytes
	var content map[string]string
	if err := json.Unmarshal(n.Content, &content); err != nil || content["title"] != "hello" {
		t.Errorf("Content = %s, want {\"title\":\"hello\"}", n.Content)
	}
}

// Unknown tags decode without error; they are rejected by validation, not the
// JSON layer, so the error can name the offending tag.
func TestConditionalClause_DecodePreservesUnknownTag(t *testing.T) {
	var c ConditionalClause
	if err := json.Unmarshal([]byte(`{"type": "future-variant"}`), &c); err != nil {
		t.Fatalf("Unmarshal() error = %v, want nil", err)
	}
	if c.Type != "future-variant" {
		t.Errorf("Type = %q, want future-variant", c.Type)
	}
}
