package manifest

import (
	"testing"
)

func TestValidateGeneratedManifest(t *testing.T) {
	data, err := Build("my-server").Encode()
	if err != nil {
		t.Fatal(err)
	}

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !result.Valid {
		t.Errorf("generated manifest should validate, got issues: %+v", result.Issues)
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	result, err := Validate([]byte(`{"name": "x"}`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("manifest missing required fields should not validate")
	}
	if len(result.Issues) == 0 {
		t.Error("expected at least one issue")
	}
}

func TestValidateRejectsBadVersion(t *testing.T) {
	p := Build("x")
	p.Version = "one-point-oh"
	data, err := p.Encode()
	if err != nil {
		t.Fatal(err)
	}

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if result.Valid {
		t.Fatal("malformed version should not validate")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/version" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an issue at /version, got %+v", result.Issues)
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	if _, err := Validate([]byte("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
