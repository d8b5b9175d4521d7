package validator

import (
	"testing"
)

type testPayload struct {
	Title   string `json:"title" validate:"required"`
	OwnerID string `json:"owner_id" validate:"required"`
}

func TestValidateStructSuccess(t *testing.T) {
	payload := testPayload{Title: "Flood", OwnerID: "u1"}

	if err := ValidateStruct(payload); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateStructFailuresUseJSONNames(t *testing.T) {
	payload := testPayload{}

	err := ValidateStruct(payload)
	if err == nil {
		t.Fatal("expected validation failure")
	}

	ve, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(ve) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(ve))
	}
	if ve[0].Field != "title" || ve[1].Field != "owner_id" {
		t.Fatalf("expected json field names, got %+v", ve)
	}
}
