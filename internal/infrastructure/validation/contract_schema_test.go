package validation

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestValidateCreateContract(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		body := json.RawMessage(`{
			"propertyId": "prop-1",
			"tenant": {"name": "Alice", "email": "alice@example.com"},
			"hoster": {"name": "Bob", "email": "bob@example.com"},
			"startDate": "2026-01-01T00:00:00Z",
			"endDate": "2027-01-01T00:00:00Z",
			"terms": {
				"rentAmount": 1200,
				"paymentFrequency": "monthly",
				"paymentDueDay": 5,
				"maintenance": "hoster"
			}
		}`)

		res, err := ValidateCreateContract(body)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Valid || len(res.Errors) != 0 {
			t.Fatalf("expected valid, got %+v", res)
		}
	})

	t.Run("missing required fields are all reported", func(t *testing.T) {
		res, err := ValidateCreateContract(json.RawMessage(`{"propertyId": "prop-1"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Valid {
			t.Fatal("expected invalid")
		}
		if len(res.Errors) < 4 {
			t.Fatalf("expected tenant/hoster/startDate/endDate violations, got %v", res.Errors)
		}
	})

	t.Run("bad enum and due day", func(t *testing.T) {
		body := json.RawMessage(`{
			"propertyId": "prop-1",
			"tenant": {"name": "Alice", "email": "alice@example.com"},
			"hoster": {"name": "Bob", "email": "bob@example.com"},
			"startDate": "2026-01-01T00:00:00Z",
			"endDate": "2027-01-01T00:00:00Z",
			"terms": {
				"rentAmount": 1200,
				"paymentFrequency": "yearly",
				"paymentDueDay": 42,
				"maintenance": "hoster"
			}
		}`)

		res, err := ValidateCreateContract(body)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Valid || len(res.Errors) != 2 {
			t.Fatalf("expected two violations, got %+v", res)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := ValidateCreateContract(json.RawMessage(`{oops`)); err == nil {
			t.Fatal("expected an error for malformed json")
		}
	})

	t.Run("guarantor without id", func(t *testing.T) {
		body := json.RawMessage(`{
			"propertyId": "prop-1",
			"tenant": {"name": "Alice", "email": "alice@example.com"},
			"hoster": {"name": "Bob", "email": "bob@example.com"},
			"guarantors": [{"name": "Carol", "email": "carol@example.com"}],
			"startDate": "2026-01-01T00:00:00Z",
			"endDate": "2027-01-01T00:00:00Z"
		}`)

		res, err := ValidateCreateContract(body)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Valid {
			t.Fatal("expected invalid")
		}
		found := false
		for _, e := range res.Errors {
			if strings.Contains(e, "id") {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected a violation about the guarantor id, got %v", res.Errors)
		}
	})
}
