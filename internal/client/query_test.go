package client

import "testing"

func TestParams_SkipsUndefinedKeys(t *testing.T) {
	values := Params{
		"status":   "active",
		"search":   "",
		"borrower": nil,
		"page":     2,
	}.Encode()

	if got := values.Encode(); got != "page=2&status=active" {
		t.Fatalf("query = %q", got)
	}
	if _, present := values["search"]; present {
		t.Fatalf("empty string must not be serialized")
	}
	if _, present := values["borrower"]; present {
		t.Fatalf("nil value must not be serialized")
	}
}

func TestParams_CoercesNumericStrings(t *testing.T) {
	values := Params{"page": "2", "limit": "050"}.Encode()

	if got := values.Get("page"); got != "2" {
		t.Fatalf("page = %q", got)
	}
	// Coercion normalizes the numeric form.
	if got := values.Get("limit"); got != "50" {
		t.Fatalf("limit = %q", got)
	}
}

func TestParams_DropsNonNumericPage(t *testing.T) {
	values := Params{"page": "two"}.Encode()
	if _, present := values["page"]; present {
		t.Fatalf("unparseable page must be dropped, got %q", values.Get("page"))
	}
}

func TestParams_ScalarTypes(t *testing.T) {
	values := Params{
		"active": true,
		"limit":  25,
		"rate":   14.5,
	}.Encode()

	if values.Get("active") != "true" || values.Get("limit") != "25" || values.Get("rate") != "14.5" {
		t.Fatalf("unexpected encoding: %q", values.Encode())
	}
}
