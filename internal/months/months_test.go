package months

import "testing"

func TestAddRollsOverYears(t *testing.T) {
	got, err := Add("2024-11", 3)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if got != "2025-02" {
		t.Fatalf("expected 2025-02, got %s", got)
	}

	got, err = Add("2024-01", -1)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if got != "2023-12" {
		t.Fatalf("expected 2023-12, got %s", got)
	}
}

func TestAddMalformed(t *testing.T) {
	if _, err := Add("garbage", 1); err == nil {
		t.Fatal("expected error for malformed month")
	}
}

func TestCompareIsChronological(t *testing.T) {
	if Compare("2023-12", "2024-01") >= 0 {
		t.Fatal("2023-12 should sort before 2024-01")
	}
	if Compare("2024-02", "2024-02") != 0 {
		t.Fatal("equal keys should compare equal")
	}
}

func TestNumberAndYear(t *testing.T) {
	if n := Number("2024-07"); n != 7 {
		t.Fatalf("expected 7, got %d", n)
	}
	if n := Number("not-a-month"); n != 0 {
		t.Fatalf("expected 0 for malformed key, got %d", n)
	}
	if y := Year("2024-07"); y != 2024 {
		t.Fatalf("expected 2024, got %d", y)
	}
}

func TestLabel(t *testing.T) {
	if l := Label("2024-03"); l != "Mar 2024" {
		t.Fatalf("unexpected label %q", l)
	}
	if l := Label("opaque"); l != "opaque" {
		t.Fatalf("malformed key should pass through, got %q", l)
	}
}
