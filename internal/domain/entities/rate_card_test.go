package entities

import "testing"

func TestParseScrapType(t *testing.T) {
	if st, ok := ParseScrapType(" Metal "); !ok || st != ScrapTypeMetal {
		t.Fatalf("expected metal, got %q %v", st, ok)
	}
	if _, ok := ParseScrapType("wood"); ok {
		t.Fatalf("expected wood to be rejected")
	}
}

func TestEstimateValue(t *testing.T) {
	items := []ScrapItem{
		{Type: ScrapTypePaper, Weight: 10},   // 9.5 * 10
		{Type: ScrapTypeMetal, Weight: 2},    // 20 * 2
		{Type: ScrapType("wood"), Weight: 5}, // ignored
		{Type: ScrapTypeGlass, Weight: -3},   // ignored
	}
	if got := EstimateValue(items, false); got != 135 {
		t.Fatalf("expected 135, got %v", got)
	}
	// 12 kg priced items get the transport bonus: 135 + 12*1.05
	if got := EstimateValue(items, true); got != 147.6 {
		t.Fatalf("expected 147.6, got %v", got)
	}
	if got := TotalWeight(items); got != 17 {
		t.Fatalf("expected 17, got %v", got)
	}
}

func TestRateCard_ReturnsCopy(t *testing.T) {
	rc := RateCard()
	rc[ScrapTypePaper] = Rate{}
	if r, _ := RateFor(ScrapTypePaper); r.MinPerKg != 9 {
		t.Fatalf("rate card must not be mutable through RateCard()")
	}
}
