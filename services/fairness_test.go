package services

import (
	"fmt"
	"testing"

	"caracoroa/models"

	"github.com/shopspring/decimal"
)

func TestDrawFromSeedDeterministic(t *testing.T) {
	a := DrawFromSeed("0b2ad120-3c11-4c7e-9f0a-1a2b3c4d5e6f", 1700000000000)
	b := DrawFromSeed("0b2ad120-3c11-4c7e-9f0a-1a2b3c4d5e6f", 1700000000000)

	if a.Result != b.Result || !a.WinRoll.Equal(b.WinRoll) {
		t.Fatalf("same seed and timestamp produced different draws: %+v vs %+v", a, b)
	}

	c := DrawFromSeed("0b2ad120-3c11-4c7e-9f0a-1a2b3c4d5e6f", 1700000000001)
	if a.Result == c.Result && a.WinRoll.Equal(c.WinRoll) {
		t.Fatal("timestamp change did not affect the draw")
	}
}

func TestDrawRanges(t *testing.T) {
	hundred := decimal.NewFromInt(100)

	for i := 0; i < 500; i++ {
		d := DrawFromSeed(fmt.Sprintf("seed-%d", i), 1700000000000)
		if d.Result != models.ChoiceCara && d.Result != models.ChoiceCoroa {
			t.Fatalf("bad result: %q", d.Result)
		}
		if d.WinRoll.Cmp(decimal.Zero) < 0 || d.WinRoll.Cmp(hundred) >= 0 {
			t.Fatalf("roll out of range: %s", d.WinRoll)
		}
	}
}

func TestDrawCoversBothSidesAndSpreads(t *testing.T) {
	sides := map[string]int{}
	low, high := false, false

	for i := 0; i < 500; i++ {
		d := DrawFromSeed(fmt.Sprintf("spread-%d", i), 1700000000000)
		sides[d.Result]++
		if d.WinRoll.Cmp(decimal.NewFromInt(10)) < 0 {
			low = true
		}
		if d.WinRoll.Cmp(decimal.NewFromInt(90)) > 0 {
			high = true
		}
	}

	if sides[models.ChoiceCara] == 0 || sides[models.ChoiceCoroa] == 0 {
		t.Fatalf("coin never landed on one side: %v", sides)
	}
	if !low || !high {
		t.Fatal("rolls never reached the low or high end of the range")
	}
}

func TestNewDrawSeedsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		d := NewDraw()
		if len(d.Seed) != 36 {
			t.Fatalf("seed is not a UUID: %q", d.Seed)
		}
		if seen[d.Seed] {
			t.Fatalf("seed repeated: %s", d.Seed)
		}
		seen[d.Seed] = true
	}
}
