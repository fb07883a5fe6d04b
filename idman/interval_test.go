package idman

import "testing"

func TestNewIntervalUpperLessThanLower(t *testing.T) {
	if _, err := NewInterval[uint8](12, 11); err != ErrMalformedRange {
		t.Fatalf("expect ErrMalformedRange, but get %v", err)
	}
}

func TestNewIntervalFullWidths(t *testing.T) {
	if _, err := NewInterval[uint8](0, 255); err != nil {
		t.Errorf("uint8: %v", err)
	}
	if _, err := NewInterval[uint16](0, 65535); err != nil {
		t.Errorf("uint16: %v", err)
	}
	if _, err := NewInterval[uint32](0, 4294967295); err != nil {
		t.Errorf("uint32: %v", err)
	}
	if _, err := NewInterval[uint64](0, 18446744073709551615); err != nil {
		t.Errorf("uint64: %v", err)
	}
}

func TestIntervalBounds(t *testing.T) {
	iv, err := NewInterval[uint8](10, 11)
	if err != nil {
		t.Fatal(err)
	}
	if iv.Lower() != 10 {
		t.Errorf("lower: %d", iv.Lower())
	}
	if iv.Upper() != 11 {
		t.Errorf("upper: %d", iv.Upper())
	}

	single := Single[uint8](7)
	if single.Lower() != 7 || single.Upper() != 7 {
		t.Errorf("single: %s", single)
	}
}

func TestIntervalCompare(t *testing.T) {
	cases := []struct {
		a, b Interval[uint8]
		want int
	}{
		{Interval[uint8]{10, 12}, Interval[uint8]{10, 12}, 0},
		{Interval[uint8]{10, 12}, Interval[uint8]{11, 11}, -1},
		{Interval[uint8]{11, 11}, Interval[uint8]{10, 12}, 1},
		{Interval[uint8]{10, 12}, Interval[uint8]{10, 10}, 1},
		{Interval[uint8]{10, 12}, Interval[uint8]{10, 15}, -1},
		{Interval[uint8]{9, 15}, Interval[uint8]{10, 12}, -1},
	}
	for _, c := range cases {
		if got := c.a.compare(c.b); got != c.want {
			t.Errorf("%s vs %s: expect %d, but get %d", c.a, c.b, c.want, got)
		}
	}
}

func TestIntervalString(t *testing.T) {
	iv, _ := NewInterval[uint8](10, 11)
	if iv.String() != "[10,11]" {
		t.Errorf("dump: %s", iv)
	}

	iv, _ = NewInterval[uint8](22, 33)
	if iv.String() != "[22,33]" {
		t.Errorf("dump: %s", iv)
	}

	if got := Single[uint8](10).String(); got != "[10]" {
		t.Errorf("dump: %s", got)
	}

	if got := Single[uint8](255).String(); got != "[255]" {
		t.Errorf("dump: %s", got)
	}
}

func TestIntervalContainsValue(t *testing.T) {
	iv, _ := NewInterval[uint8](10, 12)
	for v, want := range map[uint8]bool{9: false, 10: true, 11: true, 12: true, 13: false} {
		if got := iv.ContainsValue(v); got != want {
			t.Errorf("contains %d: expect %v, but get %v", v, want, got)
		}
	}
}

func TestIntervalOverlaps(t *testing.T) {
	iv1, _ := NewInterval[uint8](10, 13)
	iv2, _ := NewInterval[uint8](11, 12)
	iv3, _ := NewInterval[uint8](11, 14)
	iv4, _ := NewInterval[uint8](14, 20)

	if !iv1.Overlaps(iv1) || !iv1.Overlaps(iv2) || !iv2.Overlaps(iv1) {
		t.Error("expected overlap")
	}
	if !iv1.Overlaps(iv3) || !iv3.Overlaps(iv1) || !iv2.Overlaps(iv3) {
		t.Error("expected overlap")
	}
	if iv1.Overlaps(iv4) || iv4.Overlaps(iv1) {
		t.Error("adjacent ranges do not overlap")
	}
}

func TestIntervalExtendsLower(t *testing.T) {
	iv, _ := NewInterval[uint8](10, 13)

	below, _ := NewInterval[uint8](7, 8)
	if iv.ExtendsLower(below) {
		t.Error("[7,8] leaves a gap below [10,13]")
	}

	adjacent, _ := NewInterval[uint8](7, 9)
	if !iv.ExtendsLower(adjacent) {
		t.Error("[7,9] is adjacent below [10,13]")
	}

	// a candidate ending at MAX has no successor
	atMax, _ := NewInterval[uint8](14, 255)
	if iv.ExtendsLower(atMax) {
		t.Error("candidate at MAX must not extend")
	}

	fromMin, _ := NewInterval[uint8](0, 17)
	if iv.ExtendsLower(fromMin) {
		t.Error("[0,17] is not adjacent below [10,13]")
	}
}

func TestIntervalExtendsUpper(t *testing.T) {
	iv, _ := NewInterval[uint8](10, 13)

	above, _ := NewInterval[uint8](15, 17)
	if iv.ExtendsUpper(above) {
		t.Error("[15,17] leaves a gap above [10,13]")
	}

	adjacent, _ := NewInterval[uint8](14, 17)
	if !iv.ExtendsUpper(adjacent) {
		t.Error("[14,17] is adjacent above [10,13]")
	}

	toMax, _ := NewInterval[uint8](14, 255)
	if !iv.ExtendsUpper(toMax) {
		t.Error("[14,255] is adjacent above [10,13]")
	}

	// a candidate starting at MIN has no predecessor
	atMin, _ := NewInterval[uint8](0, 17)
	if iv.ExtendsUpper(atMin) {
		t.Error("candidate at MIN must not extend")
	}
}
