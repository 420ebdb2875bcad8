package radix

import "testing"

func TestSum(t *testing.T) {
	tests := []struct {
		numbers []string
		want    string
	}{
		{nil, "0"},
		{[]string{"0"}, "0"},
		{[]string{"1.5"}, "1 1/2"},
		{[]string{"0.5", "0.5"}, "1"},
		{[]string{"0.75", "0.75", "0.75"}, "2 1/4"},
		{[]string{"1.25", "2", "0.125"}, "3 3/8"},
		{[]string{"99999999999999999999.9", "0.1"}, "100000000000000000000"},
	}
	for _, tt := range tests {
		numbers := make([]Number, len(tt.numbers))
		for i, s := range tt.numbers {
			numbers[i] = MustParseNumber(s)
		}
		got := Sum(numbers...)
		if got.String() != tt.want {
			t.Errorf("Sum(%v) = %q, want %q", tt.numbers, got, tt.want)
		}
	}
}

func TestSum_Bases(t *testing.T) {
	a := DefaultAlphabet()
	n1 := MustParseNumber("1.5")
	n2, err := ParseNumberBase("1.1", 3, a)
	if err != nil {
		t.Fatalf("ParseNumberBase(\"1.1\", 3) failed: %v", err)
	}
	n3, err := ParseNumberBase("1.5", 6, a)
	if err != nil {
		t.Fatalf("ParseNumberBase(\"1.5\", 6) failed: %v", err)
	}
	got := Sum(n1, n2, n3)
	if want := "4 2/3"; got.String() != want {
		t.Errorf("Sum(%q, %q, %q) = %q, want %q", n1, n2, n3, got, want)
	}
	// Arguments are not modified.
	if n1.String() != "1 1/2" || n2.String() != "1 1/3" || n3.String() != "1 5/6" {
		t.Errorf("Sum modified its arguments: %q, %q, %q", n1, n2, n3)
	}
}

func TestNumber_Add(t *testing.T) {
	tests := []struct {
		n, m string
		want string
	}{
		{"0", "0", "0"},
		{"1.5", "2.5", "4"},
		{"0.1", "0.2", "0 3/10"},
		{"0.9", "0.3", "1 1/5"},
	}
	for _, tt := range tests {
		n, m := MustParseNumber(tt.n), MustParseNumber(tt.m)
		got := n.Add(m)
		if got.String() != tt.want {
			t.Errorf("%q.Add(%q) = %q, want %q", n, m, got, tt.want)
		}
		if rev := m.Add(n); rev.Cmp(got) != 0 {
			t.Errorf("%q.Add(%q) = %q, but %q.Add(%q) = %q", n, m, got, m, n, rev)
		}
	}
}
