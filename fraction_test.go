package radix

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"testing"
)

func TestFraction_ZeroValue(t *testing.T) {
	got := Fraction{}
	want := MustNewFraction(0, 1)
	if got.Cmp(want) != 0 || got.String() != "0/1" {
		t.Errorf("Fraction{} = %q, want %q", got, want)
	}
	if !got.IsZero() {
		t.Errorf("Fraction{}.IsZero() = false, want true")
	}
}

func TestFraction_Interfaces(t *testing.T) {
	var i any = Fraction{}
	_, ok := i.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", i)
	}
}

func TestNewFraction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			num, den int64
			want     string
		}{
			{0, 1, "0/1"},
			{0, 5, "0/1"},
			{1, 3, "1/3"},
			{6, 8, "3/4"},
			{875, 1000, "7/8"},
			{10, 5, "2/1"},
			{7, 7, "1/1"},
		}
		for _, tt := range tests {
			got, err := NewFractionFromInt64(tt.num, tt.den)
			if err != nil {
				t.Errorf("NewFraction(%v, %v) failed: %v", tt.num, tt.den, err)
				continue
			}
			if got.String() != tt.want {
				t.Errorf("NewFraction(%v, %v) = %q, want %q", tt.num, tt.den, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			num, den int64
		}{
			"zero denominator 1": {1, 0},
			"zero denominator 2": {0, 0},
			"negative 1":         {-1, 2},
			"negative 2":         {1, -2},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewFractionFromInt64(tt.num, tt.den)
				if !errors.Is(err, ErrInvalidFraction) {
					t.Errorf("NewFraction(%v, %v) = %v, want %v", tt.num, tt.den, err, ErrInvalidFraction)
				}
			})
		}
		_, err := NewFraction(nil, big.NewInt(1))
		if !errors.Is(err, ErrInvalidFraction) {
			t.Errorf("NewFraction(nil, 1) = %v, want %v", err, ErrInvalidFraction)
		}
	})
}

func TestMustNewFraction(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewFraction(1, 0) did not panic")
			}
		}()
		MustNewFraction(1, 0)
	})
}

func TestFraction_NumDen(t *testing.T) {
	f := MustNewFraction(6, 8)
	num, den := f.Num(), f.Den()
	if num.Int64() != 3 || den.Int64() != 4 {
		t.Errorf("%q.Num(), %q.Den() = %v, %v, want 3, 4", f, f, num, den)
	}
	// Callers get copies.
	num.SetInt64(100)
	den.SetInt64(200)
	if f.String() != "3/4" {
		t.Errorf("modifying Num() and Den() changed the fraction to %q", f)
	}
}

func TestFraction_Add(t *testing.T) {
	tests := []struct {
		f, g [2]int64
		want string
	}{
		{[2]int64{0, 1}, [2]int64{0, 1}, "0/1"},
		{[2]int64{1, 2}, [2]int64{1, 3}, "5/6"},
		{[2]int64{1, 6}, [2]int64{1, 3}, "1/2"},
		{[2]int64{1, 4}, [2]int64{1, 4}, "1/2"},
		{[2]int64{1, 2}, [2]int64{1, 2}, "1/1"},
		{[2]int64{1, 3}, [2]int64{5, 6}, "7/6"},
		{[2]int64{2, 3}, [2]int64{0, 1}, "2/3"},
	}
	for _, tt := range tests {
		f, g := MustNewFraction(tt.f[0], tt.f[1]), MustNewFraction(tt.g[0], tt.g[1])
		got := f.Add(g)
		if got.String() != tt.want {
			t.Errorf("%q.Add(%q) = %q, want %q", f, g, got, tt.want)
		}
	}
}

func TestFraction_Add_Laws(t *testing.T) {
	fracs := []Fraction{
		MustNewFraction(0, 1),
		MustNewFraction(1, 2),
		MustNewFraction(1, 3),
		MustNewFraction(5, 6),
		MustNewFraction(7, 8),
		MustNewFraction(2, 9),
		MustNewFraction(11, 12),
		MustNewFraction(13, 100),
	}
	for _, f1 := range fracs {
		for _, f2 := range fracs {
			if a, b := f1.Add(f2), f2.Add(f1); a.String() != b.String() {
				t.Errorf("%q + %q = %q, but %q + %q = %q", f1, f2, a, f2, f1, b)
			}
			for _, f3 := range fracs {
				a := f1.Add(f2.Add(f3))
				b := f1.Add(f2).Add(f3)
				if a.String() != b.String() {
					t.Errorf("%q + (%q + %q) = %q, but (%q + %q) + %q = %q", f1, f2, f3, a, f1, f2, f3, b)
				}
			}
		}
	}
}

func TestFraction_Cmp(t *testing.T) {
	tests := []struct {
		f, g [2]int64
		want int
	}{
		{[2]int64{1, 2}, [2]int64{2, 4}, 0},
		{[2]int64{1, 3}, [2]int64{1, 2}, -1},
		{[2]int64{2, 3}, [2]int64{1, 2}, 1},
		{[2]int64{0, 1}, [2]int64{0, 7}, 0},
	}
	for _, tt := range tests {
		f, g := MustNewFraction(tt.f[0], tt.f[1]), MustNewFraction(tt.g[0], tt.g[1])
		got := f.Cmp(g)
		if got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", f, g, got, tt.want)
		}
	}
}

func TestFraction_Digits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			num, den     int64
			base, limit  int
			wantPrefix   []int
			wantRepetend []int
		}{
			// Terminating
			{0, 1, 10, -1, nil, nil},
			{1, 2, 10, -1, []int{5}, nil},
			{1, 8, 10, -1, []int{1, 2, 5}, nil},
			{1, 2, 2, -1, []int{1}, nil},
			{1, 3, 3, -1, []int{1}, nil},
			// Repeating
			{1, 3, 10, -1, nil, []int{3}},
			{1, 6, 10, -1, []int{1}, []int{6}},
			{1, 7, 10, -1, nil, []int{1, 4, 2, 8, 5, 7}},
			{22, 7, 10, -1, nil, []int{1, 4, 2, 8, 5, 7}},
			{1, 10, 3, -1, nil, []int{0, 0, 2, 2}},
			{1, 10, 2, -1, []int{0}, []int{0, 0, 1, 1}},
			{1, 3, 16, -1, nil, []int{5}},
			// Limited
			{1, 7, 10, 3, []int{1, 4, 2}, nil},
			{1, 7, 10, 0, nil, nil},
			{1, 6, 10, 5, []int{1}, []int{6}},
			{1, 8, 10, 2, []int{1, 2}, nil}, // continues past the limit
			{1, 8, 10, 3, []int{1, 2, 5}, nil},
			{1, 8, 10, 4, []int{1, 2, 5}, nil},
		}
		for _, tt := range tests {
			f := MustNewFraction(tt.num, tt.den)
			gotPrefix, gotRepetend, err := f.Digits(tt.base, tt.limit)
			if err != nil {
				t.Errorf("%q.Digits(%v, %v) failed: %v", f, tt.base, tt.limit, err)
				continue
			}
			if len(gotPrefix) != len(tt.wantPrefix) || (len(gotPrefix) > 0 && !reflect.DeepEqual(gotPrefix, tt.wantPrefix)) ||
				len(gotRepetend) != len(tt.wantRepetend) || (len(gotRepetend) > 0 && !reflect.DeepEqual(gotRepetend, tt.wantRepetend)) {
				t.Errorf("%q.Digits(%v, %v) = %v, %v, want %v, %v", f, tt.base, tt.limit, gotPrefix, gotRepetend, tt.wantPrefix, tt.wantRepetend)
			}
		}
	})

	t.Run("bounded", func(t *testing.T) {
		for den := int64(2); den <= 200; den++ {
			for base := 2; base <= 16; base++ {
				f := MustNewFraction(1, den)
				prefix, repetend, err := f.Digits(base, -1)
				if err != nil {
					t.Fatalf("%q.Digits(%v, -1) failed: %v", f, base, err)
				}
				if n := int64(len(prefix) + len(repetend)); n > den {
					t.Errorf("%q.Digits(%v, -1) produced %v digits, want at most %v", f, base, n, den)
				}
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []int{-1, 0, 1}
		for _, base := range tests {
			_, _, err := MustNewFraction(1, 3).Digits(base, -1)
			if !errors.Is(err, ErrInvalidBase) {
				t.Errorf("Digits(%v, -1) = %v, want %v", base, err, ErrInvalidBase)
			}
		}
	})
}
