package text

import "testing"

func TestRange_Len(t *testing.T) {
	tests := []struct {
		r    Range
		want Size
	}{
		{NewRange(0, 0), 0},
		{NewRange(0, 5), 5},
		{At(3, 4), 4},
	}
	for _, tt := range tests {
		if got := tt.r.Len(); got != tt.want {
			t.Fatalf("Len() = %v, want %v", got, tt.want)
		}
	}
}

func TestRange_IsEmpty(t *testing.T) {
	if !NewRange(2, 2).IsEmpty() {
		t.Fatal("want empty range")
	}
	if NewRange(2, 3).IsEmpty() {
		t.Fatal("want non-empty range")
	}
}

func TestRange_Add(t *testing.T) {
	r := At(0, 3).Add(10)
	want := NewRange(10, 13)
	if r != want {
		t.Fatalf("Add() = %v, want %v", r, want)
	}
}

func TestRange_Cover(t *testing.T) {
	a := NewRange(2, 5)
	b := NewRange(4, 9)
	got := a.Cover(b)
	want := NewRange(2, 9)
	if got != want {
		t.Fatalf("Cover() = %v, want %v", got, want)
	}
}

func TestUpTo(t *testing.T) {
	r := UpTo(SizeOf("hello"))
	want := NewRange(0, 5)
	if r != want {
		t.Fatalf("UpTo() = %v, want %v", r, want)
	}
}

func TestNewRange_PanicsOnInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("want panic for inverted range")
		}
	}()
	NewRange(5, 2)
}
