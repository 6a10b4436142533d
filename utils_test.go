package signalplot

import (
	"math"
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	t.Run("empty slice", func(t *testing.T) {
		var input []int = nil
		pred := func(int) bool { return true }
		got := Filter(input, pred)
		want := []int{}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Filter(%v) = %v, want %v", input, got, want)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		input := []string{"a", "b"}
		pred := func(s string) bool { return s == "z" }
		got := Filter(input, pred)
		want := []string{}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Filter(%v) = %v, want %v", input, got, want)
		}
	})

	t.Run("partial match", func(t *testing.T) {
		input := []string{"1", "", "2", ""}
		pred := func(s string) bool { return len(s) > 0 }
		got := Filter(input, pred)
		want := []string{"1", "2"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Filter(%v) = %v, want %v", input, got, want)
		}
	})
}

func TestMinMax(t *testing.T) {
	if got := Min(5, 3); got != 3 {
		t.Fatalf("Min(5,3) = %v, want 3", got)
	}

	if got := Max(5, 3); got != 5 {
		t.Fatalf("Max(5,3) = %v, want 5", got)
	}

	if got := Max(-1.5, -2.5); got != -1.5 {
		t.Fatalf("Max(-1.5,-2.5) = %v, want -1.5", got)
	}

	a := math.NaN()
	if got := Min(a, 1.0); !math.IsNaN(got) {
		t.Fatalf("Min(NaN,1.0) = %v, want NaN", got)
	}
}

func TestBounds(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, _, ok := Bounds([]float64{})
		if ok {
			t.Fatalf("expected ok=false for empty slice")
		}
	})

	t.Run("single", func(t *testing.T) {
		lo, hi, ok := Bounds([]float64{4})
		if !ok || lo != 4 || hi != 4 {
			t.Fatalf("Bounds([4]) = %v, %v, %v", lo, hi, ok)
		}
	})

	t.Run("unsorted", func(t *testing.T) {
		lo, hi, ok := Bounds([]int{3, -2, 9, 0})
		if !ok || lo != -2 || hi != 9 {
			t.Fatalf("Bounds = %v, %v, %v; want -2, 9, true", lo, hi, ok)
		}
	})
}
