package common

import (
	"reflect"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestUpto(t *testing.T) {
	tests := []struct {
		name     string
		in       []int
		max      int
		expected []int
	}{
		{name: "shorter than max", in: []int{1, 2}, max: 4, expected: []int{1, 2}},
		{name: "exactly max", in: []int{1, 2, 3}, max: 3, expected: []int{1, 2, 3}},
		{name: "truncated", in: []int{1, 2, 3, 4, 5}, max: 2, expected: []int{1, 2}},
		{name: "zero max", in: []int{1}, max: 0, expected: []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Upto(tc.in, tc.max)
			if len(got) != len(tc.expected) {
				t.Fatalf("Upto() len = %d, expected %d", len(got), len(tc.expected))
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("Upto()[%d] = %d, expected %d", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestConsecutiveRuns(t *testing.T) {
	double := func(v *int) int { return *v * 2 }

	tests := []struct {
		name     string
		in       []*int
		expected []Run[int]
	}{
		{name: "empty", in: nil, expected: nil},
		{name: "all absent", in: []*int{nil, nil}, expected: nil},
		{
			name:     "single run",
			in:       []*int{ptr(1), ptr(2), ptr(3)},
			expected: []Run[int]{{Start: 0, Values: []int{2, 4, 6}}},
		},
		{
			name: "gaps split runs",
			in:   []*int{nil, ptr(1), ptr(2), nil, nil, ptr(5), nil},
			expected: []Run[int]{
				{Start: 1, Values: []int{2, 4}},
				{Start: 5, Values: []int{10}},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ConsecutiveRuns(tc.in, double)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("ConsecutiveRuns() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 0, 3, 4); got != 3 {
		t.Errorf("Coalesce() = %d, expected 3", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Errorf("Coalesce() = %q, expected empty", got)
	}
}
