package segment

import (
	"sort"
	"testing"
)

func TestKeywordClassifier_Topics(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"technical", "we found a bug in the code", []string{"technical"}},
		{"business", "the client questioned the budget", []string{"business"}},
		{"mixed", "the design deadline is close", []string{"design", "planning"}},
		{"none", "hello there everyone", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Topics(tt.text)
			sort.Strings(got)
			if len(got) != len(tt.want) {
				t.Fatalf("Topics(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Topics(%q) = %v, want %v", tt.text, got, tt.want)
				}
			}
		})
	}
}

func TestKeywordClassifier_MajorShift(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		name    string
		current string
		next    string
		want    bool
	}{
		{
			name:    "disjoint topics shift",
			current: "the code review found a bug",
			next:    "the client wants a lower cost",
			want:    true,
		},
		{
			name:    "shared topic suppresses shift",
			current: "we discussed the budget and client revenue",
			next:    "let's also review the budget timeline",
			want:    false,
		},
		{
			name:    "equal topics no shift",
			current: "testing the new feature",
			next:    "the feature needs more testing",
			want:    false,
		},
		{
			name:    "next has no topics",
			current: "the budget is fixed",
			next:    "okay sounds good",
			want:    false,
		},
		{
			name:    "current has no topics but next does",
			current: "okay sounds good",
			next:    "the ui layout is broken",
			want:    true,
		},
		{
			name:    "both empty",
			current: "",
			next:    "",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.MajorShift(tt.current, tt.next); got != tt.want {
				t.Errorf("MajorShift(%q, %q) = %v, want %v", tt.current, tt.next, got, tt.want)
			}
		})
	}
}
