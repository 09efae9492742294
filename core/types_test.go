package core_test

import (
	"errors"
	"testing"

	"github.com/lovelyyoshino/bron-kerbosch/core"
)

func TestPoint_Distance(t *testing.T) {
	a := core.Point{X: 0, Y: 0, Z: 0}
	b := core.Point{X: 3, Y: 4, Z: 0}
	if got := a.Distance(b); got != 5 {
		t.Fatalf("got %v, want 5", got)
	}
}

func TestIdPair_OrderedEquality(t *testing.T) {
	a := core.IdPair{ID1: 1, ID2: 2}
	b := core.IdPair{ID1: 2, ID2: 1}
	if a == b {
		t.Fatalf("IdPair equality must respect order: %v should not equal %v", a, b)
	}

	slots := map[core.IdPair]int{a: 10}
	if slots[b] != 0 {
		t.Fatalf("reversed pair must not collide in the map")
	}
	if v, ok := slots[a]; !ok || v != 10 {
		t.Fatalf("expected slots[a] == 10, got %v ok=%v", v, ok)
	}
}

func TestParams_Validate(t *testing.T) {
	cases := []struct {
		name    string
		params  core.Params
		wantErr error
	}{
		{"valid", core.Params{Resolution: 0.1, MinClusterSize: 2, MaxModelRadius: 1}, nil},
		{"valid zero radius", core.Params{Resolution: 0.1, MinClusterSize: 3}, nil},
		{"zero resolution", core.Params{Resolution: 0, MinClusterSize: 2}, core.ErrInvalidResolution},
		{"negative resolution", core.Params{Resolution: -1, MinClusterSize: 2}, core.ErrInvalidResolution},
		{"cluster size one", core.Params{Resolution: 0.1, MinClusterSize: 1}, core.ErrMinClusterSizeTooSmall},
		{"negative radius", core.Params{Resolution: 0.1, MinClusterSize: 2, MaxModelRadius: -1}, core.ErrInvalidMaxModelRadius},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestParams_MaxTargetDistance(t *testing.T) {
	p := core.Params{Resolution: 0.1, MinClusterSize: 2, MaxModelRadius: 3}
	if got := p.MaxTargetDistance(); got != 6 {
		t.Fatalf("got %v, want 6", got)
	}

	zero := core.Params{Resolution: 0.1, MinClusterSize: 2}
	if got := zero.MaxTargetDistance(); got != 0 {
		t.Fatalf("got %v, want 0 for unset MaxModelRadius", got)
	}
}
