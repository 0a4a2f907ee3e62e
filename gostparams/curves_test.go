package gostparams

import (
	"testing"

	"github.com/tc26/gogost/gost3410"
)

func TestLookupKnownCurve(t *testing.T) {
	params, ok := Lookup("id-tc26-gost-3410-2012-256-paramSetB")
	if !ok {
		t.Fatal("Lookup should find paramSetB")
	}
	if params.P == nil || params.Q == nil {
		t.Error("paramSetB should carry a full canonical parameter set")
	}
}

func TestLookupUnknownCurve(t *testing.T) {
	if _, ok := Lookup("not-a-real-curve"); ok {
		t.Error("Lookup should report false for an unregistered name")
	}
}

func TestNamesCoversAllSevenCurves(t *testing.T) {
	names := Names()
	if len(names) != 7 {
		t.Fatalf("Names() returned %d entries, want 7", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatal("Names() should be sorted")
		}
	}
}

// TestAllCurvesConstruct checks that every registered parameter set
// passes gost3410.NewCurve's §3 invariant checks.
func TestAllCurvesConstruct(t *testing.T) {
	for _, name := range Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			params, _ := Lookup(name)
			mode := gost3410.Mode256
			if params.Q.BitLen() > 256 {
				mode = gost3410.Mode512
			}
			if _, err := gost3410.NewCurve(mode, params); err != nil {
				t.Errorf("NewCurve(%s) failed: %v", name, err)
			}
		})
	}
}
