// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic_test

import "testing"

var sinkPerson Person

func TestLensAllocations(t *testing.T) {
	p := Person{Name: "ada", Age: 36}

	allocs := testing.AllocsPerRun(100, func() {
		_ = personName.Get(p)
	})
	if allocs > 0 {
		t.Errorf("Lens.Get allocs = %v; want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		sinkPerson = personName.Set(p, "grace")
	})
	if allocs > 0 {
		t.Errorf("Lens.Set allocs = %v; want 0", allocs)
	}
}

func TestIsoAllocations(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = userID.Get("u-1")
	})
	if allocs > 0 {
		t.Errorf("Iso.Get allocs = %v; want 0", allocs)
	}
}

func TestPrismAllocations(t *testing.T) {
	var m PayMethod = Cash{}

	allocs := testing.AllocsPerRun(100, func() {
		_ = cardPrism.GetOption(m)
	})
	if allocs > 0 {
		t.Errorf("Prism.GetOption miss allocs = %v; want 0", allocs)
	}
}

func TestOpticGetAllocations(t *testing.T) {
	o := personAge.Optic()
	p := Person{Name: "ada", Age: 36}

	allocs := testing.AllocsPerRun(100, func() {
		_ = o.Get(p)
	})
	if allocs > 0 {
		t.Errorf("Optic.Get allocs = %v; want 0", allocs)
	}
}
