// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic_test

import (
	"testing"

	"code.hybscloud.com/optic"
)

func TestPrismMatch(t *testing.T) {
	card := Card{Number: "4242", Expiry: "12/30"}

	got, ok := cardPrism.GetOption(card).Get()
	if !ok || got.Number != "4242" {
		t.Fatalf("got (%+v, %v), want match", got, ok)
	}
	if !cardPrism.Matches(card) {
		t.Fatal("expected match")
	}
	if cardPrism.Matches(Cash{}) {
		t.Fatal("expected no match")
	}
}

func TestPrismNoMatchModifyNoOp(t *testing.T) {
	var m PayMethod = Cash{}
	got := cardPrism.Modify(m, func(c Card) Card {
		c.Number = "0000"
		return c
	})
	if got != m {
		t.Fatalf("got %v, want source unchanged", got)
	}
}

func TestPrismSetGuarded(t *testing.T) {
	var m PayMethod = Cash{}
	if got := cardPrism.Set(m, Card{Number: "0000"}); got != m {
		t.Fatalf("got %v, want source unchanged", got)
	}

	var c PayMethod = Card{Number: "4242"}
	got := cardPrism.Set(c, Card{Number: "0000"})
	cc, ok := got.(Card)
	if !ok || cc.Number != "0000" {
		t.Fatalf("got %v, want Card 0000", got)
	}
}

func TestPrismBuild(t *testing.T) {
	m := cardPrism.Build(Card{Number: "4242"})
	got, ok := cardPrism.GetOption(m).Get()
	if !ok || got.Number != "4242" {
		t.Fatalf("got (%+v, %v), want built card back", got, ok)
	}
}

// TestPrismThreeVariantSum: each variant prism matches its own variant only,
// and building then matching round-trips.
func TestPrismThreeVariantSum(t *testing.T) {
	transferPrism := optic.VariantOf[PayMethod, Transfer]()

	if transferPrism.Matches(Card{Number: "4242"}) {
		t.Fatal("Transfer prism matched a Card")
	}
	if transferPrism.Matches(Cash{}) {
		t.Fatal("Transfer prism matched a Cash")
	}
	if cardPrism.Matches(Transfer{IBAN: "DE01"}) {
		t.Fatal("Card prism matched a Transfer")
	}

	built := transferPrism.Build(Transfer{IBAN: "DE01"})
	got, ok := transferPrism.GetOption(built).Get()
	if !ok || got.IBAN != "DE01" {
		t.Fatalf("got (%+v, %v), want built transfer back", got, ok)
	}
}

func TestPrismNoMatchSkipsEffect(t *testing.T) {
	var m PayMethod = Cash{}
	called := false
	res := optic.ModifyEither(m, cardPrism.Optic(), func(c Card) optic.Either[string, Card] {
		called = true
		return optic.Left[string, Card]("boom")
	})
	if called {
		t.Fatal("update function ran on a non-matching source")
	}
	v, ok := res.GetRight()
	if !ok || v != m {
		t.Fatalf("got (%v, %v), want source unchanged", v, ok)
	}
}

func TestSomeOf(t *testing.T) {
	p := optic.SomeOf[int]()
	if got, ok := p.GetOption(optic.Some(3)).Get(); !ok || got != 3 {
		t.Fatalf("got (%d, %v), want (3, true)", got, ok)
	}
	if p.Matches(optic.None[int]()) {
		t.Fatal("expected no match on None")
	}
	got := p.Modify(optic.Some(3), func(x int) int { return x + 1 })
	if v, ok := got.Get(); !ok || v != 4 {
		t.Fatalf("got (%d, %v), want (4, true)", v, ok)
	}
	none := p.Modify(optic.None[int](), func(x int) int { return x + 1 })
	if none.IsSome() {
		t.Fatal("expected None to pass through")
	}
}

func TestRightOfLeftOf(t *testing.T) {
	r := optic.RightOf[string, int]()
	l := optic.LeftOf[string, int]()

	e := optic.Right[string](10)
	if got, ok := r.GetOption(e).Get(); !ok || got != 10 {
		t.Fatalf("got (%d, %v), want (10, true)", got, ok)
	}
	if l.Matches(e) {
		t.Fatal("LeftOf matched a Right")
	}

	e2 := r.Modify(e, func(x int) int { return x * 2 })
	if got, _ := e2.GetRight(); got != 20 {
		t.Fatalf("got %d, want 20", got)
	}

	le := optic.Left[string, int]("oops")
	if got, ok := l.GetOption(le).Get(); !ok || got != "oops" {
		t.Fatalf("got (%q, %v), want (oops, true)", got, ok)
	}
	same := r.Modify(le, func(x int) int { return x * 2 })
	if same.IsRight() {
		t.Fatal("RightOf modified a Left")
	}
}

func TestValidOf(t *testing.T) {
	p := optic.ValidOf[string, int]()
	v := optic.Valid[string](5)
	got := p.Modify(v, func(x int) int { return x + 1 })
	if x, ok := got.Get(); !ok || x != 6 {
		t.Fatalf("got (%d, %v), want (6, true)", x, ok)
	}
	inv := optic.Invalid[string, int]("bad")
	same := p.Modify(inv, func(x int) int { return x + 1 })
	if same.IsValid() {
		t.Fatal("ValidOf modified an Invalid")
	}
	if len(same.Errors()) != 1 || same.Errors()[0] != "bad" {
		t.Fatalf("errors changed: %v", same.Errors())
	}
}

func TestVariantOfAny(t *testing.T) {
	strs := optic.VariantOf[any, string]()
	if got, ok := strs.GetOption("hello").Get(); !ok || got != "hello" {
		t.Fatalf("got (%q, %v), want (hello, true)", got, ok)
	}
	if strs.Matches(42) {
		t.Fatal("string variant matched an int")
	}
	if got := strs.Build("x"); got != any("x") {
		t.Fatalf("got %v, want x", got)
	}
}
