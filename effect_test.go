// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optic_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/optic"
)

func checkPositive(x int) optic.Validated[string, int] {
	if x < 0 {
		return optic.Invalid[string, int](fmt.Sprintf("negative: %d", x))
	}
	return optic.Valid[string](x)
}

func TestModifyValidatedAccumulatesInOrder(t *testing.T) {
	vals := optic.SliceValues[int]().Optic()
	src := []int{1, -2, 3, -4}

	got := optic.ModifyValidated(src, vals, checkPositive)
	require.True(t, got.IsInvalid())
	require.Equal(t, []string{"negative: -2", "negative: -4"}, got.Errors())
	require.Equal(t, []int{1, -2, 3, -4}, src)
}

func TestModifyValidatedAllValid(t *testing.T) {
	vals := optic.SliceValues[int]().Optic()
	got := optic.ModifyValidated([]int{1, 2}, vals, func(x int) optic.Validated[string, int] {
		return optic.Valid[string](x * 10)
	})
	out, ok := got.Get()
	require.True(t, ok)
	require.Equal(t, []int{10, 20}, out)
	require.Nil(t, got.Errors())
}

func TestModifyEitherFailsFast(t *testing.T) {
	vals := optic.SliceValues[int]().Optic()
	src := []int{1, -2, 3, -4}

	got := optic.ModifyEither(src, vals, func(x int) optic.Either[string, int] {
		if x < 0 {
			return optic.Left[string, int](fmt.Sprintf("negative: %d", x))
		}
		return optic.Right[string](x)
	})
	require.True(t, got.IsLeft())
	e, _ := got.GetLeft()
	require.Equal(t, "negative: -2", e)
}

func TestModifyOption(t *testing.T) {
	vals := optic.SliceValues[int]().Optic()

	some := optic.ModifyOption([]int{1, 2, 3}, vals, func(x int) optic.Option[int] {
		return optic.Some(x + 1)
	})
	out, ok := some.Get()
	require.True(t, ok)
	require.Equal(t, []int{2, 3, 4}, out)

	none := optic.ModifyOption([]int{1, 2, 3}, vals, func(x int) optic.Option[int] {
		if x == 2 {
			return optic.None[int]()
		}
		return optic.Some(x)
	})
	require.True(t, none.IsNone())
}

func TestModifyFVisitsInOrder(t *testing.T) {
	vals := optic.SliceValues[string]().Optic()
	var visited []string
	_ = vals.ModifyF([]string{"a", "b", "c"}, func(s string) optic.Erased {
		visited = append(visited, s)
		return s
	}, optic.IdentityAp())
	require.Equal(t, []string{"a", "b", "c"}, visited)
}

func TestModifyFIdentityCoincidesWithModify(t *testing.T) {
	vals := optic.SliceValues[int]().Optic()
	src := []int{3, 1, 4, 1, 5}

	double := func(x int) int { return x * 2 }
	plain := vals.Modify(src, double)
	effectful := vals.ModifyF(src, func(x int) optic.Erased { return double(x) }, optic.IdentityAp()).([]int)
	require.Equal(t, plain, effectful)
}

func TestIdentityAp(t *testing.T) {
	ap := optic.IdentityAp()
	require.Equal(t, 5, ap.Pure(5))
	got := ap.Map2(2, 3, func(a, b optic.Erased) optic.Erased { return a.(int) + b.(int) })
	require.Equal(t, 5, got)
}

func TestOptionAp(t *testing.T) {
	ap := optic.OptionAp()

	add := func(a, b optic.Erased) optic.Erased { return a.(int) + b.(int) }

	both := ap.Map2(ap.Pure(2), ap.Pure(3), add)
	v, ok := both.(optic.Option[optic.Erased]).Get()
	require.True(t, ok)
	require.Equal(t, 5, v)

	left := ap.Map2(optic.None[optic.Erased](), ap.Pure(3), add)
	require.True(t, left.(optic.Option[optic.Erased]).IsNone())

	right := ap.Map2(ap.Pure(2), optic.None[optic.Erased](), add)
	require.True(t, right.(optic.Option[optic.Erased]).IsNone())
}

func TestEitherApKeepsLeftmostError(t *testing.T) {
	ap := optic.EitherAp[string]()

	add := func(a, b optic.Erased) optic.Erased { return a.(int) + b.(int) }

	firstBad := ap.Map2(
		optic.Left[string, optic.Erased]("first"),
		optic.Left[string, optic.Erased]("second"),
		add,
	)
	e, _ := firstBad.(optic.Either[string, optic.Erased]).GetLeft()
	require.Equal(t, "first", e)
}

func TestValidatedApConcatenatesErrors(t *testing.T) {
	ap := optic.ValidatedAp[string]()

	add := func(a, b optic.Erased) optic.Erased { return a.(int) + b.(int) }

	both := ap.Map2(
		optic.Invalid[string, optic.Erased]("first"),
		optic.Invalid[string, optic.Erased]("second"),
		add,
	)
	require.Equal(t, []string{"first", "second"}, both.(optic.Validated[string, optic.Erased]).Errors())

	ok := ap.Map2(ap.Pure(2), ap.Pure(3), add)
	v, valid := ok.(optic.Validated[string, optic.Erased]).Get()
	require.True(t, valid)
	require.Equal(t, 5, v)
}

func TestModifyValidatedThroughDeepPath(t *testing.T) {
	ages := optic.AndThen(optic.SliceValues[Person]().Optic(), personAge.Optic())
	people := []Person{{Name: "a", Age: 30}, {Name: "b", Age: -1}, {Name: "c", Age: -7}}

	got := optic.ModifyValidated(people, ages, checkPositive)
	require.Equal(t, []string{"negative: -1", "negative: -7"}, got.Errors())

	fixed := optic.ModifyValidated(people, ages, func(a int) optic.Validated[string, int] {
		return optic.Valid[string](a + 1)
	})
	out, ok := fixed.Get()
	require.True(t, ok)
	require.Equal(t, []int{31, 0, -6}, ages.GetAll(out))
}

func TestModifyValidatedNonMatchingPathContributesNothing(t *testing.T) {
	number := optic.AndThen(
		optic.AndThen(paymentMethod.Optic(), cardPrism.Optic()),
		cardNumber.Optic(),
	)
	cash := Payment{ID: "p-1", Method: Cash{}}

	got := optic.ModifyValidated(cash, number, func(string) optic.Validated[string, string] {
		return optic.Invalid[string, string]("unreachable")
	})
	out, ok := got.Get()
	require.True(t, ok)
	require.Equal(t, cash, out)
	require.Nil(t, got.Errors())
}
