// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command demo walks an order through the accessor surface: bulk reads,
// copy-on-write updates, accumulating validation, a concurrent repricing
// pass and a JSON document rewrite.
package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"code.hybscloud.com/optic"
	"code.hybscloud.com/optic/jsonoptic"
)

type Item struct {
	SKU      string
	Quantity int
	Price    float64
}

type Order struct {
	ID    uuid.UUID
	Items []Item
}

var (
	orderItems = optic.LensOf(
		func(o Order) []Item { return o.Items },
		func(o Order, items []Item) Order { o.Items = items; return o },
	)
	itemQuantity = optic.LensOf(
		func(it Item) int { return it.Quantity },
		func(it Item, q int) Item { it.Quantity = q; return it },
	)
)

func main() {
	order := Order{
		ID: uuid.New(),
		Items: []Item{
			{SKU: "KB-01", Quantity: 2, Price: 180},
			{SKU: "MS-07", Quantity: 0, Price: 95},
			{SKU: "MN-27", Quantity: 1, Price: 740},
		},
	}

	items := optic.AndThen(orderItems.Optic(), optic.SliceValues[Item]().Optic())
	quantities := optic.AndThen(items, itemQuantity.Optic())

	fmt.Println("order:", order.ID)
	fmt.Println("quantities:", quantities.GetAll(order))
	fmt.Println("total:", optic.FoldMap(order, quantities, optic.SumMonoid[int](), func(q int) int { return q }))

	doubled := quantities.Modify(order, func(q int) int { return q * 2 })
	fmt.Println("doubled:", quantities.GetAll(doubled), "original:", quantities.GetAll(order))

	checked := optic.ModifyValidated(order, quantities, func(q int) optic.Validated[string, int] {
		if q == 0 {
			return optic.Invalid[string, int]("zero quantity")
		}
		return optic.Valid[string](q)
	})
	fmt.Println("validation errors:", checked.Errors())

	repriced, err := optic.ModifyConcurrent(context.Background(), items, order,
		func(_ context.Context, it Item) (Item, error) {
			it.Price = it.Price * 1.1
			return it, nil
		})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("repriced:", items.GetAll(repriced))

	doc, err := jsonoptic.Parse([]byte(`{"customer":{"name":"ada"},"tags":["new","vip"]}`))
	if err != nil {
		log.Fatal(err)
	}
	name := jsonoptic.Path("customer", "name")
	upper := name.Modify(doc, func(v any) any { return strings.ToUpper(v.(string)) })
	out, err := jsonoptic.Render(upper)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("document:", string(out))
}
