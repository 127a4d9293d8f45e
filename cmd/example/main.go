// Package main demonstrates the wfc engine across a handful of small,
// self-contained scenarios.
package main

import (
	"fmt"

	"github.com/ndwfc/wfc/pkg/wfc"
)

func main() {
	fmt.Println("=== wfc Examples ===")
	fmt.Println()

	singleCell()
	twoColorLine()
	rangeValuedCell()
	contradictionReport()
}

// listWorld is the minimal World every scenario below uses: a flat slice
// of values with no topology of its own.
type listWorld struct {
	values []any
}

func newListWorld(n int) *listWorld {
	return &listWorld{values: make([]any, n)}
}

func (w *listWorld) Size() int          { return len(w.values) }
func (w *listWorld) GetValue(i int) any { return w.values[i] }
func (w *listWorld) SetValue(i int, v any) { w.values[i] = v }

// singleCell collapses one cell with no propagation rules at all.
func singleCell() {
	fmt.Println("1. Single Cell, No Rules:")

	world := newListWorld(1)
	idMap := wfc.NewEnumIDMap("red", "green", "blue")
	rules := wfc.NewCallbackTable(idMap)
	solver := wfc.NewSolver(idMap, rules, wfc.NewLCGSelector(1))

	ok, err := solver.Run(world, 1)
	fmt.Printf("   ok=%v err=%v value=%v\n\n", ok, err, world.GetValue(0))
}

// twoColorLine alternates two colors along a line of cells using a
// CallbackTable, each collapse narrowing its immediate right neighbor.
func twoColorLine() {
	fmt.Println("2. Alternating Line:")

	n := 5
	world := newListWorld(n)
	world.values[0] = "A"

	idMap := wfc.NewEnumIDMap("A", "B")
	rules := wfc.NewCallbackTable(idMap)
	rules.Set(idMap, "A", func(w wfc.World, cell int, value any, c *wfc.Constrainer) {
		if cell+1 < n {
			bIdx, _ := idMap.IndexOf("B")
			c.Only(cell+1, bIdx)
		}
	})
	rules.Set(idMap, "B", func(w wfc.World, cell int, value any, c *wfc.Constrainer) {
		if cell+1 < n {
			aIdx, _ := idMap.IndexOf("A")
			c.Only(cell+1, aIdx)
		}
	})

	solver := wfc.NewSolver(idMap, rules, wfc.NewLCGSelector(2))
	ok, err := solver.Run(world, 2)
	fmt.Printf("   ok=%v err=%v line=%v\n\n", ok, err, world.values)
}

// rangeValuedCell shows RangeIDMap avoiding boxed values for an integer
// domain.
func rangeValuedCell() {
	fmt.Println("3. Integer-Valued Domain:")

	world := newListWorld(3)
	idMap := wfc.NewRangeIDMap(10, 20)
	rules := wfc.NewCallbackTable(idMap)
	solver := wfc.NewSolver(idMap, rules, wfc.NewRandSelector(3))

	ok, err := solver.Run(world, 3)
	fmt.Printf("   ok=%v err=%v values=%v\n\n", ok, err, world.values)
}

// contradictionReport drives a single cell's domain empty via the
// initial-state rule, showing how an unsatisfiable run is reported.
func contradictionReport() {
	fmt.Println("4. Unsatisfiable Cell:")

	world := newListWorld(1)
	idMap := wfc.NewEnumIDMap("X", "Y")
	rules := wfc.NewCallbackTable(idMap)
	emptyOut := func(w wfc.World, c *wfc.Constrainer, sel wfc.Selector) {
		c.Exclude(0, 0, 1)
	}
	solver := wfc.NewSolver(idMap, rules, wfc.NewLCGSelector(4), wfc.WithInitialStateRule(emptyOut))

	ok, err := solver.Run(world, 4)
	fmt.Printf("   ok=%v err=%v\n\n", ok, err)
}
