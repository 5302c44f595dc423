package lts_test

import (
	"fmt"

	"github.com/NathanAmoussou/kanellakis-smolka-bisim/lts"
)

// ExampleNew builds a two-state coffee machine and enumerates it.
// Structure:
//
//	idle --coin--> ready
//	ready --brew--> idle
func ExampleNew() {
	l, err := lts.New(
		[]lts.State{"idle", "ready"},
		[]lts.Action{"coin", "brew"},
		[]lts.Transition{
			{From: "idle", Action: "coin", To: "ready"},
			{From: "ready", Action: "brew", To: "idle"},
		},
		"idle",
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("initial:", l.Initial())
	fmt.Println("states:", l.States())
	fmt.Println("actions:", l.Actions())
	fmt.Println("succ(idle, coin):", l.Successors("idle", "coin"))

	// Output:
	// initial: idle
	// states: [idle ready]
	// actions: [brew coin]
	// succ(idle, coin): [ready]
}
