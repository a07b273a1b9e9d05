package qubit_test

import (
	"fmt"

	"github.com/katalvlaran/qualg/qubit"
)

// ExampleCommutator reproduces the textbook su(2) relation [X, Y] = 2iZ.
func ExampleCommutator() {
	x, _ := qubit.ParseTerm("X0")
	y, _ := qubit.ParseTerm("Y0")

	a := qubit.NewOperator().AddTerm(1, x)
	b := qubit.NewOperator().AddTerm(1, y)

	comm, _ := qubit.Commutator(a, b)
	fmt.Println(comm)
	// Output:
	// (0+2i) [Z0]
}

// ExampleOperator_Mul multiplies two Pauli strings sharing one qubit.
func ExampleOperator_Mul() {
	a, _ := qubit.ParseTerm("X0 Z2")
	b, _ := qubit.ParseTerm("Y0 Y1")

	left := qubit.NewOperator().AddTerm(1, a)
	right := qubit.NewOperator().AddTerm(1, b)

	prod, _ := left.Mul(right)
	fmt.Println(prod)
	// Output:
	// (0+1i) [Z0 Y1 Z2]
}
