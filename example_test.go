package calc_test

import (
	"fmt"

	"github.com/sysgears/calc"
)

func ExampleEvaluate() {
	r, err := calc.Evaluate("(2+3)*4")
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 20
}

func ExampleParse() {
	e, err := calc.Parse("2+3*4")
	if err != nil {
		panic(err)
	}
	r, err := e.Eval()
	if err != nil {
		panic(err)
	}
	fmt.Println(e, "=", r)
	// Output: (2+(3*4)) = 14
}

func ExampleApply() {
	r, err := calc.Apply("^", -2, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: -8
}

func ExampleEvaluate_divisionByZero() {
	_, err := calc.Evaluate("1/(3-3)")
	fmt.Println(err)
	// Output: division of 1 by zero
}
