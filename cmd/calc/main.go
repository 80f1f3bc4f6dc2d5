package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sysgears/calc"
)

func main() {
	log.SetFlags(0)
	var (
		verb string
		tree bool
	)
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&tree, "tree", false, "evaluate through the expression tree engine")
	flag.Parse()

	eval := calc.Evaluate
	if tree {
		eval = calc.EvalString
	}

	if flag.NArg() > 0 {
		code := 0
		for _, arg := range flag.Args() {
			r, err := eval(arg)
			if err != nil {
				log.Println(err)
				code = 1
				continue
			}
			fmt.Printf(verb+"\n", r)
		}
		os.Exit(code)
	}

	fmt.Println(`Enter an expression, "help" for the operator list, or "exit" to quit.`)
	scan := bufio.NewScanner(os.Stdin)
	for prompt(); scan.Scan(); prompt() {
		line := strings.TrimSpace(scan.Text())
		switch line {
		case "":
			fmt.Println("Input must not be empty.")
			continue
		case "help":
			for _, op := range calc.Operators() {
				fmt.Printf("\t%s(%s)\n", op.Name, op.Symbol)
			}
			continue
		case "exit":
			return
		}
		r, err := eval(line)
		if err != nil {
			log.Println(err)
			continue
		}
		fmt.Printf(verb+"\n", r)
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
}

func prompt() {
	fmt.Print("> ")
}
