package main

import (
	"os"

	"github.com/Qhojoblinks-7/alx-student-showcase-sub000/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
