// SPDX-License-Identifier: MIT

// Command emd prints the Earth Mover's Distance between the two point sets
// of a CSV coordinate table.
//
//	emd -input coordinates.csv -format json
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Cuauhtlidp/emd-optimizer/internal/cli"
)

func main() {
	inv, err := cli.ParseInvocation(os.Args[1:])
	if err != nil {
		var invErr *cli.InvocationError
		if errors.As(err, &invErr) {
			fmt.Fprintln(os.Stderr, invErr.Message)
			os.Exit(invErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitInternalError)
	}

	code, _ := cli.Execute(context.Background(), inv, cli.Streams{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	os.Exit(code)
}
