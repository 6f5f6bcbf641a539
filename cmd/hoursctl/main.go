// Command hoursctl редактирует недельное расписание барбершопа через API
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(newApp(os.Stdout)).Execute(); err != nil {
		var violation *validationFailure
		if !errors.As(err, &violation) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
