/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command entityctl generates typed kind code from schema files and seeds
// catalog stores from YAML files or DynamoDB.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
