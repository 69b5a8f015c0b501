// Copyright © 2019 One Concern

package main

import (
	"github.com/oneconcern/gyt/cmd/gyt/cmd"
)

func main() {
	cmd.Execute()
}
