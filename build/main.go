// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"github.com/curioswitch/go-build"
	"github.com/curioswitch/go-curiostack/tasks"
	"github.com/goyek/goyek/v2"
	"github.com/goyek/x/boot"
	"github.com/goyek/x/cmd"
)

func main() {
	tasks.DefineServer()
	build.DefineTasks()

	goyek.Define(goyek.Task{
		Name:  "smoke",
		Usage: "Answers the sample messages with the offline CLI.",
		Action: func(a *goyek.A) {
			cmd.Exec(a, "go run ./cmd/cookchat batch --offline cmd/cookchat/testdata/messages.txt")
		},
	})

	boot.Main()
}
