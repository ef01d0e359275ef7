package main

import "github.com/ZeroDread/nudge/cmd"

func main() {
	cmd.Execute()
}
