package main

import "github.com/chbk/hicdump/cmd"

func main() {
	cmd.Execute()
}
