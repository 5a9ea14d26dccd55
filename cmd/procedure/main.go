package main

import "github.com/yarlson/go-procedure/cmd"

func main() {
	cmd.Execute()
}
