package main

import "apk-server/cmd"

func main() {
	cmd.Execute()
}
