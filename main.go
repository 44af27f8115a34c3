// main.go - Application entry point
package main

import "mvt-render-feature/cmd"

func main() {
	cmd.Execute()
}
