package main

import "github.com/jobra/portal_backend/cmd"

func main() {
	cmd.Execute()
}
