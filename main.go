package main

import "github.com/hrportal/employee-portal/cmd"

func main() {
	cmd.Execute()
}
