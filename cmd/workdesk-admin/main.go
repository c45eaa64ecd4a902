package main

import "github.com/workdesk/workdesk/cmd/workdesk-admin/commands"

func main() {
	commands.Execute()
}
