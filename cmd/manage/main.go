package main

import "catalog-review-backend/cmd/manage/commands"

func main() {
	commands.Execute()
}
