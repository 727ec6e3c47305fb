package main

import "github.com/hoaithan123/du-an-smart-food/cmd/smartfood/cmd"

func main() {
	cmd.Execute()
}
