package main

import (
	"exusiai.dev/hystats/cmd/app"
)

func main() {
	app.Run()
}
