package main

import (
	"pairchat/cmd/app"
)

func main() {
	app.GetApp().LetsGo()
}
