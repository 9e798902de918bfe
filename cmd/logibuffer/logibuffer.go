package main

import "github.com/Egor213/LogiBuffer/internal/app"

func main() {
	app.Run()
}
