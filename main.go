package main

import "github.com/evanrichards/tsorder/internal/app"

func main() {
	app.Run()
}
