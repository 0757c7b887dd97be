package main

import "github.com/chup1x/carprice/internal/app"

func main() {
	app.MustRunApp()
}
