package main

import (
	"lattice-viewer/internal/app"
	"lattice-viewer/internal/cli"
)

func main() {
	cli.Execute(app.Run)
}
