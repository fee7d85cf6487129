package main

import (
	"os"

	"apnadost/backend/internal/app"
)

func main() {
	os.Exit(app.Run())
}
