// cmd/main.go
package main

import (
	"go-lists-api/app"
)

// @title           Lists API
// @version         1.0
// @description     REST backend for creating, commenting on and bookmarking lists.

// @host      localhost:5000
// @BasePath  /
// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-auth-token
func main() {
	app.Run()
}
