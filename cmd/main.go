// cmd/main.go
package main

import (
	"go-charts-api/app"
)

// @title           Chart Dashboard API
// @version         1.0
// @description     REST API serving seeded chart datasets behind a bearer-token login.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
