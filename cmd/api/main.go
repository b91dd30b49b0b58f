package main

import (
	_ "okbikes_admin/docs"
	"okbikes_admin/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           OkBikes Store Manager API
// @version         1.0
// @description     Store manager backend for the OkBikes rental dashboard: bookings, charges, invoices and fleet.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey SessionCookie
// @in header
// @name X-Session-ID
// @description Session id returned by /auth/login; the okb_session cookie works too.

func main() {
	routes.Run()
}
