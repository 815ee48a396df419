package main

import (
	_ "fieldflow/docs"
	"fieldflow/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Field Service Flow API
// @version         1.0
// @description     Quote to work order to payment flow backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey OwnerID
// @in header
// @name X-Owner-ID
// @description Tenant id that scopes every resource.

func main() {
	routes.Run()
}
