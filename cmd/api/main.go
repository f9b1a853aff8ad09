package main

import (
	"log"

	_ "taller_central/docs"
	"taller_central/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Taller Central API
// @version         1.0
// @description     Repair shop work orders (customers, services, budgets, payments) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := routes.Run(); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
