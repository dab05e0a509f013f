package main

import (
	"log"

	_ "wascrap/docs"
	"wascrap/internal/adapter/http/routes"
	"wascrap/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           WaScrap API
// @version         1.0
// @description     Scrap pickup bookings, buyer onboarding and transactional email, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   WaScrap Support
// @contact.email  support@wascrap.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := routes.Run(cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}
