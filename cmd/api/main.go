package main

import (
	_ "leaseflow/docs"
	"leaseflow/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Contracts Service API
// @version         1.0
// @description     Rental-contract lifecycle service (contracts, signatures, payments, documents) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.

func main() {
	routes.Run()
}
