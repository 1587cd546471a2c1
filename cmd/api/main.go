package main

import (
	_ "orcaobra/docs"
	"orcaobra/internal/adapter/http/routes"
	"orcaobra/pkg/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           OrcaObra API
// @version         1.0
// @description     AI-assisted quoting service for construction and repair professionals.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	logging.Setup()
	routes.Run()
}
