package main

import (
	"github.com/vanhub/vendor-node/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           VanHub Vendor Node API
// @version         1.0
// @description     Operations console for a last-mile delivery vendor node: order lifecycle, stock signaling and performance insights.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
