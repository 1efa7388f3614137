// @title           Provider Map API
// @version         1.0
// @description     API каталога сервис-провайдеров на карте (документация Swagger).
// @host            localhost:8000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"provider_map/internal/app"

	_ "provider_map/docs"
)

func main() {
	app.Run()
}
