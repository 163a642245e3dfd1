package main

import (
	"flag"
	"log"
	"os"

	"tidytask/config"
	dbpkg "tidytask/db"
	"tidytask/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	configFlag := flag.String("config", "", "path to the JSON config file")
	flag.Parse()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	configPath := *configFlag
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		configPath = "config.json"
	}
	cfg := config.Get(configPath)

	database, err := dbpkg.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	r := gin.New()
	r.LoadHTMLGlob("templates/*.html")
	r.Use(dbpkg.SetDBtoContext(database))
	router.Initialize(r, cfg)

	log.Printf("Tidytask listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}
