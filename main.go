package main

import (
	"log"
	"os"

	"snapill/config/db"
	redis "snapill/config/redis"
	"snapill/jobs"
	"snapill/migrations"
	"snapill/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type serverOptions struct {
	JobsEnabled         bool
	JobsHandler         func()
	MigrationHandler    func()
	WebServerPreHandler func(r *gin.Engine)
}

var (
	startServer = runServer
	isTest      = false
)

func main() {
	run()
}

func run() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	options := serverOptions{
		JobsEnabled: !isTest,
		JobsHandler: func() {
			if isTest {
				return
			}
			jobs.StartReminderScheduler()
		},

		MigrationHandler: func() {
			if isTest {
				return
			}
			migrations.CreateIndexes()
		},

		WebServerPreHandler: func(r *gin.Engine) {
			if isTest {
				return
			}
			r.Use(cors.New(cors.Config{
				AllowOrigins:     []string{"*"},
				AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
				AllowCredentials: true,
			}))
			routes.Routes(r)
		},
	}
	startServer(options)
}

func runServer(options serverOptions) {
	if err := db.Connect(); err != nil {
		log.Fatal("Unable to connect to MongoDB:", err)
	}
	if err := redis.Connect(); err != nil {
		log.Println("Redis unavailable, cache disabled:", err)
	}

	if options.MigrationHandler != nil {
		options.MigrationHandler()
	}
	if options.JobsEnabled && options.JobsHandler != nil {
		options.JobsHandler()
	}

	r := gin.Default()
	if options.WebServerPreHandler != nil {
		options.WebServerPreHandler(r)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Unable to start the web server:", err)
	}
}
