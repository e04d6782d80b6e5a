package main

import (
	"log"

	"pizzapalace/configs"
	"pizzapalace/events"
	"pizzapalace/middlewares"
	"pizzapalace/monitor"
	"pizzapalace/routes"
	"pizzapalace/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedCatalog(db); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}
	if err := configs.SeedStaff(db, cfg.StaffEmail, cfg.StaffPassword); err != nil {
		log.Fatalf("seed staff failed: %v", err)
	}

	// Order events: RabbitMQ when configured, otherwise a nop. A broker
	// outage shouldn't keep the storefront down.
	var pub events.Publisher = events.NopPublisher{}
	if cfg.AMQPURL != "" {
		rp, err := events.NewRabbitPublisher(cfg.AMQPURL)
		if err != nil {
			log.Printf("rabbitmq unavailable, order events disabled: %v", err)
		} else {
			pub = rp
			defer rp.Close()
		}
	}

	// Health monitor
	buf := monitor.NewLogBuffer(256, monitor.LevelInfo)
	mon := monitor.New(cfg.HealthInterval, buf)
	mon.Register("database", monitor.DatabaseCheck(db))
	if cfg.HealthProbeURL != "" {
		mon.Register("order-backend", monitor.HTTPCheck(nil, cfg.HealthProbeURL))
	}
	mon.Start()
	defer mon.Stop()

	// Live order status feed
	feed := ws.NewOrderFeed()
	go feed.Run()
	defer feed.Stop()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, pub, feed, mon)

	log.Println("listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
