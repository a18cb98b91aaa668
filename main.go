package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"job-portal-backend/config"
	apiv1 "job-portal-backend/controllers/v1"
	_ "job-portal-backend/docs"
	"job-portal-backend/fiberlog"
	"job-portal-backend/initializers"
	"job-portal-backend/lib/ws"
	"job-portal-backend/middleware"
)

// @title Job portal API
// @version 1.0
// @description Job portal backend API
// @BasePath /
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	services := initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimit,
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	api := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimit,
	})
	api.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api", api)
	api.Use(cors.New(cors.Config{
		AllowOrigins: config.Conf.App.CorsOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	api.Use(middleware.WithBodyLimit(int64(config.Conf.App.BodyLimit)))
	api.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyURL))
	apiv1.InitAuthApiRouters(api, services.Auth)

	api.Use(middleware.OptionalAuthorization(*config.Conf.Auth.Required, config.Conf.Auth.JWTSecret))
	apiv1.InitJobApiRouters(api, services.Jobs)
	apiv1.InitApplicationApiRouters(api, services.Applications)
	apiv1.InitMessageApiRouters(api, services.Messages)
	apiv1.InitNotificationApiRouters(api, services.Notifications)
	apiv1.InitProfileApiRouters(api, services.Users)

	//push
	ws.InitWs(app.Group("/ws"), services.Hub)

	//загруженные файлы
	apiv1.InitUploadsRouters(app.Group("/uploads"), services.Files)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
