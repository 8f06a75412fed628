package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"habilitation-backend/config"
	apiv1 "habilitation-backend/controllers/v1"
	"habilitation-backend/fiberlog"
	"habilitation-backend/initializers"
	"habilitation-backend/middleware"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // limite de 10 Mo
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitAuthApiRouters(apiV1)

	// routes soumises à authentification et contrôle des rôles
	authorized := fiber.New()
	apiV1.Mount("/", authorized)
	authorized.Use(middleware.AuthorizationRequired())
	authorized.Use(middleware.ActorResolver())
	authorized.Use(middleware.RbacMiddleware())
	apiv1.InitHabilitationApiRouters(authorized)
	apiv1.InitProfileApiRouters(authorized)
	apiv1.InitOrgApiRouters(authorized)
	apiv1.InitApplicationApiRouters(authorized)
	apiv1.InitUserApiRouters(authorized)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Arrêt du serveur en cours...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Erreur lors de l'arrêt du serveur")
		}
		time.Sleep(time.Second)
		log.Info("Arrêt du serveur terminé")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("Serveur HTTP arrêté")
}
