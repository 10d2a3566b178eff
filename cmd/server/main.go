package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	trmgorm "github.com/avito-tech/go-transaction-manager/gorm"
	"github.com/avito-tech/go-transaction-manager/trm/manager"

	"delivery/config"
	"delivery/internal/http"
	"delivery/internal/http/controller"
	"delivery/internal/repository/repositories"
	"delivery/internal/usecase/courier"
	"delivery/internal/usecase/order"
	"delivery/pkg/db/postgresql"
)

func main() {

	appConf := config.NewAppConfig()
	dbConf := config.DatabaseConf()

	db, err := postgresql.Connect(
		dbConf.Pgsql.Host,
		dbConf.Pgsql.Username,
		dbConf.Pgsql.Password,
		dbConf.Pgsql.Database,
		dbConf.Pgsql.Port,
	)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	err = db.AutoMigrate(
		&repositories.Courier{},
		&repositories.Order{},
		&repositories.CompletedOrder{},
	)
	if err != nil {
		log.Fatalf("migrate: %v", err)
	}

	courierRepo := repositories.NewCourierRepo(db, trmgorm.DefaultCtxGetter)
	orderRepo := repositories.NewOrderRepo(db, trmgorm.DefaultCtxGetter)
	completedOrderRepo := repositories.NewCompletedOrderRepo(db, trmgorm.DefaultCtxGetter)

	m, err := manager.New(trmgorm.NewDefaultFactory(db))
	if err != nil {
		log.Fatalf("transaction manager: %v", err)
	}

	courierUseCase := courier.New(m, courierRepo, completedOrderRepo)
	orderUseCase := order.New(m, orderRepo, courierRepo, completedOrderRepo)

	cs := http.Controllers{
		CourierController: controller.NewCourierController(courierUseCase),
		OrderController:   controller.NewOrderController(orderUseCase),
	}
	r := http.NewRouter(cs)

	e := http.NewHttpServer(appConf)
	r.SetupRoutes(e)

	go func() {
		err := e.Start(fmt.Sprintf(":%d", appConf.Port))
		if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
