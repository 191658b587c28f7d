// @title Archer Health API
// @description Backend for the Archer Health tracking app and its Archer Aqua companion
// @BasePath /api
// @schemes http
package main

import (
	"log"

	"github.com/archerhealth/backend/internal/api"
	"github.com/archerhealth/backend/internal/repository"
	"github.com/archerhealth/backend/internal/service"
	"github.com/archerhealth/backend/pkg/cleanup"
	"github.com/archerhealth/backend/pkg/config"
	jwtservice "github.com/archerhealth/backend/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	mealsRepo := repository.NewMealsRepo(&dbCfg)
	goalsRepo := repository.NewGoalsRepo(&dbCfg)
	waterRepo := repository.NewWaterRepo(&dbCfg)
	workoutsRepo := repository.NewWorkoutsRepo(&dbCfg)

	secret := cfg.GetString("JWT_SECRET")
	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(usersRepo),
		ConnectService: service.NewConnectService(usersRepo, goalsRepo),
		MealService:    service.NewMealService(mealsRepo),
		WaterService:   service.NewWaterService(waterRepo, goalsRepo, usersRepo),
		WorkoutService: service.NewWorkoutService(workoutsRepo),
		JwtService:     jwtservice.New(secret),
		AuthEnabled:    secret != "",
	})
	defer cleanup.CleanUp()
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
