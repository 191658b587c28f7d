package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/archerhealth/backend/internal/service"
)

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	connectService service.ConnectServiceI
	mealService    service.MealServiceI
	waterService   service.WaterServiceI
	workoutService service.WorkoutServiceI
	jwtService     JWTServiceI
	authEnabled    bool
}

type ServicesList struct {
	UserService    service.UserServiceI
	ConnectService service.ConnectServiceI
	MealService    service.MealServiceI
	WaterService   service.WaterServiceI
	WorkoutService service.WorkoutServiceI
	JwtService     JWTServiceI
	// Reported by GET /api/auth-enabled; false when no signing secret is set
	AuthEnabled bool
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		connectService: servicesOptions.ConnectService,
		mealService:    servicesOptions.MealService,
		waterService:   servicesOptions.WaterService,
		workoutService: servicesOptions.WorkoutService,
		jwtService:     servicesOptions.JwtService,
		authEnabled:    servicesOptions.AuthEnabled,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api", func(r chi.Router) {
		// Public carve-outs: session checks would break the identity handshake
		// and the server-to-server pairing call from the companion app
		r.Get("/auth-enabled", s.AuthEnabled)
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Post("/redeem-connection-code", s.RedeemConnectionCode)

		// Bearer credential here is the connection code itself, and the
		// caller is a separately deployed app, hence the permissive CORS
		r.Route("/water/hydration-goals", func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{http.MethodGet, http.MethodOptions},
				AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			}))
			r.Get("/", s.HydrationGoals)
			r.Options("/", s.HydrationGoalsOptions)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/generate-connection-code", s.GenerateConnectionCode)
			r.Post("/meals", s.LogMeal)
			r.Get("/meals", s.ListMeals)
			r.Get("/todays-meals", s.TodaysMeals)
			r.Get("/goals", s.GetGoals)
			r.Put("/goals", s.UpdateGoals)
			r.Post("/water/intake", s.LogWaterIntake)
			r.Get("/water/intake", s.GetWaterIntake)
			r.Post("/workouts", s.LogWorkout)
			r.Get("/workouts", s.ListWorkouts)
		})
	})
}

// Handler exposes the routed mux, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.mx
}

func (s *Server) Run(addr string) error {
	log.Println("listening on " + addr)
	return http.ListenAndServe(addr, s.mx)
}
