package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"

	"github.com/LinQu/SOGSCup/handlers"
	"github.com/LinQu/SOGSCup/middleware"
	"github.com/LinQu/SOGSCup/models"
)

func SetupRoutes(
	router *chi.Mux,
	mw *middleware.Middleware,
	authHandler *handlers.AuthHandler,
	teamHandler *handlers.TeamHandler,
	matchHandler *handlers.MatchHandler,
	standingsHandler *handlers.StandingsHandler,
	bracketHandler *handlers.BracketHandler,
	exportHandler *handlers.ExportHandler,
	weatherHandler *handlers.WeatherHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/auth/login", authHandler.Login)

	router.Route("/teams", func(r chi.Router) {
		// Публичные маршруты для просмотра
		r.Get("/", teamHandler.List)

		// Защищённые маршруты только для администратора
		r.Group(func(r chi.Router) {
			r.Use(mw.Authenticate)
			r.Use(mw.Authorize(models.RoleAdmin))

			r.Post("/", teamHandler.Register)
			r.Delete("/", teamHandler.ResetAll)
		})
	})

	router.Route("/groups", func(r chi.Router) {
		r.Get("/", teamHandler.ListGroups)
		r.Get("/{group}/standings", standingsHandler.GroupStandings)
		r.Get("/{group}/readiness", standingsHandler.GroupReadiness)

		r.Group(func(r chi.Router) {
			r.Use(mw.Authenticate)
			r.Use(mw.Authorize(models.RoleAdmin))

			r.Put("/{group}/results", matchHandler.SubmitResult)
		})
	})

	router.Get("/standings", standingsHandler.AllStandings)

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", matchHandler.List)
		r.Get("/{id}", matchHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(mw.Authenticate)
			r.Use(mw.Authorize(models.RoleAdmin))

			r.Post("/", matchHandler.Create)
			r.Put("/{id}", matchHandler.Update)
			r.Delete("/{id}", matchHandler.Delete)
		})

		// Live-процесс матча доступен и судьям-секретарям
		r.Group(func(r chi.Router) {
			r.Use(mw.Authenticate)
			r.Use(mw.Authorize(models.RoleAdmin, models.RoleScorekeeper))

			r.Post("/{id}/start", matchHandler.Start)
			r.Put("/{id}/score", matchHandler.UpdateScore)
			r.Post("/{id}/finish", matchHandler.Finish)
		})
	})

	router.Route("/bracket", func(r chi.Router) {
		r.Get("/", bracketHandler.Current)
		r.Get("/readiness", bracketHandler.Readiness)
		r.Get("/finalists", bracketHandler.Finalists)

		r.Group(func(r chi.Router) {
			r.Use(mw.Authenticate)
			r.Use(mw.Authorize(models.RoleAdmin))

			r.Post("/generate", bracketHandler.Generate)
			r.Post("/shuffle", bracketHandler.Shuffle)
		})
	})

	router.Get("/export/{kind}", exportHandler.Export)
	router.Get("/weather", weatherHandler.CourtConditions)

	router.Get("/ws/matches/{id}", webSocketHandler.ServeWs)
}
