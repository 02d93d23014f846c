package router

import (
	"github.com/gin-gonic/gin"

	"github.com/irankiai/cinema-admin/internal/app"
	"github.com/irankiai/cinema-admin/internal/handler"
	"github.com/irankiai/cinema-admin/internal/middleware"
	"github.com/irankiai/cinema-admin/internal/model"
)

// RegisterRoutes wires the RPC-style call surface. Every operation is a
// POST under /api carrying a JSON body and returning the status envelope.
// Role enforcement happens here, at the handler boundary, regardless of
// what the client claims.
func RegisterRoutes(r *gin.Engine, a *app.App) {
	authH := handler.NewAuthHandler(a)
	movieH := handler.NewMovieHandler(a)
	genreH := handler.NewGenreHandler(a)
	cinemaH := handler.NewCinemaHandler(a)
	userH := handler.NewUserHandler(a)
	screeningH := handler.NewScreeningHandler(a)
	personalH := handler.NewPersonalMovieHandler(a)
	checkoutH := handler.NewCheckoutHandler(a)
	recommendH := handler.NewRecommendHandler(a)

	api := r.Group("/api", middleware.RequestTimeout(a.Config.RequestTimeout))

	api.POST("/signUp", authH.HandleSignUp)
	api.POST("/signIn", authH.HandleSignIn)

	authed := api.Group("", middleware.Auth(a.Config.JWTSecret))
	// getProfile is the one operation open to a principal without an
	// assigned role: it is how a fresh sign-up learns it has no role yet.
	authed.POST("/getProfile", authH.HandleGetProfile)

	anyRole := authed.Group("", middleware.RequireRole(a.Profiles,
		model.TypeAdmin, model.TypeUser, model.TypeCinemaWorker))
	anyRole.POST("/createCheckoutSession", checkoutH.HandleCreateCheckoutSession)
	anyRole.POST("/confirmCheckout", checkoutH.HandleConfirmCheckout)
	anyRole.POST("/getRecommendations", recommendH.HandleGetRecommendations)
	anyRole.POST("/getMovies", movieH.HandleGetMovies)
	anyRole.POST("/getGenres", genreH.HandleGetGenres)
	anyRole.POST("/getCinemas", cinemaH.HandleGetCinemas)
	anyRole.POST("/getMovieScreenings", screeningH.HandleGetMovieScreenings)
	anyRole.POST("/getPersonalMovies", personalH.HandleGetPersonalMovies)
	anyRole.POST("/createPersonalMovie", personalH.HandleCreatePersonalMovie)
	anyRole.POST("/updatePersonalMovie", personalH.HandleUpdatePersonalMovie)
	anyRole.POST("/deletePersonalMovie", personalH.HandleDeletePersonalMovie)

	staff := authed.Group("", middleware.RequireRole(a.Profiles,
		model.TypeAdmin, model.TypeCinemaWorker))
	staff.POST("/createMovieScreening", screeningH.HandleCreateMovieScreening)
	staff.POST("/updateMovieScreening", screeningH.HandleUpdateMovieScreening)
	staff.POST("/deleteMovieScreening", screeningH.HandleDeleteMovieScreening)

	admin := authed.Group("", middleware.RequireRole(a.Profiles, model.TypeAdmin))
	admin.POST("/createMovie", movieH.HandleCreateMovie)
	admin.POST("/updateMovie", movieH.HandleUpdateMovie)
	admin.POST("/deleteMovie", movieH.HandleDeleteMovie)
	admin.POST("/createGenre", genreH.HandleCreateGenre)
	admin.POST("/deleteGenre", genreH.HandleDeleteGenre)
	admin.POST("/createCinema", cinemaH.HandleCreateCinema)
	admin.POST("/updateCinema", cinemaH.HandleUpdateCinema)
	admin.POST("/deleteCinema", cinemaH.HandleDeleteCinema)
	admin.POST("/getUsers", userH.HandleGetUsers)
	admin.POST("/createUser", userH.HandleCreateUser)
	admin.POST("/updateUser", userH.HandleUpdateUser)
	admin.POST("/deleteUser", userH.HandleDeleteUser)
}
