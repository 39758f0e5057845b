package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/app/controllers"
	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	clubController *controllers.ClubController,
	eventController *controllers.EventController,
	teamController *controllers.TeamController,
	jobController *controllers.JobController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		// Profile routes
		users := authenticated.Group("/users")
		{
			users.GET("/me", userController.GetProfile)
			users.PUT("/me", userController.UpdateProfile)
			users.PUT("/me/photo", userController.UpdateProfilePhoto)
			users.DELETE("/me/photo", userController.DeleteProfilePhoto)
		}

		// Club routes
		clubs := authenticated.Group("/clubs")
		{
			clubs.GET("", clubController.GetAllClubs)
			clubs.GET("/:id", clubController.GetClubByID)
			clubs.PUT("/:id", clubController.UpdateClub)
			clubs.PUT("/:id/logo", clubController.UpdateClubLogo)
			clubs.DELETE("/:id", clubController.DeleteClub)
			clubs.GET("/:id/members", clubController.GetMembers)
			clubs.POST("/:id/join-requests", clubController.RequestToJoin)
			clubs.GET("/:id/join-requests", clubController.GetPendingRequests)
			clubs.PUT("/:id/join-requests/:requestId", clubController.ResolveRequest)

			// Club creation is restricted to platform admins
			clubsAdminProtected := clubs.Group("")
			clubsAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				clubsAdminProtected.POST("", clubController.CreateClub)
			}
		}

		// Event routes, including the teams nested under an event
		events := authenticated.Group("/events")
		{
			events.GET("", eventController.GetAllEvents)
			events.GET("/:id", eventController.GetEventByID)
			events.PUT("/:id", eventController.UpdateEvent)
			events.PUT("/:id/banner", eventController.UpdateEventBanner)
			events.DELETE("/:id", eventController.DeleteEvent)
			events.POST("/:id/registrations", eventController.Register)
			events.DELETE("/:id/registrations", eventController.CancelRegistration)
			events.GET("/:id/registrations", eventController.GetRegistrations)
			events.PUT("/:id/registrations/:userId/attendance", eventController.MarkAttended)
			events.POST("/:id/teams", teamController.CreateTeam)
			events.GET("/:id/teams", teamController.GetTeamsByEvent)

			// Event creation is restricted to faculty and admins; the
			// service enforces the role so route level guarding is not needed
			events.POST("", eventController.CreateEvent)
		}

		// Team routes
		teams := authenticated.Group("/teams")
		{
			teams.GET("/:id", teamController.GetTeamByID)
			teams.PUT("/:id", teamController.UpdateTeam)
			teams.DELETE("/:id", teamController.DeleteTeam)
			teams.POST("/:id/join-requests", teamController.RequestToJoin)
			teams.GET("/:id/join-requests", teamController.GetPendingRequests)
			teams.PUT("/:id/join-requests/:requestId", teamController.ResolveRequest)
			teams.PUT("/:id/members/:userId/role", teamController.ChangeRole)
			teams.DELETE("/:id/members/me", teamController.LeaveTeam)
			teams.DELETE("/:id/members/:userId", teamController.RemoveMember)
		}

		// Job routes
		jobs := authenticated.Group("/jobs")
		{
			jobs.POST("", jobController.CreateJob)
			jobs.GET("", jobController.GetAllJobs)
			jobs.GET("/applications/me", jobController.GetMyApplications)
			jobs.POST("/resumes", jobController.UploadResume)
			jobs.GET("/:id", jobController.GetJobByID)
			jobs.PUT("/:id", jobController.UpdateJob)
			jobs.DELETE("/:id", jobController.DeleteJob)
			jobs.POST("/:id/applications", jobController.Apply)
			jobs.DELETE("/:id/applications", jobController.Withdraw)
			jobs.GET("/:id/applications", jobController.GetApplications)
			jobs.PUT("/:id/applications/:applicationId/status", jobController.UpdateApplicationStatus)
		}
	}
}
