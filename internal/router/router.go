package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/studentorg/internal/handler"
	"github.com/studentorg/internal/logger"
	"github.com/studentorg/internal/metrics"
)

const sessionName = "studentorg_session"

// SetupRouter configures the Gin engine and its routes.
func SetupRouter(api *handler.API, sessionSecret string, log logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handler.RequestLogger(log))
	r.Use(metrics.Middleware())

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   api.Production(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	r.GET("/healthz", api.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/api", api.APIRoot)
	public := r.Group("/api")
	{
		public.GET("/", api.APIRoot)

		public.GET("/site-settings", api.GetSiteSettings)
		public.GET("/hero-sections", api.GetHeroSections)
		public.GET("/slider-content", api.GetSliderContent)
		public.GET("/about", api.GetAbout)
		public.GET("/services", api.GetServices)
		public.GET("/team", api.GetTeam)
		public.GET("/testimonials", api.GetTestimonials)
		public.GET("/gallery", api.GetGallery)
		public.GET("/faqs", api.GetFAQs)

		public.GET("/events", api.GetEvents)
		public.GET("/news", api.GetNews)
		public.GET("/news/:slug", api.GetNewsDetail)
		public.GET("/stats", api.GetStats)

		public.POST("/contact", api.Contact)
		public.POST("/subscribe", api.Subscribe)
		public.POST("/register-event", api.RegisterEvent)
		public.POST("/donate-blood", api.DonateBlood)
	}

	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.PUT("/site-settings", api.PutSiteSettings)
			auth.PUT("/about", api.PutAbout)

			auth.POST("/events", api.CreateEvent)
			auth.POST("/news", api.CreateNews)
			auth.POST("/heroes", api.CreateHero)
			auth.POST("/services", api.CreateService)
			auth.POST("/team", api.CreateTeamMember)
			auth.POST("/testimonials", api.CreateTestimonial)
			auth.POST("/gallery", api.CreateGallery)
			auth.POST("/faqs", api.CreateFAQ)

			auth.POST("/contacts/status", api.UpdateContactStatus)
			auth.POST("/donations/status", api.UpdateDonationStatus)
			auth.POST("/subscribers/active", api.UpdateSubscribersActive)
			auth.POST("/news/publish", api.UpdateNewsPublished)
			auth.POST("/content/:kind/active", api.UpdateActive)

			auth.GET("/contacts", api.ListContacts)
			auth.GET("/subscribers", api.ListSubscribers)
			auth.GET("/registrations", api.ListRegistrations)
			auth.GET("/donations", api.ListDonations)
		}
	}

	return r
}
