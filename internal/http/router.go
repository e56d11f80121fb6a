package api

import (
	"log"

	intconfig "travelbook/internal/config"
	h "travelbook/internal/http/handlers"
	"travelbook/internal/http/middleware"
	"travelbook/internal/http/views"
	"travelbook/internal/session"

	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware, templates and every page route.
func NewRouter(env intconfig.Env, hd *h.Handler) (*gin.Engine, error) {
	tmpl, err := views.Load()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.MaxMultipartMemory = env.MaxUploadMB << 20
	r.RedirectTrailingSlash = true

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(env.CORSAllowedOrigins),
		session.Middleware(session.NewManager(env.SessionSecret, env.SessionTTL, env.SessionSecure)),
		middleware.LoadUser(hd.Users()),
	)

	r.NoRoute(h.NoRoute)
	r.Static("/media", hd.Media.Root)

	r.GET("/healthz", hd.Health)
	r.GET("/db-check", hd.DBCheck)

	r.GET("/", hd.Landing)
	r.GET("/data/", hd.Landing)
	r.GET("/main/", hd.Landing)
	r.GET("/menu/", hd.Menu)
	r.GET("/about/", hd.About)
	r.GET("/contact/", hd.Contact)
	r.GET("/checkout/", hd.Checkout)

	r.GET("/register/", hd.RegisterPage)
	r.POST("/register/", hd.RegisterPage)
	r.GET("/login/", hd.LoginPage)
	r.POST("/login/", hd.LoginPage)
	r.GET("/logout/", hd.Logout)
	r.POST("/logout/", hd.Logout)

	r.GET("/createjournal/", hd.CreateJournal)
	r.POST("/createjournal/", hd.CreateJournal)
	r.GET("/map/:id/", hd.JournalDetail)

	auth := r.Group("/", middleware.RequireLogin())
	{
		auth.GET("/checkout-destination/", hd.CheckoutDestination)
		auth.POST("/checkout-destination/", hd.CheckoutDestination)
		auth.GET("/plantrip/", hd.PlanTrip)
		auth.POST("/plantrip/", hd.PlanTrip)
		auth.GET("/checkout-plan/", hd.CheckoutPlan)
		auth.POST("/checkout-plan/", hd.CheckoutPlan)
		auth.GET("/confirm/:id/", hd.Confirm)
		auth.GET("/confirm/:id/pdf/", hd.ConfirmPDF)
		auth.GET("/bookings/", hd.MyBookings)
	}

	return r, nil
}
