// main.go - Entry point for the Go survey backend server

package main // Declares the package name

import ( // Import required packages
	"context" // Context for startup calls
	"log"     // Logging
	"time"    // Startup timeout

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
	"github.com/joho/godotenv"    // .env file loading

	"go-survey-backend/config"     // Project config management
	"go-survey-backend/database"   // Document store connection
	"go-survey-backend/handlers"   // HTTP handlers for API endpoints
	"go-survey-backend/middleware" // Token and role middleware
	"go-survey-backend/payments"   // Payment processor client
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	_ = godotenv.Load() // Load .env if present; real env wins
	cfg := config.Load()

	if cfg.AccessTokenSecret == "" { // Missing secrets degrade, they do not stop startup
		log.Println("warning: ACCESS_TOKEN_SECRET is not set; issued tokens are unsigned-secret")
	}
	if cfg.StripeSecretKey == "" {
		log.Println("warning: STRIPE_SECRET_KEY is not set; payment intents will fail")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	store, err := database.Connect(ctx, cfg.MongoURI, cfg.DBName) // Connect to the document store
	if err != nil {
		log.Fatal("DB connection error: ", err) // If error, log and exit
	}

	stripeClient := payments.New(cfg.StripeSecretKey) // One Stripe client for the whole process

	// STEP 2: Build handlers over the shared store
	tokens := &handlers.TokenHandler{Secret: cfg.AccessTokenSecret}
	users := &handlers.UserHandler{Store: store.Users()}
	surveys := &handlers.SurveyHandler{Store: store.Surveys()}
	votes := &handlers.VoteHandler{Store: store.Votes()}
	comments := &handlers.DocHandler{Store: store.Comments()}
	reports := &handlers.DocHandler{Store: store.Reports()}
	pay := &handlers.PaymentHandler{Intents: stripeClient, Store: store.Payments()}

	requireToken := middleware.RequireToken(cfg.AccessTokenSecret)
	requireAdmin := middleware.RequireAdmin(store.Users())

	// STEP 3: Create Gin router and configure routes
	r := gin.Default()    // Create a new Gin router (web server)
	r.Use(cors.Default()) // Allow all origins, as the frontend expects

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.String(200, "opinioNation running")
	})

	// Token issuing (no auth)
	r.POST("/jwt", tokens.Create)

	// Payments
	r.POST("/create-payment-intent", pay.CreateIntent)
	r.GET("/payments", requireToken, pay.List)
	r.POST("/payments", pay.Record)

	// Comments and reports (open submission, authenticated listing)
	r.GET("/comment", requireToken, comments.List)
	r.POST("/comment", comments.Create)
	r.GET("/report", requireToken, reports.List)
	r.POST("/report", reports.Create)

	// Surveys
	r.GET("/survey", surveys.List)
	r.GET("/survey/:id", surveys.Get)
	r.POST("/survey", requireToken, surveys.Create)
	r.GET("/survey/update/:id", requireToken, surveys.Get)
	r.PUT("/survey/update/:id", requireToken, surveys.Update)

	// Votes (open)
	r.GET("/vote", votes.List)
	r.POST("/vote", votes.Create)

	// Users
	r.GET("/users", requireToken, requireAdmin, users.List)
	r.GET("/users/:email", requireToken, users.GetByEmail)
	r.GET("/users/admin/:email", requireToken, users.IsAdmin)
	r.GET("/users/surveyor/:email", requireToken, users.IsSurveyor)
	r.GET("/user-role", requireToken, users.Role)
	r.POST("/users", users.Register)
	r.PATCH("/users/admin/:id", requireToken, requireAdmin, users.MakeAdmin)
	r.PATCH("/users/surveyor/:id", requireToken, requireAdmin, users.MakeSurveyor)
	r.PATCH("/users/proUser/:email", requireToken, users.MakeProUser)
	r.DELETE("/users/:id", requireToken, requireAdmin, users.Delete)

	// STEP 4: Start the web server
	log.Println("opinioNation is running on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error: ", err)
	}
}
