package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AgredaLem023/backend-parlamento/internal/booking"
	"github.com/AgredaLem023/backend-parlamento/internal/config"
	"github.com/AgredaLem023/backend-parlamento/internal/contact"
	"github.com/AgredaLem023/backend-parlamento/internal/content"
	"github.com/AgredaLem023/backend-parlamento/internal/imageproxy"
	"github.com/AgredaLem023/backend-parlamento/internal/mailer"
	"github.com/AgredaLem023/backend-parlamento/internal/portal"
	"github.com/AgredaLem023/backend-parlamento/internal/sheets"
	"github.com/AgredaLem023/backend-parlamento/internal/site"
	"github.com/AgredaLem023/backend-parlamento/internal/store"
	"github.com/AgredaLem023/backend-parlamento/internal/tasks"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx := context.Background()

	// ───────────────────────── SHEETS ─────────────────────────
	// A credential or client failure is not fatal: content reads degrade to
	// the hardcoded fallback and the booking audit log is skipped.
	var contentSource content.RowSource
	var audit booking.Appender

	creds, err := sheets.LoadCredentials(cfg.Sheets)
	if err != nil {
		log.Printf("Google Sheets credentials unavailable, serving fallback content: %v", err)
	} else {
		if c, err := sheets.NewClient(ctx, creds, sheets.ScopeReadOnly); err != nil {
			log.Printf("Error creating sheets read client: %v", err)
		} else {
			contentSource = c
		}
		if c, err := sheets.NewClient(ctx, creds, sheets.ScopeReadWrite); err != nil {
			log.Printf("Error creating sheets audit client: %v", err)
		} else {
			audit = c
		}
	}

	// ───────────────────────── SUPABASE ─────────────────────────
	st, err := store.Connect(ctx, cfg.Supabase.DBURL)
	if err != nil {
		log.Fatal("❌ Supabase init failed: ", err)
	}
	defer st.Close()

	// ───────────────────────── SERVICES ─────────────────────────
	m := mailer.New(cfg.Mail)
	runner := tasks.NewRunner()

	contentService := content.NewService(contentSource, cfg.Sheets)
	bookingService := booking.NewService(m, audit, runner, cfg.Sheets)

	// ───────────────────────── HANDLERS ─────────────────────────
	siteHandler := site.NewHandler()
	contentHandler := content.NewHandler(contentService)
	bookingHandler := booking.NewHandler(bookingService)
	contactHandler := contact.NewHandler(m)
	portalHandler := portal.NewHandler(st)
	imageHandler := imageproxy.NewHandler()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", siteHandler.Root)
	r.GET("/health", siteHandler.Health)
	r.GET("/team", siteHandler.Team)

	api := r.Group("/api")
	{
		api.GET("/testimonials", siteHandler.Testimonials)
		api.GET("/menu", contentHandler.GetMenu)
		api.GET("/events", contentHandler.GetEvents)
		api.GET("/events/:id", contentHandler.GetEvent)
		api.POST("/book-event", bookingHandler.BookEvent)
		api.GET("/available-slots", bookingHandler.AvailableSlots)
		api.POST("/book-event-email", bookingHandler.BookEventEmail)
		api.POST("/contact", contactHandler.Submit)
		api.POST("/store-user", portalHandler.StoreUser)
		api.GET("/image/:fileId", imageHandler.GetImage)
	}

	// Image directories are served from ./public under the same prefixes the
	// content payloads reference. NoRoute keeps /team free for the JSON
	// endpoint above.
	r.NoRoute(staticFiles("public", "/team/", "/menu/", "/events/"))

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("🚀 API running at http://localhost:%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server: ", err)
		}
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := runner.Wait(shutdownCtx); err != nil {
		log.Printf("Background tasks not drained: %v", err)
	}
	log.Println("Server stopped")
}

// staticFiles serves GET requests under the given prefixes from root,
// cleaning the path before the prefix check so traversal cannot escape it.
func staticFiles(root string, prefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			cleaned := path.Clean(c.Request.URL.Path)
			for _, prefix := range prefixes {
				if strings.HasPrefix(cleaned, prefix) {
					c.File(root + cleaned)
					return
				}
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	}
}
