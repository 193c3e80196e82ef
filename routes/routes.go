// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"consultify/handlers"
	"consultify/middleware"
	"consultify/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle gathers the handlers and the token issuer needed to
// wire the route table.
type HandlerBundle struct {
	Auth    *handlers.AuthHandler
	Admin   *handlers.AdminHandler
	Slots   *handlers.SlotHandler
	Blog    *handlers.BlogHandler
	Contact *handlers.ContactHandler
	Tokens  *utils.TokenIssuer
}

// RegisterAdminRoutes sets up login plus the protected admin surface.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.Auth.Login)

		adminGroup.Use(middleware.AdminAuthMiddleware(hb.Tokens))
		adminGroup.GET("/blogs", hb.Admin.GetAllBlogs)
		adminGroup.GET("/comments", hb.Admin.GetAllComments)
		adminGroup.POST("/approve-comment", hb.Admin.ApproveComment)
		adminGroup.POST("/delete-comment", hb.Admin.DeleteComment)
		adminGroup.GET("/dashboard", hb.Admin.Dashboard)

		// Admin CRUD for slots.
		adminGroup.POST("/timeslots", hb.Slots.Create)
		adminGroup.GET("/timeslots", hb.Slots.AdminList)
		adminGroup.PUT("/timeslots/:id", hb.Slots.Update)
		adminGroup.DELETE("/timeslots/:id", hb.Slots.Delete)
		adminGroup.POST("/timeslots/:id/increment", hb.Slots.Increment)
	}
}

// RegisterBlogRoutes sets up the public blog reads, comment submission,
// and the protected authoring endpoints.
func RegisterBlogRoutes(r *gin.Engine, hb *HandlerBundle) {
	auth := middleware.AdminAuthMiddleware(hb.Tokens)
	blogGroup := r.Group("/api/blog")
	{
		blogGroup.POST("/add", auth, hb.Blog.Add)
		blogGroup.POST("/edit", auth, hb.Blog.Edit)
		blogGroup.POST("/delete", auth, hb.Blog.Delete)
		blogGroup.POST("/toggle-publish", auth, hb.Blog.TogglePublish)
		blogGroup.POST("/upload-editor-image", auth, hb.Blog.UploadEditorImage)

		blogGroup.GET("/all", hb.Blog.GetAll)
		blogGroup.GET("/search", hb.Blog.Search)
		blogGroup.GET("/recent", hb.Blog.Recent)
		blogGroup.GET("/:blogId", hb.Blog.GetByID)

		blogGroup.POST("/add-comment", hb.Blog.AddComment)
		blogGroup.POST("/comments", hb.Blog.GetComments)
	}
}

// RegisterPublicRoutes sets up the unauthenticated widget endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *HandlerBundle) {
	public := r.Group("/public")
	{
		public.GET("/timeslots", hb.Slots.PublicList)
		public.POST("/contact", hb.Contact.Submit)
	}
}

// RegisterHealthRoute registers liveness endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "App is working")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAdminRoutes(r, hb)
	RegisterBlogRoutes(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterHealthRoute(r)
}
