package api

import (
	"github.com/gin-gonic/gin"

	"github.com/youruser/photobooth/internal/ws"
)

func RegisterRoutes(r *gin.Engine, s *Server, hub *ws.Hub) {
	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/styles", s.styles)

		api.POST("/photos", s.createPhoto)
		api.GET("/photos", s.listPhotos)
		api.GET("/photos/:id", s.getPhoto)
		api.GET("/photos/:id/image", s.getPhotoImage)
		api.PATCH("/photos/:id", s.updatePhoto)
		api.POST("/photos/:id/placement", s.setPlacement)
		api.POST("/photos/:id/select", s.selectPhoto)
		api.DELETE("/photos/:id", s.deletePhoto)

		api.GET("/photos/:id/export", s.exportPhoto)
		api.GET("/export/archive", s.exportArchive)
		api.GET("/share/qr", s.shareQR)
	}

	r.GET("/ws", func(c *gin.Context) {
		ws.Serve(hub, s.store, s.log, c.Writer, c.Request)
	})
}
