package api

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/youruser/photobooth/internal/booth"
	"github.com/youruser/photobooth/internal/export"
	"github.com/youruser/photobooth/internal/frame"
	"github.com/youruser/photobooth/internal/util"
)

// Server holds the handlers' dependencies.
type Server struct {
	store *booth.Store
	log   *slog.Logger
}

func NewServer(store *booth.Store, log *slog.Logger) *Server {
	return &Server{store: store, log: log}
}

// health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "photos": s.store.Len()})
}

// capture: wraps an uploaded still frame as a new entity
func (s *Server) createPhoto(c *gin.Context) {
	fh, err := c.FormFile("frame")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing frame upload"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()
	payload, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	style := c.DefaultPostForm("style", frame.DefaultStyle)
	if _, ok := frame.Lookup(style); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown style: " + style})
		return
	}
	mirror := c.PostForm("mirror") == "true"

	p, err := booth.NewPhoto(payload, style, c.PostForm("name"), mirror)
	if err != nil {
		if errors.Is(err, booth.ErrDecode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	p.PosX = formFloat(c, "pos_x", 0)
	p.PosY = formFloat(c, "pos_y", 0)

	snap := s.store.Add(p)
	s.log.Info("photo captured", "id", snap.ID, "style", snap.Style)
	c.JSON(http.StatusCreated, snap)
}

func (s *Server) listPhotos(c *gin.Context) {
	photos := s.store.List()
	c.JSON(http.StatusOK, gin.H{"count": len(photos), "photos": photos})
}

func (s *Server) getPhoto(c *gin.Context) {
	p, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// original captured raster, as uploaded (or re-encoded when mirrored)
func (s *Server) getPhotoImage(c *gin.Context) {
	p, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, http.DetectContentType(p.Image), p.Image)
}

func (s *Server) updatePhoto(c *gin.Context) {
	var req struct {
		Name  *string `json:"name"`
		Style *string `json:"style"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Style != nil {
		if _, ok := frame.Lookup(*req.Style); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown style: " + *req.Style})
			return
		}
	}
	p, err := s.store.SetDetails(c.Param("id"), req.Name, req.Style)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) setPlacement(c *gin.Context) {
	var req struct {
		X        float64 `json:"x"`
		Y        float64 `json:"y"`
		Rotation float64 `json:"rotation"`
		Scale    float64 `json:"scale"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := s.store.SetPlacement(c.Param("id"), req.X, req.Y, req.Rotation, req.Scale)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// select: raise to the top of the stacking order
func (s *Server) selectPhoto(c *gin.Context) {
	p, err := s.store.Raise(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID, "z_index": p.ZIndex})
}

func (s *Server) deletePhoto(c *gin.Context) {
	if err := s.store.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// styles: the declarative style table plus layout proportions, so live
// renderers draw the same design the exporter rasterizes
func (s *Server) styles(c *gin.Context) {
	cx, cy, cw, ch := frame.ContentRect()
	c.JSON(http.StatusOK, gin.H{
		"styles": frame.Styles,
		"layout": gin.H{
			"base_width":     frame.BaseWidth,
			"base_height":    frame.BaseHeight,
			"upscale":        frame.Upscale,
			"display_width":  frame.DisplayWidth,
			"display_height": frame.DisplayHeight,
			"content_rect":   gin.H{"x": cx, "y": cy, "w": cw, "h": ch},
		},
	})
}

// export one photo as a composited PNG
func (s *Server) exportPhoto(c *gin.Context) {
	p, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	b, err := export.PNG(p)
	if err != nil {
		if errors.Is(err, frame.ErrDecode) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="photo-`+p.ID[:8]+`.png"`)
	c.Data(http.StatusOK, "image/png", b)
}

// export all (or ?ids=a,b,c) as a zip; a corrupt entity fails in isolation
func (s *Server) exportArchive(c *gin.Context) {
	var photos []booth.Photo
	if ids := c.Query("ids"); ids != "" {
		for _, id := range strings.Split(ids, ",") {
			p, err := s.store.Get(strings.TrimSpace(id))
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "unknown photo: " + id})
				return
			}
			photos = append(photos, p)
		}
	} else {
		photos = s.store.List()
	}
	if len(photos) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "nothing to export"})
		return
	}

	buf := new(bytes.Buffer)
	if err := export.Archive(buf, photos); err != nil {
		s.log.Warn("archive export failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="photobooth.zip"`)
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

// qr endpoint returns a PNG of a QR for a gallery share link
func (s *Server) shareQR(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		text = "photobooth:session"
	}
	size := util.GetEnvInt("QR_SIZE", 400)
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}
	b, err := export.ShareQR(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func formFloat(c *gin.Context, key string, def float64) float64 {
	if v, err := strconv.ParseFloat(c.PostForm(key), 64); err == nil {
		return v
	}
	return def
}
