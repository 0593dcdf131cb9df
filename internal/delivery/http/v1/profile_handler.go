package v1

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Register PNG decoder
	"io"
	"net/http"

	"go-talenthub-backend/internal/delivery/http/response"
	"go-talenthub-backend/internal/domain"
	"go-talenthub-backend/pkg/apperror"
	"go-talenthub-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	maxPhotoBytes = 5 << 20 // 5 MB upload cap
	maxPhotoDim   = 512     // Avatars are downscaled to fit this box
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
	store     *storage.Client
}

func NewProfileHandler(viewer *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase, store *storage.Client) {
	handler := &ProfileHandler{profileUC: profileUC, store: store}

	// Public profile view; viewer identity is optional and only affects the
	// contact affordance.
	viewer.GET("/users/:id/profile", handler.GetProfile)

	me := protected.Group("/me")
	{
		me.PUT("/profile", handler.UpdateProfile)
		me.POST("/photo", handler.UploadPhoto)
	}
}

// GetProfile godoc
// @Summary      Get a user profile
// @Description  Profile page payload: user record, their job postings, and contact availability
// @Tags         profiles
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=domain.ProfileView}
// @Failure      404  {object}  response.Response
// @Router       /users/{id}/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	subjectID := c.Param("id")

	view, err := h.profileUC.GetProfile(c.Request.Context(), subjectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Expected outcome, not an error: the client renders a fixed
			// fallback with a way back to the landing page.
			response.Error(c, http.StatusNotFound, "User not found", gin.H{"home_path": "/"})
			return
		}
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User profile", view)
}

type UpdateProfileRequest struct {
	Name   string   `json:"name" binding:"required"`
	Bio    string   `json:"bio"`
	Skills []string `json:"skills"`
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Profile JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /me/profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user := &domain.User{
		Name:   req.Name,
		Email:  c.GetString(string(domain.KeyUserEmail)),
		Skills: req.Skills,
	}
	if req.Bio != "" {
		user.Bio = &req.Bio
	}

	if err := h.profileUC.UpdateProfile(c.Request.Context(), user); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", nil)
}

// UploadPhoto godoc
// @Summary      Upload profile photo
// @Description  Accepts a JPEG or PNG, downscales it server-side and stores it in object storage
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        photo  formData  file  true  "Photo file"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      503    {object}  response.Response
// @Router       /me/photo [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	if h.store == nil {
		c.Error(apperror.New(http.StatusServiceUnavailable, "Photo storage is not configured", nil))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.Error(apperror.BadRequest("photo file is required"))
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		c.Error(apperror.BadRequest("photo must be smaller than 5MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	// Decoding doubles as content validation: whatever the client claims,
	// only real JPEG/PNG data gets past this point.
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		c.Error(apperror.BadRequest("photo must be a valid JPEG or PNG image"))
		return
	}

	encoded, err := encodeAvatar(img)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	key := fmt.Sprintf("avatars/%s/%s.jpg", userID, uuid.NewString())
	url, err := h.store.Upload(c.Request.Context(), key, encoded, "image/jpeg")
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	if err := h.profileUC.UpdatePhoto(c.Request.Context(), userID, url); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Photo uploaded", gin.H{"photo_url": url})
}

// encodeAvatar downscales img to fit maxPhotoDim and re-encodes as JPEG.
func encodeAvatar(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxPhotoDim || h > maxPhotoDim {
		scale := float64(maxPhotoDim) / float64(w)
		if h > w {
			scale = float64(maxPhotoDim) / float64(h)
		}
		dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
